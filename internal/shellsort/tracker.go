package shellsort

import "time"

// Stats is an immutable snapshot of the counters from one sort call.
type Stats struct {
	Comparisons   int64         `json:"comparisons"`
	Swaps         int64         `json:"swaps"`
	ArrayAccesses int64         `json:"array_accesses"`
	Elapsed       time.Duration `json:"time_nano"`
}

// TimeNano returns the elapsed time in nanoseconds.
func (s Stats) TimeNano() int64 {
	return s.Elapsed.Nanoseconds()
}

// Tracker accumulates operation counts and wall time for a sort.
//
// The zero value is ready to use and reads time from time.Now. Tracker is
// not safe for concurrent use.
type Tracker struct {
	comparisons   int64
	swaps         int64
	arrayAccesses int64
	start         time.Time
	end           time.Time

	now func() time.Time
}

// NewTracker creates a tracker reading time from now. A nil now uses
// time.Now.
func NewTracker(now func() time.Time) *Tracker {
	return &Tracker{now: now}
}

// Reset zeroes all counters and both timestamps.
func (t *Tracker) Reset() {
	t.comparisons = 0
	t.swaps = 0
	t.arrayAccesses = 0
	t.start = time.Time{}
	t.end = time.Time{}
}

// StartTimer records the start timestamp.
func (t *Tracker) StartTimer() {
	t.start = t.clock()
}

// StopTimer records the end timestamp.
func (t *Tracker) StopTimer() {
	t.end = t.clock()
}

// IncComparisons counts one comparison.
func (t *Tracker) IncComparisons() { t.comparisons++ }

// IncSwaps counts one shift of an element by one gap slot.
func (t *Tracker) IncSwaps() { t.swaps++ }

// AddArrayAccesses counts n element reads or writes.
func (t *Tracker) AddArrayAccesses(n int) { t.arrayAccesses += int64(n) }

// Comparisons returns the comparisons counted since the last Reset.
func (t *Tracker) Comparisons() int64 { return t.comparisons }

// Swaps returns the shifts counted since the last Reset.
func (t *Tracker) Swaps() int64 { return t.swaps }

// ArrayAccesses returns the element accesses counted since the last Reset.
func (t *Tracker) ArrayAccesses() int64 { return t.arrayAccesses }

// Elapsed returns end minus start. Only meaningful after StopTimer.
func (t *Tracker) Elapsed() time.Duration {
	return t.end.Sub(t.start)
}

// Snapshot copies the current counters into a Stats value.
func (t *Tracker) Snapshot() Stats {
	return Stats{
		Comparisons:   t.comparisons,
		Swaps:         t.swaps,
		ArrayAccesses: t.arrayAccesses,
		Elapsed:       t.Elapsed(),
	}
}

func (t *Tracker) clock() time.Time {
	if t.now == nil {
		return time.Now()
	}
	return t.now()
}
