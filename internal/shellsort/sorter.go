package shellsort

import (
	"fmt"
	"strings"
	"time"
)

// Strategy selects between the standard and optimized sort loops.
type Strategy int

const (
	// Standard runs one gapped insertion pass per gap.
	Standard Strategy = iota

	// Optimized repeats each gap pass while it shifts, except for gap 1.
	Optimized
)

// String returns "standard" or "optimized".
func (s Strategy) String() string {
	switch s {
	case Standard:
		return "standard"
	case Optimized:
		return "optimized"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy resolves a strategy name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{Standard, Optimized} {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want standard or optimized)", ErrUnknownStrategy, name)
}

// Option configures a Sorter.
type Option func(*Sorter)

// WithClock sets the time source used for elapsed time.
func WithClock(now func() time.Time) Option {
	return func(s *Sorter) {
		s.tracker.now = now
	}
}

// Sorter sorts integer slices in place and records what it did in its
// Tracker.
type Sorter struct {
	tracker *Tracker
}

// NewSorter creates a Sorter with a fresh Tracker.
func NewSorter(opts ...Option) *Sorter {
	s := &Sorter{tracker: NewTracker(nil)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tracker returns the tracker shared by every call on this Sorter.
// It reflects the most recent non-trivial sort.
func (s *Sorter) Tracker() *Tracker {
	return s.tracker
}

// SortWith dispatches to Sort or SortOptimized.
func (s *Sorter) SortWith(strategy Strategy, buf []int, seq Sequence) (Stats, error) {
	if strategy == Optimized {
		return s.SortOptimized(buf, seq)
	}
	return s.Sort(buf, seq)
}

// Sort sorts buf in place with one gapped insertion pass per gap.
//
// A nil buf fails with ErrInvalidArgument. Buffers of length 0 or 1 are
// returned untouched with zero Stats, and the tracker is not reset.
func (s *Sorter) Sort(buf []int, seq Sequence) (Stats, error) {
	return s.run(buf, seq, false)
}

// SortOptimized sorts buf in place, repeating each gap pass until it
// makes no shifts. Gap 1 always gets a single pass. Preconditions match
// Sort.
func (s *Sorter) SortOptimized(buf []int, seq Sequence) (Stats, error) {
	return s.run(buf, seq, true)
}

func (s *Sorter) run(buf []int, seq Sequence, repeat bool) (Stats, error) {
	if buf == nil {
		return Stats{}, fmt.Errorf("%w: buffer cannot be nil", ErrInvalidArgument)
	}
	if len(buf) <= 1 {
		return Stats{}, nil
	}

	t := s.tracker
	t.Reset()
	t.StartTimer()

	gaps := Gaps(len(buf), seq)
	if len(gaps) == 0 {
		// Knuth has no gap <= n/3 when n == 2.
		gaps = []int{1}
	}

	for _, gap := range gaps {
		if gap <= 0 {
			continue
		}
		for {
			shifted := s.pass(buf, gap)
			if !repeat || !shifted || gap <= 1 {
				break
			}
		}
	}

	t.StopTimer()
	return t.Snapshot(), nil
}

// pass runs one gapped insertion pass and reports whether any element
// moved.
func (s *Sorter) pass(buf []int, gap int) bool {
	t := s.tracker
	shifted := false
	for i := gap; i < len(buf); i++ {
		held := buf[i]
		t.AddArrayAccesses(1)

		j := i
		for ; j >= gap; j -= gap {
			t.IncComparisons()
			t.AddArrayAccesses(1)
			if buf[j-gap] <= held {
				break
			}
			buf[j] = buf[j-gap]
			t.AddArrayAccesses(2)
			t.IncSwaps()
			shifted = true
		}

		buf[j] = held
		t.AddArrayAccesses(1)
	}
	return shifted
}

// IsSorted reports whether buf is in non-decreasing order. It has no side
// effects.
func IsSorted(buf []int) bool {
	for i := 1; i < len(buf); i++ {
		if buf[i-1] > buf[i] {
			return false
		}
	}
	return true
}
