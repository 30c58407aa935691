package shellsort

import (
	"fmt"
	"math"
	"math/bits"
	"slices"
	"strings"
)

// Sequence selects the gap sequence used by a sort.
type Sequence int

const (
	// Shell is Shell's original sequence: n/2, n/4, ..., 1.
	Shell Sequence = iota

	// Knuth is (3^k - 1) / 2, bounded by n/3.
	Knuth

	// Sedgewick is Sedgewick's 1986 interleaved sequence, bounded by n.
	Sedgewick
)

var sequenceNames = map[Sequence]string{
	Shell:     "SHELL",
	Knuth:     "KNUTH",
	Sedgewick: "SEDGEWICK",
}

// String returns the upper-case name used in reports.
func (s Sequence) String() string {
	if name, ok := sequenceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Sequence(%d)", int(s))
}

// Sequences returns every sequence in declaration order.
func Sequences() []Sequence {
	return []Sequence{Shell, Knuth, Sedgewick}
}

// ParseSequence resolves a sequence name, ignoring case.
func ParseSequence(name string) (Sequence, error) {
	for _, seq := range Sequences() {
		if strings.EqualFold(name, seq.String()) {
			return seq, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of SHELL, KNUTH, SEDGEWICK)", ErrUnknownSequence, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Sequence) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sequence) UnmarshalText(text []byte) error {
	seq, err := ParseSequence(string(text))
	if err != nil {
		return err
	}
	*s = seq
	return nil
}

// Gaps returns the gap sequence for an array of length n, largest gap
// first. The result is a fresh slice owned by the caller.
//
// Gaps never fails: n of 0 or 1 yields an empty or trivial sequence, and
// an unrecognized selector falls back to Shell. Zero gaps are not
// filtered here.
func Gaps(n int, seq Sequence) []int {
	switch seq {
	case Knuth:
		return knuthGaps(n)
	case Sedgewick:
		return sedgewickGaps(n)
	default:
		return shellGaps(n)
	}
}

// shellGaps halves n exactly floor(log2(n)) times.
func shellGaps(n int) []int {
	if n <= 0 {
		return []int{}
	}
	count := bits.Len(uint(n)) - 1
	gaps := make([]int, count)
	gap := n / 2
	for i := range gaps {
		gaps[i] = gap
		gap /= 2
	}
	return gaps
}

func knuthGaps(n int) []int {
	limit := n / 3
	gaps := []int{}
	for pow := 3; ; pow *= 3 {
		gap := (pow - 1) / 2
		if gap > limit {
			break
		}
		gaps = append(gaps, gap)
		if pow > math.MaxInt/3 {
			// The next power of three does not fit in an int, and its gap
			// would exceed any limit that does.
			break
		}
	}
	slices.Reverse(gaps)
	return gaps
}

func sedgewickGaps(n int) []int {
	gaps := []int{}
	for k := 0; ; k++ {
		// Every term is at least 2^k, and once 2^k > MaxInt/9 the term
		// itself no longer fits in an int. Either way it is past n.
		if 1<<k > n || 1<<k > math.MaxInt/9 {
			break
		}
		var gap int
		if k%2 == 0 {
			gap = 9*((1<<k)-(1<<(k/2))) + 1
		} else {
			gap = 8*(1<<k) - 6*(1<<((k+1)/2)) + 1
		}
		if gap > n {
			break
		}
		gaps = append(gaps, gap)
	}
	slices.Reverse(gaps)
	return gaps
}
