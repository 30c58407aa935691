// Package shellsort implements instrumented Shell sort over integer slices.
//
// A sort call picks one of three gap sequences (SHELL, KNUTH, SEDGEWICK)
// and one of two strategies:
//
// Standard:
// One gapped insertion pass per gap, largest gap first.
//
// Optimized:
// Each gap pass is repeated while it still shifts elements. The final
// gap of 1 always gets exactly one pass, so the last step matches the
// standard strategy.
//
// Every call on a Sorter resets its Tracker, counts comparisons, shifts
// and element accesses, and returns an immutable Stats snapshot. Calls
// on buffers of length 0 or 1 return immediately and leave the Tracker
// as it was.
//
// A Sorter is not safe for concurrent use. Callers that share one across
// goroutines must serialize calls.
package shellsort
