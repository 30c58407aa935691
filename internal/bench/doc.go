// Package bench drives Shell sort benchmarks and writes their reports.
//
// A Plan names the input sizes, gap sequences and strategy to measure.
// Runner executes every (size, sequence) pair on a fresh deterministic
// input, checks the output is sorted, and collects the counters into a
// Report. Reports are written as the flat CSV
//
//	size,sequence,comparisons,swaps,array_accesses,time_nano
//
// or as JSON, and can be summarized for a terminal.
package bench
