package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/gapsort/internal/shellsort"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	*RootOptions
	Sequence string
	Strategy string
}

// SortResult is the sorted output and the counters for the call.
type SortResult struct {
	Sorted   []int           `json:"sorted"`
	Sequence string          `json:"sequence"`
	Strategy string          `json:"strategy"`
	Gaps     []int           `json:"gaps"`
	Stats    shellsort.Stats `json:"stats"`
}

// RenderText prints the sorted values followed by the counters.
func (r SortResult) RenderText(w io.Writer) error {
	values := make([]string, len(r.Sorted))
	for i, v := range r.Sorted {
		values[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintf(w, "%s\ncomparisons=%d swaps=%d array_accesses=%d time_nano=%d\n",
		strings.Join(values, " "),
		r.Stats.Comparisons,
		r.Stats.Swaps,
		r.Stats.ArrayAccesses,
		r.Stats.TimeNano(),
	)
	return err
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort integers and print the operation counts",
		Long: `Sort the given integers with Shell sort and print the result along with
comparisons, swaps, array accesses and elapsed nanoseconds.

Negative values must follow "--" so they are not read as flags.

Examples:
  gapsort sort 64 34 25 12 22 11 90
  gapsort sort --sequence knuth --strategy optimized 5 4 3 2 1
  gapsort sort -- 3 -1 2`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Sequence, "sequence", shellsort.Shell.String(), "gap sequence (SHELL|KNUTH|SEDGEWICK)")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", shellsort.Standard.String(), "sort strategy (standard|optimized)")

	return cmd
}

func runSort(opts *SortOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	seq, err := shellsort.ParseSequence(opts.Sequence)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgs, "invalid --sequence", err)
	}
	strategy, err := shellsort.ParseStrategy(opts.Strategy)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgs, "invalid --strategy", err)
	}

	buf := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidArgs,
				fmt.Sprintf("value %d is not an integer: %q", i, arg), nil)
		}
		buf[i] = v
	}

	stats, err := shellsort.NewSorter().SortWith(strategy, buf, seq)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgs, "sort failed", err)
	}
	if !shellsort.IsSorted(buf) {
		return formatter.Fail(ExitFailure, ErrCodeUnsorted, "output not sorted", nil)
	}

	opts.logger().Debug("sorted",
		zap.Int("values", len(buf)),
		zap.Stringer("sequence", seq),
		zap.Stringer("strategy", strategy),
		zap.Int64("comparisons", stats.Comparisons),
	)
	gaps := shellsort.Gaps(len(buf), seq)
	formatter.VerboseLog("Gap sequence: %v", gaps)

	return formatter.Success(SortResult{
		Sorted:   buf,
		Sequence: seq.String(),
		Strategy: strategy.String(),
		Gaps:     gaps,
		Stats:    stats,
	})
}
