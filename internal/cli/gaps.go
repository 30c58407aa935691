package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/gapsort/internal/shellsort"
)

// GapsOptions holds flags for the gaps command.
type GapsOptions struct {
	*RootOptions
	Sequence string // empty means every sequence
}

// GapSequence is one line of gaps output.
type GapSequence struct {
	Sequence string `json:"sequence"`
	Gaps     []int  `json:"gaps"`
}

// GapsResult holds the gap sequences for one array length.
type GapsResult struct {
	N         int           `json:"n"`
	Sequences []GapSequence `json:"sequences"`
}

// RenderText prints one "NAME: g1 g2 ..." line per sequence.
func (r GapsResult) RenderText(w io.Writer) error {
	for _, s := range r.Sequences {
		if _, err := fmt.Fprintf(w, "%s:", s.Sequence); err != nil {
			return err
		}
		for _, gap := range s.Gaps {
			if _, err := fmt.Fprintf(w, " %d", gap); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// NewGapsCommand creates the gaps command.
func NewGapsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GapsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gaps <n>",
		Short: "Print gap sequences for an array length",
		Long: `Print the gap sequence each variant would use for an array of length n,
largest gap first.

Examples:
  gapsort gaps 100
  gapsort gaps 1000 --sequence sedgewick`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGaps(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Sequence, "sequence", "", "only print this sequence (SHELL|KNUTH|SEDGEWICK)")

	return cmd
}

func runGaps(opts *GapsOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgs,
			fmt.Sprintf("array length must be a non-negative integer, got %q", arg), nil)
	}

	seqs := shellsort.Sequences()
	if opts.Sequence != "" {
		seq, err := shellsort.ParseSequence(opts.Sequence)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidArgs, "invalid --sequence", err)
		}
		seqs = []shellsort.Sequence{seq}
	}

	result := GapsResult{N: n}
	for _, seq := range seqs {
		result.Sequences = append(result.Sequences, GapSequence{
			Sequence: seq.String(),
			Gaps:     shellsort.Gaps(n, seq),
		})
	}
	return formatter.Success(result)
}
