package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/gapsort/internal/bench"
)

// BenchOptions holds flags for the bench command.
type BenchOptions struct {
	*RootOptions
	PlanFile     string
	Sizes        []int
	Sequences    []string
	Strategy     string
	Seed         int64
	Output       string
	ReportFormat string

	// IDs and Now override run id generation and timing (for testing).
	IDs bench.IDGenerator
	Now func() time.Time
}

// BenchResult is the payload printed when a benchmark completes.
type BenchResult struct {
	Report *bench.Report `json:"report"`
	Output string        `json:"output"`
}

// RenderText prints the console summary.
func (r BenchResult) RenderText(w io.Writer) error {
	if err := bench.WriteSummary(w, r.Report); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Results saved to %s\n", r.Output)
	return err
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	return newBenchCommand(&BenchOptions{RootOptions: rootOpts})
}

func newBenchCommand(opts *BenchOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark Shell sort across sizes and gap sequences",
		Long: `Benchmark Shell sort across input sizes and gap sequences.

Each (size, sequence) pair sorts a freshly generated pseudo-random input
with values in [0, size*10), checks the result is sorted, and records
comparisons, swaps, array accesses and elapsed nanoseconds. Results are
written to a CSV (or JSON) report.

Settings come from --plan (a YAML file) on top of the defaults, and any
flag given explicitly overrides the plan.

Exit codes:
  0 - All results sorted
  1 - A result was not sorted, or the run was interrupted (results
      measured before the interrupt are still written to the report)
  2 - Command error (bad flags, unreadable plan, unwritable report)

Examples:
  gapsort bench
  gapsort bench --sizes 100,1000 --sequences knuth,sedgewick
  gapsort bench --plan ./plan.yaml --strategy optimized -o results.csv
  gapsort bench --report-format json -o results.json --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts, cmd)
		},
	}

	defaults := bench.DefaultPlan()
	cmd.Flags().StringVar(&opts.PlanFile, "plan", "", "path to a YAML benchmark plan")
	cmd.Flags().IntSliceVar(&opts.Sizes, "sizes", defaults.Sizes, "input sizes to benchmark")
	cmd.Flags().StringSliceVar(&opts.Sequences, "sequences", nil, "gap sequences (SHELL,KNUTH,SEDGEWICK; default all)")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", defaults.Strategy, "sort strategy (standard|optimized)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", defaults.Seed, "input generator seed")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", defaults.Output, "report path")
	cmd.Flags().StringVar(&opts.ReportFormat, "report-format", defaults.Format, "report file format (csv|json)")

	return cmd
}

func runBench(opts *BenchOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	plan, err := resolvePlan(opts, cmd)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidPlan, "invalid benchmark plan", err)
	}
	formatter.VerboseLog("Benchmarking sizes %v with strategy %s", plan.Sizes, plan.Strategy)

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan) // Prevent signal handler leak

	logger := opts.logger()
	go func() {
		select {
		case sig := <-sigChan:
			logger.Warn("received signal, stopping benchmark", zap.Stringer("signal", sig))
			cancel()
		case <-ctx.Done():
		}
	}()

	runner := &bench.Runner{
		Logger: logger,
		IDs:    opts.IDs,
		Now:    opts.Now,
	}
	if opts.Verbose {
		runner.Progress = func(res bench.Result) {
			_ = bench.WriteProgress(formatter.GetErrWriter(), res)
		}
	}

	report, err := runner.Run(ctx, plan)
	if err != nil {
		if errors.Is(err, context.Canceled) && report != nil && len(report.Results) > 0 {
			if werr := bench.WriteFile(plan.Output, plan.Format, report); werr != nil {
				return formatter.Fail(ExitCommandError, ErrCodeReport, "failed to write partial report", werr)
			}
			return formatter.Fail(ExitFailure, ErrCodeInterrupted,
				fmt.Sprintf("benchmark interrupted, partial report with %d results saved to %s",
					len(report.Results), plan.Output), err)
		}
		exitCode, code, message := runErrorCode(err)
		return formatter.Fail(exitCode, code, message, err)
	}

	if err := bench.WriteFile(plan.Output, plan.Format, report); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeReport, "failed to write report", err)
	}

	if err := formatter.Success(BenchResult{Report: report, Output: plan.Output}); err != nil {
		return err
	}

	if unsorted := report.Unsorted(); len(unsorted) > 0 {
		return formatter.Fail(ExitFailure, ErrCodeUnsorted,
			fmt.Sprintf("%d of %d results not sorted", len(unsorted), len(report.Results)), nil)
	}
	return nil
}

// runErrorCode maps a Runner.Run failure to an exit code and error code.
func runErrorCode(err error) (int, string, string) {
	switch {
	case errors.Is(err, context.Canceled):
		return ExitFailure, ErrCodeInterrupted, "benchmark interrupted"
	case errors.Is(err, bench.ErrInvalidPlan):
		return ExitCommandError, ErrCodeInvalidPlan, "invalid benchmark plan"
	default:
		return ExitCommandError, ErrCodeInvalidArgs, "benchmark failed"
	}
}

// resolvePlan layers explicitly set flags over the plan file (or the
// default plan) and validates the result.
func resolvePlan(opts *BenchOptions, cmd *cobra.Command) (*bench.Plan, error) {
	plan := bench.DefaultPlan()
	if opts.PlanFile != "" {
		loaded, err := bench.LoadPlan(opts.PlanFile)
		if err != nil {
			return nil, err
		}
		plan = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("sizes") {
		plan.Sizes = opts.Sizes
	}
	if flags.Changed("sequences") {
		plan.Sequences = opts.Sequences
	}
	if flags.Changed("strategy") {
		plan.Strategy = opts.Strategy
	}
	if flags.Changed("seed") {
		plan.Seed = opts.Seed
	}
	if flags.Changed("output") {
		plan.Output = opts.Output
	}
	if flags.Changed("report-format") {
		plan.Format = opts.ReportFormat
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}
