package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/roach88/gapsort/internal/shellsort"
)

// Result holds the measurement for one (size, sequence) pair.
type Result struct {
	Size     int                `json:"size"`
	Sequence shellsort.Sequence `json:"sequence"`
	Stats    shellsort.Stats    `json:"stats"`
	Sorted   bool               `json:"sorted"`
}

// Report is the outcome of a full plan run.
type Report struct {
	RunID     string    `json:"run_id"`
	Name      string    `json:"name"`
	Strategy  string    `json:"strategy"`
	Seed      int64     `json:"seed"`
	StartedAt time.Time `json:"started_at"`
	Results   []Result  `json:"results"`
}

// Unsorted returns the results whose output failed the sortedness check.
func (r *Report) Unsorted() []Result {
	var bad []Result
	for _, res := range r.Results {
		if !res.Sorted {
			bad = append(bad, res)
		}
	}
	return bad
}

// Runner executes benchmark plans.
type Runner struct {
	// Logger receives one debug entry per result. Nil disables logging.
	Logger *zap.Logger

	// IDs generates the report run id. Nil uses UUIDv7Generator.
	IDs IDGenerator

	// Now is the time source for sort timing and StartedAt. Nil uses
	// time.Now.
	Now func() time.Time

	// Progress, if set, is called after every measurement.
	Progress func(Result)
}

// Run measures every (size, sequence) pair of plan in order.
//
// Each pair gets a fresh Sorter and a freshly generated input, so results
// do not depend on execution order. Cancellation is checked between
// measurements; on cancellation the partial report is returned with the
// context error.
func (r *Runner) Run(ctx context.Context, plan *Plan) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	seqs, err := plan.ResolveSequences()
	if err != nil {
		return nil, err
	}
	strategy, err := shellsort.ParseStrategy(plan.Strategy)
	if err != nil {
		return nil, err
	}

	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ids := r.IDs
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}

	report := &Report{
		RunID:     ids.Generate(),
		Name:      plan.Name,
		Strategy:  strategy.String(),
		Seed:      plan.Seed,
		StartedAt: now(),
		Results:   make([]Result, 0, len(plan.Sizes)*len(seqs)),
	}
	logger = logger.With(zap.String("run_id", report.RunID), zap.String("plan", plan.Name))
	logger.Info("benchmark started",
		zap.Ints("sizes", plan.Sizes),
		zap.Int("sequences", len(seqs)),
		zap.Stringer("strategy", strategy),
		zap.Int64("seed", plan.Seed),
	)

	for _, size := range plan.Sizes {
		for _, seq := range seqs {
			if err := ctx.Err(); err != nil {
				logger.Warn("benchmark cancelled", zap.Int("completed", len(report.Results)))
				return report, err
			}

			res, err := measure(size, seq, strategy, plan.Seed, now)
			if err != nil {
				return report, err
			}
			report.Results = append(report.Results, res)

			fields := []zap.Field{
				zap.Int("size", size),
				zap.Stringer("sequence", seq),
				zap.Int64("comparisons", res.Stats.Comparisons),
				zap.Int64("swaps", res.Stats.Swaps),
				zap.Int64("array_accesses", res.Stats.ArrayAccesses),
				zap.Duration("elapsed", res.Stats.Elapsed),
			}
			if res.Sorted {
				logger.Debug("measurement complete", fields...)
			} else {
				logger.Error("output not sorted", fields...)
			}

			if r.Progress != nil {
				r.Progress(res)
			}
		}
	}

	logger.Info("benchmark completed",
		zap.Int("results", len(report.Results)),
		zap.Int("unsorted", len(report.Unsorted())),
	)
	return report, nil
}

func measure(size int, seq shellsort.Sequence, strategy shellsort.Strategy, seed int64, now func() time.Time) (Result, error) {
	data := GenerateInput(size, seed)
	sorter := shellsort.NewSorter(shellsort.WithClock(now))
	stats, err := sorter.SortWith(strategy, data, seq)
	if err != nil {
		return Result{}, fmt.Errorf("size %d, sequence %s: %w", size, seq, err)
	}
	return Result{
		Size:     size,
		Sequence: seq,
		Stats:    stats,
		Sorted:   shellsort.IsSorted(data),
	}, nil
}
