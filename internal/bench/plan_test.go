package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gapsort/internal/shellsort"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultPlan(t *testing.T) {
	plan := DefaultPlan()
	require.NoError(t, plan.Validate())

	assert.Equal(t, []int{100, 1000, 10000, 100000}, plan.Sizes)
	assert.Equal(t, "standard", plan.Strategy)
	assert.Equal(t, int64(42), plan.Seed)
	assert.Equal(t, "benchmark_results.csv", plan.Output)
	assert.Equal(t, FormatCSV, plan.Format)

	seqs, err := plan.ResolveSequences()
	require.NoError(t, err)
	assert.Equal(t, shellsort.Sequences(), seqs)
}

func TestLoadPlan_OverridesDefaults(t *testing.T) {
	path := writePlan(t, `
name: nearly-small
sizes: [10, 20]
sequences: [knuth, SEDGEWICK]
strategy: optimized
seed: 7
`)

	plan, err := LoadPlan(path)
	require.NoError(t, err)

	assert.Equal(t, "nearly-small", plan.Name)
	assert.Equal(t, []int{10, 20}, plan.Sizes)
	assert.Equal(t, "optimized", plan.Strategy)
	assert.Equal(t, int64(7), plan.Seed)
	assert.Equal(t, "benchmark_results.csv", plan.Output, "unset fields keep defaults")

	seqs, err := plan.ResolveSequences()
	require.NoError(t, err)
	assert.Equal(t, []shellsort.Sequence{shellsort.Knuth, shellsort.Sedgewick}, seqs)
}

func TestLoadPlan_UnknownField(t *testing.T) {
	path := writePlan(t, `
sizes: [10]
sequnces: [SHELL]
`)

	_, err := LoadPlan(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.Contains(t, err.Error(), "sequnces")
}

func TestLoadPlan_MissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read plan file")
}

func TestPlanValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Plan)
		errMsg string
	}{
		{"no sizes", func(p *Plan) { p.Sizes = nil }, "sizes list is required"},
		{"zero size", func(p *Plan) { p.Sizes = []int{10, 0} }, "sizes[1]: must be positive"},
		{"negative size", func(p *Plan) { p.Sizes = []int{-5} }, "sizes[0]: must be positive"},
		{"bad sequence", func(p *Plan) { p.Sequences = []string{"SHELL", "pratt"} }, "sequences[1]"},
		{"bad strategy", func(p *Plan) { p.Strategy = "fast" }, "unknown sort strategy"},
		{"bad format", func(p *Plan) { p.Format = "xml" }, "format \"xml\""},
		{"no output", func(p *Plan) { p.Output = "" }, "output path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := DefaultPlan()
			tt.mutate(&plan)

			err := plan.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPlan)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
