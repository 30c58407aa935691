package bench

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/gapsort/internal/shellsort"
)

// ErrInvalidPlan is wrapped by every plan validation failure.
var ErrInvalidPlan = errors.New("invalid plan")

// Report formats understood by WriteFile.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Plan describes one benchmark run.
type Plan struct {
	// Name labels the run in reports and logs.
	Name string `yaml:"name"`

	// Sizes lists input lengths, measured in order.
	Sizes []int `yaml:"sizes"`

	// Sequences lists gap sequence names (SHELL, KNUTH, SEDGEWICK).
	// Empty means all three.
	Sequences []string `yaml:"sequences,omitempty"`

	// Strategy is "standard" or "optimized".
	Strategy string `yaml:"strategy"`

	// Seed feeds the input generator. Every input of a given size is
	// identical across sequences and across runs.
	Seed int64 `yaml:"seed"`

	// Output is the report path.
	Output string `yaml:"output"`

	// Format is the report format: "csv" or "json".
	Format string `yaml:"format"`
}

// DefaultPlan returns the plan used when no plan file is given.
func DefaultPlan() Plan {
	return Plan{
		Name:     "default",
		Sizes:    []int{100, 1000, 10000, 100000},
		Strategy: shellsort.Standard.String(),
		Seed:     42,
		Output:   "benchmark_results.csv",
		Format:   FormatCSV,
	}
}

// LoadPlan reads a YAML plan file on top of DefaultPlan.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or fails validation.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	plan := DefaultPlan()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate checks that the plan can be run.
func (p *Plan) Validate() error {
	if len(p.Sizes) == 0 {
		return fmt.Errorf("%w: sizes list is required and must be non-empty", ErrInvalidPlan)
	}
	for i, size := range p.Sizes {
		if size <= 0 {
			return fmt.Errorf("%w: sizes[%d]: must be positive, got %d", ErrInvalidPlan, i, size)
		}
	}
	if _, err := p.ResolveSequences(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if _, err := shellsort.ParseStrategy(p.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if p.Format != FormatCSV && p.Format != FormatJSON {
		return fmt.Errorf("%w: format %q must be csv or json", ErrInvalidPlan, p.Format)
	}
	if p.Output == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidPlan)
	}
	return nil
}

// ResolveSequences parses Sequences, defaulting to every sequence.
func (p *Plan) ResolveSequences() ([]shellsort.Sequence, error) {
	if len(p.Sequences) == 0 {
		return shellsort.Sequences(), nil
	}
	seqs := make([]shellsort.Sequence, 0, len(p.Sequences))
	for i, name := range p.Sequences {
		seq, err := shellsort.ParseSequence(name)
		if err != nil {
			return nil, fmt.Errorf("sequences[%d]: %w", i, err)
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}
