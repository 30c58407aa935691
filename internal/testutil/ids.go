package testutil

// FixedIDGenerator returns the same run id every time.
//
// This keeps benchmark reports byte-identical across test runs so they
// can be compared against golden files.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a fixed run id generator.
// If id is empty, Generate() returns "test-run-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed run id.
//
// Implements bench.IDGenerator interface.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
