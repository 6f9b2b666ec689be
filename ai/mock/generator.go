package mock

import (
	"context"
	"fmt"

	"github.com/poiesic/answerit/core"
)

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, produces a deterministic answer naming the evidence count.
	GenerateFunc func(ctx context.Context, question string, documents []*core.Document) (string, error)

	callCount int
}

// NewMockGenerator creates a mock generator with default deterministic behavior.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate produces an answer. The default output is deterministic for a
// given question and document count, so tests can assert on it.
func (m *MockGenerator) Generate(ctx context.Context, question string, documents []*core.Document) (string, error) {
	m.callCount++

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, question, documents)
	}
	return fmt.Sprintf("Answer to %q based on %d documents.", question, len(documents)), nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.GenerateFunc = nil
}
