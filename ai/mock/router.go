package mock

import (
	"context"

	"github.com/poiesic/answerit/ai"
)

// MockRouter is a test double for ai.Router.
// It allows custom behavior injection via function fields.
type MockRouter struct {
	// RouteFunc is called by Route if set.
	// If nil, every question routes to the vector store.
	RouteFunc func(ctx context.Context, question string) (ai.RouteTarget, error)

	callCount int
}

// NewMockRouter creates a mock router with default behavior.
func NewMockRouter() *MockRouter {
	return &MockRouter{}
}

// Route classifies the question. Default: RouteVectorStore.
func (m *MockRouter) Route(ctx context.Context, question string) (ai.RouteTarget, error) {
	m.callCount++

	if m.RouteFunc != nil {
		return m.RouteFunc(ctx, question)
	}
	return ai.RouteVectorStore, nil
}

// CallCount returns the number of times Route was called.
func (m *MockRouter) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockRouter) Reset() {
	m.callCount = 0
	m.RouteFunc = nil
}
