package mock

import (
	"context"

	"github.com/poiesic/answerit/ai"
	"github.com/poiesic/answerit/core"
)

// MockRelevanceGrader is a test double for ai.RelevanceGrader.
// It allows custom behavior injection via function fields.
type MockRelevanceGrader struct {
	// GradeRelevanceFunc is called by GradeRelevance if set.
	// If nil, every document is graded relevant.
	GradeRelevanceFunc func(ctx context.Context, question, content string) (ai.Relevance, error)

	callCount int
}

// NewMockRelevanceGrader creates a mock relevance grader with default behavior.
func NewMockRelevanceGrader() *MockRelevanceGrader {
	return &MockRelevanceGrader{}
}

// GradeRelevance grades a document. Default: DocumentRelevant.
func (m *MockRelevanceGrader) GradeRelevance(ctx context.Context, question, content string) (ai.Relevance, error) {
	m.callCount++

	if m.GradeRelevanceFunc != nil {
		return m.GradeRelevanceFunc(ctx, question, content)
	}
	return ai.DocumentRelevant, nil
}

// CallCount returns the number of times GradeRelevance was called.
func (m *MockRelevanceGrader) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockRelevanceGrader) Reset() {
	m.callCount = 0
	m.GradeRelevanceFunc = nil
}

// MockGroundednessGrader is a test double for ai.GroundednessGrader.
// It allows custom behavior injection via function fields.
type MockGroundednessGrader struct {
	// GradeGroundednessFunc is called by GradeGroundedness if set.
	// If nil, every answer is graded grounded.
	GradeGroundednessFunc func(ctx context.Context, documents []*core.Document, answer string) (ai.Groundedness, error)

	callCount int
}

// NewMockGroundednessGrader creates a mock hallucination grader with default behavior.
func NewMockGroundednessGrader() *MockGroundednessGrader {
	return &MockGroundednessGrader{}
}

// GradeGroundedness grades an answer. Default: AnswerGrounded.
func (m *MockGroundednessGrader) GradeGroundedness(ctx context.Context, documents []*core.Document, answer string) (ai.Groundedness, error) {
	m.callCount++

	if m.GradeGroundednessFunc != nil {
		return m.GradeGroundednessFunc(ctx, documents, answer)
	}
	return ai.AnswerGrounded, nil
}

// CallCount returns the number of times GradeGroundedness was called.
func (m *MockGroundednessGrader) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockGroundednessGrader) Reset() {
	m.callCount = 0
	m.GradeGroundednessFunc = nil
}

// MockAnswerfulnessGrader is a test double for ai.AnswerfulnessGrader.
// It allows custom behavior injection via function fields.
type MockAnswerfulnessGrader struct {
	// GradeAnswerfulnessFunc is called by GradeAnswerfulness if set.
	// If nil, every answer is graded as addressing the question.
	GradeAnswerfulnessFunc func(ctx context.Context, question, answer string) (ai.Answerfulness, error)

	callCount int
}

// NewMockAnswerfulnessGrader creates a mock usefulness grader with default behavior.
func NewMockAnswerfulnessGrader() *MockAnswerfulnessGrader {
	return &MockAnswerfulnessGrader{}
}

// GradeAnswerfulness grades an answer. Default: AnswerAddresses.
func (m *MockAnswerfulnessGrader) GradeAnswerfulness(ctx context.Context, question, answer string) (ai.Answerfulness, error) {
	m.callCount++

	if m.GradeAnswerfulnessFunc != nil {
		return m.GradeAnswerfulnessFunc(ctx, question, answer)
	}
	return ai.AnswerAddresses, nil
}

// CallCount returns the number of times GradeAnswerfulness was called.
func (m *MockAnswerfulnessGrader) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockAnswerfulnessGrader) Reset() {
	m.callCount = 0
	m.GradeAnswerfulnessFunc = nil
}
