package ai

import (
	"context"

	"github.com/poiesic/answerit/core"
)

// Router classifies a question to its best evidence source.
// Implementations must be thread-safe for concurrent use.
type Router interface {
	// Route decides whether the question should be answered from the
	// local vector store or from live web search.
	// Returns ErrUnrecognizedRoute (wrapped) if the underlying model
	// produced a label outside the known set.
	Route(ctx context.Context, question string) (RouteTarget, error)
}

// RelevanceGrader judges whether a single document is pertinent to a question.
// Implementations must be thread-safe for concurrent use.
type RelevanceGrader interface {
	// GradeRelevance performs a binary relevance classification of the
	// document content against the question.
	GradeRelevance(ctx context.Context, question, content string) (Relevance, error)
}

// Generator produces an answer from a question and its evidence documents.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate returns the answer text. Only Content is read from the
	// documents; metadata is ignored.
	Generate(ctx context.Context, question string, documents []*core.Document) (string, error)
}

// GroundednessGrader judges whether an answer is supported by its evidence.
// Implementations must be thread-safe for concurrent use.
type GroundednessGrader interface {
	// GradeGroundedness performs a binary hallucination check of the
	// answer against the supplied documents.
	GradeGroundedness(ctx context.Context, documents []*core.Document, answer string) (Groundedness, error)
}

// AnswerfulnessGrader judges whether an answer actually addresses the question.
// Implementations must be thread-safe for concurrent use.
type AnswerfulnessGrader interface {
	// GradeAnswerfulness performs a binary usefulness check of the
	// answer against the question.
	GradeAnswerfulness(ctx context.Context, question, answer string) (Answerfulness, error)
}

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in
	// a batch. The returned slice matches the order of the input texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. All returned services share configuration and are
// safe for concurrent use.
type AIProvider interface {
	Router() Router
	RelevanceGrader() RelevanceGrader
	Generator() Generator
	GroundednessGrader() GroundednessGrader
	AnswerfulnessGrader() AnswerfulnessGrader
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
