package retrieval

import (
	"context"
	"log/slog"

	"github.com/poiesic/answerit/ai"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage"
)

const (
	// defaultMaxHits caps how many documents a retrieval returns.
	defaultMaxHits = 4
	// defaultMinSimilarity is the cosine similarity floor for a hit.
	defaultMinSimilarity = 0.60
)

// Retriever fetches evidence documents for a question from a local store.
// Implementations must be thread-safe for concurrent use.
type Retriever interface {
	// Retrieve returns documents for the question, best match first.
	// An empty result set is not an error.
	Retrieve(ctx context.Context, question string) ([]*core.Document, error)
}

// VectorRetriever implements Retriever with embedding-based similarity
// search over a document repository.
type VectorRetriever struct {
	repository    storage.DocumentRepository
	embedder      ai.Embedder
	maxHits       int
	minSimilarity float32
	logger        *slog.Logger
}

var _ Retriever = (*VectorRetriever)(nil)

// Option configures a VectorRetriever.
type Option func(*VectorRetriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *VectorRetriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithMaxHits sets how many documents a retrieval returns at most.
// Default is 4.
func WithMaxHits(maxHits int) Option {
	return func(r *VectorRetriever) error {
		if maxHits < 1 {
			maxHits = 1
		}
		r.maxHits = maxHits
		return nil
	}
}

// WithMinSimilarity sets the cosine similarity floor for a hit.
// Default is 0.60.
func WithMinSimilarity(minSimilarity float32) Option {
	return func(r *VectorRetriever) error {
		r.minSimilarity = minSimilarity
		return nil
	}
}

// NewVectorRetriever creates a new vector-store retriever.
func NewVectorRetriever(
	repository storage.DocumentRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*VectorRetriever, error) {
	if repository == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	r := &VectorRetriever{
		repository:    repository,
		embedder:      embedder,
		maxHits:       defaultMaxHits,
		minSimilarity: defaultMinSimilarity,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Retrieve embeds the question and returns the most similar documents.
func (r *VectorRetriever) Retrieve(ctx context.Context, question string) ([]*core.Document, error) {
	embedding, err := r.embedder.EmbedText(ctx, question)
	if err != nil {
		r.logger.Error("error generating embedding for question", "err", err)
		return nil, err
	}

	matches, err := r.repository.FindSimilar(ctx, embedding, r.minSimilarity, r.maxHits)
	if err != nil {
		r.logger.Error("error querying for similar documents", "err", err)
		return nil, err
	}

	docs := make([]*core.Document, 0, len(matches))
	for _, match := range matches {
		docs = append(docs, match.Document)
	}

	r.logger.Debug("retrieved documents", "count", len(docs))
	return docs, nil
}
