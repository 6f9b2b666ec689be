package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/answerit/ai"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage"
	"github.com/tmc/langchaingo/textsplitter"
)

const (
	// defaultChunkSize is the target chunk length in characters.
	defaultChunkSize = 250

	// defaultChunkOverlap is how many characters adjacent chunks share.
	defaultChunkOverlap = 0
)

// Pipeline splits, embeds, and stores source texts as documents.
type Pipeline struct {
	repository   storage.DocumentRepository
	embedder     ai.Embedder
	splitter     textsplitter.TextSplitter
	pool         *ants.Pool
	chunkSize    int
	chunkOverlap int
	logger       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithChunkSize sets the target chunk length in characters.
// Default is 250.
func WithChunkSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.chunkSize = size
		return nil
	}
}

// WithChunkOverlap sets how many characters adjacent chunks share.
// Default is 0.
func WithChunkOverlap(overlap int) Option {
	return func(p *Pipeline) error {
		if overlap < 0 {
			overlap = 0
		}
		p.chunkOverlap = overlap
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	repository storage.DocumentRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository:   repository,
		embedder:     embedder,
		pool:         pool,
		chunkSize:    defaultChunkSize,
		chunkOverlap: defaultChunkOverlap,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Splitter is created after options so it sees the final chunk config.
	p.splitter = textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(p.chunkSize),
		textsplitter.WithChunkOverlap(p.chunkOverlap),
	)

	return p, nil
}

// IngestOptions holds optional parameters for ingestion.
type IngestOptions struct {
	Metadata map[string]string // Optional metadata to attach to every chunk
}

// Ingest splits the texts into chunks, embeds each chunk, and stores the
// chunks as documents. Identical chunks collapse into one document via
// content addressing. Returns the stored documents.
func (p *Pipeline) Ingest(ctx context.Context, opts *IngestOptions, texts ...string) ([]*core.Document, error) {
	if opts == nil {
		opts = &IngestOptions{}
	}

	var chunks []string
	for _, text := range texts {
		split, err := p.splitter.SplitText(text)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, split...)
	}

	if len(chunks) == 0 {
		return nil, nil
	}

	p.logger.Info("embedding chunks", "texts", len(texts), "chunks", len(chunks))

	vectors := make([][]float32, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()
			vector, err := p.embedder.EmbedText(ctx, chunk)
			if err != nil {
				errs[i] = err
				return
			}
			vectors[i] = vector
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	documents := make([]*core.Document, len(chunks))
	for i, chunk := range chunks {
		var metadata map[string]string
		if len(opts.Metadata) > 0 {
			metadata = maps.Clone(opts.Metadata)
		}

		documents[i] = &core.Document{
			Content:  chunk,
			Vector:   vectors[i],
			Metadata: metadata,
		}
	}

	added, err := p.repository.AddDocuments(ctx, documents...)
	if err != nil {
		return nil, err
	}

	p.logger.Info("ingested documents", "count", len(added))
	return added, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
