package ingestion

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/answerit/ai/mock"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipeline(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	embedder := mock.NewMockEmbedder()

	t.Run("valid configuration", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, embedder)
		require.NoError(t, err)
		defer pipeline.Release()
		assert.NotNil(t, pipeline)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewPipeline(nil, embedder)
		assert.Equal(t, ErrDocumentRepositoryRequired, err)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewPipeline(repo, nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})
}

func TestIngest(t *testing.T) {
	ctx := context.Background()

	newTestPipeline := func(t *testing.T, opts ...Option) (*Pipeline, *mock.MockEmbedder, func()) {
		t.Helper()
		repo, backend, err := badger.NewMemoryRepository()
		require.NoError(t, err)

		embedder := mock.NewMockEmbedder()
		pipeline, err := NewPipeline(repo, embedder, opts...)
		require.NoError(t, err)

		cleanup := func() {
			pipeline.Release()
			repo.Close()
			backend.Close()
		}
		return pipeline, embedder, cleanup
	}

	t.Run("stores embedded chunks", func(t *testing.T) {
		pipeline, _, cleanup := newTestPipeline(t, WithPoolSize(2))
		defer cleanup()

		docs, err := pipeline.Ingest(ctx, nil,
			"Agents keep short term memory in context.",
			"Scratchpads act as working memory.",
		)
		require.NoError(t, err)
		require.Len(t, docs, 2)

		for _, doc := range docs {
			assert.NotZero(t, doc.Id)
			assert.NotEmpty(t, doc.Vector)
			assert.False(t, doc.InsertedAt.IsZero())
		}

		count, err := pipeline.repository.CountDocuments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("splits long texts into multiple chunks", func(t *testing.T) {
		pipeline, _, cleanup := newTestPipeline(t, WithChunkSize(50))
		defer cleanup()

		long := strings.Repeat("Each sentence carries a little more detail. ", 10)
		docs, err := pipeline.Ingest(ctx, nil, long)
		require.NoError(t, err)
		assert.Greater(t, len(docs), 1)
	})

	t.Run("attaches metadata to every chunk", func(t *testing.T) {
		pipeline, _, cleanup := newTestPipeline(t)
		defer cleanup()

		docs, err := pipeline.Ingest(ctx,
			&IngestOptions{Metadata: map[string]string{core.MetadataSource: "blog"}},
			"first text", "second text")
		require.NoError(t, err)
		require.Len(t, docs, 2)

		for _, doc := range docs {
			assert.Equal(t, "blog", doc.Metadata[core.MetadataSource])
		}
	})

	t.Run("identical content collapses into one document", func(t *testing.T) {
		pipeline, _, cleanup := newTestPipeline(t)
		defer cleanup()

		_, err := pipeline.Ingest(ctx, nil, "same chunk")
		require.NoError(t, err)
		_, err = pipeline.Ingest(ctx, nil, "same chunk")
		require.NoError(t, err)

		count, err := pipeline.repository.CountDocuments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("no texts is a no-op", func(t *testing.T) {
		pipeline, _, cleanup := newTestPipeline(t)
		defer cleanup()

		docs, err := pipeline.Ingest(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("embedding failure fails the ingest", func(t *testing.T) {
		pipeline, embedder, cleanup := newTestPipeline(t)
		defer cleanup()

		wantErr := errors.New("embedding service down")
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, wantErr
		}

		_, err := pipeline.Ingest(ctx, nil, "some text")
		assert.ErrorIs(t, err, wantErr)

		count, err := pipeline.repository.CountDocuments(ctx)
		require.NoError(t, err)
		assert.Zero(t, count, "nothing is stored when embedding fails")
	})
}
