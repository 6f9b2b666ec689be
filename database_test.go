package answerit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/answerit/ai/mock"
	"github.com/poiesic/answerit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearchClient satisfies websearch.Client without network access.
type fakeSearchClient struct{}

func (fakeSearchClient) Search(ctx context.Context, query string, maxResults int) ([]*core.Document, error) {
	return nil, nil
}

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir, WithAIProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		// Verify components are initialized
		assert.NotNil(t, db.DocumentRepository())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a database at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile, WithAIProvider(mock.NewMockProvider()))
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_Close(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := NewDatabase(tmpDir, WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, db)

	// Close the database
	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_FactoryMethods(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := NewDatabase(tmpDir, WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, db)
	defer db.Close()

	t.Run("can create retriever", func(t *testing.T) {
		retriever, err := db.NewRetriever()
		require.NoError(t, err)
		require.NotNil(t, retriever)
	})

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := db.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create workflow", func(t *testing.T) {
		wf, err := db.NewWorkflow(fakeSearchClient{})
		require.NoError(t, err)
		require.NotNil(t, wf)
	})
}

func TestDatabase_EndToEnd(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.GetMockEmbedder().EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}

	tmpDir := t.TempDir()
	db, err := NewDatabase(tmpDir, WithAIProvider(provider))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	pipeline, err := db.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	docs, err := pipeline.Ingest(ctx, nil, "agents keep short term memory in context")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	wf, err := db.NewWorkflow(fakeSearchClient{})
	require.NoError(t, err)

	result, err := wf.Run(ctx, "what is agent memory")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Generation)
	assert.Equal(t, core.SourceRAG, result.Source)
}
