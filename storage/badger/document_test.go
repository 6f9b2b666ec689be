package badger

import (
	"context"
	"testing"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.DocumentRepository {
	t.Helper()

	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestNewDocumentRepository(t *testing.T) {
	t.Run("nil backend", func(t *testing.T) {
		_, err := NewDocumentRepository(nil)
		assert.Equal(t, ErrBackendRequired, err)
	})
}

func TestAddAndGetDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	docs := []*core.Document{
		{Content: "agents use episodic memory", Vector: []float32{1, 0, 0}},
		{Content: "chain of thought prompting", Vector: []float32{0, 1, 0}},
	}

	added, err := repo.AddDocuments(ctx, docs...)
	require.NoError(t, err)
	require.Len(t, added, 2)

	for _, doc := range added {
		assert.Equal(t, core.IDFromContent(doc.Content), doc.Id)
		assert.False(t, doc.InsertedAt.IsZero())
	}

	t.Run("get single", func(t *testing.T) {
		doc, err := repo.GetDocument(ctx, added[0].Id)
		require.NoError(t, err)
		assert.Equal(t, "agents use episodic memory", doc.Content)
		assert.Equal(t, []float32{1, 0, 0}, doc.Vector)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.GetDocument(ctx, core.ID(424242))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("get multiple skips missing", func(t *testing.T) {
		docs, err := repo.GetDocuments(ctx, added[0].Id, core.ID(424242), added[1].Id)
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.CountDocuments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestAddDocumentsIsIdempotentForSameContent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddDocuments(ctx, &core.Document{Content: "duplicate me"})
	require.NoError(t, err)
	_, err = repo.AddDocuments(ctx, &core.Document{Content: "duplicate me"})
	require.NoError(t, err)

	count, err := repo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAddDocumentsValidates(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AddDocuments(context.Background(), &core.Document{Content: ""})
	assert.ErrorIs(t, err, core.ErrInvalidDocument)
}

func TestUpdateDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, &core.Document{Content: "original"})
	require.NoError(t, err)

	t.Run("updates vector", func(t *testing.T) {
		doc := added[0]
		doc.Vector = []float32{0.5, 0.5}
		_, err := repo.UpdateDocuments(ctx, doc)
		require.NoError(t, err)

		got, err := repo.GetDocument(ctx, doc.Id)
		require.NoError(t, err)
		assert.Equal(t, []float32{0.5, 0.5}, got.Vector)
	})

	t.Run("missing document", func(t *testing.T) {
		_, err := repo.UpdateDocuments(ctx, &core.Document{Id: 999999, Content: "ghost"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestDeleteDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, &core.Document{Content: "delete me"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteDocuments(ctx, added[0].Id))

	_, err = repo.GetDocument(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteDocuments(ctx, added[0].Id), storage.ErrNotFound)
}

func TestFindSimilar(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddDocuments(ctx,
		&core.Document{Content: "about AI", Vector: []float32{0.9, 0.1, 0}},
		&core.Document{Content: "about ML", Vector: []float32{0.85, 0.15, 0}},
		&core.Document{Content: "about cooking", Vector: []float32{0.05, 0.05, 0.95}},
		&core.Document{Content: "no vector yet"},
	)
	require.NoError(t, err)

	t.Run("finds matches above threshold in score order", func(t *testing.T) {
		results, err := repo.FindSimilar(ctx, []float32{0.88, 0.12, 0}, 0.60, 10)
		require.NoError(t, err)
		require.Len(t, results, 2)
		for i := 0; i < len(results)-1; i++ {
			assert.GreaterOrEqual(t, results[i].Score, results[i+1].Score)
		}
		for _, r := range results {
			assert.NotEqual(t, "about cooking", r.Document.Content)
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		results, err := repo.FindSimilar(ctx, []float32{0.88, 0.12, 0}, 0.60, 1)
		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, "about AI", results[0].Document.Content)
	})

	t.Run("no matches below threshold", func(t *testing.T) {
		results, err := repo.FindSimilar(ctx, []float32{0, 0, 1}, 0.9999, 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{1, 0}), 1e-6)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	assert.Zero(t, cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}))
	assert.Zero(t, cosineSimilarity([]float32{0, 0}, []float32{0, 0}))
}
