package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentMUSRoundtrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	doc := Document{
		Id:      IDFromContent("agents can use scratchpads as working memory"),
		Content: "agents can use scratchpads as working memory",
		Metadata: map[string]string{
			MetadataSource: "tavily",
			MetadataURL:    "https://example.com/agents",
		},
		Vector:     []float32{0.25, -1.5, 0, 3.125},
		InsertedAt: now,
		UpdatedAt:  now,
	}

	bs := make([]byte, DocumentMUS.Size(doc))
	n := DocumentMUS.Marshal(doc, bs)
	assert.Equal(t, len(bs), n)

	decoded, n, err := DocumentMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), n)
	assert.Equal(t, doc.Id, decoded.Id)
	assert.Equal(t, doc.Content, decoded.Content)
	assert.Equal(t, doc.Metadata, decoded.Metadata)
	assert.Equal(t, doc.Vector, decoded.Vector)
	assert.True(t, doc.InsertedAt.Equal(decoded.InsertedAt))
	assert.True(t, doc.UpdatedAt.Equal(decoded.UpdatedAt))
}

func TestDocumentMUSUnmarshalTruncated(t *testing.T) {
	doc := Document{
		Id:         1,
		Content:    "truncate me",
		InsertedAt: time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	bs := make([]byte, DocumentMUS.Size(doc))
	DocumentMUS.Marshal(doc, bs)

	_, _, err := DocumentMUS.Unmarshal(bs[:3])
	assert.Error(t, err)
}
