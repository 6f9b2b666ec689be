package storage

import (
	"testing"
	"time"

	"github.com/poiesic/answerit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentSerializationRoundtrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	doc := &core.Document{
		Id:         core.IDFromContent("few-shot prompting primes the model with examples"),
		Content:    "few-shot prompting primes the model with examples",
		Metadata:   map[string]string{core.MetadataSource: "vectorstore"},
		Vector:     []float32{0.5, 0.25, -0.125},
		InsertedAt: now,
		UpdatedAt:  now,
	}

	decoded, err := UnmarshalDocument(MarshalDocument(doc))
	require.NoError(t, err)
	assert.Equal(t, doc.Id, decoded.Id)
	assert.Equal(t, doc.Content, decoded.Content)
	assert.Equal(t, doc.Metadata, decoded.Metadata)
	assert.Equal(t, doc.Vector, decoded.Vector)
	assert.True(t, doc.InsertedAt.Equal(decoded.InsertedAt))
}

func TestIDSerializationRoundtrip(t *testing.T) {
	id := core.IDFromContent("some content")
	decoded, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestUnmarshalDocumentMalformed(t *testing.T) {
	_, err := UnmarshalDocument([]byte{0x01, 0xff})
	assert.Error(t, err)
}
