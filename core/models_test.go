package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("agent memory is short term and long term")
		id2 := IDFromContent("agent memory is short term and long term")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content yields different ids", func(t *testing.T) {
		id1 := IDFromContent("chain of thought prompting")
		id2 := IDFromContent("adversarial attacks")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content is hashable", func(t *testing.T) {
		// Empty documents are rejected by validation, but hashing must not panic.
		assert.NotPanics(t, func() { IDFromContent("") })
	})
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "RAG", SourceRAG.String())
	assert.Equal(t, "WEB", SourceWeb.String())
	assert.Equal(t, "UNKNOWN", Source(0).String())
}
