package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid document", func(t *testing.T) {
		doc := &Document{
			Content:    "Prompt engineering shapes model behavior.",
			InsertedAt: now,
			UpdatedAt:  now,
		}
		assert.NoError(t, ValidateDocument(doc))
	})

	t.Run("valid before storage", func(t *testing.T) {
		// Zero ID and zero timestamps are fine until the store fills them in.
		doc := &Document{Content: "unstored"}
		assert.NoError(t, ValidateDocument(doc))
	})

	t.Run("nil document", func(t *testing.T) {
		err := ValidateDocument(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("empty content", func(t *testing.T) {
		err := ValidateDocument(&Document{InsertedAt: now})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDocument)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("future timestamp", func(t *testing.T) {
		doc := &Document{
			Content:    "from the future",
			InsertedAt: now.Add(24 * time.Hour),
		}
		err := ValidateDocument(doc)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTimestamp)
	})
}

func TestValidateQuestion(t *testing.T) {
	assert.NoError(t, ValidateQuestion("What is agent memory?"))
	assert.ErrorIs(t, ValidateQuestion(""), ErrEmptyQuestion)
	assert.ErrorIs(t, ValidateQuestion("   \t\n"), ErrEmptyQuestion)
}
