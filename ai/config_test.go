package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.ChatHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.NotEmpty(t, cfg.ChatModel)
	assert.NotEmpty(t, cfg.EmbeddingModel)
	assert.Zero(t, cfg.Temperature)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	t.Run("applies options", func(t *testing.T) {
		cfg := NewConfig(
			WithChatHost("http://chat:9100/v1"),
			WithEmbeddingHost("http://embed:9200/v1"),
			WithChatModel("gpt-4o-mini"),
			WithEmbeddingModel("text-embedding-3-small"),
			WithTemperature(0.5),
		)
		assert.Equal(t, "http://chat:9100/v1", cfg.ChatHost)
		assert.Equal(t, "http://embed:9200/v1", cfg.EmbeddingHost)
		assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
		assert.Equal(t, 0.5, cfg.Temperature)
	})

	t.Run("WithHost sets both hosts", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:8080/v1"))
		assert.Equal(t, "http://localhost:8080/v1", cfg.ChatHost)
		assert.Equal(t, "http://localhost:8080/v1", cfg.EmbeddingHost)
	})
}

func TestConfigNormalize(t *testing.T) {
	t.Run("adds v1 suffix", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.ChatHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("strips trailing slash before adding suffix", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.ChatHost)
	})

	t.Run("leaves existing v1 alone", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/v1"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.ChatHost)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty chat host", func(c *Config) { c.ChatHost = "" }},
		{"empty embedding host", func(c *Config) { c.EmbeddingHost = "" }},
		{"empty chat model", func(c *Config) { c.ChatModel = "" }},
		{"empty embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"negative temperature", func(c *Config) { c.Temperature = -0.1 }},
		{"temperature too high", func(c *Config) { c.Temperature = 2.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	t.Run("validate normalizes hosts", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:11434/v1", cfg.ChatHost)
	})
}
