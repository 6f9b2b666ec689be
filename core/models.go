package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Document IDs are generated from content via IDFromContent.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Source identifies the provenance of the evidence behind an answer.
type Source int

const (
	// SourceRAG means the answer was generated from locally indexed documents.
	SourceRAG Source = iota + 1
	// SourceWeb means the answer was generated from live web search results.
	SourceWeb
)

// String returns the short provenance label used in logs and CLI output.
func (s Source) String() string {
	switch s {
	case SourceRAG:
		return "RAG"
	case SourceWeb:
		return "WEB"
	default:
		return "UNKNOWN"
	}
}

// Document is a single evidence fragment. It may come from the local
// vector store or from a web search; Metadata records where.
// Only Content is ever read by the judgment chains.
type Document struct {
	Id         ID
	Content    string
	Metadata   map[string]string // Optional provenance (e.g. "source", "url", "title")
	Vector     []float32         // Embedding vector for semantic search (populated at ingestion)
	InsertedAt time.Time         // When the document was inserted into the store
	UpdatedAt  time.Time         // When the document was last updated
}

// ScoredDocument pairs a document with a similarity score from vector search.
type ScoredDocument struct {
	Document *Document
	Score    float32
}

// Common metadata keys written by evidence providers.
const (
	MetadataSource = "source"
	MetadataURL    = "url"
	MetadataTitle  = "title"
)
