package websearch

import (
	"context"

	"github.com/poiesic/answerit/core"
)

// Client searches the live web for evidence documents.
// Implementations must be thread-safe for concurrent use.
type Client interface {
	// Search runs the query and returns up to maxResults documents.
	// Each returned document carries a traceable source identifier in
	// its metadata. An empty result set is not an error.
	Search(ctx context.Context, query string, maxResults int) ([]*core.Document, error)
}
