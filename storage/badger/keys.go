package badger

import (
	"fmt"

	"github.com/poiesic/answerit/core"
)

// Key prefixes for different data types
const (
	documentPrefix = "ansdoc"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// documentKeyPrefix returns the iteration prefix for all document records.
func documentKeyPrefix() []byte {
	return []byte(documentPrefix + ":")
}
