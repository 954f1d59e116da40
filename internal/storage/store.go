package storage

import "context"

// DocumentStore persists the whole Document as one unit.
//
// Implementations serialize every call with a single lock, so an Update
// cycle is atomic with respect to any other call on the same store.
type DocumentStore interface {
	// Load returns the stored document, or an empty one if nothing was stored yet.
	Load(ctx context.Context) (*Document, error)
	// Replace overwrites the stored document.
	Replace(ctx context.Context, doc *Document) error
	// Update loads the document, applies fn and stores the result, all under
	// the store lock. Nothing is written when fn returns an error.
	Update(ctx context.Context, fn func(doc *Document) error) error
	// Close releases backend resources.
	Close() error
}
