package repository

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by BlobStore.Get when the key is absent.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is the key-value persistence behind the offline mirror. Values are opaque
// JSON documents grouped into logical tables.
type BlobStore interface {
	Get(ctx context.Context, table, key string) ([]byte, error)
	Put(ctx context.Context, table, key string, data []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, table, key string) error
	// List returns every value of the table keyed by its key.
	List(ctx context.Context, table string) (map[string][]byte, error)
}
