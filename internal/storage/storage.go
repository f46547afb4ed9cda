// Package storage defines the key-value store that holds the serialized
// project collection.
//
// The store is read-only from the page's point of view. Put exists so the seed
// command can populate a backend.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is a synchronous key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
