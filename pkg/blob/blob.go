// Package blob provides the key-addressed object storage capability the
// directory core is built on. Keys are path-like strings ("clientes/....json"),
// values are opaque byte blobs. The capability is deliberately minimal: no
// multi-key transactions, no conditional writes, no versioning. Anything built
// on top has to tolerate that.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound reports that no blob exists under the requested key.
var ErrNotFound = errors.New("blob: not found")

// Store is implemented by every storage driver (memory, fs, sqlite, redis).
type Store interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put unconditionally overwrites the blob under key.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes the blob under key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// List returns every key with the given prefix, in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)

	// Ping verifies the underlying storage is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
