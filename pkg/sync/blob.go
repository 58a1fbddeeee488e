// Package sync reconciles the local journal against a remote copy kept as a
// single JSON document in an opaque blob store.
package sync

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Blob when the key has never been written.
// A missing remote document is not an error condition for sync: it means the
// remote has no data yet.
var ErrNotFound = errors.New("sync: blob not found")

// Blob is the opaque key-value store the remote side is accessed through.
// Implementations map their own missing-key signal to ErrNotFound.
type Blob interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
