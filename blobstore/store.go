package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for accessing immutable source datasets.
type Store interface {
	// Open opens a blob for sequential reading. Every call returns an
	// independent reader positioned at the start of the blob.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only sequential handle to one dataset.
type Blob interface {
	io.ReadCloser
	// Size returns the size of the blob in bytes.
	Size() int64
}

// WriteStore is an optional interface for stores that can persist blobs.
// Report sinks use it to upload serialized results.
type WriteStore interface {
	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error
}

// Prefetcher is an optional interface for stores that can stage blobs ahead
// of use. The engine prefetches the source pair before a run when the store
// supports it.
type Prefetcher interface {
	Prefetch(ctx context.Context, names ...string) error
}
