// Package report persists finished comparison results.
//
// A Writer serializes the result payload with a pluggable codec, optionally
// compresses it, and writes it either into a local directory (created on
// demand) or to a blobstore.WriteStore such as an S3 bucket.
package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hupe1980/csvdiff/blobstore"
	"github.com/hupe1980/csvdiff/codec"
)

// Writer serializes comparison results to a configured location.
// A Writer is reusable across runs; each Write produces one artifact.
type Writer struct {
	dir         string
	store       blobstore.WriteStore
	codec       codec.Codec
	compression string
	basename    string
}

// Option configures a Writer.
type Option func(*Writer)

// WithCodec selects the serialization codec. Default: codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(w *Writer) {
		if c == nil {
			c = codec.Default
		}
		w.codec = c
	}
}

// WithCompression selects a compression scheme by name: "gzip", "zstd",
// "lz4", or "" for none. The matching extension is appended to the
// artifact name.
func WithCompression(name string) Option {
	return func(w *Writer) {
		w.compression = name
	}
}

// WithBasename sets the artifact name without extension. Default: "result".
func WithBasename(name string) Option {
	return func(w *Writer) {
		w.basename = name
	}
}

// WithStore redirects output to a blob store instead of the local directory.
func WithStore(store blobstore.WriteStore) Option {
	return func(w *Writer) {
		w.store = store
	}
}

// NewWriter creates a Writer targeting the given directory. The directory is
// created on first Write if it does not exist. dir is ignored when
// WithStore is used.
func NewWriter(dir string, optFns ...Option) *Writer {
	w := &Writer{
		dir:      dir,
		codec:    codec.Default,
		basename: "result",
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(w)
		}
	}
	return w
}

// Write serializes v and persists it. It returns the destination: a file
// path for directory output, or the blob name for store output.
func (w *Writer) Write(ctx context.Context, v any) (string, error) {
	comp, ext, ok := compressorByName(w.compression)
	if !ok {
		return "", fmt.Errorf("unknown compression %q", w.compression)
	}

	data, err := w.codec.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	if comp != nil {
		var buf bytes.Buffer
		wc, err := comp(&buf)
		if err != nil {
			return "", err
		}
		if _, err := wc.Write(data); err != nil {
			wc.Close()
			return "", err
		}
		if err := wc.Close(); err != nil {
			return "", err
		}
		data = buf.Bytes()
	}

	name := w.basename + ".json" + ext

	if w.store != nil {
		if err := w.store.Put(ctx, name, data); err != nil {
			return "", fmt.Errorf("put report: %w", err)
		}
		return name, nil
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
