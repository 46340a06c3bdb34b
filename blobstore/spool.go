package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SpoolStore wraps a Store and stages each blob to a local temp file on
// first open. Subsequent opens of the same blob read the staged copy, so a
// remote object is fetched once no matter how many passes the engine makes
// over it.
//
// Call Close when done to remove the staged files.
type SpoolStore struct {
	inner Store
	dir   string

	mu      sync.Mutex
	entries map[string]*spoolEntry
	seq     int
}

type spoolEntry struct {
	once sync.Once
	path string
	err  error
}

// NewSpoolStore creates a SpoolStore staging into a fresh temp directory.
func NewSpoolStore(inner Store) (*SpoolStore, error) {
	dir, err := os.MkdirTemp("", "csvdiff-spool-*")
	if err != nil {
		return nil, err
	}
	return &SpoolStore{
		inner:   inner,
		dir:     dir,
		entries: make(map[string]*spoolEntry),
	}, nil
}

// Prefetch stages the given blobs concurrently. The engine calls this with
// the source pair before a run so both fetches overlap.
func (s *SpoolStore) Prefetch(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			_, err := s.stage(ctx, name)
			return err
		})
	}
	return g.Wait()
}

// Open opens the staged copy of a blob, staging it first if needed.
func (s *SpoolStore) Open(ctx context.Context, name string) (Blob, error) {
	path, err := s.stage(ctx, name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileBlob{f: f, size: fi.Size()}, nil
}

// Close removes all staged files.
func (s *SpoolStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*spoolEntry)
	return os.RemoveAll(s.dir)
}

func (s *SpoolStore) stage(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	e, ok := s.entries[name]
	if !ok {
		s.seq++
		e = &spoolEntry{path: filepath.Join(s.dir, fmt.Sprintf("blob-%04d%s", s.seq, filepath.Ext(name)))}
		s.entries[name] = e
	}
	s.mu.Unlock()

	e.once.Do(func() {
		e.err = s.fetch(ctx, name, e.path)
	})
	return e.path, e.err
}

func (s *SpoolStore) fetch(ctx context.Context, name, path string) error {
	blob, err := s.inner.Open(ctx, name)
	if err != nil {
		return err
	}
	defer blob.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, blob); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

type fileBlob struct {
	f    *os.File
	size int64
}

func (b *fileBlob) Read(p []byte) (int, error) {
	return b.f.Read(p)
}

func (b *fileBlob) Close() error {
	return b.f.Close()
}

func (b *fileBlob) Size() int64 {
	return b.size
}
