package blobstore

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore counts Open calls to verify spooling fetches once.
type countingStore struct {
	inner Store
	opens atomic.Int64
}

func (c *countingStore) Open(ctx context.Context, name string) (Blob, error) {
	c.opens.Add(1)
	return c.inner.Open(ctx, name)
}

func TestSpoolStore_FetchesOnce(t *testing.T) {
	ctx := context.Background()

	mem := NewMemoryStore()
	require.NoError(t, mem.Put(ctx, "expected.csv", []byte("id,v\n1,x\n")))

	counting := &countingStore{inner: mem}
	spool, err := NewSpoolStore(counting)
	require.NoError(t, err)
	defer spool.Close()

	for range 3 {
		blob, err := spool.Open(ctx, "expected.csv")
		require.NoError(t, err)

		got, err := io.ReadAll(blob)
		require.NoError(t, err)
		require.Equal(t, "id,v\n1,x\n", string(got))
		require.NoError(t, blob.Close())
	}

	assert.Equal(t, int64(1), counting.opens.Load())
}

func TestSpoolStore_Prefetch(t *testing.T) {
	ctx := context.Background()

	mem := NewMemoryStore()
	require.NoError(t, mem.Put(ctx, "expected.csv", []byte("a\n")))
	require.NoError(t, mem.Put(ctx, "actual.csv", []byte("b\n")))

	counting := &countingStore{inner: mem}
	spool, err := NewSpoolStore(counting)
	require.NoError(t, err)
	defer spool.Close()

	require.NoError(t, spool.Prefetch(ctx, "expected.csv", "actual.csv"))
	assert.Equal(t, int64(2), counting.opens.Load())

	// Opens after prefetch hit the staged copies.
	blob, err := spool.Open(ctx, "actual.csv")
	require.NoError(t, err)
	got, _ := io.ReadAll(blob)
	blob.Close()
	assert.Equal(t, "b\n", string(got))
	assert.Equal(t, int64(2), counting.opens.Load())
}

func TestSpoolStore_ConcurrentStageSameBlob(t *testing.T) {
	ctx := context.Background()

	mem := NewMemoryStore()
	require.NoError(t, mem.Put(ctx, "d.csv", []byte("x\n")))

	counting := &countingStore{inner: mem}
	spool, err := NewSpoolStore(counting)
	require.NoError(t, err)
	defer spool.Close()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			blob, err := spool.Open(ctx, "d.csv")
			assert.NoError(t, err)
			if err == nil {
				blob.Close()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), counting.opens.Load())
}

func TestSpoolStore_MissingBlob(t *testing.T) {
	spool, err := NewSpoolStore(NewMemoryStore())
	require.NoError(t, err)
	defer spool.Close()

	_, err = spool.Open(context.Background(), "missing.csv")
	require.ErrorIs(t, err, ErrNotFound)
}
