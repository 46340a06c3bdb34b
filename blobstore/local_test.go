package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_OpenRead(t *testing.T) {
	tmpDir := t.TempDir()
	data := []byte("id,name\n1,alpha\n2,beta\n")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "expected.csv"), data, 0o644))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	blob, err := store.Open(ctx, "expected.csv")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	got, err := io.ReadAll(blob)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestLocalStore_OpenTwiceIndependent(t *testing.T) {
	tmpDir := t.TempDir()
	data := []byte("a,b\n1,2\n")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "d.csv"), data, 0o644))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	b1, err := store.Open(ctx, "d.csv")
	require.NoError(t, err)
	defer b1.Close()

	// Partially consume the first handle, then open a second one; it must
	// start from the beginning.
	buf := make([]byte, 3)
	_, err = io.ReadFull(b1, buf)
	require.NoError(t, err)

	b2, err := store.Open(ctx, "d.csv")
	require.NoError(t, err)
	defer b2.Close()

	got, err := io.ReadAll(b2)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Open(context.Background(), "missing.csv")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStore_Put(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	data := []byte(`{"kept":1}`)
	require.NoError(t, store.Put(ctx, "reports/result.json", data))

	got, err := os.ReadFile(filepath.Join(tmpDir, "reports", "result.json"))
	require.NoError(t, err)
	require.Equal(t, data, got)
}
