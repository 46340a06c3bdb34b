package report

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/csvdiff/blobstore"
	"github.com/hupe1980/csvdiff/codec"
)

type payload struct {
	Expected string     `json:"expected"`
	Actual   string     `json:"actual"`
	Kept     [][]string `json:"rowsKept"`
}

func testPayload() payload {
	return payload{
		Expected: "expected.csv",
		Actual:   "actual.csv",
		Kept:     [][]string{{"1", "alpha"}},
	}
}

func TestWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	w := NewWriter(dir)

	dest, err := w.Write(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "result.json"), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var got payload
	require.NoError(t, codec.Default.Unmarshal(data, &got))
	assert.Equal(t, testPayload(), got)
}

func TestWriter_StdlibCodec(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, WithCodec(codec.JSON{}), WithBasename("drift"))

	dest, err := w.Write(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "drift.json"), dest)
}

func TestWriter_Compression(t *testing.T) {
	decompress := map[string]func(r io.Reader) (io.Reader, error){
		"gzip": func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) },
		"zstd": func(r io.Reader) (io.Reader, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		},
		"lz4": func(r io.Reader) (io.Reader, error) { return lz4.NewReader(r), nil },
	}
	exts := map[string]string{"gzip": ".gz", "zstd": ".zst", "lz4": ".lz4"}

	for name, open := range decompress {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			w := NewWriter(dir, WithCompression(name))

			dest, err := w.Write(context.Background(), testPayload())
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "result.json"+exts[name]), dest)

			raw, err := os.ReadFile(dest)
			require.NoError(t, err)

			r, err := open(bytes.NewReader(raw))
			require.NoError(t, err)
			data, err := io.ReadAll(r)
			require.NoError(t, err)

			var got payload
			require.NoError(t, codec.Default.Unmarshal(data, &got))
			assert.Equal(t, testPayload(), got)
		})
	}
}

func TestWriter_UnknownCompression(t *testing.T) {
	w := NewWriter(t.TempDir(), WithCompression("brotli"))

	_, err := w.Write(context.Background(), testPayload())
	require.Error(t, err)
}

func TestWriter_StoreSink(t *testing.T) {
	store := blobstore.NewMemoryStore()
	w := NewWriter("", WithStore(store), WithBasename("run-42"))

	ctx := context.Background()
	dest, err := w.Write(ctx, testPayload())
	require.NoError(t, err)
	assert.Equal(t, "run-42.json", dest)

	blob, err := store.Open(ctx, "run-42.json")
	require.NoError(t, err)
	defer blob.Close()

	data, err := io.ReadAll(blob)
	require.NoError(t, err)

	var got payload
	require.NoError(t, codec.Default.Unmarshal(data, &got))
	assert.Equal(t, testPayload(), got)
}
