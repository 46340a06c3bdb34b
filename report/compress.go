package report

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// compressorFactory wraps a destination writer with a compressing writer.
type compressorFactory func(w io.Writer) (io.WriteCloser, error)

// compressorByName resolves a compression scheme to its factory and file
// extension. A nil factory with ok=true means no compression.
func compressorByName(name string) (compressorFactory, string, bool) {
	switch name {
	case "":
		return nil, "", true
	case "gzip":
		return func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriter(w), nil
		}, ".gz", true
	case "zstd":
		return func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w)
		}, ".zst", true
	case "lz4":
		return func(w io.Writer) (io.WriteCloser, error) {
			return lz4.NewWriter(w), nil
		}, ".lz4", true
	default:
		return nil, "", false
	}
}
