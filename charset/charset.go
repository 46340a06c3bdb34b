// Package charset resolves the character encoding of a CSV source.
//
// A caller-supplied override always wins. Without one, the encoding is
// auto-detected from a sample of the file's bytes; if detection is not
// possible the resolver falls back to UTF-8 rather than failing the run.
package charset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// sampleSize bounds how much of a source is read for detection.
const sampleSize = 64 * 1024

// ErrUnknownEncoding indicates that an encoding name could not be resolved
// to a decoder.
var ErrUnknownEncoding = errors.New("unknown encoding")

// UTF8 is the fallback encoding used when detection fails.
var UTF8 = unicode.UTF8

// Detect inspects up to 64KB of r and returns the detected IANA charset
// name. It returns an error when the sample cannot be read or no charset
// scores a confident match.
func Detect(r io.Reader) (string, error) {
	sample, err := io.ReadAll(io.LimitReader(r, sampleSize))
	if err != nil {
		return "", err
	}

	best, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return "", err
	}
	return best.Charset, nil
}

// Lookup resolves an IANA charset name (case-insensitive) to an encoding.
func Lookup(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.ToLower(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Resolve returns the encoding to use for a source whose bytes can be
// sampled from r.
//
// A non-empty override is resolved by name; an unknown override is a
// configuration error. With no override the encoding is detected from r;
// any detection failure falls back to UTF-8 without error.
func Resolve(r io.Reader, override string) (encoding.Encoding, string, error) {
	if override != "" {
		enc, err := Lookup(override)
		if err != nil {
			return nil, "", err
		}
		return enc, override, nil
	}

	name, err := Detect(r)
	if err != nil {
		return UTF8, "utf-8", nil
	}
	enc, err := Lookup(name)
	if err != nil {
		// Detector names outside the WHATWG index (e.g. UTF-32 variants).
		return UTF8, "utf-8", nil
	}
	return enc, name, nil
}
