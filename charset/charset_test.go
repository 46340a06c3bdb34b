package charset

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// errReader always fails, simulating an I/O problem during detection.
type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestDetect_UTF8(t *testing.T) {
	name, err := Detect(strings.NewReader("id,name\n1,Grüße aus Köln\n"))
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", name)
}

func TestDetect_UTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	encoded, err := enc.NewEncoder().Bytes([]byte("id,name\n1,alpha\n"))
	require.NoError(t, err)

	name, err := Detect(bytes.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, "UTF-16LE", name)
}

func TestLookup(t *testing.T) {
	enc, err := Lookup("windows-1252")
	require.NoError(t, err)
	assert.Equal(t, charmap.Windows1252, enc)

	// Case-insensitive.
	enc, err = Lookup("Shift_JIS")
	require.NoError(t, err)
	assert.NotNil(t, enc)

	_, err = Lookup("no-such-charset")
	require.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestResolve_OverrideWins(t *testing.T) {
	// The sample is valid UTF-8, but the override must take precedence.
	enc, name, err := Resolve(strings.NewReader("id,name\n"), "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", name)
	assert.Equal(t, charmap.Windows1252, enc)
}

func TestResolve_UnknownOverrideFails(t *testing.T) {
	_, _, err := Resolve(strings.NewReader("id\n"), "klingon-8")
	require.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestResolve_DetectionFailureFallsBack(t *testing.T) {
	enc, name, err := Resolve(errReader{}, "")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", name)
	assert.Equal(t, UTF8, enc)
}
