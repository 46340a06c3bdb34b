package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	payload := map[string]any{
		"summary": map[string]int{"kept": 2, "modified": 1},
		"rows":    [][]string{{"1", "alpha"}, {"2", "beta"}},
	}

	std, err := JSON{}.Marshal(payload)
	require.NoError(t, err)

	fast, err := GoJSON{}.Marshal(payload)
	require.NoError(t, err)

	assert.JSONEq(t, string(std), string(fast))
}
