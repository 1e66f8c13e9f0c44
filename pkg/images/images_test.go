package images

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not-really-a-png"))

	name, raw, err := Decode(payload)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.Equal(t, []byte("not-really-a-png"), raw)
}

func TestDecode_UniqueNames(t *testing.T) {
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("x"))

	first, _, err := Decode(payload)
	require.NoError(t, err)
	second, _, err := Decode(payload)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDecode_InvalidPayload(t *testing.T) {
	_, _, err := Decode("no comma here")
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, _, err = Decode("data:image/png;base64,$$$not-base64$$$")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("bytes"))

	name, err := Store(dir, payload)
	require.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("bytes"), stored)
}
