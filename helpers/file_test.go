package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURIRoundTrip(t *testing.T) {
	uri := DataURI("image/png", []byte{0x89, 'P', 'N', 'G'})
	assert.Equal(t, "data:image/png;base64,iVBORw==", uri)

	mimeType, data, err := ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
}

func TestParseDataURIRejectsMalformed(t *testing.T) {
	for _, uri := range []string{
		"",
		"https://example.com/a.png",
		"data:image/png,AAAA",
		"data:;base64,AAAA",
		"data:image/png;base64",
		"data:image/png;base64,***",
	} {
		_, _, err := ParseDataURI(uri)
		assert.ErrorIs(t, err, ErrInvalidDataURI, uri)
	}
}

func TestSaveDataURI(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	path, err := SaveDataURI(DataURI("image/jpeg", []byte("jpeg-bytes")), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".jpg", filepath.Ext(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(got))
}

func TestGetFileExtension(t *testing.T) {
	assert.Equal(t, ".png", getFileExtension("image/png"))
	assert.Equal(t, ".webp", getFileExtension("image/webp"))
	assert.Equal(t, ".x-icon", getFileExtension("image/x-icon"))
	assert.Equal(t, ".bin", getFileExtension("garbage"))
}
