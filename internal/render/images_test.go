package render

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeImage fabrica un buffer con los bytes mágicos dados y relleno hasta n
func fakeImage(magic []byte, n int) []byte {
	data := make([]byte, n)
	copy(data, magic)
	return data
}

func TestDetectImageFormat(t *testing.T) {
	format, err := DetectImageFormat(fakeImage([]byte{0x89, 0x50, 0x4E, 0x47}, 16))
	require.NoError(t, err)
	assert.Equal(t, "PNG", format)

	format, err = DetectImageFormat(fakeImage([]byte{0xFF, 0xD8, 0xFF}, 16))
	require.NoError(t, err)
	assert.Equal(t, "JPG", format)

	_, err = DetectImageFormat([]byte("GIF89a"))
	assert.Error(t, err)
}

func TestNormalizePhotoRawBinary(t *testing.T) {
	raw := fakeImage([]byte{0x89, 0x50, 0x4E, 0x47}, 600)

	normalized, err := NormalizePhoto(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, normalized)
}

func TestNormalizePhotoPlainBase64(t *testing.T) {
	raw := fakeImage([]byte{0x89, 0x50, 0x4E, 0x47}, 600)
	encoded := base64.StdEncoding.EncodeToString(raw)

	normalized, err := NormalizePhoto([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, raw, normalized)
}

func TestNormalizePhotoDataURI(t *testing.T) {
	raw := fakeImage([]byte{0xFF, 0xD8, 0xFF}, 600)
	encoded := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	normalized, err := NormalizePhoto([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, raw, normalized)
}

func TestNormalizePhotoInvalid(t *testing.T) {
	_, err := NormalizePhoto(nil)
	assert.Error(t, err)

	_, err = NormalizePhoto([]byte("!!!esto no es base64!!!"))
	assert.Error(t, err)
}
