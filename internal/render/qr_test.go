package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRecordQR(t *testing.T) {
	png, err := EncodeRecordQR("5f2b9c2e-8a43-4f6e-9f3e-1c2d3e4f5a6b")
	require.NoError(t, err)

	format, err := DetectImageFormat(png)
	require.NoError(t, err)
	assert.Equal(t, "PNG", format)

	// Misma entrada, misma imagen
	again, err := EncodeRecordQR("5f2b9c2e-8a43-4f6e-9f3e-1c2d3e4f5a6b")
	require.NoError(t, err)
	assert.Equal(t, png, again)
}
