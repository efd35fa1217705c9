package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

// MinPhotoBytes es el tamaño mínimo de una foto decodificada; un buffer
// menor se considera corrupto y se omite
const MinPhotoBytes = 500

var (
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
)

// DetectImageFormat identifica el formato de una imagen por sus bytes
// mágicos. Retorna "PNG" o "JPG".
func DetectImageFormat(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return "PNG", nil
	case bytes.HasPrefix(data, jpegMagic):
		return "JPG", nil
	default:
		return "", fmt.Errorf("unrecognized image format")
	}
}

// NormalizePhoto lleva una foto almacenada a bytes de imagen crudos. Las
// fotos pueden venir como binario directo, como Base64 plano o como data-URI;
// a las cadenas sin prefijo se les antepone "data:image/png;base64," antes
// de decodificar.
func NormalizePhoto(photo []byte) ([]byte, error) {
	if len(photo) == 0 {
		return nil, fmt.Errorf("empty photo buffer")
	}

	// Binario directo: no hay nada que normalizar
	if _, err := DetectImageFormat(photo); err == nil {
		return photo, nil
	}

	encoded := strings.TrimSpace(string(photo))
	if !strings.HasPrefix(encoded, "data:image") {
		encoded = "data:image/png;base64," + encoded
	}

	parts := strings.SplitN(encoded, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed data URI")
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("error decoding base64 photo: %w", err)
	}

	return decoded, nil
}
