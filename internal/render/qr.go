package render

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// qrSize es el lado en píxeles del PNG generado
const qrSize = 256

// EncodeRecordQR codifica el identificador de un registro, y nada más, como
// un código QR en PNG
func EncodeRecordQR(id string) ([]byte, error) {
	png, err := qrcode.Encode(id, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("error encoding QR code: %w", err)
	}
	return png, nil
}
