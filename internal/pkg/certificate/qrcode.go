package certificate

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// qrCodeSize is the pixel width/height of the generated QR image. 200 px
// scans reliably at the size certificates are usually printed.
const qrCodeSize = 200

// QRCodeDataURI encodes the validation URL as a PNG QR code and returns it
// as a data URI usable directly in an <img src> attribute, so the rendered
// document has no external resources to fetch.
func QRCodeDataURI(validationURL string) (string, error) {
	png, err := qrcode.Encode(validationURL, qrcode.Medium, qrCodeSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
