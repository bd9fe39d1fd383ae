package render

import (
	"errors"
	"image"
	"image/png"
	"io"

	"github.com/skip2/go-qrcode"
)

// QR code size bounds in pixels.
const (
	DefaultQRCodeSizePx = 256
	MinQRCodeSizePx     = 64
	MaxQRCodeSizePx     = 1024
)

// ClampQRCodeSize maps sizePx into the supported range; 0 selects the default.
func ClampQRCodeSize(sizePx int) int {
	switch {
	case sizePx <= 0:
		return DefaultQRCodeSizePx
	case sizePx < MinQRCodeSizePx:
		return MinQRCodeSizePx
	case sizePx > MaxQRCodeSizePx:
		return MaxQRCodeSizePx
	}
	return sizePx
}

// GenerateQRCodeImage returns a square QR code image for payload.
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, errors.New("qr payload must not be empty")
	}
	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return qrCode.Image(ClampQRCodeSize(sizePx)), nil
}

// EncodeQRCodePNG writes the QR code for payload to w as a PNG.
func EncodeQRCodePNG(w io.Writer, payload string, sizePx int) error {
	img, err := GenerateQRCodeImage(payload, sizePx)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
