package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampQRCodeSize(t *testing.T) {
	require.Equal(t, DefaultQRCodeSizePx, ClampQRCodeSize(0))
	require.Equal(t, DefaultQRCodeSizePx, ClampQRCodeSize(-5))
	require.Equal(t, MinQRCodeSizePx, ClampQRCodeSize(10))
	require.Equal(t, MaxQRCodeSizePx, ClampQRCodeSize(5000))
	require.Equal(t, 300, ClampQRCodeSize(300))
}

func TestEncodeQRCodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeQRCodePNG(&buf, "http://localhost:5000/quiz?topic=Regression", 128))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 128, 128), img.Bounds())
}

func TestGenerateQRCodeImageEmptyPayload(t *testing.T) {
	_, err := GenerateQRCodeImage("", 0)
	require.Error(t, err)
}
