package render

import (
	"encoding/base64"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// InlineCompatible reports whether fd is a terminal running iTerm2.
func InlineCompatible(fd int) bool {
	return os.Getenv("TERM_PROGRAM") == "iTerm.app" && term.IsTerminal(fd)
}

// WriteInlineImage writes img as an iTerm2 inline image followed by a newline.
// name is shown by iTerm2 when the image is saved.
func WriteInlineImage(w io.Writer, name string, img image.Image) error {
	header := "\x1b]1337;File=inline=1;preserveAspectRatio=1"
	if name != "" {
		header += ";name=" + base64.StdEncoding.EncodeToString([]byte(name))
	}
	header += ";width=" + strconv.Itoa(img.Bounds().Dx()) + "px:"
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	enc := base64.NewEncoder(base64.StdEncoding, w)
	if err := png.Encode(enc, img); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\x07\n")
	return err
}
