package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/mathexam/mathexam/internal/mascot"
	xdraw "golang.org/x/image/draw"
)

// ErrInvalidScale is returned for a scale below 1.
var ErrInvalidScale = errors.New("scale must be a positive integer")

// Rasterizer turns frames into RGBA images on a fixed logical canvas.
// Cells outside the canvas are clipped; cells the frame does not cover are
// transparent.
type Rasterizer struct {
	Colors mascot.ColorMap
	Width  int
	Height int
}

// NewRasterizer returns a rasterizer on the default canvas.
func NewRasterizer(colors mascot.ColorMap) Rasterizer {
	return Rasterizer{Colors: colors, Width: CanvasWidth, Height: CanvasHeight}
}

func (r Rasterizer) canvas() (int, int) {
	w, h := r.Width, r.Height
	if w <= 0 {
		w = CanvasWidth
	}
	if h <= 0 {
		h = CanvasHeight
	}
	return w, h
}

// Cells renders frame at one pixel per cell.
func (r Rasterizer) Cells(frame mascot.Frame) *image.RGBA {
	w, h := r.canvas()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c, ok := r.Colors.Resolve(frame.At(x, y)); ok {
				c.A = 0xFF
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

// Image renders frame with every cell expanded to a scale x scale block.
func (r Rasterizer) Image(frame mascot.Frame, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidScale, scale)
	}
	cells := r.Cells(frame)
	if scale == 1 {
		return cells, nil
	}
	w, h := r.canvas()
	out := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	// Integer upscaling with nearest neighbour maps each destination pixel
	// back to exactly one cell.
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), cells, cells.Bounds(), xdraw.Src, nil)
	return out, nil
}

// Encode writes frame as a PNG with alpha to w.
func (r Rasterizer) Encode(w io.Writer, frame mascot.Frame, scale int) error {
	img, err := r.Image(frame, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Render writes frame as a PNG to outputPath, creating or truncating it.
// The parent directory must already exist.
func (r Rasterizer) Render(frame mascot.Frame, outputPath string, scale int) error {
	img, err := r.Image(frame, scale)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", outputPath, err)
	}
	return f.Close()
}
