package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/mathexam/mathexam/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

const (
	defaultFBDevice   = "/dev/fb0"
	defaultFBInterval = 500 * time.Millisecond
)

// Display is the subset of a framebuffer the preview draws into.
type Display interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
	Close() error
}

// FBPreview plays mascot frames on a Linux framebuffer.
type FBPreview struct {
	Device     string
	Interval   time.Duration
	Background color.RGBA
	Logger     interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	// Open replaces the framebuffer opener, mainly for tests.
	Open func(device string) (Display, error)
}

type fbDisplay struct{ dev *fb.Device }

func (d fbDisplay) Bounds() image.Rectangle     { return d.dev.Bounds() }
func (d fbDisplay) Set(x, y int, c color.Color) { d.dev.Set(x, y, c) }
func (d fbDisplay) Close() error {
	d.dev.Close()
	return nil
}

func openFramebuffer(device string) (Display, error) {
	dev, err := fb.Open(device)
	if err != nil {
		return nil, err
	}
	return fbDisplay{dev: dev}, nil
}

// Play cycles through frames until ctx is done or loops full passes have
// been shown. loops <= 0 plays until ctx is done.
func (p FBPreview) Play(ctx context.Context, frames []image.Image, loops int) error {
	if len(frames) == 0 {
		return errors.New("no frames to preview")
	}
	device := p.Device
	if device == "" {
		device = defaultFBDevice
	}
	interval := p.Interval
	if interval <= 0 {
		interval = defaultFBInterval
	}
	open := p.Open
	if open == nil {
		open = openFramebuffer
	}

	display, err := open(device)
	if err != nil {
		return err
	}
	defer func() { _ = display.Close() }()
	bounds := display.Bounds()
	if p.Logger != nil {
		p.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}

	canvases := make([]*image.RGBA, len(frames))
	for i, img := range frames {
		canvases[i] = fitFrame(bounds, img, p.Background)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for pass := 0; loops <= 0 || pass < loops; pass++ {
		for _, canvas := range canvases {
			blit(display, canvas)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	}
	return nil
}

// fitFrame centers img in a canvas the size of bounds, upscaled by the
// largest whole factor that fits so cells stay square.
func fitFrame(bounds image.Rectangle, img image.Image, bg color.RGBA) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if bg.A == 0 {
		bg = color.RGBA{A: 0xFF}
	}
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	src := img.Bounds()
	scale := layout.FitScale(canvas.Bounds(), src.Dx(), src.Dy())
	dst := layout.CenterIn(canvas.Bounds(), src.Dx()*scale, src.Dy()*scale)
	xdraw.NearestNeighbor.Scale(canvas, dst, img, src, xdraw.Over, nil)
	return canvas
}

// blit copies canvas onto the display pixel by pixel.
func blit(dst Display, canvas *image.RGBA) {
	bounds := dst.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pixel := canvas.RGBAAt(x, y)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
