package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/mathexam/mathexam/internal/mascot"
	"github.com/mathexam/mathexam/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	defaultSheetColumns     = 4
	defaultSheetPadding     = 8
	defaultSheetLabelHeight = 24
	sheetLabelSize          = 14
)

// Sheet lays out every frame of a set in a labelled grid, for eyeballing
// the whole mascot at once.
type Sheet struct {
	Raster      Rasterizer
	Scale       int
	Columns     int
	Padding     int
	LabelHeight int
	// Face draws the labels; when nil a TrueType Go Regular face is used,
	// falling back to basicfont.
	Face   font.Face
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func (s Sheet) withDefaults() Sheet {
	out := s
	if out.Scale < 1 {
		out.Scale = MiniScale
	}
	if out.Columns < 1 {
		out.Columns = defaultSheetColumns
	}
	if out.Padding <= 0 {
		out.Padding = defaultSheetPadding
	}
	if out.LabelHeight <= 0 {
		out.LabelHeight = defaultSheetLabelHeight
	}
	if out.Face == nil {
		out.Face = s.labelFace()
	}
	return out
}

func (s Sheet) labelFace() font.Face {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Errorf("sheet", "truetype parse failed, using basicfont: %v", err)
		}
		return basicfont.Face7x13
	}
	return truetype.NewFace(tt, &truetype.Options{Size: sheetLabelSize, DPI: 72, Hinting: font.HintingFull})
}

// Image composes the sheet for frames.
func (s Sheet) Image(frames mascot.FrameSet) (*image.RGBA, error) {
	s = s.withDefaults()
	cw, ch := s.Raster.canvas()
	frameW := cw * s.Scale
	frameH := ch * s.Scale
	grid := layout.NewGrid(frames.Len(), s.Columns, frameW+2*s.Padding, frameH+2*s.Padding+s.LabelHeight)

	sheet := image.NewRGBA(grid.Bounds())
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{C: SheetBackground}, image.Point{}, draw.Src)

	for i, name := range frames.Names() {
		frame, _ := frames.Frame(name)
		img, err := s.Raster.Image(frame, s.Scale)
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", name, err)
		}
		art, label := layout.SplitHorizontal(grid.Cell(i), frameH+2*s.Padding)
		dst := layout.CenterIn(layout.Inset(art, s.Padding), frameW, frameH)
		draw.Draw(sheet, dst, img, img.Bounds().Min, draw.Over)
		drawLabel(sheet, label, name, SheetForeground, s.Face)
	}
	if s.Logger != nil {
		s.Logger.Infof("sheet", "composed %d frames into %dx%d sheet", frames.Len(), sheet.Bounds().Dx(), sheet.Bounds().Dy())
	}
	return sheet, nil
}

// Render writes the sheet as a PNG to outputPath.
func (s Sheet) Render(frames mascot.FrameSet, outputPath string) error {
	img, err := s.Image(frames)
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

// drawLabel centers text in rect on both axes.
func drawLabel(dst draw.Image, rect image.Rectangle, text string, fg color.Color, face font.Face) {
	drawer := &font.Drawer{Dst: dst, Src: &image.Uniform{C: fg}, Face: face}
	metrics := face.Metrics()
	textWidth := drawer.MeasureString(text).Ceil()
	xPos := rect.Min.X + (rect.Dx()-textWidth)/2
	baseline := rect.Min.Y + (rect.Dy()+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	drawer.Dot = fixed.P(xPos, baseline)
	drawer.DrawString(text)
}
