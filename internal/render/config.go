package render

import "image/color"

// Logical canvas shared by every mascot frame, in cells.
const (
	CanvasWidth  = 15
	CanvasHeight = 14
)

// Physical pixels per cell.
const (
	DefaultScale = 20
	MiniScale    = 5
)

// Preview sheet colors.
var (
	SheetBackground = color.RGBA{R: 0xF4, G: 0xF6, B: 0xFB, A: 0xFF}
	SheetForeground = color.RGBA{R: 0x1F, G: 0x2A, B: 0x44, A: 0xFF}
)
