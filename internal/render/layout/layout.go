package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > height {
		topHeightPx = height
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// Grid describes count equally sized cells filled row by row.
type Grid struct {
	Columns int
	Rows    int
	CellW   int
	CellH   int
}

// NewGrid sizes a grid holding count cells of cellW x cellH with at most
// columns cells per row. columns below 1 is treated as 1.
func NewGrid(count, columns, cellW, cellH int) Grid {
	if columns < 1 {
		columns = 1
	}
	if count < 0 {
		count = 0
	}
	if count < columns {
		columns = count
	}
	rows := 0
	if columns > 0 {
		rows = (count + columns - 1) / columns
	}
	return Grid{Columns: columns, Rows: rows, CellW: cellW, CellH: cellH}
}

// Bounds returns the rectangle covering the whole grid, anchored at the origin.
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Columns*g.CellW, g.Rows*g.CellH)
}

// Cell returns the rectangle of the i-th cell.
func (g Grid) Cell(i int) image.Rectangle {
	if g.Columns < 1 {
		return image.Rectangle{}
	}
	col := i % g.Columns
	row := i / g.Columns
	x := col * g.CellW
	y := row * g.CellH
	return image.Rect(x, y, x+g.CellW, y+g.CellH)
}

// CenterIn returns a rectangle of size (widthPx,heightPx) centered in rect.
func CenterIn(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// FitScale returns the largest integer factor that fits (w,h) into rect.
// It never returns less than 1.
func FitScale(rect image.Rectangle, w, h int) int {
	if w <= 0 || h <= 0 {
		return 1
	}
	rect = Normalize(rect)
	sx := rect.Dx() / w
	sy := rect.Dy() / h
	s := sx
	if sy < s {
		s = sy
	}
	if s < 1 {
		s = 1
	}
	return s
}
