package mascot

import "image/color"

// Palette maps semantic color names to opaque RGB colors.
// A Palette is immutable once built.
type Palette struct {
	colors map[string]color.RGBA
}

// NewPalette copies entries into a new Palette. Alpha is forced to 0xFF.
func NewPalette(entries map[string]color.RGBA) Palette {
	colors := make(map[string]color.RGBA, len(entries))
	for name, c := range entries {
		c.A = 0xFF
		colors[name] = c
	}
	return Palette{colors: colors}
}

// Color returns the named color.
func (p Palette) Color(name string) (color.RGBA, bool) {
	c, ok := p.colors[name]
	return c, ok
}

// Len returns the number of named colors.
func (p Palette) Len() int { return len(p.colors) }

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

var defaultPalette = NewPalette(map[string]color.RGBA{
	"rocket_body":   rgb(210, 210, 215),
	"rocket_shadow": rgb(150, 150, 155),
	"window":        rgb(173, 216, 230),
	"window_shine":  rgb(255, 255, 255),
	"alien":         rgb(118, 204, 118),
	"flame_yellow":  rgb(255, 224, 102),
	"flame_orange":  rgb(255, 153, 51),
	"explosion_1":   rgb(255, 159, 0),
	"explosion_2":   rgb(255, 107, 0),
	"explosion_3":   rgb(255, 64, 0),
	"debris_light":  rgb(180, 180, 180),
	"debris_dark":   rgb(120, 120, 120),
	"black":         rgb(0, 0, 0),
})

// DefaultPalette returns the rocket mascot palette.
func DefaultPalette() Palette { return defaultPalette }

// NoColor marks a character that is explicitly transparent.
const NoColor = ""

// ColorMap resolves grid characters to palette colors.
// Characters missing from the map, or mapped to NoColor, are transparent.
type ColorMap struct {
	palette Palette
	names   map[rune]string
}

// NewColorMap builds a ColorMap over palette. The entries map is copied.
func NewColorMap(palette Palette, entries map[rune]string) ColorMap {
	names := make(map[rune]string, len(entries))
	for ch, name := range entries {
		names[ch] = name
	}
	return ColorMap{palette: palette, names: names}
}

// Resolve returns the color for ch, or false when ch is transparent.
func (m ColorMap) Resolve(ch rune) (color.RGBA, bool) {
	name, ok := m.names[ch]
	if !ok || name == NoColor {
		return color.RGBA{}, false
	}
	return m.palette.Color(name)
}

var defaultColorMap = NewColorMap(defaultPalette, map[rune]string{
	' ':  NoColor,
	'.':  "rocket_body",
	'A':  "rocket_body",
	'R':  "rocket_body",
	'S':  "rocket_shadow",
	'|':  "rocket_shadow",
	'/':  "rocket_shadow",
	'\\': "rocket_shadow",
	'w':  "window_shine",
	's':  "window",
	'a':  "alien",
	'^':  "alien",
	'f':  "flame_yellow",
	'F':  "flame_orange",
	'(':  "flame_orange",
	')':  "flame_orange",
	'o':  "explosion_1",
	'O':  "explosion_2",
	'0':  "explosion_3",
	'c':  "debris_light",
	'C':  "debris_dark",
})

// DefaultColorMap returns the character table used by the rocket frames.
func DefaultColorMap() ColorMap { return defaultColorMap }
