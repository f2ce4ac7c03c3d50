package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/smasonuk/cubeworld"
)

var (
	SkyColor    = colornames.Skyblue
	ScopeColor  = colornames.Royalblue
	MenuColor   = colornames.Saddlebrown
	OutlineGrey = colornames.Grey
	Black       = colornames.Black
	White       = colornames.White
)

// Palette maps material tags to fill colours.
type Palette map[cubeworld.Material]color.RGBA

func DefaultPalette() Palette {
	return Palette{
		'R': {0xe5, 0x00, 0x00, 0xff}, // red
		'O': {0xff, 0x8d, 0x00, 0xff}, // orange
		'Y': {0xff, 0xee, 0x00, 0xff}, // yellow
		'G': {0x02, 0x81, 0x21, 0xff}, // green
		'B': {0x00, 0x4c, 0xff, 0xff}, // blue
		'M': colornames.Magenta,
		'C': colornames.Cyan,
		'L': {0x73, 0xd7, 0xee, 0xff}, // light blue
		'W': colornames.White,
		'K': colornames.Black,
		'N': {0x61, 0x39, 0x15, 0xff}, // brown
		'U': {0x76, 0x00, 0x88, 0xff}, // purple
		'P': {0xff, 0xaf, 0xc7, 0xff}, // pink
	}
}

// Color returns the fill for m. Unknown materials draw magenta.
func (p Palette) Color(m cubeworld.Material) color.RGBA {
	if c, ok := p[m]; ok {
		return c
	}
	return colornames.Magenta
}

// Hotbar is the selectable materials in slot order.
var Hotbar = []cubeworld.Material{'R', 'O', 'Y', 'G', 'B', 'U', 'W', 'P', 'L', 'N', 'K'}
