package render

import (
	"image/color"

	"lifegrid/internal/rules"
)

var (
	lifePalette = []color.RGBA{
		{A: 255},
		{R: 40, G: 220, B: 90, A: 255},
		{R: 255, G: 150, B: 30, A: 255},
	}
	treePalette = []color.RGBA{
		{R: 10, G: 14, B: 30, A: 255},
		{R: 60, G: 200, B: 70, A: 255},
		{R: 120, G: 80, B: 40, A: 255},
	}
)

// Palette returns the colours indexed by cell tag for k.
func Palette(k rules.Kind) []color.RGBA {
	if k == rules.Tree {
		return treePalette
	}
	return lifePalette
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
