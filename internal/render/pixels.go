// Package render turns rendered cell rasters into RGBA pixels.
package render

import "image/color"

// Palette maps live and dead cells to colours.
type Palette struct {
	On  color.RGBA
	Off color.RGBA
}

// DefaultPalette draws white cells on black.
func DefaultPalette() Palette {
	return Palette{
		On:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Off: color.RGBA{A: 255},
	}
}

// fill converts raster bytes into RGBA pixels in buf. Any non-zero byte is
// live. buf must hold at least 4*len(cells) bytes.
func (p Palette) fill(buf []byte, cells []uint8) {
	for i, c := range cells {
		col := p.Off
		if c != 0 {
			col = p.On
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
