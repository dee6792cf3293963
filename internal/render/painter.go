//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a cell raster into a single image and draws it scaled.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a w*h raster.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{palette: palette}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

// Blit uploads cells, a w*h raster, and draws it onto dst at the given scale.
// The backing image is reallocated when the raster size changes.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, w, h, scale int) {
	if w*h == 0 || len(cells) != w*h {
		return
	}
	if w != gp.w || h != gp.h {
		gp.resize(w, h)
	}
	gp.palette.fill(gp.buf, cells)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
