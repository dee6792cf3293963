// Package view samples a rectangular window of a life grid into a raster.
package view

import "life-ca/pkg/life"

// View is a window onto a grid, in cell coordinates. Row and Col locate the
// top-left cell and may be negative or beyond the grid; cells outside resolve
// through the grid's topology.
type View struct {
	Row, Col      int
	Width, Height int
}

// Whole returns a view covering g exactly.
func Whole(g *life.Grid) View {
	return View{Width: g.Width(), Height: g.Height()}
}

// Centered returns a w by h view whose centre is the centre of g.
func Centered(g *life.Grid, w, h int) View {
	return View{
		Row:    (g.Height() - h) / 2,
		Col:    (g.Width() - w) / 2,
		Width:  w,
		Height: h,
	}
}

// Render samples the window into a w by h raster, On for live cells and Off
// for dead ones, by nearest neighbour.
func (v View) Render(g *life.Grid, w, h int) *Raster {
	r := NewRaster(w, h)
	v.RenderInto(r, g)
	return r
}

// RenderInto is Render reusing dst; dst's dimensions set the resolution.
func (v View) RenderInto(dst *Raster, g *life.Grid) {
	if v.Width <= 0 || v.Height <= 0 || dst.W == 0 || dst.H == 0 {
		dst.Clear()
		return
	}
	px := dst.Pixels()
	for y := 0; y < dst.H; y++ {
		row := v.Row + y*v.Height/dst.H
		for x := 0; x < dst.W; x++ {
			col := v.Col + x*v.Width/dst.W
			if g.Cell(row, col) {
				px[dst.Index(x, y)] = On
			} else {
				px[dst.Index(x, y)] = Off
			}
		}
	}
}
