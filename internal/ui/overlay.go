//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/core"
	"life-ca/pkg/life"
	"life-ca/pkg/life/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type gridProvider interface {
	Grid() *life.Grid
	View() view.View
}

// Overlay outlines the grid extent and the pattern's bounding box on top of
// the rendered cells. B toggles it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(gridProvider)
	if !ok {
		return
	}
	g := provider.Grid()
	v := provider.View()
	size := o.sim.Size()
	if v.Width <= 0 || v.Height <= 0 || size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	sx := float32(size.W*scale) / float32(v.Width)
	sy := float32(size.H*scale) / float32(v.Height)
	rect := func(row, col, w, h int, clr color.Color) {
		x := float32(col-v.Col) * sx
		y := float32(row-v.Row) * sy
		vector.StrokeRect(screen, x, y, float32(w)*sx, float32(h)*sy, 1, clr, false)
	}

	if g.Topology() == life.Bounded {
		rect(0, 0, g.Width(), g.Height(), gridColor)
	}
	if b, ok := life.PatternBoundaries(g); ok {
		s := b.Size()
		rect(b.MinRow, b.MinCol, s.W, s.H, boundsColor)
	}
}

var (
	gridColor   = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	boundsColor = color.RGBA{R: 255, G: 120, B: 40, A: 255}
)
