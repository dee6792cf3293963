// Package life models two-dimensional Life-like cellular automata: a grid of
// binary cells, toroidal or bounded, evolving under a survival/birth rule.
package life

import (
	"math/rand/v2"
	"strings"

	"life-ca/pkg/core"
)

// Cell states as stored in the row-major buffer.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Cell addresses a grid position.
type Cell struct {
	Row, Col int
}

// Size describes grid or pattern dimensions.
type Size struct {
	W, H int
}

// plane is a row-major cell buffer with topology-aware reads. Grid and the
// raw-buffer transforms share it.
type plane struct {
	w, h  int
	topo  Topology
	cells []uint8
}

func (p plane) alive(row, col int) bool {
	if len(p.cells) == 0 {
		return false
	}
	if row < 0 || row >= p.h || col < 0 || col >= p.w {
		if p.topo != Toroidal {
			return false
		}
		row = floorMod(row, p.h)
		col = floorMod(col, p.w)
	}
	return p.cells[row*p.w+col] != Dead
}

// floorMod keeps the result in [0,n) for negative a; Go's % truncates.
func floorMod(a, n int) int {
	return (a%n + n) % n
}

func (p plane) neighbors(row, col int) int {
	n := 0
	for _, o := range offsets {
		if p.alive(row+o.Row, col+o.Col) {
			n++
		}
	}
	return n
}

// Grid is a rectangular Life-like automaton state. A grid is replaced, not
// mutated, by each generation.
type Grid struct {
	plane
	rules RuleSet
}

// New returns a grid of w by h dead cells. Negative dimensions are treated
// as zero; sizes rejected by CheckSize panic, so callers taking dimensions
// from input should check them first.
func New(w, h int, topo Topology, rules RuleSet) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if err := CheckSize(w, h); err != nil {
		panic("life: " + err.Error())
	}
	return &Grid{
		plane: plane{w: w, h: h, topo: topo, cells: make([]uint8, w*h)},
		rules: rules,
	}
}

// NewRandom returns a grid whose cells are independent coin flips drawn from
// a PCG source seeded with seed.
func NewRandom(w, h int, topo Topology, rules RuleSet, seed int64) *Grid {
	g := New(w, h, topo, rules)
	g.Randomize(core.NewRNG(seed).Source())
	return g
}

// Randomize assigns every cell an independent uniformly random state.
func (g *Grid) Randomize(r *rand.Rand) {
	core.FillBinary(r, g.cells)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Topology reports how the grid resolves out-of-range reads.
func (g *Grid) Topology() Topology { return g.topo }

// Rules returns the grid's rule.
func (g *Grid) Rules() RuleSet { return g.rules }

// SetRules replaces the rule used by subsequent generations.
func (g *Grid) SetRules(r RuleSet) { g.rules = r }

// Cells exposes the row-major buffer, index row*Width()+col. Callers must not
// retain it across generations.
func (g *Grid) Cells() []uint8 { return g.cells }

// Cell reports whether (row, col) is alive. Any coordinate is accepted:
// toroidal grids wrap each axis, bounded grids read dead beyond their edges.
func (g *Grid) Cell(row, col int) bool { return g.alive(row, col) }

// SetCell writes the state of an in-range cell. It never wraps.
func (g *Grid) SetCell(row, col int, alive bool) error {
	if row < 0 || col < 0 || row >= g.h || col >= g.w {
		return &CoordError{Row: row, Col: col, Width: g.w, Height: g.h}
	}
	v := Dead
	if alive {
		v = Alive
	}
	g.cells[row*g.w+col] = v
	return nil
}

// set is SetCell for callers that have already established the coordinate is
// in range; a miss is a bug in the caller.
func (g *Grid) set(row, col int) {
	if err := g.SetCell(row, col, true); err != nil {
		panic("life: internal write failed: " + err.Error())
	}
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c != Dead {
			n++
		}
	}
	return n
}

// LiveCells lists live cells in row-major order.
func (g *Grid) LiveCells() []Cell {
	var out []Cell
	for i, c := range g.cells {
		if c != Dead {
			out = append(out, Cell{Row: i / g.w, Col: i % g.w})
		}
	}
	return out
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := New(g.w, g.h, g.topo, g.rules)
	copy(c.cells, g.cells)
	return c
}

// String draws the grid with '*' for live and '.' for dead cells, one line
// per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if g.cells[row*g.w+col] != Dead {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
