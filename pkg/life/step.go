package life

import (
	"errors"
	"fmt"
)

// DefaultBorder is the dead margin kept around a bounded pattern. One cell is
// enough because a Moore-neighborhood pattern grows at most one cell per
// generation in each direction.
const DefaultBorder = 1

// ErrBufferSize is returned by a Backend handed buffers that do not hold
// width*height cells.
var ErrBufferSize = errors.New("cell buffer size mismatch")

// Backend computes one generation of a fixed-size cell buffer into dst.
// Implementations must match CPU exactly and must not retain either buffer.
type Backend interface {
	Transform(dst, src []uint8, w, h int, rules RuleSet, topo Topology) error
}

// CPU is the reference single-goroutine Backend.
type CPU struct{}

// Transform implements Backend.
func (CPU) Transform(dst, src []uint8, w, h int, rules RuleSet, topo Topology) error {
	if err := CheckBuffers(dst, src, w, h); err != nil {
		return err
	}
	TransformRows(dst, src, w, h, rules, topo, 0, h)
	return nil
}

// CheckBuffers validates buffer lengths for a w by h Transform.
func CheckBuffers(dst, src []uint8, w, h int) error {
	want := w * h
	if len(src) != want || len(dst) != want {
		return fmt.Errorf("%w: src %d, dst %d, want %d", ErrBufferSize, len(src), len(dst), want)
	}
	return nil
}

// TransformRows writes rows [from, to) of the next generation of src into
// dst. Reads only touch src, so disjoint row ranges may run concurrently.
func TransformRows(dst, src []uint8, w, h int, rules RuleSet, topo Topology, from, to int) {
	p := plane{w: w, h: h, topo: topo, cells: src}
	for row := from; row < to; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			if rules.Next(src[idx] != Dead, p.neighbors(row, col)) {
				dst[idx] = Alive
			} else {
				dst[idx] = Dead
			}
		}
	}
}

// Stepper advances grids one generation at a time. The zero value uses the
// CPU backend and DefaultBorder.
type Stepper struct {
	// Border is the dead margin kept around bounded patterns; values below 1
	// mean DefaultBorder.
	Border int
	// Backend computes toroidal generations; nil means CPU.
	Backend Backend
}

func (s *Stepper) border() int {
	if s.Border < 1 {
		return DefaultBorder
	}
	return s.Border
}

func (s *Stepper) backend() Backend {
	if s.Backend == nil {
		return CPU{}
	}
	return s.Backend
}

// Step returns the next generation of g. g itself is left untouched.
func (s *Stepper) Step(g *Grid) *Grid {
	if g.topo == Toroidal {
		return s.stepToroidal(g)
	}
	return s.stepBounded(g)
}

// StepN applies Step n times.
func (s *Stepper) StepN(g *Grid, n int) *Grid {
	for i := 0; i < n; i++ {
		g = s.Step(g)
	}
	return g
}

var defaultStepper Stepper

// Step advances g one generation with the default Stepper.
func Step(g *Grid) *Grid { return defaultStepper.Step(g) }

// StepN advances g n generations with the default Stepper.
func StepN(g *Grid, n int) *Grid { return defaultStepper.StepN(g, n) }

func (s *Stepper) stepToroidal(g *Grid) *Grid {
	next := New(g.w, g.h, g.topo, g.rules)
	b := s.backend()
	if err := b.Transform(next.cells, g.cells, g.w, g.h, g.rules, g.topo); err != nil {
		panic(fmt.Sprintf("life: %T transform failed: %v", b, err))
	}
	return next
}

// stepBounded evaluates the old pattern's bounds grown by one cell, which
// covers every cell that can change, into a buffer holding the old pattern
// plus border. The result is then trimmed so the new pattern sits at
// (border, border) with border dead cells on every side.
func (s *Stepper) stepBounded(g *Grid) *Grid {
	border := s.border()
	b, ok := PatternBoundaries(g)
	if !ok {
		return New(2*border, 2*border, g.topo, g.rules)
	}
	size := b.Size()
	next := New(size.W+2*border, size.H+2*border, g.topo, g.rules)
	dr, dc := border-b.MinRow, border-b.MinCol
	for row := b.MinRow - 1; row <= b.MaxRow+1; row++ {
		for col := b.MinCol - 1; col <= b.MaxCol+1; col++ {
			if g.rules.Next(g.alive(row, col), g.neighbors(row, col)) {
				next.set(row+dr, col+dc)
			}
		}
	}
	return Recenter(next, border)
}

// Recenter returns a grid sized to g's pattern plus border dead cells on each
// side, with the pattern's top-left corner at (border, border). g is returned
// as is when it already has that shape. An empty pattern yields a 2*border
// square of dead cells.
func Recenter(g *Grid, border int) *Grid {
	if border < 0 {
		border = 0
	}
	b, ok := PatternBoundaries(g)
	if !ok {
		return New(2*border, 2*border, g.topo, g.rules)
	}
	size := b.Size()
	w, h := size.W+2*border, size.H+2*border
	if b.MinRow == border && b.MinCol == border && g.w == w && g.h == h {
		return g
	}
	out := New(w, h, g.topo, g.rules)
	for row := b.MinRow; row <= b.MaxRow; row++ {
		for col := b.MinCol; col <= b.MaxCol; col++ {
			if g.cells[row*g.w+col] != Dead {
				out.set(row-b.MinRow+border, col-b.MinCol+border)
			}
		}
	}
	return out
}
