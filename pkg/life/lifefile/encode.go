package lifefile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"life-ca/pkg/life"
)

// FromGrid captures a grid as a pattern. Bounded grids are recentered first,
// so their coordinates start at row 0 and column 0 of the pattern.
func FromGrid(g *life.Grid) Pattern {
	p := Pattern{Topology: g.Topology(), Rules: g.Rules()}
	if g.Topology() == life.Toroidal {
		size := g.Size()
		p.Size = &size
		p.Cells = g.LiveCells()
		return p
	}
	origin := life.PatternOrigin(g)
	for _, c := range g.LiveCells() {
		p.Cells = append(p.Cells, life.Cell{Row: c.Row - origin.Row, Col: c.Col - origin.Col})
	}
	return p
}

// Encode writes p in its dialect: the header, one "#D" line per description
// entry, the rule and then the cells in p's order. The rule is always spelled
// out, so "#N" comes back as "#R 23/3"; only files already in that form, with
// single-spaced coordinates, reproduce byte for byte.
func Encode(w io.Writer, p Pattern) error {
	bw := bufio.NewWriter(w)
	header := HeaderResizable
	if p.Topology == life.Toroidal {
		header = HeaderToroidal
	}
	survival, birth := p.Rules.Digits()
	fmt.Fprintln(bw, header)
	for _, d := range p.Description {
		if d == "" {
			fmt.Fprintln(bw, "#D")
			continue
		}
		fmt.Fprintf(bw, "#D %s\n", d)
	}
	fmt.Fprintf(bw, "#R %s/%s\n", survival, birth)
	if p.Topology == life.Toroidal {
		var size life.Size
		if p.Size != nil {
			size = *p.Size
		}
		fmt.Fprintf(bw, "#S %d %d\n", size.W, size.H)
	}
	for _, c := range p.Cells {
		fmt.Fprintf(bw, "%d %d\n", c.Row, c.Col)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Save writes g as a life file.
func Save(w io.Writer, g *life.Grid) error {
	return Encode(w, FromGrid(g))
}

// SaveFile writes g to path, replacing any existing file.
func SaveFile(path string, g *life.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := Save(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
