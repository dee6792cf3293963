package life

// Bounds is the inclusive extent of the live cells of a grid.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Origin is the top-left corner of the bounds.
func (b Bounds) Origin() Cell { return Cell{Row: b.MinRow, Col: b.MinCol} }

// Size is the width and height of the bounds.
func (b Bounds) Size() Size {
	return Size{W: b.MaxCol - b.MinCol + 1, H: b.MaxRow - b.MinRow + 1}
}

// PatternBoundaries scans the grid for live cells. ok is false when none are
// alive, which distinguishes an empty grid from a pattern at the origin.
func PatternBoundaries(g *Grid) (b Bounds, ok bool) {
	for i, c := range g.cells {
		if c == Dead {
			continue
		}
		row, col := i/g.w, i%g.w
		if !ok {
			b = Bounds{MinRow: row, MaxRow: row, MinCol: col, MaxCol: col}
			ok = true
			continue
		}
		// Rows arrive in ascending order, so MinRow is already final.
		b.MaxRow = row
		b.MinCol = min(b.MinCol, col)
		b.MaxCol = max(b.MaxCol, col)
	}
	return b, ok
}

// PatternOrigin returns the minimum row and, independently, the minimum column
// over the live cells. It is (0,0) for a grid with no live cells.
func PatternOrigin(g *Grid) Cell {
	b, ok := PatternBoundaries(g)
	if !ok {
		return Cell{}
	}
	return b.Origin()
}

// PatternSize returns the dimensions of the smallest rectangle holding every
// live cell, or a zero Size when none are alive.
func PatternSize(g *Grid) Size {
	b, ok := PatternBoundaries(g)
	if !ok {
		return Size{}
	}
	return b.Size()
}
