package life

var offsets = [MaxNeighbors]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Offsets returns the eight Moore neighborhood deltas, row-major from
// north-west. The array is a copy.
func Offsets() [MaxNeighbors]Cell { return offsets }

// NeighborCount returns how many of the eight cells around (row, col) are
// alive. Out-of-range neighbors resolve through the grid's topology, so the
// result is always in [0,8].
func NeighborCount(g *Grid, row, col int) int {
	return g.neighbors(row, col)
}
