package life

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBoundCoords is returned when a write targets a cell outside the grid.
	ErrOutOfBoundCoords = errors.New("out of bound coordinates")
	// ErrInvalidRule reports a neighbor count outside [0,8] or a malformed rule string.
	ErrInvalidRule = errors.New("invalid ruleset")
	// ErrGridSize reports dimensions that are negative or hold more than MaxCells cells.
	ErrGridSize = errors.New("invalid grid size")
)

// MaxCells bounds the number of cells a single grid may hold.
const MaxCells = 1 << 31

// CheckSize reports whether a w by h grid can be allocated. The product is
// checked without overflowing.
func CheckSize(w, h int) error {
	if w < 0 || h < 0 || (h != 0 && w > MaxCells/h) {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrGridSize, w, h, MaxCells)
	}
	return nil
}

// CoordError describes a rejected write. It matches ErrOutOfBoundCoords under errors.Is.
type CoordError struct {
	Row, Col      int
	Width, Height int
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) outside %dx%d grid", ErrOutOfBoundCoords, e.Row, e.Col, e.Width, e.Height)
}

// Unwrap exposes the sentinel.
func (e *CoordError) Unwrap() error { return ErrOutOfBoundCoords }
