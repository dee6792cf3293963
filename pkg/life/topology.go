package life

import (
	"fmt"
	"strings"
)

// Topology selects how coordinates beyond the grid edges resolve.
type Topology uint8

const (
	// Toroidal grids wrap both axes; their size never changes.
	Toroidal Topology = iota
	// Bounded grids read dead beyond their edges and are resized every
	// generation so the pattern keeps a dead margin.
	Bounded
)

func (t Topology) String() string {
	switch t {
	case Toroidal:
		return "toroidal"
	case Bounded:
		return "bounded"
	default:
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
}

// ParseTopology accepts "toroidal" and "bounded" (or its alias "resizable").
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toroidal", "torus":
		return Toroidal, nil
	case "bounded", "resizable":
		return Bounded, nil
	}
	return 0, fmt.Errorf("unknown topology %q", s)
}
