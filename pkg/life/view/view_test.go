package view

import (
	"slices"
	"testing"

	"life-ca/pkg/life"
)

func grid(t *testing.T, topo life.Topology, rows ...string) *life.Grid {
	t.Helper()
	g := life.New(len(rows[0]), len(rows), topo, life.DefaultRuleSet())
	for r, line := range rows {
		for c, ch := range line {
			if ch == '*' {
				if err := g.SetCell(r, c, true); err != nil {
					t.Fatal(err)
				}
			}
		}
	}
	return g
}

func TestRenderDoublesResolution(t *testing.T) {
	g := grid(t, life.Bounded,
		".......",
		".......",
		".....**",
		"......*",
		"......*",
	)
	v := View{Row: 2, Col: 4, Width: 3, Height: 2}
	r := v.Render(g, 6, 4)
	want := []uint8{
		0, 0, 255, 255, 255, 255,
		0, 0, 255, 255, 255, 255,
		0, 0, 0, 0, 255, 255,
		0, 0, 0, 0, 255, 255,
	}
	if !slices.Equal(r.Pixels(), want) {
		t.Fatalf("pixels=%v", r.Pixels())
	}
}

func TestRenderDownsamples(t *testing.T) {
	g := grid(t, life.Bounded,
		"*.*.",
		"....",
		"*.*.",
		"....",
	)
	r := Whole(g).Render(g, 2, 2)
	if !slices.Equal(r.Pixels(), []uint8{On, On, On, On}) {
		t.Fatalf("pixels=%v", r.Pixels())
	}
}

func TestRenderBeyondEdges(t *testing.T) {
	rows := []string{
		"*..",
		"...",
		"..*",
	}
	v := View{Row: -1, Col: -1, Width: 2, Height: 2}

	bounded := v.Render(grid(t, life.Bounded, rows...), 2, 2)
	if !slices.Equal(bounded.Pixels(), []uint8{Off, Off, Off, On}) {
		t.Fatalf("bounded pixels=%v", bounded.Pixels())
	}
	toroidal := v.Render(grid(t, life.Toroidal, rows...), 2, 2)
	if !slices.Equal(toroidal.Pixels(), []uint8{On, Off, Off, On}) {
		t.Fatalf("toroidal pixels=%v", toroidal.Pixels())
	}
}

func TestRenderEmptyWindow(t *testing.T) {
	g := grid(t, life.Toroidal, "**", "**")
	r := View{Width: 0, Height: 2}.Render(g, 3, 3)
	if r.W != 3 || r.H != 3 || slices.Contains(r.Pixels(), On) {
		t.Fatalf("empty window should render a blank %dx%d raster, got %v", r.W, r.H, r.Pixels())
	}
	if n := len((View{Width: 2, Height: 2}).Render(g, 0, 5).Pixels()); n != 0 {
		t.Fatalf("zero-width raster has %d pixels", n)
	}
}

func TestCentered(t *testing.T) {
	g := life.New(5, 3, life.Bounded, life.DefaultRuleSet())
	v := Centered(g, 9, 7)
	if v.Row != -2 || v.Col != -2 {
		t.Fatalf("centered view at (%d,%d)", v.Row, v.Col)
	}
}
