package life

import (
	"errors"
	"slices"
	"testing"
)

func setAll(t *testing.T, g *Grid, cells ...Cell) {
	t.Helper()
	for _, c := range cells {
		if err := g.SetCell(c.Row, c.Col, true); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := New(5, 5, Toroidal, DefaultRuleSet())
	setAll(t, g, Cell{1, 2}, Cell{2, 2}, Cell{3, 2})

	next := Step(g)
	if want := []Cell{{2, 1}, {2, 2}, {2, 3}}; !slices.Equal(next.LiveCells(), want) {
		t.Fatalf("after one step live=%v, want %v", next.LiveCells(), want)
	}
	if want := []Cell{{1, 2}, {2, 2}, {3, 2}}; !slices.Equal(g.LiveCells(), want) {
		t.Fatal("Step must not mutate its input")
	}

	again := Step(next)
	if !slices.Equal(again.LiveCells(), g.LiveCells()) {
		t.Fatalf("after second step live=%v, want %v", again.LiveCells(), g.LiveCells())
	}
}

func TestBlockStillLife(t *testing.T) {
	g := New(6, 5, Toroidal, DefaultRuleSet())
	setAll(t, g, Cell{1, 1}, Cell{1, 2}, Cell{2, 1}, Cell{2, 2})
	next := Step(g)
	if next.String() != g.String() {
		t.Fatalf("block changed:\n%s", next)
	}
	if next == g {
		t.Fatal("Step must return a new grid")
	}
}

func TestGliderTranslatesOnTorus(t *testing.T) {
	glider := []Cell{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	g := New(5, 5, Toroidal, DefaultRuleSet())
	setAll(t, g, glider...)

	out := StepN(g, 4)

	want := New(5, 5, Toroidal, DefaultRuleSet())
	for _, c := range glider {
		setAll(t, want, Cell{(c.Row + 1) % 5, (c.Col + 1) % 5})
	}
	if out.String() != want.String() {
		t.Fatalf("glider after 4 generations:\n%s\nwant:\n%s", out, want)
	}
}

func TestHighLifeSixNeighborBirth(t *testing.T) {
	rules, err := ParseRuleSet("23/36")
	if err != nil {
		t.Fatal(err)
	}
	g := New(5, 5, Toroidal, rules)
	// A dead cell with six live neighbors is born under B36 only.
	setAll(t, g, Cell{1, 1}, Cell{1, 2}, Cell{1, 3}, Cell{3, 1}, Cell{3, 2}, Cell{3, 3})
	if !Step(g).Cell(2, 2) {
		t.Fatal("B6 birth expected at the centre")
	}
	g.SetRules(DefaultRuleSet())
	if Step(g).Cell(2, 2) {
		t.Fatal("classic Life has no B6 birth")
	}
}

func TestBoundedBlinkerRecenters(t *testing.T) {
	g := New(5, 3, Bounded, DefaultRuleSet())
	setAll(t, g, Cell{1, 1}, Cell{1, 2}, Cell{1, 3})

	next := Step(g)
	if next.Size() != (Size{W: 3, H: 5}) {
		t.Fatalf("size=%v, want 3x5", next.Size())
	}
	if want := []Cell{{1, 1}, {2, 1}, {3, 1}}; !slices.Equal(next.LiveCells(), want) {
		t.Fatalf("live=%v, want %v", next.LiveCells(), want)
	}
	if next.Topology() != Bounded || next.Rules() != g.Rules() {
		t.Fatal("topology and rules must carry over")
	}
}

func TestBoundedPatternTouchingEdgeKeepsGrowth(t *testing.T) {
	g := New(3, 3, Bounded, DefaultRuleSet())
	setAll(t, g, Cell{0, 0}, Cell{1, 0}, Cell{2, 0})

	next := Step(g)
	if next.Size() != (Size{W: 5, H: 3}) {
		t.Fatalf("size=%v, want 5x3", next.Size())
	}
	if want := []Cell{{1, 1}, {1, 2}, {1, 3}}; !slices.Equal(next.LiveCells(), want) {
		t.Fatalf("live=%v, want %v", next.LiveCells(), want)
	}
}

func TestBoundedEmptyAndDying(t *testing.T) {
	g := New(4, 4, Bounded, DefaultRuleSet())
	if next := Step(g); next.Size() != (Size{W: 2, H: 2}) || next.Population() != 0 {
		t.Fatalf("empty bounded grid stepped to %v pop %d", next.Size(), next.Population())
	}
	setAll(t, g, Cell{1, 1})
	if next := Step(g); next.Size() != (Size{W: 2, H: 2}) || next.Population() != 0 {
		t.Fatalf("lone cell stepped to %v pop %d", next.Size(), next.Population())
	}
}

// reference evaluates one generation of a bounded grid onto a much larger
// bounded canvas so nothing can fall off, returning live cells relative to
// the source grid's coordinates.
func reference(g *Grid) []Cell {
	var live []Cell
	for row := -2; row < g.Height()+2; row++ {
		for col := -2; col < g.Width()+2; col++ {
			if g.Rules().Next(g.Cell(row, col), NeighborCount(g, row, col)) {
				live = append(live, Cell{row, col})
			}
		}
	}
	return live
}

func TestBoundedGrowthProperty(t *testing.T) {
	rules := []RuleSet{DefaultRuleSet(), MustRuleSet([]int{2, 3}, []int{3, 6}), MustRuleSet([]int{1, 3, 5, 7}, []int{1, 3, 5, 7})}
	for seed := int64(0); seed < 20; seed++ {
		for _, r := range rules {
			g := NewRandom(7, 6, Bounded, r, seed)
			want := reference(g)
			next := Step(g)

			ps := PatternSize(next)
			if len(want) == 0 {
				if next.Size() != (Size{W: 2, H: 2}) || next.Population() != 0 {
					t.Fatalf("seed %d %v: expected empty 2x2, got %v", seed, r, next.Size())
				}
				continue
			}
			if next.Size() != (Size{W: ps.W + 2, H: ps.H + 2}) {
				t.Fatalf("seed %d %v: grid %v for pattern %v", seed, r, next.Size(), ps)
			}
			if o := PatternOrigin(next); o != (Cell{1, 1}) {
				t.Fatalf("seed %d %v: pattern origin %v, want {1 1}", seed, r, o)
			}
			// Translate back to the source frame and compare.
			dr, dc := want[0].Row, want[0].Col
			for _, c := range want {
				dc = min(dc, c.Col)
			}
			got := next.LiveCells()
			if len(got) != len(want) {
				t.Fatalf("seed %d %v: %d live, want %d", seed, r, len(got), len(want))
			}
			for i := range got {
				c := Cell{got[i].Row - 1 + dr, got[i].Col - 1 + dc}
				if c != want[i] {
					t.Fatalf("seed %d %v: cell %d=%v, want %v", seed, r, i, c, want[i])
				}
			}
		}
	}
}

func TestBorderWidth(t *testing.T) {
	g := New(5, 3, Bounded, DefaultRuleSet())
	setAll(t, g, Cell{1, 1}, Cell{1, 2}, Cell{1, 3})
	s := &Stepper{Border: 3}
	next := s.Step(g)
	if next.Size() != (Size{W: 7, H: 9}) {
		t.Fatalf("size=%v, want 7x9", next.Size())
	}
	if PatternOrigin(next) != (Cell{3, 3}) {
		t.Fatalf("origin=%v", PatternOrigin(next))
	}
}

type failingBackend struct{}

func (failingBackend) Transform(dst, src []uint8, w, h int, rules RuleSet, topo Topology) error {
	return errors.New("device lost")
}

func TestBackendFailurePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("a failing backend is a defect and must panic")
		}
	}()
	s := &Stepper{Backend: failingBackend{}}
	s.Step(New(3, 3, Toroidal, DefaultRuleSet()))
}

func TestCPUTransformChecksBuffers(t *testing.T) {
	err := CPU{}.Transform(make([]uint8, 4), make([]uint8, 6), 2, 3, DefaultRuleSet(), Toroidal)
	if !errors.Is(err, ErrBufferSize) {
		t.Fatalf("err=%v, want ErrBufferSize", err)
	}
}

func TestRecenter(t *testing.T) {
	g := New(6, 6, Bounded, DefaultRuleSet())
	setAll(t, g, Cell{3, 4}, Cell{4, 5})
	out := Recenter(g, 1)
	if out.Size() != (Size{W: 4, H: 4}) {
		t.Fatalf("size=%v", out.Size())
	}
	if want := []Cell{{1, 1}, {2, 2}}; !slices.Equal(out.LiveCells(), want) {
		t.Fatalf("live=%v", out.LiveCells())
	}
	if Recenter(out, 1) != out {
		t.Fatal("an already centred grid is returned unchanged")
	}
}
