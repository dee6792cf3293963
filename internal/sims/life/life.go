// Package life adapts the life engine to the front end's Sim contract.
package life

import (
	"fmt"

	"life-ca/internal/core"
	"life-ca/pkg/life"
	"life-ca/pkg/life/lifefile"
	"life-ca/pkg/life/parallel"
	"life-ca/pkg/life/view"
)

// minBoundedView keeps small resizable patterns visible; their grid may be
// only a few cells wide.
const minBoundedView = 64

// Sim drives a life.Grid one generation per Step and renders a centred
// window of it.
type Sim struct {
	name string
	cfg  Config

	initial *life.Grid
	grid    *life.Grid
	stepper life.Stepper

	gen    int
	viewW  int
	viewH  int
	panRow int
	panCol int
	raster *view.Raster
}

// New builds a Sim. A configured pattern is loaded once here; Reset restores
// it rather than rereading the file.
func New(name string, cfg Config) (*Sim, error) {
	s := &Sim{name: name, cfg: cfg}
	if cfg.Workers > 0 {
		s.stepper.Backend = parallel.New(cfg.Workers)
	}
	if cfg.Pattern != "" {
		g, err := lifefile.LoadFile(cfg.Pattern)
		if err != nil {
			return nil, fmt.Errorf("load pattern: %w", err)
		}
		if cfg.overrideRules {
			g.SetRules(cfg.Rules)
		}
		s.initial = g
	} else if err := life.CheckSize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	s.Reset(cfg.Seed)

	s.viewW, s.viewH = cfg.ViewWidth, cfg.ViewHeight
	if s.viewW <= 0 {
		s.viewW = s.grid.Width()
		if s.grid.Topology() == life.Bounded {
			s.viewW = max(s.viewW, minBoundedView)
		}
	}
	if s.viewH <= 0 {
		s.viewH = s.grid.Height()
		if s.grid.Topology() == life.Bounded {
			s.viewH = max(s.viewH, minBoundedView)
		}
	}
	s.raster = view.NewRaster(s.viewW, s.viewH)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return s.name }

// Size returns the display dimensions, fixed for the Sim's lifetime.
func (s *Sim) Size() core.Size { return core.Size{W: s.viewW, H: s.viewH} }

// Reset restores the loaded pattern, or refills the grid from seed when none
// was configured.
func (s *Sim) Reset(seed int64) {
	s.gen = 0
	if s.initial != nil {
		s.grid = s.initial.Clone()
		return
	}
	s.grid = life.NewRandom(s.cfg.Width, s.cfg.Height, s.cfg.Topology, s.cfg.Rules, seed)
	if s.cfg.Topology == life.Bounded {
		s.grid = life.Recenter(s.grid, life.DefaultBorder)
	}
}

// Step advances the grid by one generation.
func (s *Sim) Step() {
	s.grid = s.stepper.Step(s.grid)
	s.gen++
}

// Cells renders the current window, one byte per display pixel.
func (s *Sim) Cells() []uint8 {
	s.View().RenderInto(s.raster, s.grid)
	return s.raster.Pixels()
}

// Grid exposes the current generation.
func (s *Sim) Grid() *life.Grid { return s.grid }

// Generation counts steps since the last Reset.
func (s *Sim) Generation() int { return s.gen }

// View is the window drawn by Cells. Resizable grids change shape every
// step, so the window is recentred on each call.
func (s *Sim) View() view.View {
	v := view.Centered(s.grid, s.viewW, s.viewH)
	v.Row += s.panRow
	v.Col += s.panCol
	return v
}

func (s *Sim) Parameters() core.ParameterSnapshot {
	g := s.grid
	survival, birth := g.Rules().Digits()
	bounds := []core.Parameter{
		core.StringParam("bbox", "Bounding box", "empty"),
	}
	if b, ok := life.PatternBoundaries(g); ok {
		size := b.Size()
		bounds = []core.Parameter{
			core.IntParam("origin_row", "Origin row", b.MinRow),
			core.IntParam("origin_col", "Origin col", b.MinCol),
			core.IntParam("pattern_w", "Pattern width", size.W),
			core.IntParam("pattern_h", "Pattern height", size.H),
		}
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Generation",
			Params: []core.Parameter{
				core.IntParam("gen", "Generation", s.gen),
				core.IntParam("population", "Population", g.Population()),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.StringParam("topology", "Topology", g.Topology().String()),
				core.StringParam("survival", "Survival", survival),
				core.StringParam("birth", "Birth", birth),
				core.IntParam("w", "Width", g.Width()),
				core.IntParam("h", "Height", g.Height()),
			},
		},
		{Name: "Pattern", Params: bounds},
		{
			Name: "View",
			Params: []core.Parameter{
				core.IntParam("view_row", "Pan rows", s.panRow),
				core.IntParam("view_col", "Pan cols", s.panCol),
			},
		},
	}}
}

// ParameterControls exposes the pan offsets; the grid itself is not
// editable from the HUD.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "view_row", Label: "Pan rows", Step: 4},
		{Key: "view_col", Label: "Pan cols", Step: 4},
	}
}

// SetIntParameter updates a pan offset.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "view_row":
		s.panRow = value
	case "view_col":
		s.panCol = value
	default:
		return false
	}
	return true
}

func factory(name string, defaults map[string]string) core.Factory {
	return func(cfg map[string]string) (core.Sim, error) {
		merged := make(map[string]string, len(defaults)+len(cfg))
		for k, v := range defaults {
			merged[k] = v
		}
		for k, v := range cfg {
			if v != "" {
				merged[k] = v
			}
		}
		c, err := FromMap(merged)
		if err != nil {
			return nil, err
		}
		return New(name, c)
	}
}

func init() {
	core.Register("life", factory("life", nil))
	core.Register("resizable", factory("resizable", map[string]string{"topology": "bounded"}))
}
