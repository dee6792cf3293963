package core

import (
	"slices"
	"testing"
	"time"
)

type stubSim struct{}

func (stubSim) Name() string   { return "stub" }
func (stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64)    {}
func (stubSim) Step()          {}
func (stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegisterIgnoresEmpty(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("empty names and nil factories must not register")
	}
	Register("stub", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	if !slices.Contains(Names(), "stub") {
		t.Fatalf("Names()=%v", Names())
	}
	if !slices.IsSorted(Names()) {
		t.Fatal("Names must be sorted")
	}
}

func TestControlClamp(t *testing.T) {
	c := ParameterControl{Min: -3, Max: 4, HasMin: true, HasMax: true}
	if c.Clamp(-10) != -3 || c.Clamp(10) != 4 || c.Clamp(1) != 1 {
		t.Fatal("clamp ignores bounds")
	}
	if (ParameterControl{}).Clamp(-10) != -10 {
		t.Fatal("unbounded control must not clamp")
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{IntParam("gen", "Generation", 4)}},
		{Name: "B", Params: []Parameter{StringParam("rule", "Rule", "S23/B3")}},
	}}
	p, ok := s.Lookup("rule")
	if !ok || p.Value != "S23/B3" || p.Type != ParamTypeString {
		t.Fatalf("Lookup(rule)=%+v,%v", p, ok)
	}
	if p, _ := s.Lookup("gen"); p.Value != "4" {
		t.Fatalf("Lookup(gen)=%+v", p)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("missing key found")
	}
}

func TestFixedStepWait(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	var slept time.Duration
	fs.sleep = func(d time.Duration) {
		slept += d
		clock = clock.Add(d)
	}

	// The first tick is due immediately.
	fs.Wait()
	if slept != 0 {
		t.Fatalf("first Wait slept %v", slept)
	}
	fs.Wait()
	if slept != 100*time.Millisecond {
		t.Fatalf("second Wait slept %v, want 100ms", slept)
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("Interval=%v", fs.Interval())
	}
}
