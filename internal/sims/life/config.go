package life

import (
	"fmt"
	"strconv"

	"life-ca/pkg/life"
)

// Config controls grid dimensions, rules and the on-screen window.
type Config struct {
	Width  int
	Height int

	Topology life.Topology
	Rules    life.RuleSet

	// Pattern is an optional life file; when set it replaces the random fill
	// and its header decides the topology.
	Pattern string

	// Workers selects the row-parallel backend when positive.
	Workers int

	// ViewWidth and ViewHeight size the display in cells. Zero means the
	// full grid.
	ViewWidth  int
	ViewHeight int

	Seed int64

	// overrideRules is set when Rules came from the caller rather than the
	// default, so a loaded pattern's own rule gives way to it.
	overrideRules bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    128,
		Height:   128,
		Topology: life.Toroidal,
		Rules:    life.DefaultRuleSet(),
		Seed:     1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed numbers keep their defaults; a malformed rule or topology is an
// error since there is no sensible fallback for a typo there.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["view_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ViewWidth = parsed
		}
	}
	if v, ok := cfg["view_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ViewHeight = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["topology"]; ok && v != "" {
		topo, err := life.ParseTopology(v)
		if err != nil {
			return c, fmt.Errorf("topology: %w", err)
		}
		c.Topology = topo
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		rules, err := life.ParseRuleSet(v)
		if err != nil {
			return c, fmt.Errorf("rule: %w", err)
		}
		c.Rules = rules
		c.overrideRules = true
	}
	return c, nil
}
