package app

import (
	"flag"
	"strconv"

	"life-ca/internal/config"
)

// Config represents the command-line parameters for the application.
// Environment variables seed the values; flags bound afterwards override them.
type Config struct {
	Sim   string `env:"LIFE_CA_SIM"`
	Scale int    `env:"LIFE_CA_SCALE"`
	TPS   int    `env:"LIFE_CA_TPS"`
	Seed  int64  `env:"LIFE_CA_SEED"`

	Pattern string `env:"LIFE_CA_PATTERN"`
	Rule    string `env:"LIFE_CA_RULE"`
	Width   int    `env:"LIFE_CA_WIDTH"`
	Height  int    `env:"LIFE_CA_HEIGHT"`
	Workers int    `env:"LIFE_CA_WORKERS"`

	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 4, TPS: 15, Seed: 42, HUDWidth: 220}
}

// LoadEnv overlays LIFE_CA_* environment variables onto c.
func (c *Config) LoadEnv() error {
	return config.ParseEnv(c)
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, resizable)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "life file to load instead of a random grid")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule override, e.g. B36/S23")
	fs.IntVar(&c.Width, "w", c.Width, "random grid width")
	fs.IntVar(&c.Height, "h", c.Height, "random grid height")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel stepping workers, 0 for serial")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 to hide")
}

// SimConfig converts the settings into the key/value map sim factories read.
// Unset values are omitted so the sim's defaults apply.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Pattern != "" {
		m["pattern"] = c.Pattern
	}
	if c.Rule != "" {
		m["rule"] = c.Rule
	}
	if c.Width > 0 {
		m["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		m["h"] = strconv.Itoa(c.Height)
	}
	if c.Workers > 0 {
		m["workers"] = strconv.Itoa(c.Workers)
	}
	return m
}
