package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	TPS  int    `env:"LIFE_CA_TEST_TPS" envDefault:"30"`
	Rule string `env:"LIFE_CA_TEST_RULE"`
}

func TestParseEnvDefaults(t *testing.T) {
	cfg := envTestConfig{Rule: "S23/B3"}
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.TPS != 30 {
		t.Fatalf("expected default tps 30, got %d", cfg.TPS)
	}
	if cfg.Rule != "S23/B3" {
		t.Fatalf("unset variable overwrote field: %q", cfg.Rule)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("LIFE_CA_TEST_TPS", "12")
	t.Setenv("LIFE_CA_TEST_RULE", "B36/S23")
	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.TPS != 12 || cfg.Rule != "B36/S23" {
		t.Fatalf("got %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("LIFE_CA_TEST_TPS", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
