//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"life-ca/internal/app"
	"life-ca/internal/core"
	_ "life-ca/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatalf("%s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("life-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
