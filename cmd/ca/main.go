//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"hashlife/internal/app"
	"hashlife/internal/core"
	_ "hashlife/internal/sims/hashlife"
	_ "hashlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(nil)
	sim.Reset(cfg.Seed)

	panelW := 220
	game := app.New(sim, cfg.Scale, cfg.Seed, panelW, cfg.SimTPS)
	size := sim.Size()

	ebiten.SetWindowTitle("hashlife — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+panelW, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
