// Package life registers pkg/sims/life's naive Game of Life board as a GUI
// simulation.
package life

import (
	"hashlife/internal/core"
	pkgcore "hashlife/pkg/core"
	pkglife "hashlife/pkg/sims/life"
)

func newRNG(seed int64) *pkgcore.RNG { return pkgcore.NewRNG(seed) }

type adapter struct {
	*pkglife.Life
	seed int64
}

func (a *adapter) Name() string { return "life" }

func (a *adapter) Size() core.Size {
	s := a.Life.Size()
	return core.Size{W: s.W, H: s.H}
}

func (a *adapter) Reset(seed int64) {
	a.seed = seed
	a.Life = pkglife.New(a.Life.Size().W, a.Life.Size().H, pkglife.Toroidal)
	rng := newRNG(seed)
	w, h := a.Life.Size().W, a.Life.Size().H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a.Life.Set(x, y, rng.Bool())
		}
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		w, h := 200, 150
		return &adapter{Life: pkglife.New(w, h, pkglife.Toroidal)}
	})
}
