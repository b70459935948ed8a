// Package hashlife adapts a pkg/quadtree Universe to the GUI simulation
// contract, windowing the infinite plane into a fixed-size viewport and
// exposing the per-tick generation jump as an adjustable HUD parameter.
package hashlife

import (
	"fmt"

	"hashlife/internal/core"
	pkgcore "hashlife/pkg/core"
	"hashlife/pkg/quadtree"
)

// Sim windows a quadtree.Universe into a fixed w x h cell grid centered on
// the origin, advancing by 2^genExp generations per Step call.
type Sim struct {
	w, h int

	arena *quadtree.Arena
	cache *quadtree.Cache
	uni   *quadtree.Universe

	genExp int
	grid   *core.ByteGrid
}

// New constructs a hashlife.Sim rendering a w x h window of the plane.
func New(w, h int) *Sim {
	return &Sim{
		w:      w,
		h:      h,
		genExp: 0,
		grid:   core.NewByteGrid(w, h),
	}
}

func (s *Sim) Name() string { return "hashlife" }

func (s *Sim) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Reset seeds a random soup of live cells in the window and rebuilds the
// arena and cache from scratch.
func (s *Sim) Reset(seed int64) {
	s.arena = quadtree.NewArena(nil)
	cache, err := quadtree.NewCache(1<<20, nil)
	if err != nil {
		panic(err)
	}
	s.cache = cache
	s.uni = quadtree.NewUniverse(s.arena, s.cache)

	rng := pkgcore.NewRNG(seed)
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if rng.Bool() {
				wx := int64(x - s.w/2)
				wy := int64(y - s.h/2)
				_ = s.uni.Set(wx, wy, true)
			}
		}
	}
	s.render()
}

// Step advances the universe by 2^genExp generations and re-renders the
// viewport.
func (s *Sim) Step() {
	if err := s.uni.Simulate(uint64(1) << uint(s.genExp)); err != nil {
		panic(err)
	}
	s.render()
}

// Cells returns the most recently rendered window, row-major, one byte
// per cell (0 or 1).
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

func (s *Sim) render() {
	s.grid.Clear()
	cells := s.grid.Cells()
	x0 := int64(-s.w / 2)
	y0 := int64(-s.h / 2)
	s.uni.ForEachLiveBlock(quadtree.Viewport{X0: x0, Y0: y0, W: int64(s.w), H: int64(s.h)}, func(bx, by int64, block uint64) {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				if block&(1<<uint(row*8+col)) == 0 {
					continue
				}
				px := int(bx+int64(col)) - int(x0)
				py := int(by+int64(row)) - int(y0)
				if px < 0 || px >= s.w || py < 0 || py >= s.h {
					continue
				}
				cells[s.grid.Index(px, py)] = 1
			}
		}
	})
}

// Parameters reports the generation count and the jump exponent for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "hashlife",
				Params: []core.Parameter{
					{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", s.uni.Generation())},
					{Key: "jump", Label: "Jump (2^n)", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", s.genExp)},
				},
			},
		},
	}
}

// ParameterControls exposes the per-tick jump exponent as an adjustable
// control.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "jump", Label: "Jump (2^n)", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 20, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD-driven change to the jump exponent.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key != "jump" {
		return false
	}
	if value < 0 {
		value = 0
	}
	s.genExp = value
	return true
}

func init() {
	core.Register("hashlife", func(cfg map[string]string) core.Sim {
		return New(200, 150)
	})
}
