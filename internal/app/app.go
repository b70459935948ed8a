//go:build ebiten

package app

import (
	"image/color"
	"time"

	"hashlife/internal/core"
	"hashlife/internal/render"
	"hashlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	panelW   int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. panelW is the width in
// pixels reserved for the parameter HUD; 0 disables it. simTPS paces
// sim.Step() independently of ebiten's render/input TPS, which matters for
// HashLife windows where a single Step can itself take several
// milliseconds at high jump exponents.
func New(sim core.Sim, scale int, seed int64, panelW int, simTPS int) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:      sim,
		painter:  gp,
		hud:      ui.NewHUD(sim, panelW),
		stepper:  core.NewFixedStep(simTPS),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		panelW:   panelW,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	simWidth := g.sim.Size().W * g.scale
	g.hud.Update(simWidth)

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	} else if !g.paused && g.stepper.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size, including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.panelW, s.H * g.scale
}
