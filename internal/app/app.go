//go:build ebiten

package app

import (
	"time"

	"lifegrid/internal/render"
	"lifegrid/internal/rules"
	"lifegrid/internal/sim"
	"lifegrid/internal/telemetry"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var modeKeys = []ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
}

// Game adapts a simulation session to the ebiten.Game interface.
type Game struct {
	session  *sim.Session
	recorder *telemetry.Recorder
	painter  *render.GridPainter
	overlay  *ui.Overlay
	hud      *ui.HUD

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the session. recorder may be nil when no
// telemetry is collected.
func New(session *sim.Session, recorder *telemetry.Recorder, series *telemetry.Series, cfg *Config) *Game {
	size := session.Size()
	g := &Game{
		session:  session,
		recorder: recorder,
		painter:  render.NewGridPainter(size.W, size.H),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
	g.overlay = ui.NewOverlay(session, cfg.Scale, func() bool { return session.Mode() == rules.Tree })
	if cfg.HUDWidth > 0 {
		g.hud = ui.NewHUD(session, series, cfg.HUDWidth)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.session.Reset(seed)
	g.restartTelemetry()
	g.tickOnce = false
}

func (g *Game) restartTelemetry() {
	if g.recorder != nil {
		g.recorder.Restart()
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range modeKeys {
		if inpututil.IsKeyJustPressed(key) && i < len(rules.Kinds) {
			g.session.SelectMode(rules.Kinds[i])
			g.restartTelemetry()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Randomize()
		g.restartTelemetry()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
		g.restartTelemetry()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := ui.ScreenToCell(x, y, g.scale, g.session.Size().W); ok {
			g.session.Click(row, col)
		}
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.session.Step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Cells(), render.Palette(g.session.Mode()), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.session.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
