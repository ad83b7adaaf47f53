//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/qlearn"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// agentView is implemented by hosts that can report the tree agent.
type agentView interface {
	Agent() qlearn.Agent
	Size() core.Size
}

var (
	agentColor = color.RGBA{R: 255, G: 80, B: 200, A: 220}
	gridColor  = color.RGBA{R: 255, G: 255, B: 255, A: 24}
)

// Overlay draws the agent marker and an optional cell grid on top of the
// simulation view.
type Overlay struct {
	view      agentView
	scale     int
	showAgent bool
	showGrid  bool
	enabled   func() bool
	pixel     *ebiten.Image
}

// NewOverlay constructs an overlay. enabled reports whether the agent marker
// applies to the current mode.
func NewOverlay(view agentView, scale int, enabled func() bool) *Overlay {
	o := &Overlay{view: view, scale: scale, showAgent: true, enabled: enabled}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.showAgent = !o.showAgent
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw paints the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.view == nil {
		return
	}
	size := o.view.Size()
	if o.showGrid && o.scale >= 4 {
		for i := 1; i < size.W; i++ {
			o.drawRect(screen, float64(i*o.scale), 0, 1, float64(size.H*o.scale), gridColor)
		}
		for j := 1; j < size.H; j++ {
			o.drawRect(screen, 0, float64(j*o.scale), float64(size.W*o.scale), 1, gridColor)
		}
	}
	if o.showAgent && (o.enabled == nil || o.enabled()) {
		a := o.view.Agent()
		r := cellRect(a.Row, a.Col, o.scale)
		pad := 2
		o.drawRect(screen, float64(r.Min.X-pad), float64(r.Min.Y-pad), float64(r.Dx()+2*pad), 1, agentColor)
		o.drawRect(screen, float64(r.Min.X-pad), float64(r.Max.Y+pad-1), float64(r.Dx()+2*pad), 1, agentColor)
		o.drawRect(screen, float64(r.Min.X-pad), float64(r.Min.Y-pad), 1, float64(r.Dy()+2*pad), agentColor)
		o.drawRect(screen, float64(r.Max.X+pad-1), float64(r.Min.Y-pad), 1, float64(r.Dy()+2*pad), agentColor)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
