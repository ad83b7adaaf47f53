//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"lifegrid/internal/core"
	"lifegrid/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	headerColor = color.RGBA{R: 140, G: 170, B: 220, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	chartColor  = color.RGBA{R: 60, G: 220, B: 120, A: 255}
	chartFrame  = color.RGBA{R: 44, G: 46, B: 54, A: 255}
)

var helpLines = []string{
	"1-5 mode  R randomize",
	"C clear  S new seed",
	"Space pause  N step",
	"A agent  G grid  Q quit",
}

// HUD renders the parameter panel and live-cell chart to the right of the
// simulation view.
type HUD struct {
	sim    core.Sim
	series *telemetry.Series
	width  int

	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	chart      telemetry.Snapshot
	pixel      *ebiten.Image
}

// NewHUD constructs a HUD for sim. series may be nil, in which case no chart
// is drawn.
func NewHUD(sim core.Sim, series *telemetry.Series, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, series: series, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the cached parameter and chart snapshots.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	if h.series != nil {
		h.chart = h.series.Snapshot()
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, buildTitle(h.sim.Name()), face, panelPadding, y, titleColor)
	y += lineHeight + groupGap

	for _, line := range parameterLines(h.snapshot) {
		if line.header {
			y += groupGap
			text.Draw(h.panel, line.text, face, panelPadding, y, headerColor)
		} else {
			text.Draw(h.panel, line.text, face, panelPadding, y, valueColor)
		}
		y += lineHeight
	}

	if h.series != nil {
		y += groupGap
		text.Draw(h.panel, fmt.Sprintf("Live (10s) max %.0f", h.chart.Max), face, panelPadding, y, headerColor)
		rect := image.Rect(panelPadding, y+6, h.width-panelPadding, y+6+chartHeight)
		h.drawChart(rect)
		y = rect.Max.Y + lineHeight
	}

	for _, line := range helpLines {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawChart(rect image.Rectangle) {
	h.fillRect(rect, chartFrame)
	pts := chartPoints(h.chart, rect)
	for i := 1; i < len(pts); i++ {
		h.drawSegment(pts[i-1], pts[i], chartColor)
	}
	if len(pts) == 1 {
		h.fillRect(image.Rect(pts[0].X, pts[0].Y, pts[0].X+1, pts[0].Y+1), chartColor)
	}
}

func (h *HUD) fillRect(rect image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawSegment(a, b image.Point, col color.RGBA) {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, 1)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(float64(a.X), float64(a.Y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}
