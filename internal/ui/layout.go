package ui

import (
	"fmt"
	"image"
	"strings"

	"lifegrid/internal/core"
	"lifegrid/internal/telemetry"
)

const (
	panelPadding   = 12
	lineHeight     = 16
	groupGap       = 8
	headerBaseline = 18
	chartHeight    = 90
)

// hudLine is a single row of HUD text.
type hudLine struct {
	text   string
	header bool
}

// parameterLines flattens a snapshot into display rows, one header per group.
func parameterLines(snap core.ParameterSnapshot) []hudLine {
	var lines []hudLine
	for _, g := range snap.Groups {
		lines = append(lines, hudLine{text: g.Name, header: true})
		for _, p := range g.Params {
			lines = append(lines, hudLine{text: fmt.Sprintf("%-12s %s", p.Label, p.Value)})
		}
	}
	return lines
}

func buildTitle(name string) string {
	if name == "" {
		return "lifegrid"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// chartPoints maps bucket averages onto a rect, newest on the right edge.
// Values are scaled against the snapshot maximum; an all-zero series sits on
// the baseline.
func chartPoints(snap telemetry.Snapshot, rect image.Rectangle) []image.Point {
	n := len(snap.Averages)
	if n == 0 || rect.Dx() <= 0 || rect.Dy() <= 0 {
		return nil
	}
	step := float64(rect.Dx()-1) / float64(telemetry.BucketCount-1)
	offset := telemetry.BucketCount - n
	pts := make([]image.Point, n)
	for i, v := range snap.Averages {
		frac := 0.0
		if snap.Max > 0 {
			frac = v / snap.Max
		}
		x := rect.Min.X + int(float64(offset+i)*step)
		y := rect.Max.Y - 1 - int(frac*float64(rect.Dy()-1))
		pts[i] = image.Pt(x, y)
	}
	return pts
}

// cellRect returns the screen rectangle covered by grid cell (row, col).
func cellRect(row, col, scale int) image.Rectangle {
	if scale <= 0 {
		scale = 1
	}
	return image.Rect(col*scale, row*scale, (col+1)*scale, (row+1)*scale)
}

// ScreenToCell converts a cursor position to grid coordinates. ok is false
// when the position falls outside the size×size grid.
func ScreenToCell(x, y, scale, size int) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= size || col >= size {
		return 0, 0, false
	}
	return row, col, true
}
