package main

import (
	"fmt"
	"strings"

	"lifegrid/internal/core"
	"lifegrid/internal/rules"

	"github.com/logrusorgru/aurora"
)

var glyphs = map[core.Cell]string{
	core.Alive: aurora.Green("█").String(),
	core.Dying: aurora.Yellow("▓").String(),
}

var treeGlyphs = map[core.Cell]string{
	core.Leaf:  aurora.BrightGreen("♣").String(),
	core.Trunk: aurora.Yellow("║").String(),
}

func label(name, value string) string {
	return " " + aurora.Colorize(name, aurora.GreenFg).String() + ": " + value
}

func progressLine(generation, live int) string {
	return fmt.Sprintf("  generation %s  live %s",
		aurora.Cyan(fmt.Sprintf("%6d", generation)),
		aurora.Bold(fmt.Sprintf("%6d", live)))
}

func printParameters(snap core.ParameterSnapshot) {
	for _, g := range snap.Groups {
		fmt.Println(aurora.Colorize(g.Name, aurora.BlueFg))
		for _, p := range g.Params {
			fmt.Println(label(p.Label, p.Value))
		}
	}
}

// renderGrid draws g one text row per grid row; empty cells are spaces.
func renderGrid(g *core.Grid, k rules.Kind) string {
	set := glyphs
	if k == rules.Tree {
		set = treeGlyphs
	}
	var b strings.Builder
	for row := 0; row < g.N; row++ {
		for col := 0; col < g.N; col++ {
			if s, ok := set[g.At(row, col)]; ok {
				b.WriteString(s)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
