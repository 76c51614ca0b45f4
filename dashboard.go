// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/avlkit/avl"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// levelWidths returns the node count of every level, root first, with
// "d0", "d1", ... labels for a bar chart.
func levelWidths(tree *avl.Tree) ([]float64, []string) {
	var data []float64
	var labels []string
	for depth, level := range tree.Levels() {
		data = append(data, float64(len(level)))
		labels = append(labels, fmt.Sprintf("d%d", depth))
	}
	return data, labels
}

func dashboardStats(tree *avl.Tree, stats FilterStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "size:    %d\n", tree.Size())
	fmt.Fprintf(&sb, "height:  %d\n", tree.Height())
	if lo, err := tree.Min(); err == nil {
		hi, _ := tree.Max()
		fmt.Fprintf(&sb, "range:   [%d, %d]\n", lo, hi)
	}
	if err := tree.Validate(); err != nil {
		fmt.Fprintf(&sb, "check:   [%v](fg:red)\n", err)
	} else {
		fmt.Fprintf(&sb, "check:   [ok](fg:green)\n")
	}
	fmt.Fprintf(&sb, "lookups: %d (%d skipped by filter, %d rebuilds)", stats.Lookups, stats.Skipped, stats.Rebuilds)
	return sb.String()
}

// computeHeaderRatio reserves at least three lines and no more than a
// quarter of the screen for the key help row.
func computeHeaderRatio(termHeight int) float64 {
	if termHeight <= 0 {
		return 0.05
	}
	minLines := 3.0
	ratio := minLines / float64(termHeight)
	if ratio < 0.05 {
		ratio = 0.05
	}
	if ratio > 0.25 {
		ratio = 0.25
	}
	return ratio
}

func runDashboard(session *Session, seed int64) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)+1))

	chart := widgets.NewBarChart()
	chart.Title = " Nodes per level "
	chart.BarWidth = 4
	chart.BarColors = []ui.Color{GetColorScheme().Primary}
	chart.LabelStyles = []ui.Style{StyleText()}
	chart.NumStyles = []ui.Style{ui.NewStyle(ui.ColorBlack)}
	chart.BorderStyle = StyleBorder(true)

	statsPara := widgets.NewParagraph()
	statsPara.Title = " Tree "
	statsPara.BorderStyle = StyleBorder(false)

	levelList := widgets.NewList()
	levelList.Title = " Levels "
	levelList.TextStyle = StyleText()
	levelList.WrapText = false
	levelList.BorderStyle = StyleBorder(false)
	levelList.SelectedRowStyle = StyleAccent()

	keysPara := widgets.NewParagraph()
	keysPara.Title = " Keys "
	keysPara.Text = "[+](fg:green) insert random  [-](fg:green) remove min  [f](fg:green) find random  [c](fg:green) clear  [q](fg:green) quit"
	keysPara.TextStyle = StyleTextMuted()

	refresh := func() {
		stats := session.Tree().Stats()
		session.Tree().View(func(tree *avl.Tree) {
			chart.Data, chart.Labels = levelWidths(tree)
			statsPara.Text = dashboardStats(tree, stats)
			statsPara.BorderStyle = StyleStatus(tree.Validate() == nil)
			levelList.Rows = levelList.Rows[:0]
			for depth, level := range tree.Levels() {
				levelList.Rows = append(levelList.Rows, fmt.Sprintf("%2d: %s", depth, joinKeys(level)))
			}
		})
	}

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	layout := func(width, height int) {
		ratio := computeHeaderRatio(height)
		grid.SetRect(0, 0, width, height)
		grid.Set(
			ui.NewRow(1-ratio,
				ui.NewCol(0.6, chart),
				ui.NewCol(0.4,
					ui.NewRow(0.4, statsPara),
					ui.NewRow(0.6, levelList),
				),
			),
			ui.NewRow(ratio, keysPara),
		)
	}
	layout(termWidth, termHeight)
	refresh()
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "+":
			session.Tree().Insert(rng.IntN(1000))
		case "-":
			var lo int
			var err error
			session.Tree().View(func(tree *avl.Tree) { lo, err = tree.Min() })
			if err == nil {
				session.Tree().Remove(lo)
			}
		case "f":
			session.Tree().Find(rng.IntN(1000))
		case "c":
			session.Tree().Clear()
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				layout(payload.Width, payload.Height)
			}
			ui.Clear()
		}
		refresh()
		ui.Render(grid)
	}
	return nil
}
