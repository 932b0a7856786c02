package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtoyoda/pokehand/internal/deck"
	"github.com/mtoyoda/pokehand/internal/input"
	"github.com/mtoyoda/pokehand/internal/odds"
)

type CLI struct {
	Threshold string `arg:"" help:"HP threshold, shown in labels only (e.g. 70)"`
	Below     string `arg:"" help:"Basic Pokémon at or below the threshold"`
	Above     string `arg:"" help:"Basic Pokémon above the threshold"`
	Curve     bool   `short:"c" help:"Sweep the below-threshold count across the whole deck"`
	Decimals  int    `short:"d" default:"2" help:"Decimal places for percentages"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	percentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	ev := odds.Evaluate(cli.Threshold, cli.Below, cli.Above)
	if !ev.Valid() {
		for _, line := range errorLines(ev) {
			fmt.Fprintln(os.Stderr, errorStyle.Render(line))
		}
		ctx.Exit(1)
	}

	displayResult(ev, cli.Decimals)

	if cli.Curve {
		fmt.Println()
		displayCurve(ev.Above.Value, cli.Decimals)
	}
}

// errorLines collects one message per failed check, in field order.
func errorLines(ev odds.Evaluation) []string {
	var lines []string
	if ev.Threshold.Err != input.None {
		lines = append(lines, fmt.Sprintf("threshold: %s", ev.Threshold.Err))
	}
	if ev.Below.Err != input.None {
		lines = append(lines, fmt.Sprintf("below-count: %s", ev.Below.Err))
	}
	if ev.Above.Err != input.None {
		lines = append(lines, fmt.Sprintf("above-count: %s", ev.Above.Err))
	}
	if ev.TotalErr != input.None {
		lines = append(lines, fmt.Sprintf("total: %s", ev.TotalErr))
	}
	return lines
}

func displayResult(ev odds.Evaluation, decimals int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%d\n",
		labelStyle.Render(fmt.Sprintf("Basics with HP ≤ %d", ev.Threshold.Value)),
		ev.Below.Value)
	fmt.Fprintf(w, "%s\t%d\n",
		labelStyle.Render(fmt.Sprintf("Basics with HP > %d", ev.Threshold.Value)),
		ev.Above.Value)
	fmt.Fprintf(w, "%s\t%d\n", labelStyle.Render("Other cards"), ev.Other)
	w.Flush()

	fmt.Printf("\n%s %s\n",
		headerStyle.Render("Chance of exactly one weak Basic in the opener:"),
		percentStyle.Render(ev.FormatPercentPrec(decimals)))
}

// curveRow is one point of the sweep: a below-threshold count and the
// probability it yields with the above-threshold count held fixed.
type curveRow struct {
	below int
	prob  float64
}

// curveRows sweeps the below-threshold count over every value that still
// fits in the deck next to the fixed above-threshold count.
func curveRows(above int) []curveRow {
	rows := make([]curveRow, 0, deck.Size+1)
	for below := 0; below+above <= deck.Size; below++ {
		rows = append(rows, curveRow{
			below: below,
			prob:  odds.Probability(below, odds.OtherCount(below, above)),
		})
	}
	return rows
}

func displayCurve(above, decimals int) {
	fmt.Println(headerStyle.Render(
		fmt.Sprintf("Sweep with %d above-threshold Basics held fixed", above)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("below"), headerStyle.Render("chance"))
	for _, row := range curveRows(above) {
		fmt.Fprintf(w, "%d\t%s\n",
			row.below,
			percentStyle.Render(fmt.Sprintf("%.*f%%", decimals, row.prob*100)))
	}
	w.Flush()
}
