package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/deck-odds/domain/deck"
)

// formatPercent renders a probability as a percentage with two decimals.
func formatPercent(p float64) string {
	return strconv.FormatFloat(p*100, 'f', 2, 64) + "%"
}

// formatOdds renders a probability as "1 in X". A zero probability has no odds.
func formatOdds(p float64) string {
	if p <= 0 {
		return "never"
	}
	return "1 in " + strconv.FormatFloat(1/p, 'f', 2, 64)
}

func box(title string) *pterm.BoxPrinter {
	return pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1).
		WithTitle(pterm.LightYellow(title)).WithTitleTopCenter()
}

// getQueryPanel shows the deck setup, the question and its answer.
func getQueryPanel(q query, p float64) pterm.Panel {
	share := 0.0
	if q.deck > 0 {
		share = float64(q.target) / float64(q.deck) * 100
	}
	setup := pterm.Sprintfln("Total cards in deck: %d\nTarget cards in deck: %d (%.1f%%)\nCards drawn: %d",
		q.deck, q.target, share, q.draw)
	question := pterm.Sprintfln("What's the probability of drawing %s target card(s)?", pterm.LightCyan(q.describe()))
	return pterm.Panel{Data: box("|HYPERGEOMETRIC|").Sprint(setup + "\n" + question + "\n" + resultLines(p))}
}

func resultLines(p float64) string {
	return pterm.Sprintfln("%s chance\nOdds: %s", pterm.LightGreen(formatPercent(p)), formatOdds(p))
}

// tableData builds the draw table: exact and at-least probability per count.
func tableData(table []float64) pterm.TableData {
	data := pterm.TableData{{"Drawn", "Exactly", "At least", "Odds (exactly)"}}
	tail := 0.0
	rows := make([][]string, len(table))
	for k := len(table) - 1; k >= 0; k-- {
		tail += table[k]
		rows[k] = []string{strconv.Itoa(k), formatPercent(table[k]), formatPercent(tail), formatOdds(table[k])}
	}
	return append(data, rows...)
}

// getComboPanel lists the piles of a combo with the exact probability and,
// when sim is not nil, the simulated estimate.
func getComboPanel(c combo, exact float64, sim *deck.Estimate) pterm.Panel {
	info := pterm.Sprintfln("Total cards in deck: %d\nCards drawn: %d", c.deck.Size, c.draws)
	for _, g := range c.deck.Groups() {
		lo, hi := g.Window(c.draws)
		info += pterm.Sprintfln("  %s: %d in deck, want %s", pterm.LightCyan(g.Name), g.Count, window(lo, min(hi, g.Count)))
	}
	info += pterm.Sprintfln("  other: %d in deck", c.deck.Other())
	info += "\n" + resultLines(exact)
	if sim != nil {
		info += pterm.Sprintfln("Simulated: %s ± %s over %d games",
			formatPercent(sim.Probability), formatPercent(sim.StdErr), sim.Trials)
	}
	return pterm.Panel{Data: box("|COMBO|").Sprint(info)}
}

func window(lo, hi int) string {
	lo = max(lo, 0)
	if lo == hi {
		return fmt.Sprintf("exactly %d", lo)
	}
	if lo > hi {
		return "impossible"
	}
	return fmt.Sprintf("%d to %d", lo, hi)
}
