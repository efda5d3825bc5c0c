package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/deck-odds/config"
	"github.com/luca-patrignani/deck-odds/domain/deck"
	"github.com/luca-patrignani/deck-odds/domain/probability"
)

const usage = `usage: deck-odds <command> [flags]

commands:
  exactly   --target K [--deck N] [--draw n] [--k k]
  at-least  --target K [--deck N] [--draw n] [--k k]
  at-most   --target K [--deck N] [--draw n] [--k k]
  between   --target K [--deck N] [--draw n] [--min a] [--max b]
  table     --target K [--deck N] [--draw n]
  combo     --scenario file | --group name:count[:min[:max]] ... [--deck N] [--draw n | --turn t]
  simulate  same flags as combo, plus [--trials T] [--workers W]
`

func main() {
	if wantsUsage(os.Args[1:]) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:], cfg, logger); err != nil {
		if errors.Is(err, probability.ErrInvalidShape) {
			pterm.Error.Println("total group cards exceeds population size, or more cards are drawn than the deck holds")
		}
		logger.Error("command failed", "command", os.Args[1], "error", err.Error())
		os.Exit(1)
	}
}

// wantsUsage reports whether args ask for help instead of a command.
func wantsUsage(args []string) bool {
	return len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help"
}

// newLogger returns a slog logger printing through pterm at the given level.
func newLogger(level string) *slog.Logger {
	l := pterm.DefaultLogger.WithLevel(pterm.LogLevelInfo)
	switch level {
	case "debug":
		l = l.WithLevel(pterm.LogLevelDebug)
	case "warn":
		l = l.WithLevel(pterm.LogLevelWarn)
	case "error":
		l = l.WithLevel(pterm.LogLevelError)
	}
	return slog.New(pterm.NewSlogHandler(l))
}

func run(ctx context.Context, command string, args []string, cfg *config.Config, logger *slog.Logger) error {
	switch command {
	case modeExactly, modeAtLeast, modeAtMost, modeBetween:
		q, err := parseQuery(command, args, cfg)
		if err != nil {
			return err
		}
		logger.Debug("evaluating draw", "mode", q.mode, "deck", q.deck, "target", q.target, "draw", q.draw)
		pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getQueryPanel(q, q.evaluate())}}).Render()
		return nil

	case modeTable:
		q, err := parseQuery(command, args, cfg)
		if err != nil {
			return err
		}
		logger.Debug("building draw table", "deck", q.deck, "target", q.target, "draw", q.draw)
		pterm.DefaultSection.Printfln("%d target cards in %d, drawing %d", q.target, q.deck, q.draw)
		return pterm.DefaultTable.WithHasHeader().WithData(tableData(probability.Distribution(q.deck, q.target, q.draw))).Render()

	case "combo":
		c, err := parseCombo(command, args, cfg)
		if err != nil {
			return err
		}
		p, err := c.deck.ComboProbability(c.draws)
		if err != nil {
			return err
		}
		logger.Debug("evaluated combo", "groups", len(c.deck.Piles), "draws", c.draws, "probability", p)
		pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getComboPanel(c, p, nil)}}).Render()
		return nil

	case "simulate":
		c, err := parseCombo(command, args, cfg)
		if err != nil {
			return err
		}
		p, err := c.deck.ComboProbability(c.draws)
		if err != nil {
			return err
		}
		spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Shuffling %d games ...", c.trials))
		est, err := deck.Simulate(ctx, c.deck, c.draws, c.trials, c.workers)
		if err != nil {
			spinner.Fail()
			return err
		}
		spinner.Success()
		logger.Info("simulation finished", "trials", est.Trials, "hits", est.Hits, "exact", p)
		pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getComboPanel(c, p, &est)}}).Render()
		return nil
	}
	return fmt.Errorf("unknown command %q", command)
}
