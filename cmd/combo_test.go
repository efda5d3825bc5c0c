package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/luca-patrignani/deck-odds/domain/probability"
)

func TestPileFlags_Set(t *testing.T) {
	var p pileFlags
	for _, v := range []string{"bond:3", "blood:2:1:1", "lands:38:0"} {
		if err := p.Set(v); err != nil {
			t.Fatalf("unexpected error for %q: %v", v, err)
		}
	}
	if len(p) != 3 {
		t.Fatalf("expected 3 piles, got %d", len(p))
	}
	if p[0].Min != nil || p[0].Max != nil {
		t.Fatal("expected default window for bond")
	}
	if *p[1].Min != 1 || *p[1].Max != 1 {
		t.Fatalf("expected window [1,1], got [%d,%d]", *p[1].Min, *p[1].Max)
	}
	if *p[2].Min != 0 || p[2].Max != nil {
		t.Fatal("expected explicit zero min for lands")
	}
	if p.String() != "bond:3,blood:2,lands:38" {
		t.Fatalf("unexpected String() %q", p.String())
	}
}

func TestPileFlags_SetInvalid(t *testing.T) {
	var p pileFlags
	for _, v := range []string{"bond", "bond:x", "a:1:2:3:4"} {
		if err := p.Set(v); err == nil {
			t.Fatalf("expected error for %q", v)
		}
	}
}

func TestParseCombo_Turn(t *testing.T) {
	c, err := parseCombo("combo", []string{"--group", "bond:3", "--group", "blood:2", "--turn", "8", "--on-the-play=false"}, testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.draws != 15 {
		t.Fatalf("expected 15 cards seen, got %d", c.draws)
	}
	p, err := c.deck.ComboProbability(c.draws)
	if err != nil {
		t.Fatal(err)
	}
	if p <= 0.10 || p >= 0.15 {
		t.Fatalf("expected probability between 0.10 and 0.15, got %v", p)
	}
}

func TestParseCombo_DrawDefaultsToHand(t *testing.T) {
	c, err := parseCombo("combo", []string{"--group", "lands:38:2:4"}, testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.draws != 7 || c.trials != 2000 || c.workers != 2 {
		t.Fatalf("unexpected combo %+v", c)
	}
}

func TestParseCombo_TooManyCards(t *testing.T) {
	_, err := parseCombo("combo", []string{"--deck", "10", "--group", "a:6", "--group", "b:5"}, testConfig())
	if !errors.Is(err, probability.ErrInvalidShape) {
		t.Fatalf("expected invalid shape, got %v", err)
	}
}

func TestParseCombo_NoGroups(t *testing.T) {
	if _, err := parseCombo("combo", nil, testConfig()); err == nil {
		t.Fatal("expected error without groups")
	}
}

func TestParseCombo_Scenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combo.yaml")
	body := "deck_size: 100\ndraws: 3\ngroups:\n  - name: a\n    count: 3\n    min: 2\n  - name: b\n    count: 2\n    min: 2\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := parseCombo("combo", []string{"--scenario", path}, testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := c.deck.ComboProbability(c.draws)
	if err != nil {
		t.Fatal(err)
	}
	if p != 0 {
		t.Fatalf("expected 0 for four required cards in three draws, got %v", p)
	}
}
