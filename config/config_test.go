package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/deck-odds/domain/probability"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.DeckSize)
	assert.Equal(t, 7, cfg.HandSize)
	assert.Equal(t, 100000, cfg.Trials)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DECK_ODDS_DECK_SIZE", "60")
	t.Setenv("DECK_ODDS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.DeckSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("DECK_ODDS_WORKERS", "0")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("DECK_ODDS_WORKERS", "2")
	t.Setenv("DECK_ODDS_LOG_LEVEL", "loud")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("DECK_ODDS_LOG_LEVEL", "info")
	t.Setenv("DECK_ODDS_HAND_SIZE", "seven")
	_, err = Load()
	require.Error(t, err)
}

func writeScenario(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func defaults() *Config {
	return &Config{DeckSize: 100, HandSize: 7, Trials: 10, Workers: 1, LogLevel: "info"}
}

func TestLoadScenario_Turn(t *testing.T) {
	path := writeScenario(t, "combo.yaml", `
turn: 8
on_the_play: true
groups:
  - name: Sanguine Bond
    count: 3
  - name: Exquisite Blood
    count: 2
    min: 1
    max: 2
`)
	s, err := LoadScenario(path, defaults())
	require.NoError(t, err)
	assert.Equal(t, 100, s.DeckSize)
	assert.Equal(t, 14, s.DrawCount())
	require.Len(t, s.Groups, 2)
	assert.Nil(t, s.Groups[0].Min)
	require.NotNil(t, s.Groups[1].Max)
	assert.Equal(t, 2, *s.Groups[1].Max)

	d, err := s.Deck()
	require.NoError(t, err)
	assert.Equal(t, 95, d.Other())
}

func TestLoadScenario_ExplicitDraws(t *testing.T) {
	path := writeScenario(t, "combo.json", `{"deck_size": 60, "draws": 10, "turn": 3, "groups": [{"name": "lands", "count": 24, "min": 0}]}`)
	s, err := LoadScenario(path, defaults())
	require.NoError(t, err)
	assert.Equal(t, 10, s.DrawCount())
	require.NotNil(t, s.Groups[0].Min)
	assert.Equal(t, 0, *s.Groups[0].Min)
}

func TestLoadScenario_OpeningHand(t *testing.T) {
	path := writeScenario(t, "hand.yaml", "groups:\n  - name: lands\n    count: 38\n")
	s, err := LoadScenario(path, defaults())
	require.NoError(t, err)
	assert.Equal(t, 7, s.DrawCount())
}

func TestLoadScenario_Errors(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"), defaults())
	require.Error(t, err)

	path := writeScenario(t, "nogroups.yaml", "deck_size: 60\n")
	_, err = LoadScenario(path, defaults())
	require.Error(t, err)

	path = writeScenario(t, "unnamed.yaml", "groups:\n  - count: 3\n")
	_, err = LoadScenario(path, defaults())
	require.Error(t, err)
}

func TestScenario_DeckTooLarge(t *testing.T) {
	path := writeScenario(t, "big.yaml", "deck_size: 10\ngroups:\n  - name: a\n    count: 6\n  - name: b\n    count: 5\n")
	s, err := LoadScenario(path, defaults())
	require.NoError(t, err)
	_, err = s.Deck()
	require.ErrorIs(t, err, probability.ErrInvalidShape)
}

func TestLoadScenario_OnThePlayByDefault(t *testing.T) {
	path := writeScenario(t, "turn.yaml", "turn: 8\ngroups:\n  - name: bond\n    count: 3\n")
	s, err := LoadScenario(path, defaults())
	require.NoError(t, err)
	assert.True(t, s.OnThePlay)
	assert.Equal(t, 14, s.DrawCount())

	path = writeScenario(t, "draw.yaml", "turn: 8\non_the_play: false\ngroups:\n  - name: bond\n    count: 3\n")
	s, err = LoadScenario(path, defaults())
	require.NoError(t, err)
	assert.Equal(t, 15, s.DrawCount())
}
