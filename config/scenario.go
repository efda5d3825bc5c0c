package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/luca-patrignani/deck-odds/domain/deck"
)

// Scenario describes a combo question: which piles must show up, and after
// how many cards.
type Scenario struct {
	DeckSize  int             `mapstructure:"deck_size" validate:"gte=0"`
	HandSize  int             `mapstructure:"hand_size" validate:"gte=0"`
	Draws     *int            `mapstructure:"draws" validate:"omitempty,gte=0"`
	Turn      int             `mapstructure:"turn" validate:"gte=0"`
	OnThePlay bool            `mapstructure:"on_the_play"`
	Groups    []ScenarioGroup `mapstructure:"groups" validate:"required,dive"`
}

type ScenarioGroup struct {
	Name  string `mapstructure:"name" validate:"required"`
	Count int    `mapstructure:"count" validate:"gte=0"`
	Min   *int   `mapstructure:"min"`
	Max   *int   `mapstructure:"max"`
}

// LoadScenario reads a scenario file. Deck and hand size fall back to cfg,
// and the player is on the play unless on_the_play says otherwise.
func LoadScenario(path string, cfg *Config) (*Scenario, error) {
	v := viper.New()
	v.SetDefault("deck_size", cfg.DeckSize)
	v.SetDefault("hand_size", cfg.HandSize)
	v.SetDefault("on_the_play", true)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	s := &Scenario{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return s, nil
}

// DrawCount returns the number of cards seen: Draws when set, otherwise the
// cards seen by Turn, otherwise the opening hand.
func (s *Scenario) DrawCount() int {
	if s.Draws != nil {
		return *s.Draws
	}
	if s.Turn > 0 {
		return deck.CardsSeen(s.Turn, s.HandSize, s.OnThePlay)
	}
	return s.HandSize
}

// Deck builds the deck described by the scenario.
func (s *Scenario) Deck() (*deck.Deck, error) {
	piles := make([]deck.Pile, len(s.Groups))
	for i, g := range s.Groups {
		piles[i] = deck.Pile{Name: g.Name, Count: g.Count, Min: g.Min, Max: g.Max}
	}
	return deck.NewDeck(s.DeckSize, piles...)
}
