package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds the tunable match parameters. Every field has a default so
// a zero-config match is playable; a YAML file overrides selectively.
type Balance struct {
	StartingHP   int            `yaml:"starting_hp"`
	StartingMana int            `yaml:"starting_mana"`
	StartingGold int            `yaml:"starting_gold"`
	DeckSize     int            `yaml:"deck_size"`
	OpeningHand  int            `yaml:"opening_hand"`
	HandLimit    int            `yaml:"hand_limit"`
	ManaPerTurn  int            `yaml:"mana_per_turn"`
	TypeWeights  map[string]int `yaml:"type_weights"`
}

// DefaultBalance returns the stock rule set.
func DefaultBalance() Balance {
	return Balance{
		StartingHP:   40,
		StartingMana: 10,
		StartingGold: 30,
		DeckSize:     60,
		OpeningHand:  9,
		HandLimit:    9,
		ManaPerTurn:  2,
		TypeWeights: map[string]int{
			"weapon":  40,
			"armor":   30,
			"miracle": 10,
			"item":    10,
			"action":  10,
		},
	}
}

// LoadBalance reads a YAML balance file, filling unset fields with defaults.
func LoadBalance(path string) (Balance, error) {
	b := DefaultBalance()

	data, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("parse balance YAML: %w", err)
	}

	if b.HandLimit <= 0 {
		b.HandLimit = DefaultBalance().HandLimit
	}
	// Weighted sampling needs a positive weight sum and no negative entries;
	// an unusable table falls back to the defaults like an absent one.
	total := 0
	for _, w := range b.TypeWeights {
		if w < 0 {
			total = 0
			break
		}
		total += w
	}
	if total <= 0 {
		b.TypeWeights = DefaultBalance().TypeWeights
	}
	return b, nil
}

// typeWeights converts the YAML-keyed weight table to CardType keys.
func (b Balance) typeWeights() map[CardType]int {
	keys := map[string]CardType{
		"weapon":  CardTypeWeapon,
		"armor":   CardTypeArmor,
		"miracle": CardTypeMiracle,
		"item":    CardTypeItem,
		"action":  CardTypeAction,
	}
	weights := make(map[CardType]int, len(keys))
	for name, t := range keys {
		weights[t] = b.TypeWeights[name]
	}
	return weights
}
