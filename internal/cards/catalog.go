package cards

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Card is one upgradable card. Level is never persisted; every pass starts
// from the catalog's level.
type Card struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Cost  int64  `yaml:"cost"`
	Level int    `yaml:"level"`
}

// Catalog is the ordered template the upgrade pass copies from.
type Catalog struct {
	cards []Card
}

type catalogFile struct {
	Cards []Card `yaml:"cards"`
}

// DefaultCatalog returns the built-in two-card catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{cards: []Card{
		{ID: 1, Name: "Card A", Cost: 200000, Level: 1},
		{ID: 2, Name: "Card B", Cost: 300000, Level: 1},
	}}
}

// NewCatalog validates cards and wraps them in a Catalog.
func NewCatalog(cards []Card) (*Catalog, error) {
	seen := make(map[int]bool, len(cards))
	out := make([]Card, 0, len(cards))

	for i, card := range cards {
		if card.Cost < 0 {
			return nil, fmt.Errorf("card %d (%s): cost must be >= 0, got %d", card.ID, card.Name, card.Cost)
		}
		if seen[card.ID] {
			return nil, fmt.Errorf("card at position %d: duplicate id %d", i, card.ID)
		}
		seen[card.ID] = true

		if card.Level <= 0 {
			card.Level = 1
		}
		if card.Name == "" {
			card.Name = fmt.Sprintf("Card %d", card.ID)
		}
		out = append(out, card)
	}

	return &Catalog{cards: out}, nil
}

// LoadCatalog reads a YAML catalog of the form:
//
//	cards:
//	  - id: 1
//	    name: Card A
//	    cost: 200000
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse card catalog: %w", err)
	}
	if len(file.Cards) == 0 {
		return nil, fmt.Errorf("card catalog %s has no cards", path)
	}

	return NewCatalog(file.Cards)
}

// Cards returns a fresh copy of the catalog, so levels never carry over
// between passes.
func (c *Catalog) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Len returns the number of cards in the catalog
func (c *Catalog) Len() int {
	return len(c.cards)
}
