package cards

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levels(cards []Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.Level
	}
	return out
}

func TestUpgradeBuysFirstOnly(t *testing.T) {
	res := Upgrade(450000, DefaultCatalog(), Policy{Enabled: true, MaxCost: 500000})

	assert.Equal(t, int64(250000), res.Balance)
	assert.Equal(t, []int{2, 1}, levels(res.Cards))
	require.Len(t, res.Purchases, 1)
	assert.Equal(t, 1, res.Purchases[0].Card.ID)
	assert.Equal(t, int64(250000), res.Purchases[0].Remaining)
}

func TestUpgradeBuysBoth(t *testing.T) {
	res := Upgrade(600000, DefaultCatalog(), Policy{Enabled: true, MaxCost: 500000})

	assert.Equal(t, int64(100000), res.Balance)
	assert.Equal(t, []int{2, 2}, levels(res.Cards))
	require.Len(t, res.Purchases, 2)
	assert.Equal(t, int64(400000), res.Purchases[0].Remaining)
	assert.Equal(t, int64(100000), res.Purchases[1].Remaining)
}

func TestUpgradeRespectsCap(t *testing.T) {
	res := Upgrade(10_000_000, DefaultCatalog(), Policy{Enabled: true, MaxCost: 250000})

	assert.Equal(t, int64(9_800_000), res.Balance)
	assert.Equal(t, []int{2, 1}, levels(res.Cards))
}

func TestUpgradeSkipsExpensiveThenBuysCheaper(t *testing.T) {
	catalog, err := NewCatalog([]Card{
		{ID: 1, Cost: 500},
		{ID: 2, Cost: 100},
	})
	require.NoError(t, err)

	res := Upgrade(300, catalog, Policy{Enabled: true, MaxCost: 1000})
	assert.Equal(t, int64(200), res.Balance)
	assert.Equal(t, []int{1, 2}, levels(res.Cards))
}

func TestUpgradeDisabledIsNoop(t *testing.T) {
	res := Upgrade(600000, DefaultCatalog(), Policy{Enabled: false, MaxCost: 500000})

	assert.Equal(t, int64(600000), res.Balance)
	assert.Empty(t, res.Purchases)
	assert.Equal(t, []int{1, 1}, levels(res.Cards))
}

func TestUpgradeLevelsDoNotPersist(t *testing.T) {
	catalog := DefaultCatalog()
	policy := Policy{Enabled: true, MaxCost: 500000}

	Upgrade(600000, catalog, policy)
	res := Upgrade(600000, catalog, policy)

	assert.Equal(t, []int{2, 2}, levels(res.Cards))
	assert.Equal(t, []int{1, 1}, levels(catalog.Cards()))
}

func TestUpgradeBalanceBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		n := rng.Intn(6)
		cards := make([]Card, n)
		for j := range cards {
			cards[j] = Card{ID: j, Cost: rng.Int63n(1000)}
		}
		catalog, err := NewCatalog(cards)
		require.NoError(t, err)

		start := rng.Int63n(3000)
		maxCost := rng.Int63n(1200)
		res := Upgrade(start, catalog, Policy{Enabled: true, MaxCost: maxCost})

		assert.GreaterOrEqual(t, res.Balance, int64(0))
		assert.LessOrEqual(t, res.Balance, start)
		for _, p := range res.Purchases {
			assert.LessOrEqual(t, p.Card.Cost, maxCost)
		}
	}
}

func TestEligible(t *testing.T) {
	assert.True(t, Eligible(100, 100, 100))
	assert.False(t, Eligible(99, 100, 1000))
	assert.False(t, Eligible(1000, 101, 100))
	assert.True(t, Eligible(0, 0, 0))
}

func TestNewCatalogValidation(t *testing.T) {
	_, err := NewCatalog([]Card{{ID: 1, Cost: -1}})
	assert.Error(t, err)

	_, err = NewCatalog([]Card{{ID: 1, Cost: 1}, {ID: 1, Cost: 2}})
	assert.Error(t, err)

	catalog, err := NewCatalog([]Card{{ID: 9, Cost: 5}})
	require.NoError(t, err)
	assert.Equal(t, []Card{{ID: 9, Name: "Card 9", Cost: 5, Level: 1}}, catalog.Cards())
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.yaml")
	content := `cards:
  - id: 10
    name: Striker
    cost: 1000
  - id: 11
    name: Keeper
    cost: 2500
    level: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, []Card{
		{ID: 10, Name: "Striker", Cost: 1000, Level: 1},
		{ID: 11, Name: "Keeper", Cost: 2500, Level: 3},
	}, catalog.Cards())

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("cards: []\n"), 0644))
	_, err = LoadCatalog(empty)
	assert.Error(t, err)

	_, err = LoadCatalog(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
