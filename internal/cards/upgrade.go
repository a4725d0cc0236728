package cards

// Policy is the static upgrade configuration.
type Policy struct {
	Enabled bool
	MaxCost int64
}

// Purchase records one level-up bought during a pass.
type Purchase struct {
	Card      Card  // card after the level-up
	Remaining int64 // balance left after paying for it
}

// Result is the outcome of one upgrade pass.
type Result struct {
	Balance   int64
	Cards     []Card
	Purchases []Purchase
}

// Eligible reports whether a card of the given cost may be bought. Both
// conditions are independent and must hold.
func Eligible(balance, cost, maxCost int64) bool {
	if cost > maxCost {
		return false
	}
	if balance < cost {
		return false
	}
	return true
}

// Upgrade runs a single left-to-right greedy pass over a fresh copy of the
// catalog, buying every card that is affordable and under the cap once.
// There is no backtracking and no attempt at an optimal selection.
func Upgrade(balance int64, catalog *Catalog, policy Policy) Result {
	cards := catalog.Cards()
	result := Result{Balance: balance, Cards: cards}

	if !policy.Enabled {
		return result
	}

	for i := range cards {
		if !Eligible(result.Balance, cards[i].Cost, policy.MaxCost) {
			continue
		}
		result.Balance -= cards[i].Cost
		cards[i].Level++
		result.Purchases = append(result.Purchases, Purchase{
			Card:      cards[i],
			Remaining: result.Balance,
		})
	}

	return result
}
