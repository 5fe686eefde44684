package lootbox

import (
	"time"

	"github.com/gamevault/backend/internal/domain"
)

// drawItem performs a single weighted random selection over the prize table.
// Weights are relative - the draw normalizes against their sum. rnd must
// return a uniform value in [0, 1).
//
// The walk picks the first item whose cumulative weight reaches the roll.
// If floating point accumulation leaves the roll unreached, the last item
// wins; a non-empty table never yields "no winner".
func drawItem(items []domain.LootBoxItem, rnd func() float64) (domain.LootBoxItem, error) {
	if len(items) == 0 {
		return domain.LootBoxItem{}, domain.ErrBoxEmpty
	}

	total := 0.0
	for _, item := range items {
		total += item.Probability
	}
	if total <= 0 {
		return domain.LootBoxItem{}, domain.ErrZeroWeights
	}

	roll := rnd() * total
	cumulative := 0.0
	for _, item := range items {
		cumulative += item.Probability
		if cumulative >= roll {
			return item, nil
		}
	}

	return items[len(items)-1], nil
}

// cooldownState reports whether a pair's cooldown window is open.
// A nil row means the user has never opened the box and is always eligible.
func cooldownState(cd *domain.LootBoxCooldown, now time.Time) (eligible bool, nextAvailable time.Time) {
	if cd == nil {
		return true, time.Time{}
	}
	if now.Before(cd.NextAvailableAt) {
		return false, cd.NextAvailableAt
	}
	return true, time.Time{}
}
