package repository

import (
	"context"
	"time"

	"github.com/gamevault/backend/internal/domain"
)

// Lootbox defines storage operations for lootbox draws.
//
// ApplyOutcome is the single write path: it runs the history insert, the
// cooldown upsert and the conditional bonus credit in one transaction,
// guarded by an advisory lock on the (user, box) pair. It re-checks the
// cooldown under the lock and returns domain.ErrBoxOnCooldown if another
// draw won the race.
type Lootbox interface {
	// GetBox returns the box configuration, or domain.ErrBoxNotFound.
	GetBox(ctx context.Context, boxID int) (*domain.LootBox, error)

	// GetBoxItems returns the box's prize table in stable storage order.
	GetBoxItems(ctx context.Context, boxID int) ([]domain.LootBoxItem, error)

	// GetCooldown returns the cooldown row for the pair, or nil if the user
	// has never opened the box.
	GetCooldown(ctx context.Context, userID string, boxID int) (*domain.LootBoxCooldown, error)

	// ApplyOutcome atomically persists a draw: history insert, cooldown
	// upsert, and a bonus point credit when the item type is "discount".
	// Returns the new next_available_at.
	ApplyOutcome(ctx context.Context, userID string, box *domain.LootBox, item domain.LootBoxItem, now time.Time) (time.Time, error)

	// ListBoxes returns every box annotated with the caller's availability.
	ListBoxes(ctx context.Context, userID string) ([]domain.LootBoxListing, error)

	// GetHistory returns the caller's most recent draws, newest first.
	GetHistory(ctx context.Context, userID string, limit int) ([]domain.LootBoxHistoryEntry, error)
}
