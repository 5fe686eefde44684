package repository

import (
	"context"
	"time"

	"github.com/gamevault/backend/internal/domain"
)

// Promo defines storage operations for promo codes.
type Promo interface {
	// GetByCode looks a promo code up case-insensitively, or returns
	// domain.ErrPromoNotFound.
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)

	// HasUsed reports whether the user has a usage row for the promo.
	HasUsed(ctx context.Context, promoID int, userID string) (bool, error)

	// RecordUsage increments current_uses and appends a usage row for the
	// user in one transaction.
	RecordUsage(ctx context.Context, promoID int, userID string, discountAmount float64) error

	// ListActive returns currently usable promo codes.
	ListActive(ctx context.Context, now time.Time) ([]domain.PromoCode, error)
}

// Wishlist defines storage operations for user wishlists.
type Wishlist interface {
	List(ctx context.Context, userID string) ([]domain.WishlistEntry, error)

	// Add inserts an entry, ignoring a duplicate (user, game) pair.
	Add(ctx context.Context, userID string, gameID int, notifyOnSale bool) error

	Remove(ctx context.Context, userID string, gameID int) error
}

// PriceHistory defines read operations for a game's recorded prices.
type PriceHistory interface {
	// GetRecent returns price points recorded within the last `days` days,
	// oldest first.
	GetRecent(ctx context.Context, gameID, days int) ([]domain.PricePoint, error)

	// GetStats returns min/max/avg over the game's full recorded history.
	GetStats(ctx context.Context, gameID int) (*domain.PriceStats, error)

	// RecordSnapshot appends one price point per catalog game and returns the
	// number of rows recorded.
	RecordSnapshot(ctx context.Context) (int, error)
}

// Gift defines storage operations for game gifts.
type Gift interface {
	ListSent(ctx context.Context, senderID string) ([]domain.Gift, error)

	Create(ctx context.Context, gift *domain.Gift) error

	// Redeem marks the gift with the given code redeemed. Returns
	// domain.ErrGiftNotFound for an unknown code and
	// domain.ErrGiftAlreadyRedeemed when redeemed_at is already set.
	Redeem(ctx context.Context, giftCode string, now time.Time) (*domain.Gift, error)
}
