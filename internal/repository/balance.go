package repository

import (
	"context"

	"github.com/gamevault/backend/internal/domain"
)

// Balance defines storage operations for user cashback/bonus balances.
// All mutations are additive upserts - a balance row is never overwritten.
type Balance interface {
	// GetOrCreate returns the user's balance, inserting a zero row first if
	// the user has none.
	GetOrCreate(ctx context.Context, userID string) (*domain.UserBalance, error)

	// AddCashback increments the cashback balance by amount.
	AddCashback(ctx context.Context, userID string, amount float64) error

	// AddBonusPoints increments the bonus point counter by points.
	AddBonusPoints(ctx context.Context, userID string, points int) error
}
