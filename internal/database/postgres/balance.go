package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gamevault/backend/internal/domain"
)

// BalanceRepository implements repository.Balance for PostgreSQL
type BalanceRepository struct {
	db *pgxpool.Pool
}

// NewBalanceRepository creates a new BalanceRepository
func NewBalanceRepository(db *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// GetOrCreate returns the user's balance, inserting a zero row if absent
func (r *BalanceRepository) GetOrCreate(ctx context.Context, userID string) (*domain.UserBalance, error) {
	if _, err := r.db.Exec(ctx, SQLEnsureBalanceRow, userID); err != nil {
		return nil, fmt.Errorf("failed to ensure balance row: %w", err)
	}

	var b domain.UserBalance
	err := r.db.QueryRow(ctx, SQLSelectBalance, userID).Scan(
		&b.UserID, &b.CashbackBalance, &b.BonusPoints, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &b, nil
}

// AddCashback increments the cashback balance by amount
func (r *BalanceRepository) AddCashback(ctx context.Context, userID string, amount float64) error {
	if _, err := r.db.Exec(ctx, SQLAddCashback, userID, amount); err != nil {
		return fmt.Errorf("failed to add cashback: %w", err)
	}
	return nil
}

// AddBonusPoints increments the bonus point counter by points
func (r *BalanceRepository) AddBonusPoints(ctx context.Context, userID string, points int) error {
	if _, err := r.db.Exec(ctx, SQLAddBonusPoints, userID, points); err != nil {
		return fmt.Errorf("failed to add bonus points: %w", err)
	}
	return nil
}
