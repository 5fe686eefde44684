package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gamevault/backend/internal/domain"
)

// PromoRepository implements repository.Promo for PostgreSQL
type PromoRepository struct {
	db *pgxpool.Pool
}

// NewPromoRepository creates a new PromoRepository
func NewPromoRepository(db *pgxpool.Pool) *PromoRepository {
	return &PromoRepository{db: db}
}

// GetByCode looks a promo code up case-insensitively
func (r *PromoRepository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	var p domain.PromoCode
	err := r.db.QueryRow(ctx, SQLSelectPromoByCode, strings.ToUpper(code)).Scan(
		&p.ID, &p.Code, &p.DiscountPercent, &p.MaxUses, &p.CurrentUses,
		&p.ValidFrom, &p.ValidUntil, &p.IsActive, &p.MinPurchaseAmount, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPromoNotFound
		}
		return nil, fmt.Errorf("failed to get promo code: %w", err)
	}
	return &p, nil
}

// HasUsed reports whether the user already has a usage row for the promo
func (r *PromoRepository) HasUsed(ctx context.Context, promoID int, userID string) (bool, error) {
	var count int
	if err := r.db.QueryRow(ctx, SQLCountPromoUsageByUser, promoID, userID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count promo usage: %w", err)
	}
	return count > 0, nil
}

// RecordUsage increments current_uses and appends a usage row in one transaction
func (r *PromoRepository) RecordUsage(ctx context.Context, promoID int, userID string, discountAmount float64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, SQLIncrementPromoUses, promoID); err != nil {
		return fmt.Errorf("failed to increment promo uses: %w", err)
	}
	if _, err := tx.Exec(ctx, SQLInsertPromoUsage, promoID, userID, discountAmount); err != nil {
		return fmt.Errorf("failed to record promo usage: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}

// ListActive returns currently usable promo codes
func (r *PromoRepository) ListActive(ctx context.Context, now time.Time) ([]domain.PromoCode, error) {
	rows, err := r.db.Query(ctx, SQLListActivePromos, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query promo codes: %w", err)
	}
	defer rows.Close()

	var promos []domain.PromoCode
	for rows.Next() {
		var p domain.PromoCode
		if err := rows.Scan(&p.ID, &p.Code, &p.DiscountPercent, &p.MaxUses, &p.CurrentUses,
			&p.ValidFrom, &p.ValidUntil, &p.IsActive, &p.MinPurchaseAmount, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan promo code: %w", err)
		}
		promos = append(promos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read promo codes: %w", err)
	}
	return promos, nil
}
