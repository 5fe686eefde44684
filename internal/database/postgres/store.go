package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gamevault/backend/internal/domain"
)

// WishlistRepository implements repository.Wishlist for PostgreSQL
type WishlistRepository struct {
	db *pgxpool.Pool
}

// NewWishlistRepository creates a new WishlistRepository
func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// List returns the user's wishlist joined with catalog data, newest first
func (r *WishlistRepository) List(ctx context.Context, userID string) ([]domain.WishlistEntry, error) {
	rows, err := r.db.Query(ctx, SQLSelectWishlist, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wishlist: %w", err)
	}
	defer rows.Close()

	var entries []domain.WishlistEntry
	for rows.Next() {
		var e domain.WishlistEntry
		if err := rows.Scan(&e.ID, &e.GameID, &e.NotifyOnSale, &e.AddedAt,
			&e.Game.Title, &e.Game.Price, &e.Game.Discount, &e.Game.Platform); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist entry: %w", err)
		}
		e.Game.ID = e.GameID
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wishlist: %w", err)
	}
	return entries, nil
}

// Add inserts an entry, ignoring a duplicate (user, game) pair
func (r *WishlistRepository) Add(ctx context.Context, userID string, gameID int, notifyOnSale bool) error {
	if _, err := r.db.Exec(ctx, SQLInsertWishlistEntry, userID, gameID, notifyOnSale); err != nil {
		return fmt.Errorf("failed to add wishlist entry: %w", err)
	}
	return nil
}

// Remove deletes the entry for the (user, game) pair
func (r *WishlistRepository) Remove(ctx context.Context, userID string, gameID int) error {
	if _, err := r.db.Exec(ctx, SQLDeleteWishlistEntry, userID, gameID); err != nil {
		return fmt.Errorf("failed to remove wishlist entry: %w", err)
	}
	return nil
}

// PriceHistoryRepository implements repository.PriceHistory for PostgreSQL
type PriceHistoryRepository struct {
	db *pgxpool.Pool
}

// NewPriceHistoryRepository creates a new PriceHistoryRepository
func NewPriceHistoryRepository(db *pgxpool.Pool) *PriceHistoryRepository {
	return &PriceHistoryRepository{db: db}
}

// GetRecent returns price points recorded within the last `days` days, oldest first
func (r *PriceHistoryRepository) GetRecent(ctx context.Context, gameID, days int) ([]domain.PricePoint, error) {
	rows, err := r.db.Query(ctx, SQLSelectRecentPrices, gameID, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	defer rows.Close()

	var points []domain.PricePoint
	for rows.Next() {
		var p domain.PricePoint
		if err := rows.Scan(&p.Price, &p.DiscountPercent, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan price point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read price history: %w", err)
	}
	return points, nil
}

// GetStats returns min/max/avg over the game's full recorded history
func (r *PriceHistoryRepository) GetStats(ctx context.Context, gameID int) (*domain.PriceStats, error) {
	var s domain.PriceStats
	err := r.db.QueryRow(ctx, SQLSelectPriceStats, gameID).Scan(&s.MinPrice, &s.MaxPrice, &s.AvgPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to get price stats: %w", err)
	}
	return &s, nil
}

// RecordSnapshot appends one price point per catalog game
func (r *PriceHistoryRepository) RecordSnapshot(ctx context.Context) (int, error) {
	tag, err := r.db.Exec(ctx, SQLInsertPriceSnapshot)
	if err != nil {
		return 0, fmt.Errorf("failed to record price snapshot: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// GiftRepository implements repository.Gift for PostgreSQL
type GiftRepository struct {
	db *pgxpool.Pool
}

// NewGiftRepository creates a new GiftRepository
func NewGiftRepository(db *pgxpool.Pool) *GiftRepository {
	return &GiftRepository{db: db}
}

// ListSent returns gifts the user has sent, newest first
func (r *GiftRepository) ListSent(ctx context.Context, senderID string) ([]domain.Gift, error) {
	rows, err := r.db.Query(ctx, SQLSelectSentGifts, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query gifts: %w", err)
	}
	defer rows.Close()

	var gifts []domain.Gift
	for rows.Next() {
		var g domain.Gift
		if err := rows.Scan(&g.ID, &g.RecipientEmail, &g.GameID, &g.GiftCode,
			&g.Message, &g.CreatedAt, &g.RedeemedAt, &g.GameTitle); err != nil {
			return nil, fmt.Errorf("failed to scan gift: %w", err)
		}
		g.SenderID = senderID
		g.Redeemed = g.RedeemedAt != nil
		gifts = append(gifts, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read gifts: %w", err)
	}
	return gifts, nil
}

// Create inserts a new gift and fills in its generated id and timestamp
func (r *GiftRepository) Create(ctx context.Context, gift *domain.Gift) error {
	err := r.db.QueryRow(ctx, SQLInsertGift,
		gift.SenderID, gift.RecipientEmail, gift.GameID, gift.GiftCode, gift.Message).
		Scan(&gift.ID, &gift.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create gift: %w", err)
	}
	return nil
}

// Redeem marks the gift with the given code redeemed, exactly once
func (r *GiftRepository) Redeem(ctx context.Context, giftCode string, now time.Time) (*domain.Gift, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer SafeRollback(ctx, tx)

	var g domain.Gift
	err = tx.QueryRow(ctx, SQLSelectGiftByCodeForUpdate, giftCode).Scan(
		&g.ID, &g.SenderID, &g.RecipientEmail, &g.GameID, &g.GiftCode,
		&g.Message, &g.CreatedAt, &g.RedeemedAt, &g.GameTitle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGiftNotFound
		}
		return nil, fmt.Errorf("failed to get gift: %w", err)
	}
	if g.RedeemedAt != nil {
		return nil, domain.ErrGiftAlreadyRedeemed
	}

	if _, err := tx.Exec(ctx, SQLMarkGiftRedeemed, g.ID, now); err != nil {
		return nil, fmt.Errorf("failed to mark gift redeemed: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	g.RedeemedAt = &now
	g.Redeemed = true
	return &g, nil
}
