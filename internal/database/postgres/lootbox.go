package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gamevault/backend/internal/domain"
	"github.com/gamevault/backend/internal/logger"
)

// LootboxRepository implements repository.Lootbox for PostgreSQL
type LootboxRepository struct {
	db *pgxpool.Pool
}

// NewLootboxRepository creates a new LootboxRepository
func NewLootboxRepository(db *pgxpool.Pool) *LootboxRepository {
	return &LootboxRepository{db: db}
}

// GetBox returns the box configuration row
func (r *LootboxRepository) GetBox(ctx context.Context, boxID int) (*domain.LootBox, error) {
	var box domain.LootBox
	err := r.db.QueryRow(ctx, SQLSelectLootbox, boxID).Scan(
		&box.ID, &box.Name, &box.Rarity, &box.Price, &box.CooldownHours, &box.ImageURL, &box.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBoxNotFound
		}
		return nil, fmt.Errorf("failed to get lootbox: %w", err)
	}
	return &box, nil
}

// GetBoxItems returns the prize table in stable storage order
func (r *LootboxRepository) GetBoxItems(ctx context.Context, boxID int) ([]domain.LootBoxItem, error) {
	rows, err := r.db.Query(ctx, SQLSelectLootboxItems, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lootbox items: %w", err)
	}
	defer rows.Close()

	var items []domain.LootBoxItem
	for rows.Next() {
		var item domain.LootBoxItem
		if err := rows.Scan(&item.ID, &item.LootBoxID, &item.ItemType, &item.ItemID,
			&item.ItemName, &item.Value, &item.Probability); err != nil {
			return nil, fmt.Errorf("failed to scan lootbox item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lootbox items: %w", err)
	}
	return items, nil
}

// GetCooldown returns the cooldown row for the pair (unlocked read), or nil
// when the user has never opened the box
func (r *LootboxRepository) GetCooldown(ctx context.Context, userID string, boxID int) (*domain.LootBoxCooldown, error) {
	return getCooldown(ctx, r.db, userID, boxID)
}

type pgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getCooldown(ctx context.Context, q pgxQuerier, userID string, boxID int) (*domain.LootBoxCooldown, error) {
	var cd domain.LootBoxCooldown
	err := q.QueryRow(ctx, SQLSelectCooldown, userID, boxID).Scan(
		&cd.UserID, &cd.LootBoxID, &cd.LastOpenedAt, &cd.NextAvailableAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // first-ever draw, always eligible
		}
		return nil, fmt.Errorf("failed to get cooldown: %w", err)
	}
	return &cd, nil
}

// ApplyOutcome persists a draw as one atomic unit: history insert, cooldown
// upsert and, for "discount" items, the bonus point credit. An advisory lock
// on the (user, box) pair serializes concurrent draws; the cooldown is
// re-checked under the lock so exactly one request per window can commit.
func (r *LootboxRepository) ApplyOutcome(ctx context.Context, userID string, box *domain.LootBox, item domain.LootBoxItem, now time.Time) (time.Time, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer SafeRollback(ctx, tx)

	// Advisory locks work even when no cooldown row exists yet, unlike
	// SELECT FOR UPDATE.
	lockKey := hashUserBox(userID, box.ID)
	if _, err := tx.Exec(ctx, SQLAdvisoryLock, lockKey); err != nil {
		return time.Time{}, fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}

	// Recheck eligibility with the lock held.
	cd, err := getCooldown(ctx, tx, userID, box.ID)
	if err != nil {
		return time.Time{}, err
	}
	if cd != nil && now.Before(cd.NextAvailableAt) {
		log.Debug("Concurrent draw lost cooldown race",
			"user_id", userID, "lootbox_id", box.ID, "next_available", cd.NextAvailableAt)
		return time.Time{}, domain.ErrBoxOnCooldown{LootBoxID: box.ID, NextAvailable: cd.NextAvailableAt}
	}

	if _, err := tx.Exec(ctx, SQLInsertHistory,
		userID, box.ID, item.ItemType, item.ItemID, item.ItemName, item.Value, now); err != nil {
		return time.Time{}, fmt.Errorf("failed to insert draw history: %w", err)
	}

	nextAvailable := now.Add(time.Duration(box.CooldownHours) * time.Hour)
	if _, err := tx.Exec(ctx, SQLUpsertCooldown, userID, box.ID, now, nextAvailable); err != nil {
		return time.Time{}, fmt.Errorf("failed to upsert cooldown: %w", err)
	}

	if item.ItemType == domain.ItemTypeDiscount {
		if _, err := tx.Exec(ctx, SQLAddBonusPoints, userID, item.Value); err != nil {
			return time.Time{}, fmt.Errorf("failed to credit bonus points: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return time.Time{}, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return nextAvailable, nil
}

// ListBoxes returns every box annotated with the caller's availability
func (r *LootboxRepository) ListBoxes(ctx context.Context, userID string) ([]domain.LootBoxListing, error) {
	rows, err := r.db.Query(ctx, SQLListLootboxes, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lootboxes: %w", err)
	}
	defer rows.Close()

	now := time.Now()
	var listings []domain.LootBoxListing
	for rows.Next() {
		var l domain.LootBoxListing
		var next *time.Time
		if err := rows.Scan(&l.ID, &l.Name, &l.Rarity, &l.Price, &l.CooldownHours,
			&l.ImageURL, &l.CreatedAt, &next); err != nil {
			return nil, fmt.Errorf("failed to scan lootbox listing: %w", err)
		}
		l.NextAvailableAt = next
		l.IsAvailable = next == nil || !now.Before(*next)
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lootbox listings: %w", err)
	}
	return listings, nil
}

// GetHistory returns the caller's most recent draws, newest first
func (r *LootboxRepository) GetHistory(ctx context.Context, userID string, limit int) ([]domain.LootBoxHistoryEntry, error) {
	rows, err := r.db.Query(ctx, SQLSelectHistory, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query draw history: %w", err)
	}
	defer rows.Close()

	var history []domain.LootBoxHistoryEntry
	for rows.Next() {
		var h domain.LootBoxHistoryEntry
		if err := rows.Scan(&h.ID, &h.UserID, &h.LootBoxID, &h.ItemWonType,
			&h.ItemWonID, &h.ItemWonName, &h.ValueWon, &h.OpenedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read draw history: %w", err)
	}
	return history, nil
}

// hashUserBox creates a consistent int64 hash from userID + boxID for advisory locking
func hashUserBox(userID string, boxID int) int64 {
	h := sha256.Sum256([]byte(userID + HashSeparator + strconv.Itoa(boxID)))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}
