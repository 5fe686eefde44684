package lootbox

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/gamevault/backend/internal/domain"
	"github.com/gamevault/backend/internal/logger"
	"github.com/gamevault/backend/internal/metrics"
	"github.com/gamevault/backend/internal/repository"
)

// ListResult is the payload of the list endpoint: every box with the
// caller's availability, plus their recent draw history.
type ListResult struct {
	Lootboxes []domain.LootBoxListing      `json:"lootboxes"`
	History   []domain.LootBoxHistoryEntry `json:"history"`
}

// Service defines the lootbox operations
type Service interface {
	// Open performs one draw for the (user, box) pair: eligibility check,
	// weighted selection, atomic outcome persistence.
	Open(ctx context.Context, userID string, boxID int) (*domain.DrawResult, error)

	// List returns all boxes with the caller's availability and their last
	// draws, newest first.
	List(ctx context.Context, userID string) (*ListResult, error)
}

type service struct {
	repo  repository.Lootbox
	cache *configCache

	// rnd and now are injected for deterministic tests
	rnd func() float64
	now func() time.Time
}

// NewService creates a new lootbox service. rnd is the randomness source for
// draws; pass nil to use the process default.
func NewService(repo repository.Lootbox, rnd func() float64) Service {
	if rnd == nil {
		rnd = rand.Float64
	}
	return &service{
		repo:  repo,
		cache: newConfigCache(),
		rnd:   rnd,
		now:   time.Now,
	}
}

// Open runs the draw sequence. Each step aborts the whole request: an active
// cooldown, an unknown or empty box, and any persistence failure all leave no
// visible state behind.
func (s *service) Open(ctx context.Context, userID string, boxID int) (*domain.DrawResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" || boxID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := s.now()

	// Cheap unlocked check first; ApplyOutcome rechecks under the advisory
	// lock, so a stale read here only costs a wasted draw.
	cd, err := s.repo.GetCooldown(ctx, userID, boxID)
	if err != nil {
		return nil, err
	}
	if eligible, next := cooldownState(cd, now); !eligible {
		log.Debug(LogMsgBoxOnCooldown, "user_id", userID, "lootbox_id", boxID, "next_available", next)
		return nil, domain.ErrBoxOnCooldown{LootBoxID: boxID, NextAvailable: next}
	}

	cfg, err := s.getConfig(ctx, boxID)
	if err != nil {
		return nil, err
	}
	if len(cfg.Items) == 0 {
		return nil, domain.ErrBoxEmpty
	}

	item, err := drawItem(cfg.Items, s.rnd)
	if err != nil {
		return nil, err
	}

	nextAvailable, err := s.repo.ApplyOutcome(ctx, userID, cfg.Box, item, now)
	if err != nil {
		if errors.Is(err, domain.ErrBoxOnCooldown{}) {
			log.Debug(LogMsgDrawLostRace, "user_id", userID, "lootbox_id", boxID)
		}
		return nil, err
	}

	metrics.LootboxOpens.WithLabelValues(cfg.Box.Name).Inc()
	metrics.LootboxItemsWon.WithLabelValues(item.ItemType).Inc()
	if item.ItemType == domain.ItemTypeDiscount {
		metrics.BonusPointsCredited.Add(float64(item.Value))
	}

	log.Info(LogMsgDrawApplied,
		"user_id", userID,
		"lootbox_id", boxID,
		"item_type", item.ItemType,
		"item_name", item.ItemName,
		"next_available", nextAvailable)

	return &domain.DrawResult{Item: item, NextAvailable: nextAvailable}, nil
}

// List returns all boxes with availability plus the caller's recent history
func (s *service) List(ctx context.Context, userID string) (*ListResult, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}

	boxes, err := s.repo.ListBoxes(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.repo.GetHistory(ctx, userID, DefaultHistoryLimit)
	if err != nil {
		return nil, err
	}

	return &ListResult{Lootboxes: boxes, History: history}, nil
}

// getConfig loads box configuration through the LRU cache
func (s *service) getConfig(ctx context.Context, boxID int) (*cachedBoxConfig, error) {
	if cfg, ok := s.cache.Get(boxID); ok {
		return cfg, nil
	}

	box, err := s.repo.GetBox(ctx, boxID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.GetBoxItems(ctx, boxID)
	if err != nil {
		return nil, err
	}

	cfg := &cachedBoxConfig{Box: box, Items: items}
	s.cache.Set(boxID, cfg)
	return cfg, nil
}
