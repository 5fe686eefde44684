package pricehistory

import (
	"context"

	"github.com/gamevault/backend/internal/domain"
	"github.com/gamevault/backend/internal/repository"
)

const (
	// DefaultWindowDays bounds a history query when the caller gives none.
	DefaultWindowDays = 30
	// MaxWindowDays caps how far back a single query may reach.
	MaxWindowDays = 365
)

// History bundles a game's recent price points with aggregate stats.
type History struct {
	GameID int                `json:"game_id"`
	Points []domain.PricePoint `json:"history"`
	Stats  *domain.PriceStats  `json:"stats,omitempty"`
}

// Service exposes recorded price data for games
type Service interface {
	Get(ctx context.Context, gameID, days int) (*History, error)
}

type service struct {
	repo repository.PriceHistory
}

// NewService creates a new price history service
func NewService(repo repository.PriceHistory) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, gameID, days int) (*History, error) {
	if gameID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if days <= 0 {
		days = DefaultWindowDays
	}
	if days > MaxWindowDays {
		days = MaxWindowDays
	}

	points, err := s.repo.GetRecent(ctx, gameID, days)
	if err != nil {
		return nil, err
	}

	history := &History{GameID: gameID, Points: points}
	if len(points) > 0 {
		stats, err := s.repo.GetStats(ctx, gameID)
		if err != nil {
			return nil, err
		}
		history.Stats = stats
	}
	return history, nil
}
