package wishlist

import (
	"context"

	"github.com/gamevault/backend/internal/domain"
	"github.com/gamevault/backend/internal/repository"
)

// Service manages a user's wishlist
type Service interface {
	List(ctx context.Context, userID string) ([]domain.WishlistEntry, error)
	Add(ctx context.Context, userID string, gameID int, notifyOnSale bool) error
	Remove(ctx context.Context, userID string, gameID int) error
}

type service struct {
	repo repository.Wishlist
}

// NewService creates a new wishlist service
func NewService(repo repository.Wishlist) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID string) ([]domain.WishlistEntry, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.List(ctx, userID)
}

func (s *service) Add(ctx context.Context, userID string, gameID int, notifyOnSale bool) error {
	if userID == "" || gameID <= 0 {
		return domain.ErrInvalidInput
	}
	return s.repo.Add(ctx, userID, gameID, notifyOnSale)
}

func (s *service) Remove(ctx context.Context, userID string, gameID int) error {
	if userID == "" || gameID <= 0 {
		return domain.ErrInvalidInput
	}
	return s.repo.Remove(ctx, userID, gameID)
}
