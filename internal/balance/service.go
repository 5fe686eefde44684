package balance

import (
	"context"

	"github.com/gamevault/backend/internal/domain"
	"github.com/gamevault/backend/internal/logger"
	"github.com/gamevault/backend/internal/repository"
)

// Service manages user cashback and bonus point balances.
// Mutations are strictly additive; a balance is never overwritten.
type Service interface {
	// Get returns the user's balance, creating a zero row on first access.
	Get(ctx context.Context, userID string) (*domain.UserBalance, error)

	// Adjust applies a named additive action ("add_cashback" / "add_bonus").
	Adjust(ctx context.Context, userID, action string, amount float64) error

	// Credit increments the bonus point counter. It exists solely as the
	// credit surface for external collaborators; nothing in this module
	// calls it. The lootbox discount payout writes the same table inside
	// its own transaction and deliberately bypasses this method.
	Credit(ctx context.Context, userID string, points int) error
}

type service struct {
	repo repository.Balance
}

// NewService creates a new balance service
func NewService(repo repository.Balance) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, userID string) (*domain.UserBalance, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.GetOrCreate(ctx, userID)
}

func (s *service) Adjust(ctx context.Context, userID, action string, amount float64) error {
	if userID == "" {
		return domain.ErrInvalidInput
	}
	if amount <= 0 {
		return domain.ErrNegativeAmount
	}

	log := logger.FromContext(ctx)

	switch action {
	case domain.BalanceActionAddCashback:
		if err := s.repo.AddCashback(ctx, userID, amount); err != nil {
			return err
		}
	case domain.BalanceActionAddBonus:
		if err := s.repo.AddBonusPoints(ctx, userID, int(amount)); err != nil {
			return err
		}
	default:
		return domain.ErrInvalidBalanceAction
	}

	log.Info("Balance adjusted", "user_id", userID, "action", action, "amount", amount)
	return nil
}

func (s *service) Credit(ctx context.Context, userID string, points int) error {
	if userID == "" {
		return domain.ErrInvalidInput
	}
	if points <= 0 {
		return domain.ErrNegativeAmount
	}
	return s.repo.AddBonusPoints(ctx, userID, points)
}
