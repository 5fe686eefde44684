package promo

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/gamevault/backend/internal/domain"
	"github.com/gamevault/backend/internal/logger"
	"github.com/gamevault/backend/internal/metrics"
	"github.com/gamevault/backend/internal/repository"
)

// Service validates and applies storefront promo codes
type Service interface {
	// Apply validates the code against the purchase amount and, on success,
	// records the usage and returns the computed discount. Each user can
	// apply a given code once.
	Apply(ctx context.Context, code, userID string, purchaseAmount float64) (*domain.PromoApplication, error)

	// ListActive returns promo codes currently open for use.
	ListActive(ctx context.Context) ([]domain.PromoCode, error)
}

type service struct {
	repo repository.Promo
	now  func() time.Time
}

// NewService creates a new promo code service
func NewService(repo repository.Promo) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Apply(ctx context.Context, code, userID string, purchaseAmount float64) (*domain.PromoApplication, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	if userID == "" {
		userID = "anonymous"
	}

	promo, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := validate(promo, purchaseAmount, now); err != nil {
		return nil, err
	}

	// One application per user, anonymous carts included.
	used, err := s.repo.HasUsed(ctx, promo.ID, userID)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, domain.ErrPromoAlreadyUsed
	}

	discount := round2(purchaseAmount * float64(promo.DiscountPercent) / 100)

	if err := s.repo.RecordUsage(ctx, promo.ID, userID, discount); err != nil {
		return nil, err
	}

	metrics.PromoCodesApplied.WithLabelValues(promo.Code).Inc()
	logger.FromContext(ctx).Info("Promo code applied",
		"code", promo.Code, "user_id", userID, "discount", discount)

	return &domain.PromoApplication{
		Code:            promo.Code,
		DiscountPercent: promo.DiscountPercent,
		DiscountAmount:  discount,
		FinalAmount:     round2(purchaseAmount - discount),
		Description:     promo.Description,
	}, nil
}

func (s *service) ListActive(ctx context.Context) ([]domain.PromoCode, error) {
	return s.repo.ListActive(ctx, s.now())
}

// validate checks every usability condition in the order the storefront
// reports them to users.
func validate(promo *domain.PromoCode, purchaseAmount float64, now time.Time) error {
	if !promo.IsActive {
		return domain.ErrPromoInactive
	}
	if promo.ValidFrom != nil && promo.ValidFrom.After(now) {
		return domain.ErrPromoNotStarted
	}
	if promo.ValidUntil != nil && promo.ValidUntil.Before(now) {
		return domain.ErrPromoExpired
	}
	if promo.MaxUses > 0 && promo.CurrentUses >= promo.MaxUses {
		return domain.ErrPromoExhausted
	}
	if purchaseAmount < promo.MinPurchaseAmount {
		return domain.ErrPromoMinPurchase
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
