package promo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/backend/internal/domain"
)

type mockPromoRepo struct {
	mock.Mock
}

func (m *mockPromoRepo) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	args := m.Called(ctx, code)
	if promo := args.Get(0); promo != nil {
		return promo.(*domain.PromoCode), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPromoRepo) HasUsed(ctx context.Context, promoID int, userID string) (bool, error) {
	args := m.Called(ctx, promoID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPromoRepo) RecordUsage(ctx context.Context, promoID int, userID string, discountAmount float64) error {
	args := m.Called(ctx, promoID, userID, discountAmount)
	return args.Error(0)
}

func (m *mockPromoRepo) ListActive(ctx context.Context, now time.Time) ([]domain.PromoCode, error) {
	args := m.Called(ctx, now)
	if promos := args.Get(0); promos != nil {
		return promos.([]domain.PromoCode), args.Error(1)
	}
	return nil, args.Error(1)
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func activePromo() *domain.PromoCode {
	return &domain.PromoCode{
		ID:              1,
		Code:            "SUMMER20",
		DiscountPercent: 20,
		IsActive:        true,
	}
}

func newTestService(repo *mockPromoRepo) *service {
	return &service{repo: repo, now: func() time.Time { return testNow }}
}

func TestApply_Success(t *testing.T) {
	repo := new(mockPromoRepo)
	svc := newTestService(repo)

	repo.On("GetByCode", mock.Anything, "SUMMER20").Return(activePromo(), nil)
	repo.On("HasUsed", mock.Anything, 1, "user-1").Return(false, nil)
	repo.On("RecordUsage", mock.Anything, 1, "user-1", 11.8).Return(nil)

	result, err := svc.Apply(context.Background(), "summer20", "user-1", 59.0)
	require.NoError(t, err)
	assert.Equal(t, "SUMMER20", result.Code)
	assert.Equal(t, 20, result.DiscountPercent)
	assert.Equal(t, 11.8, result.DiscountAmount)
	assert.Equal(t, 47.2, result.FinalAmount)
	repo.AssertExpectations(t)
}

func TestApply_NormalizesCode(t *testing.T) {
	repo := new(mockPromoRepo)
	svc := newTestService(repo)

	repo.On("GetByCode", mock.Anything, "SUMMER20").Return(activePromo(), nil)
	repo.On("HasUsed", mock.Anything, 1, "user-1").Return(false, nil)
	repo.On("RecordUsage", mock.Anything, 1, "user-1", mock.Anything).Return(nil)

	_, err := svc.Apply(context.Background(), "  summer20  ", "user-1", 10)
	require.NoError(t, err)
	repo.AssertCalled(t, "GetByCode", mock.Anything, "SUMMER20")
}

func TestApply_AnonymousUser(t *testing.T) {
	repo := new(mockPromoRepo)
	svc := newTestService(repo)

	repo.On("GetByCode", mock.Anything, "SUMMER20").Return(activePromo(), nil)
	repo.On("HasUsed", mock.Anything, 1, "anonymous").Return(false, nil)
	repo.On("RecordUsage", mock.Anything, 1, "anonymous", mock.Anything).Return(nil)

	_, err := svc.Apply(context.Background(), "SUMMER20", "", 10)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestApply_EmptyCode(t *testing.T) {
	svc := newTestService(new(mockPromoRepo))
	_, err := svc.Apply(context.Background(), "   ", "user-1", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_ValidationOrder(t *testing.T) {
	hourAgo := testNow.Add(-time.Hour)
	hourAhead := testNow.Add(time.Hour)

	tests := []struct {
		name    string
		mutate  func(*domain.PromoCode)
		amount  float64
		wantErr error
	}{
		{
			name:    "inactive",
			mutate:  func(p *domain.PromoCode) { p.IsActive = false },
			amount:  100,
			wantErr: domain.ErrPromoInactive,
		},
		{
			name:    "not started",
			mutate:  func(p *domain.PromoCode) { p.ValidFrom = &hourAhead },
			amount:  100,
			wantErr: domain.ErrPromoNotStarted,
		},
		{
			name:    "expired",
			mutate:  func(p *domain.PromoCode) { p.ValidUntil = &hourAgo },
			amount:  100,
			wantErr: domain.ErrPromoExpired,
		},
		{
			name: "exhausted",
			mutate: func(p *domain.PromoCode) {
				p.MaxUses = 5
				p.CurrentUses = 5
			},
			amount:  100,
			wantErr: domain.ErrPromoExhausted,
		},
		{
			name:    "below minimum purchase",
			mutate:  func(p *domain.PromoCode) { p.MinPurchaseAmount = 50 },
			amount:  49.99,
			wantErr: domain.ErrPromoMinPurchase,
		},
		{
			name: "inactive wins over expired",
			mutate: func(p *domain.PromoCode) {
				p.IsActive = false
				p.ValidUntil = &hourAgo
			},
			amount:  100,
			wantErr: domain.ErrPromoInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockPromoRepo)
			svc := newTestService(repo)

			promo := activePromo()
			tt.mutate(promo)
			repo.On("GetByCode", mock.Anything, "SUMMER20").Return(promo, nil)

			_, err := svc.Apply(context.Background(), "SUMMER20", "user-1", tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "HasUsed", mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "RecordUsage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestApply_SecondUseBySameUserRejected(t *testing.T) {
	repo := new(mockPromoRepo)
	svc := newTestService(repo)

	repo.On("GetByCode", mock.Anything, "SUMMER20").Return(activePromo(), nil)
	repo.On("HasUsed", mock.Anything, 1, "user-1").Return(false, nil).Once()
	repo.On("HasUsed", mock.Anything, 1, "user-1").Return(true, nil).Once()
	repo.On("RecordUsage", mock.Anything, 1, "user-1", mock.Anything).Return(nil)

	_, err := svc.Apply(context.Background(), "SUMMER20", "user-1", 100)
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), "SUMMER20", "user-1", 100)
	assert.ErrorIs(t, err, domain.ErrPromoAlreadyUsed)
	repo.AssertNumberOfCalls(t, "RecordUsage", 1)
}

func TestApply_ZeroMaxUsesIsUnlimited(t *testing.T) {
	repo := new(mockPromoRepo)
	svc := newTestService(repo)

	promo := activePromo()
	promo.MaxUses = 0
	promo.CurrentUses = 100000

	repo.On("GetByCode", mock.Anything, "SUMMER20").Return(promo, nil)
	repo.On("HasUsed", mock.Anything, 1, "user-1").Return(false, nil)
	repo.On("RecordUsage", mock.Anything, 1, "user-1", mock.Anything).Return(nil)

	_, err := svc.Apply(context.Background(), "SUMMER20", "user-1", 10)
	assert.NoError(t, err)
}

func TestApply_UnknownCode(t *testing.T) {
	repo := new(mockPromoRepo)
	svc := newTestService(repo)

	repo.On("GetByCode", mock.Anything, "NOPE").Return(nil, domain.ErrPromoNotFound)

	_, err := svc.Apply(context.Background(), "NOPE", "user-1", 10)
	assert.ErrorIs(t, err, domain.ErrPromoNotFound)
}

func TestApply_RoundsToCents(t *testing.T) {
	repo := new(mockPromoRepo)
	svc := newTestService(repo)

	promo := activePromo()
	promo.DiscountPercent = 33

	repo.On("GetByCode", mock.Anything, "SUMMER20").Return(promo, nil)
	repo.On("HasUsed", mock.Anything, 1, "user-1").Return(false, nil)
	repo.On("RecordUsage", mock.Anything, 1, "user-1", 3.3).Return(nil)

	result, err := svc.Apply(context.Background(), "SUMMER20", "user-1", 9.99)
	require.NoError(t, err)
	assert.Equal(t, 3.3, result.DiscountAmount)
	assert.Equal(t, 6.69, result.FinalAmount)
}

func TestListActive(t *testing.T) {
	repo := new(mockPromoRepo)
	svc := newTestService(repo)

	promos := []domain.PromoCode{*activePromo()}
	repo.On("ListActive", mock.Anything, testNow).Return(promos, nil)

	result, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, promos, result)
}
