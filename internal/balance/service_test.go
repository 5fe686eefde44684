package balance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/backend/internal/domain"
)

type mockBalanceRepo struct {
	mock.Mock
}

func (m *mockBalanceRepo) GetOrCreate(ctx context.Context, userID string) (*domain.UserBalance, error) {
	args := m.Called(ctx, userID)
	if bal := args.Get(0); bal != nil {
		return bal.(*domain.UserBalance), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBalanceRepo) AddCashback(ctx context.Context, userID string, amount float64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *mockBalanceRepo) AddBonusPoints(ctx context.Context, userID string, points int) error {
	args := m.Called(ctx, userID, points)
	return args.Error(0)
}

func TestGet(t *testing.T) {
	repo := new(mockBalanceRepo)
	svc := NewService(repo)

	want := &domain.UserBalance{UserID: "user-1", CashbackBalance: 12.5, BonusPoints: 300}
	repo.On("GetOrCreate", mock.Anything, "user-1").Return(want, nil)

	got, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGet_EmptyUser(t *testing.T) {
	svc := NewService(new(mockBalanceRepo))
	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_AddCashback(t *testing.T) {
	repo := new(mockBalanceRepo)
	svc := NewService(repo)

	repo.On("AddCashback", mock.Anything, "user-1", 5.25).Return(nil)

	err := svc.Adjust(context.Background(), "user-1", domain.BalanceActionAddCashback, 5.25)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAdjust_AddBonus(t *testing.T) {
	repo := new(mockBalanceRepo)
	svc := NewService(repo)

	repo.On("AddBonusPoints", mock.Anything, "user-1", 100).Return(nil)

	err := svc.Adjust(context.Background(), "user-1", domain.BalanceActionAddBonus, 100)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAdjust_UnknownAction(t *testing.T) {
	svc := NewService(new(mockBalanceRepo))
	err := svc.Adjust(context.Background(), "user-1", "withdraw", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidBalanceAction)
}

func TestAdjust_RejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(new(mockBalanceRepo))

	err := svc.Adjust(context.Background(), "user-1", domain.BalanceActionAddCashback, 0)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)

	err = svc.Adjust(context.Background(), "user-1", domain.BalanceActionAddCashback, -5)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestCredit(t *testing.T) {
	repo := new(mockBalanceRepo)
	svc := NewService(repo)

	repo.On("AddBonusPoints", mock.Anything, "user-1", 50).Return(nil)

	err := svc.Credit(context.Background(), "user-1", 50)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCredit_RejectsNonPositivePoints(t *testing.T) {
	svc := NewService(new(mockBalanceRepo))
	err := svc.Credit(context.Background(), "user-1", 0)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}
