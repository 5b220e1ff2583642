package statsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBetStats(t *testing.T) {
	service, repo := NewMock(t)
	userID := uuid.New()

	repo.EXPECT().BetTotals(gomock.Any(), userID).Return(domain.BetTotals{
		Count: 3, Wins: 1, Losses: 1, Pending: 1,
		Staked: d("250.00"), Profit: d("70.00"),
	}, nil)

	stats, err := service.BetStats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalBets)
	assert.Equal(t, "320.00", stats.TotalReturns.StringFixed(2))
	assert.Equal(t, "33.33", stats.WinRate.StringFixed(2))
	assert.Equal(t, "28.00", stats.ROI.StringFixed(2))
}

func TestBetStats_Empty(t *testing.T) {
	service, repo := NewMock(t)
	userID := uuid.New()

	repo.EXPECT().BetTotals(gomock.Any(), userID).Return(domain.BetTotals{}, nil)

	stats, err := service.BetStats(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, stats.WinRate.IsZero())
	assert.True(t, stats.ROI.IsZero())
}

func TestBankrollBalance(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name            string
		prepareMock     func(repo *MockRepo)
		expectedBalance string
		expectedErr     bool
	}{
		{
			name: "Deposits minus withdrawals plus profit",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().BetTotals(gomock.Any(), userID).Return(domain.BetTotals{Profit: d("84.00")}, nil)
				repo.EXPECT().TransactionTotals(gomock.Any(), userID).Return(domain.TransactionTotals{
					Deposits: d("1500.00"), Withdrawals: d("200.00"),
				}, nil)
			},
			expectedBalance: "1384.00",
		},
		{
			name: "Losses can drive the balance negative",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().BetTotals(gomock.Any(), userID).Return(domain.BetTotals{Profit: d("-150.00")}, nil)
				repo.EXPECT().TransactionTotals(gomock.Any(), userID).Return(domain.TransactionTotals{
					Deposits: d("100.00"), Withdrawals: decimal.Zero,
				}, nil)
			},
			expectedBalance: "-50.00",
		},
		{
			name: "Aggregate failure",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().BetTotals(gomock.Any(), userID).Return(domain.BetTotals{}, errors.New("database error"))
				repo.EXPECT().TransactionTotals(gomock.Any(), userID).Return(domain.TransactionTotals{}, nil).AnyTimes()
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			balance, err := service.BankrollBalance(context.Background(), userID)
			if tt.expectedErr {
				assert.Error(t, err)
				assert.Nil(t, balance)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, balance.CurrentBalance.StringFixed(2))
		})
	}
}

func TestBreakdown(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().Breakdown(ctx, userID, domain.GroupBySport).Return([]domain.GroupTotals{
		{Key: "Football", Count: 2, Wins: 1, Staked: d("150.00"), Profit: d("100.00")},
		{Key: "Tennis", Count: 1, Wins: 0, Staked: d("100.00"), Profit: d("-100.00")},
	}, nil)

	groups, err := service.Breakdown(ctx, userID, domain.GroupBySport)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "50.00", groups[0].WinRate.StringFixed(2))
	assert.Equal(t, "66.67", groups[0].ROI.StringFixed(2))
	assert.Equal(t, "-100.00", groups[1].ROI.StringFixed(2))

	_, err = service.Breakdown(ctx, userID, domain.GroupBy("selection"))
	assert.ErrorIs(t, err, ErrUnsupportedGrouping)

	repo.EXPECT().Breakdown(ctx, userID, domain.GroupByBookmaker).Return(nil, nil)
	groups, err = service.Breakdown(ctx, userID, domain.GroupByBookmaker)
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
