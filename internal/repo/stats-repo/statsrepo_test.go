package statsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRepository_BetTotals(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  domain.BetTotals
	}{
		{
			name: "Aggregates bets",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("COUNT(*) FILTER (WHERE result = 'Won')")).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows([]string{"count", "wins", "losses", "pushes", "pending", "staked", "profit"}).
						AddRow(int64(3), int64(1), int64(1), int64(0), int64(1), d("300.00"), d("84.00")))
			},
			expected: domain.BetTotals{Count: 3, Wins: 1, Losses: 1, Pending: 1, Staked: d("300.00"), Profit: d("84.00")},
		},
		{
			name: "No bets yields zeros",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bets WHERE user_id = $1")).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows([]string{"count", "wins", "losses", "pushes", "pending", "staked", "profit"}).
						AddRow(int64(0), int64(0), int64(0), int64(0), int64(0), d("0"), d("0")))
			},
			expected: domain.BetTotals{Staked: d("0"), Profit: d("0")},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bets")).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			totals, err := repo.BetTotals(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, totals)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_TransactionTotals(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SUM(amount) FILTER (WHERE type = 'deposit')")).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"deposits", "withdrawals"}).AddRow(d("1500.00"), d("200.00")))
	totals, err := repo.TransactionTotals(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "1500.00", totals.Deposits.StringFixed(2))
	assert.Equal(t, "200.00", totals.Withdrawals.StringFixed(2))

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
		WithArgs(userID).
		WillReturnError(errors.New("database error"))
	_, err = repo.TransactionTotals(context.Background(), userID)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Breakdown(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	columns := []string{"key", "count", "wins", "staked", "profit"}

	tests := []struct {
		name      string
		by        domain.GroupBy
		mockSetup func()
		expectErr bool
		expected  []domain.GroupTotals
	}{
		{
			name: "Groups by bet type column",
			by:   "betType",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("GROUP BY bet_type")).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("Single", int64(4), int64(3), d("200"), d("-10")).
						AddRow("Accumulator", int64(1), int64(0), d("10"), d("-10")))
			},
			expected: []domain.GroupTotals{
				{Key: "Single", Count: 4, Wins: 3, Staked: d("200"), Profit: d("-10")},
				{Key: "Accumulator", Count: 1, Wins: 0, Staked: d("10"), Profit: d("-10")},
			},
		},
		{
			name: "No bets",
			by:   "sport",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("GROUP BY sport")).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(columns))
			},
			expected: []domain.GroupTotals{},
		},
		{
			name:      "Unknown grouping never reaches the database",
			by:        "user_id; DROP TABLE bets",
			mockSetup: func() {},
			expectErr: true,
		},
		{
			name: "Database error",
			by:   "bookmaker",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("GROUP BY bookmaker")).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			groups, err := repo.Breakdown(context.Background(), userID, tt.by)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, groups)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, groups)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
