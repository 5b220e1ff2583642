package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txColumns = []string{"id", "user_id", "type", "amount", "description", "date", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	txID := uuid.New()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("500")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create deposit successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions (user_id, type, amount, description, date)`)).
					WithArgs(userID, domain.TransactionDeposit, amount, "Initial bankroll", date).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(txID, date))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
					WithArgs(userID, domain.TransactionDeposit, amount, "Initial bankroll", date).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), &domain.Transaction{
				UserID:      userID,
				Type:        domain.TransactionDeposit,
				Amount:      amount,
				Description: "Initial bankroll",
				Date:        date,
			})

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, txID, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	deposit := domain.Transaction{
		ID: uuid.New(), UserID: userID, Type: domain.TransactionDeposit,
		Amount: decimal.RequireFromString("1000.00"), Description: "Deposit", Date: date, CreatedAt: date,
	}
	withdrawal := domain.Transaction{
		ID: uuid.New(), UserID: userID, Type: domain.TransactionWithdrawal,
		Amount: decimal.RequireFromString("200.00"), Description: "Cash out", Date: date.Add(-time.Hour), CreatedAt: date,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  []domain.Transaction
	}{
		{
			name: "Returns transactions",
			mockSetup: func() {
				rows := pgxmock.NewRows(txColumns)
				for _, tx := range []domain.Transaction{deposit, withdrawal} {
					rows.AddRow(tx.ID, tx.UserID, tx.Type, tx.Amount, tx.Description, tx.Date, tx.CreatedAt)
				}
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions WHERE user_id = $1 ORDER BY date DESC`)).
					WithArgs(userID).
					WillReturnRows(rows)
			},
			expected: []domain.Transaction{deposit, withdrawal},
		},
		{
			name: "No transactions",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(txColumns))
			},
			expected: []domain.Transaction{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	id := uuid.New()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND user_id = $2`)).
		WithArgs(id, userID).
		WillReturnRows(pgxmock.NewRows(txColumns).
			AddRow(id, userID, domain.TransactionWithdrawal, decimal.RequireFromString("50.00"), "Cash out", date, date))
	tx, err := repo.FindByID(context.Background(), id, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionWithdrawal, tx.Type)
	assert.Equal(t, "50.00", tx.Amount.StringFixed(2))

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND user_id = $2`)).
		WithArgs(id, userID).
		WillReturnError(pgx.ErrNoRows)
	tx, err = repo.FindByID(context.Background(), id, userID)
	assert.NoError(t, err)
	assert.Nil(t, tx)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND user_id = $2`)).
		WithArgs(id, userID).
		WillReturnError(errors.New("database error"))
	tx, err = repo.FindByID(context.Background(), id, userID)
	assert.Error(t, err)
	assert.Nil(t, tx)

	assert.NoError(t, mock.ExpectationsWereMet())
}
