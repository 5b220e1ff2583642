package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Conn, TXManager, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), NewTXManager(mockDB), mockDB
}

func TestConn_UsesPoolOutsideTransaction(t *testing.T) {
	conn, _, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bets")).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	tag, err := conn.Exec(context.Background(), "DELETE FROM bets")
	require.NoError(t, err)
	assert.Equal(t, int64(2), tag.RowsAffected())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTXManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(conn *Conn) TransactionalFn
		expectErr bool
	}{
		{
			name: "Commits when fn succeeds",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
					WillReturnRows(pgxmock.NewRows([]string{"n"}).AddRow(1))
				mock.ExpectCommit()
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					var n int
					return conn.QueryRow(ctx, "SELECT 1").Scan(&n)
				}
			},
		},
		{
			name: "Rolls back when fn fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(*Conn) TransactionalFn {
				return func(context.Context) error { return errors.New("boom") }
			},
			expectErr: true,
		},
		{
			name: "Begin error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("no connection"))
			},
			fn: func(*Conn) TransactionalFn {
				return func(context.Context) error { return nil }
			},
			expectErr: true,
		},
		{
			name: "Commit error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn: func(*Conn) TransactionalFn {
				return func(context.Context) error { return nil }
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, tx, mock := NewMock(t)
			tt.mockSetup(mock)

			err := tx.Begin(context.Background(), tt.fn(conn))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTXManager_NestedBeginJoinsOuter(t *testing.T) {
	_, tx, mock := NewMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := tx.Begin(context.Background(), func(ctx context.Context) error {
		return tx.Begin(ctx, func(context.Context) error {
			calls++
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
