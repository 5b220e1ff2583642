package transactionrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/GlebRadaev/betledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, amount, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, tx.UserID, tx.Type, tx.Amount, tx.Description, tx.Date).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.String("user_id", tx.UserID.String()), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) List(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, amount, description, date, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY date DESC, created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Description, &tx.Date, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate transaction rows", zap.Error(err))
		return nil, err
	}

	return transactions, nil
}

func (r *Repository) FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, amount, description, date, created_at
        FROM transactions
        WHERE id = $1 AND user_id = $2
    `
	var tx domain.Transaction
	err := r.db.QueryRow(ctx, query, id, userID).Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Description, &tx.Date, &tx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to fetch transaction", zap.String("transaction_id", id.String()), zap.Error(err))
		return nil, err
	}
	return &tx, nil
}
