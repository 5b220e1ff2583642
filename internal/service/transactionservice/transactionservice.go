package transactionservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/GlebRadaev/betledger/internal/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=transactionservice.go -destination=mock_repo.go -package=transactionservice

var ErrTransactionNotFound = errors.New("transaction not found")

type Repo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
	FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Transaction, error)
}

type Service struct {
	transactionRepo Repo
	publisher       events.Publisher
}

func New(repo Repo, publisher events.Publisher) *Service {
	return &Service{
		transactionRepo: repo,
		publisher:       publisher,
	}
}

func (s *Service) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	tx.Normalize()
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	created, err := s.transactionRepo.Create(ctx, tx)
	if err != nil {
		return nil, err
	}
	e := events.New(events.TransactionCreated, created.UserID, created.ID, created)
	if err := s.publisher.Publish(ctx, e); err != nil {
		zap.L().Warn("can't publish event", zap.String("type", string(e.Type)), zap.Error(err))
	}
	zap.L().Info("transaction recorded",
		zap.String("user_id", created.UserID.String()),
		zap.String("type", string(created.Type)),
		zap.String("amount", created.Amount.StringFixed(2)))
	return created, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	txs, err := s.transactionRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *Service) GetTransaction(ctx context.Context, id, userID uuid.UUID) (*domain.Transaction, error) {
	tx, err := s.transactionRepo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}
