package betservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/GlebRadaev/betledger/internal/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=betservice.go -destination=mock_repo.go -package=betservice

var ErrBetNotFound = errors.New("bet not found")

type Repo interface {
	Create(ctx context.Context, bet *domain.Bet) (*domain.Bet, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.BetFilter) ([]domain.Bet, error)
	FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Bet, error)
	Update(ctx context.Context, id, userID uuid.UUID, apply func(*domain.Bet) error) (*domain.Bet, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type Service struct {
	betRepo   Repo
	publisher events.Publisher
}

func New(repo Repo, publisher events.Publisher) *Service {
	return &Service{
		betRepo:   repo,
		publisher: publisher,
	}
}

func (s *Service) CreateBet(ctx context.Context, bet *domain.Bet) (*domain.Bet, error) {
	bet.Normalize()
	if err := bet.Validate(); err != nil {
		return nil, err
	}
	created, err := s.betRepo.Create(ctx, bet)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.New(events.BetCreated, created.UserID, created.ID, created))
	return created, nil
}

func (s *Service) ListBets(ctx context.Context, userID uuid.UUID, filter domain.BetFilter) ([]domain.Bet, error) {
	bets, err := s.betRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return bets, nil
}

func (s *Service) GetBet(ctx context.Context, id, userID uuid.UUID) (*domain.Bet, error) {
	bet, err := s.betRepo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if bet == nil {
		return nil, ErrBetNotFound
	}
	return bet, nil
}

// UpdateBet merges the supplied fields into the stored bet. The merged record
// is validated as a whole before it is written back.
func (s *Service) UpdateBet(ctx context.Context, id, userID uuid.UUID, update domain.BetUpdate) (*domain.Bet, error) {
	bet, err := s.betRepo.Update(ctx, id, userID, func(b *domain.Bet) error {
		b.Apply(update)
		return b.Validate()
	})
	if err != nil {
		return nil, err
	}
	if bet == nil {
		return nil, ErrBetNotFound
	}
	s.publish(ctx, events.New(events.BetUpdated, userID, id, bet))
	return bet, nil
}

func (s *Service) DeleteBet(ctx context.Context, id, userID uuid.UUID) error {
	deleted, err := s.betRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBetNotFound
	}
	s.publish(ctx, events.New(events.BetDeleted, userID, id, nil))
	return nil
}

func (s *Service) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		zap.L().Warn("can't publish event", zap.String("type", string(e.Type)), zap.Error(err))
	}
}
