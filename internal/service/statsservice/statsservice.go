package statsservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=statsservice.go -destination=mock_repo.go -package=statsservice

var ErrUnsupportedGrouping = errors.New("unsupported grouping")

type Repo interface {
	BetTotals(ctx context.Context, userID uuid.UUID) (domain.BetTotals, error)
	TransactionTotals(ctx context.Context, userID uuid.UUID) (domain.TransactionTotals, error)
	Breakdown(ctx context.Context, userID uuid.UUID, by domain.GroupBy) ([]domain.GroupTotals, error)
}

type Service struct {
	statsRepo Repo
}

func New(repo Repo) *Service {
	return &Service{statsRepo: repo}
}

func (s *Service) BetStats(ctx context.Context, userID uuid.UUID) (*domain.BetStats, error) {
	totals, err := s.statsRepo.BetTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := domain.NewBetStats(totals)
	return &stats, nil
}

// BankrollBalance is deposits minus withdrawals plus the net profit of every
// bet. Both aggregates are read concurrently.
func (s *Service) BankrollBalance(ctx context.Context, userID uuid.UUID) (*domain.BankrollBalance, error) {
	var (
		bets domain.BetTotals
		txs  domain.TransactionTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bets, err = s.statsRepo.BetTotals(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.statsRepo.TransactionTotals(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	balance := domain.NewBankrollBalance(txs, bets.Profit)
	return &balance, nil
}

func (s *Service) Breakdown(ctx context.Context, userID uuid.UUID, by domain.GroupBy) ([]domain.GroupStats, error) {
	if !by.Valid() {
		return nil, ErrUnsupportedGrouping
	}
	groups, err := s.statsRepo.Breakdown(ctx, userID, by)
	if err != nil {
		return nil, err
	}
	out := make([]domain.GroupStats, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.NewGroupStats(g))
	}
	return out, nil
}
