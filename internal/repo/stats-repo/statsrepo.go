package statsrepo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/GlebRadaev/betledger/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// groupColumns whitelists the breakdown dimensions; the value is interpolated into SQL.
var groupColumns = map[domain.GroupBy]string{
	domain.GroupBySport:     "sport",
	domain.GroupByBookmaker: "bookmaker",
	domain.GroupByMarket:    "market",
	domain.GroupByBetType:   "bet_type",
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) BetTotals(ctx context.Context, userID uuid.UUID) (domain.BetTotals, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE result = 'Won'),
			COUNT(*) FILTER (WHERE result = 'Lost'),
			COUNT(*) FILTER (WHERE result = 'Push'),
			COUNT(*) FILTER (WHERE result = 'Pending'),
			COALESCE(SUM(stake), 0),
			COALESCE(SUM(profit), 0)
		FROM bets
		WHERE user_id = $1
	`
	var t domain.BetTotals
	err := r.db.QueryRow(ctx, query, userID).Scan(&t.Count, &t.Wins, &t.Losses, &t.Pushes, &t.Pending, &t.Staked, &t.Profit)
	if err != nil {
		zap.L().Error("failed to aggregate bets", zap.String("user_id", userID.String()), zap.Error(err))
		return domain.BetTotals{}, err
	}
	return t, nil
}

func (r *Repository) TransactionTotals(ctx context.Context, userID uuid.UUID) (domain.TransactionTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'deposit'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'withdrawal'), 0)
		FROM transactions
		WHERE user_id = $1
	`
	var t domain.TransactionTotals
	err := r.db.QueryRow(ctx, query, userID).Scan(&t.Deposits, &t.Withdrawals)
	if err != nil {
		zap.L().Error("failed to aggregate transactions", zap.String("user_id", userID.String()), zap.Error(err))
		return domain.TransactionTotals{}, err
	}
	return t, nil
}

func (r *Repository) Breakdown(ctx context.Context, userID uuid.UUID, by domain.GroupBy) ([]domain.GroupTotals, error) {
	column, ok := groupColumns[by]
	if !ok {
		return nil, fmt.Errorf("unsupported grouping %q", by)
	}
	query := fmt.Sprintf(`
		SELECT
			%[1]s,
			COUNT(*),
			COUNT(*) FILTER (WHERE result = 'Won'),
			COALESCE(SUM(stake), 0),
			COALESCE(SUM(profit), 0)
		FROM bets
		WHERE user_id = $1
		GROUP BY %[1]s
		ORDER BY COUNT(*) DESC, %[1]s
	`, column)
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to group bets", zap.String("by", string(by)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	groups := []domain.GroupTotals{}
	for rows.Next() {
		var g domain.GroupTotals
		if err := rows.Scan(&g.Key, &g.Count, &g.Wins, &g.Staked, &g.Profit); err != nil {
			zap.L().Error("failed to scan group row", zap.Error(err))
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate group rows", zap.Error(err))
		return nil, err
	}
	return groups, nil
}
