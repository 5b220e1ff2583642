package betrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/GlebRadaev/betledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const betColumns = `id, user_id, date, sport, league, event, market, selection, bookmaker,
	odds, stake, bet_type, result, profit, notes, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanBet(row pgx.Row) (*domain.Bet, error) {
	var b domain.Bet
	err := row.Scan(&b.ID, &b.UserID, &b.Date, &b.Sport, &b.League, &b.Event, &b.Market, &b.Selection, &b.Bookmaker,
		&b.Odds, &b.Stake, &b.BetType, &b.Result, &b.Profit, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Create(ctx context.Context, bet *domain.Bet) (*domain.Bet, error) {
	query := `
		INSERT INTO bets (user_id, date, sport, league, event, market, selection, bookmaker,
			odds, stake, bet_type, result, profit, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, bet.UserID, bet.Date, bet.Sport, bet.League, bet.Event, bet.Market, bet.Selection, bet.Bookmaker,
		bet.Odds, bet.Stake, bet.BetType, bet.Result, bet.Profit, bet.Notes).Scan(&bet.ID, &bet.CreatedAt, &bet.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save bet", zap.String("user_id", bet.UserID.String()), zap.Error(err))
		return nil, err
	}
	return bet, nil
}

func listQuery(userID uuid.UUID, filter domain.BetFilter) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{userID}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Sport != "" {
		add("sport = $%d", filter.Sport)
	}
	if filter.Bookmaker != "" {
		add("bookmaker = $%d", filter.Bookmaker)
	}
	if filter.Result != "" {
		add("result = $%d", filter.Result)
	}
	if filter.From != nil {
		add("date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("date <= $%d", *filter.To)
	}
	query := "SELECT " + betColumns + " FROM bets WHERE " + strings.Join(conds, " AND ") +
		" ORDER BY date DESC, created_at DESC"
	return query, args
}

func (r *Repository) List(ctx context.Context, userID uuid.UUID, filter domain.BetFilter) ([]domain.Bet, error) {
	query, args := listQuery(userID, filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch bets", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	bets := []domain.Bet{}
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			zap.L().Error("failed to scan bet row", zap.Error(err))
			return nil, err
		}
		bets = append(bets, *bet)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate bet rows", zap.Error(err))
		return nil, err
	}
	return bets, nil
}

// FindByID returns nil, nil when the bet is missing or belongs to another user.
func (r *Repository) FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Bet, error) {
	query := "SELECT " + betColumns + " FROM bets WHERE id = $1 AND user_id = $2"
	bet, err := scanBet(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to fetch bet", zap.String("bet_id", id.String()), zap.Error(err))
		return nil, err
	}
	return bet, nil
}

// Update locks the owned row, lets apply change it and writes it back in the
// same transaction. Returns nil, nil when there is no such row.
func (r *Repository) Update(ctx context.Context, id, userID uuid.UUID, apply func(*domain.Bet) error) (*domain.Bet, error) {
	var updated *domain.Bet
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := "SELECT " + betColumns + " FROM bets WHERE id = $1 AND user_id = $2 FOR UPDATE"
		bet, err := scanBet(r.db.QueryRow(ctx, query, id, userID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			zap.L().Error("failed to lock bet", zap.String("bet_id", id.String()), zap.Error(err))
			return err
		}

		if err := apply(bet); err != nil {
			return err
		}

		update := `
			UPDATE bets
			SET date = $1, sport = $2, league = $3, event = $4, market = $5, selection = $6, bookmaker = $7,
				odds = $8, stake = $9, bet_type = $10, result = $11, profit = $12, notes = $13, updated_at = NOW()
			WHERE id = $14 AND user_id = $15
			RETURNING updated_at
		`
		err = r.db.QueryRow(ctx, update, bet.Date, bet.Sport, bet.League, bet.Event, bet.Market, bet.Selection, bet.Bookmaker,
			bet.Odds, bet.Stake, bet.BetType, bet.Result, bet.Profit, bet.Notes, id, userID).Scan(&bet.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to update bet", zap.String("bet_id", id.String()), zap.Error(err))
			return err
		}
		updated = bet
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete reports whether an owned row was removed.
func (r *Repository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM bets WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		zap.L().Error("failed to delete bet", zap.String("bet_id", id.String()), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
