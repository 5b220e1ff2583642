package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type UserProfile struct {
	Email     string
	FirstName string
	LastName  string
}

type Bet struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Date      time.Time       `db:"date"`
	Sport     string          `db:"sport"`
	League    *string         `db:"league"`
	Event     string          `db:"event"`
	Market    string          `db:"market"`
	Selection string          `db:"selection"`
	Bookmaker string          `db:"bookmaker"`
	Odds      decimal.Decimal `db:"odds"`
	Stake     decimal.Decimal `db:"stake"`
	BetType   string          `db:"bet_type"`
	Result    BetResult       `db:"result"`
	Profit    decimal.Decimal `db:"profit"`
	Notes     *string         `db:"notes"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// BetUpdate carries the fields a client supplied; nil means keep the stored value.
type BetUpdate struct {
	Date      *time.Time
	Sport     *string
	League    *string
	Event     *string
	Market    *string
	Selection *string
	Bookmaker *string
	Odds      *decimal.Decimal
	Stake     *decimal.Decimal
	BetType   *string
	Result    *BetResult
	Notes     *string
}

type BetFilter struct {
	Sport     string
	Bookmaker string
	Result    BetResult
	From      *time.Time
	To        *time.Time
}

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

func (t TransactionType) Valid() bool {
	return t == TransactionDeposit || t == TransactionWithdrawal
}

type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Type        TransactionType `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
}

// BetTotals is the raw aggregate over a user's bets.
type BetTotals struct {
	Count   int64
	Wins    int64
	Losses  int64
	Pushes  int64
	Pending int64
	Staked  decimal.Decimal
	Profit  decimal.Decimal
}

// TransactionTotals is the raw aggregate over a user's bankroll movements.
type TransactionTotals struct {
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
}

type BetStats struct {
	TotalBets    int64
	TotalWins    int64
	TotalLosses  int64
	TotalPushes  int64
	TotalPending int64
	TotalStaked  decimal.Decimal
	TotalReturns decimal.Decimal
	NetProfit    decimal.Decimal
	WinRate      decimal.Decimal
	ROI          decimal.Decimal
}

type BankrollBalance struct {
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	CurrentBalance   decimal.Decimal
}

type GroupTotals struct {
	Key    string
	Count  int64
	Wins   int64
	Staked decimal.Decimal
	Profit decimal.Decimal
}

type GroupStats struct {
	Key     string
	Bets    int64
	Wins    int64
	Staked  decimal.Decimal
	Profit  decimal.Decimal
	WinRate decimal.Decimal
	ROI     decimal.Decimal
}

// GroupBy names a bet attribute the breakdown can group on.
type GroupBy string

const (
	GroupBySport     GroupBy = "sport"
	GroupByBookmaker GroupBy = "bookmaker"
	GroupByMarket    GroupBy = "market"
	GroupByBetType   GroupBy = "betType"
)

func (g GroupBy) Valid() bool {
	switch g {
	case GroupBySport, GroupByBookmaker, GroupByMarket, GroupByBetType:
		return true
	}
	return false
}
