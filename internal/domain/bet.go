package domain

import (
	"github.com/GlebRadaev/betledger/pkg/validate"
	"github.com/shopspring/decimal"
)

type BetResult string

const (
	BetResultWon     BetResult = "Won"
	BetResultLost    BetResult = "Lost"
	BetResultPush    BetResult = "Push"
	BetResultPending BetResult = "Pending"
)

// MoneyPlaces matches the numeric(10,2) columns.
const MoneyPlaces int32 = 2

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)

	// MaxMoney is the largest value a numeric(10,2) column holds.
	MaxMoney = decimal.RequireFromString("99999999.99")
)

func exceedsMax(field string) validate.FieldError {
	return validate.FieldError{Field: field, Message: field + " must be at most " + MaxMoney.StringFixed(MoneyPlaces)}
}

func (r BetResult) Valid() bool {
	switch r {
	case BetResultWon, BetResultLost, BetResultPush, BetResultPending:
		return true
	}
	return false
}

// CalculateProfit derives a bet's profit. It is the only place the formula lives.
func CalculateProfit(result BetResult, odds, stake decimal.Decimal) decimal.Decimal {
	switch result {
	case BetResultWon:
		return stake.Mul(odds.Sub(one)).Round(MoneyPlaces)
	case BetResultLost:
		return stake.Neg().Round(MoneyPlaces)
	case BetResultPush, BetResultPending:
		return decimal.Zero
	}
	return decimal.Zero
}

// Normalize rounds money fields to storage precision, defaults the result and
// recomputes profit. Validate afterwards so rounding can't sneak odds to 1.00.
func (b *Bet) Normalize() {
	b.Odds = b.Odds.Round(MoneyPlaces)
	b.Stake = b.Stake.Round(MoneyPlaces)
	if b.Result == "" {
		b.Result = BetResultPending
	}
	b.Profit = CalculateProfit(b.Result, b.Odds, b.Stake)
}

func (b *Bet) Validate() error {
	var errs validate.Errors
	required := []struct {
		field string
		value string
	}{
		{"sport", b.Sport},
		{"event", b.Event},
		{"market", b.Market},
		{"selection", b.Selection},
		{"bookmaker", b.Bookmaker},
		{"betType", b.BetType},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, validate.FieldError{Field: r.field, Message: r.field + " is required"})
		}
	}
	oddsOK, stakeOK := false, false
	switch {
	case !b.Odds.GreaterThan(one):
		errs = append(errs, validate.FieldError{Field: "odds", Message: "odds must be greater than 1"})
	case b.Odds.GreaterThan(MaxMoney):
		errs = append(errs, exceedsMax("odds"))
	default:
		oddsOK = true
	}
	switch {
	case !b.Stake.IsPositive():
		errs = append(errs, validate.FieldError{Field: "stake", Message: "stake must be greater than 0"})
	case b.Stake.GreaterThan(MaxMoney):
		errs = append(errs, exceedsMax("stake"))
	default:
		stakeOK = true
	}
	// a settled win can outgrow the column even when odds and stake fit
	if oddsOK && stakeOK && b.Profit.Abs().GreaterThan(MaxMoney) {
		errs = append(errs, exceedsMax("profit"))
	}
	if !b.Result.Valid() {
		errs = append(errs, validate.FieldError{Field: "result", Message: "result must be one of: Won, Lost, Push, Pending"})
	}
	if b.Date.IsZero() {
		errs = append(errs, validate.FieldError{Field: "date", Message: "date is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges supplied fields over the stored ones and re-derives profit.
func (b *Bet) Apply(u BetUpdate) {
	if u.Date != nil {
		b.Date = *u.Date
	}
	if u.Sport != nil {
		b.Sport = *u.Sport
	}
	if u.League != nil {
		b.League = u.League
	}
	if u.Event != nil {
		b.Event = *u.Event
	}
	if u.Market != nil {
		b.Market = *u.Market
	}
	if u.Selection != nil {
		b.Selection = *u.Selection
	}
	if u.Bookmaker != nil {
		b.Bookmaker = *u.Bookmaker
	}
	if u.Odds != nil {
		b.Odds = *u.Odds
	}
	if u.Stake != nil {
		b.Stake = *u.Stake
	}
	if u.BetType != nil {
		b.BetType = *u.BetType
	}
	if u.Result != nil {
		b.Result = *u.Result
	}
	if u.Notes != nil {
		b.Notes = u.Notes
	}
	b.Normalize()
}

// Percent returns part/whole*100 rounded to two places, zero for an empty whole.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(MoneyPlaces)
}

func NewBetStats(t BetTotals) BetStats {
	return BetStats{
		TotalBets:    t.Count,
		TotalWins:    t.Wins,
		TotalLosses:  t.Losses,
		TotalPushes:  t.Pushes,
		TotalPending: t.Pending,
		TotalStaked:  t.Staked,
		TotalReturns: t.Staked.Add(t.Profit),
		NetProfit:    t.Profit,
		WinRate:      Percent(decimal.NewFromInt(t.Wins), decimal.NewFromInt(t.Count)),
		ROI:          Percent(t.Profit, t.Staked),
	}
}

func NewBankrollBalance(tx TransactionTotals, netBetProfit decimal.Decimal) BankrollBalance {
	return BankrollBalance{
		TotalDeposits:    tx.Deposits,
		TotalWithdrawals: tx.Withdrawals,
		CurrentBalance:   tx.Deposits.Sub(tx.Withdrawals).Add(netBetProfit),
	}
}

func NewGroupStats(g GroupTotals) GroupStats {
	return GroupStats{
		Key:     g.Key,
		Bets:    g.Count,
		Wins:    g.Wins,
		Staked:  g.Staked,
		Profit:  g.Profit,
		WinRate: Percent(decimal.NewFromInt(g.Wins), decimal.NewFromInt(g.Count)),
		ROI:     Percent(g.Profit, g.Staked),
	}
}
