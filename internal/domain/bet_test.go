package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/betledger/pkg/validate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validBet() Bet {
	return Bet{
		Date:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Sport:     "Football",
		Event:     "Arsenal vs Chelsea",
		Market:    "Match Result",
		Selection: "Arsenal",
		Bookmaker: "Bet365",
		Odds:      d("2.00"),
		Stake:     d("100"),
		BetType:   "Single",
	}
}

func TestCalculateProfit(t *testing.T) {
	tests := []struct {
		name     string
		result   BetResult
		odds     string
		stake    string
		expected string
	}{
		{name: "Won even money", result: BetResultWon, odds: "2.00", stake: "100", expected: "100"},
		{name: "Won rounds to cents", result: BetResultWon, odds: "1.91", stake: "33.33", expected: "30.33"},
		{name: "Lost", result: BetResultLost, odds: "1.91", stake: "100", expected: "-100"},
		{name: "Push", result: BetResultPush, odds: "3.50", stake: "20", expected: "0"},
		{name: "Pending", result: BetResultPending, odds: "3.50", stake: "20", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateProfit(tt.result, d(tt.odds), d(tt.stake))
			assert.True(t, d(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestBet_Normalize(t *testing.T) {
	t.Run("Scenario A: won bet", func(t *testing.T) {
		b := validBet()
		b.Result = BetResultWon
		b.Normalize()
		require.NoError(t, b.Validate())
		assert.Equal(t, "100.00", b.Profit.StringFixed(2))
	})

	t.Run("Scenario B: lost bet", func(t *testing.T) {
		b := validBet()
		b.Odds = d("1.91")
		b.Result = BetResultLost
		b.Normalize()
		assert.Equal(t, "-100.00", b.Profit.StringFixed(2))
	})

	t.Run("Result defaults to pending", func(t *testing.T) {
		b := validBet()
		b.Normalize()
		assert.Equal(t, BetResultPending, b.Result)
		assert.True(t, b.Profit.IsZero())
	})

	t.Run("Odds rounding to one is rejected", func(t *testing.T) {
		b := validBet()
		b.Odds = d("1.004")
		b.Normalize()
		var verrs validate.Errors
		require.True(t, errors.As(b.Validate(), &verrs))
		assert.Equal(t, "odds", verrs[0].Field)
	})
}

func TestBet_Validate(t *testing.T) {
	b := Bet{Odds: d("1"), Stake: d("0"), Result: "Void"}
	var verrs validate.Errors
	require.True(t, errors.As(b.Validate(), &verrs))

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"sport", "event", "market", "selection", "bookmaker", "betType", "odds", "stake", "result", "date"}, fields)
}

func TestBet_ValidateColumnLimits(t *testing.T) {
	tests := []struct {
		name   string
		result BetResult
		odds   string
		stake  string
		fields []string
	}{
		{name: "Largest stake, lost", result: BetResultLost, odds: "2.00", stake: "99999999.99"},
		{name: "Largest win that fits", result: BetResultWon, odds: "2.00", stake: "49999999.99"},
		{name: "Stake too large", result: BetResultPending, odds: "2.00", stake: "100000000", fields: []string{"stake"}},
		{name: "Odds too large", result: BetResultPending, odds: "100000000", stake: "10", fields: []string{"odds"}},
		{name: "Won profit too large", result: BetResultWon, odds: "3.00", stake: "50000000", fields: []string{"profit"}},
		{name: "Same bet still pending", result: BetResultPending, odds: "3.00", stake: "50000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBet()
			b.Result = tt.result
			b.Odds = d(tt.odds)
			b.Stake = d(tt.stake)
			b.Normalize()

			err := b.Validate()
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				return
			}
			var verrs validate.Errors
			require.True(t, errors.As(err, &verrs))
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field)
			}
			assert.Equal(t, tt.fields, fields)
			assert.Contains(t, verrs[0].Message, "99999999.99")
		})
	}
}

func TestBet_ApplySettlementOverflow(t *testing.T) {
	b := validBet()
	b.Odds = d("3.00")
	b.Stake = d("50000000")
	b.Normalize()
	require.NoError(t, b.Validate())

	won := BetResultWon
	b.Apply(BetUpdate{Result: &won})

	assert.Equal(t, validate.Field("profit", "profit must be at most 99999999.99"), b.Validate())
}

func TestBet_Apply(t *testing.T) {
	t.Run("Scenario C: pending then won", func(t *testing.T) {
		b := validBet()
		b.Odds = d("2.50")
		b.Normalize()
		require.True(t, b.Profit.IsZero())

		won := BetResultWon
		b.Apply(BetUpdate{Result: &won})
		assert.Equal(t, "150.00", b.Profit.StringFixed(2))
		assert.Equal(t, "Arsenal", b.Selection)
	})

	t.Run("Stake change on lost bet", func(t *testing.T) {
		b := validBet()
		b.Result = BetResultLost
		b.Normalize()

		stake := d("40")
		notes := "hedged"
		b.Apply(BetUpdate{Stake: &stake, Notes: &notes})
		assert.Equal(t, "-40.00", b.Profit.StringFixed(2))
		require.NotNil(t, b.Notes)
		assert.Equal(t, "hedged", *b.Notes)
	})

	t.Run("Empty update is idempotent", func(t *testing.T) {
		b := validBet()
		b.Result = BetResultWon
		b.Normalize()
		before := b
		b.Apply(BetUpdate{})
		assert.Equal(t, before, b)
	})
}

func TestNewBetStats(t *testing.T) {
	t.Run("Scenario E: no bets", func(t *testing.T) {
		stats := NewBetStats(BetTotals{})
		assert.Equal(t, int64(0), stats.TotalBets)
		assert.True(t, stats.TotalStaked.IsZero())
		assert.True(t, stats.TotalReturns.IsZero())
		assert.True(t, stats.WinRate.IsZero())
		assert.True(t, stats.ROI.IsZero())
	})

	t.Run("Mixed bets", func(t *testing.T) {
		stats := NewBetStats(BetTotals{
			Count: 3, Wins: 1, Losses: 1, Pending: 1,
			Staked: d("300"), Profit: d("84"),
		})
		assert.Equal(t, "384.00", stats.TotalReturns.StringFixed(2))
		assert.Equal(t, "33.33", stats.WinRate.StringFixed(2))
		assert.Equal(t, "28.00", stats.ROI.StringFixed(2))
	})
}

func TestNewBankrollBalance(t *testing.T) {
	// Scenario D
	balance := NewBankrollBalance(TransactionTotals{Deposits: d("1500"), Withdrawals: d("200")}, d("84"))
	assert.Equal(t, "1384.00", balance.CurrentBalance.StringFixed(2))
	assert.Equal(t, "1500.00", balance.TotalDeposits.StringFixed(2))
}

func TestNewGroupStats(t *testing.T) {
	g := NewGroupStats(GroupTotals{Key: "Tennis", Count: 4, Wins: 3, Staked: d("200"), Profit: d("-10")})
	assert.Equal(t, "75.00", g.WinRate.StringFixed(2))
	assert.Equal(t, "-5.00", g.ROI.StringFixed(2))
}

func TestTransactionType_Valid(t *testing.T) {
	assert.True(t, TransactionDeposit.Valid())
	assert.True(t, TransactionWithdrawal.Valid())
	assert.False(t, TransactionType("bonus").Valid())
}

func TestGroupBy_Valid(t *testing.T) {
	for _, g := range []GroupBy{GroupBySport, GroupByBookmaker, GroupByMarket, GroupByBetType} {
		assert.True(t, g.Valid(), g)
	}
	assert.False(t, GroupBy("bet_type").Valid())
	assert.False(t, GroupBy("").Valid())
}
