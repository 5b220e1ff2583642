package dto

import "github.com/GlebRadaev/betledger/internal/domain"

type BetStatsResponseDTO struct {
	TotalBets    int64   `json:"totalBets" example:"12"`
	TotalWins    int64   `json:"totalWins" example:"7"`
	TotalLosses  int64   `json:"totalLosses" example:"4"`
	TotalPushes  int64   `json:"totalPushes" example:"0"`
	TotalPending int64   `json:"totalPending" example:"1"`
	TotalStaked  float64 `json:"totalStaked" example:"1200"`
	TotalReturns float64 `json:"totalReturns" example:"1284"`
	NetProfit    float64 `json:"netProfit" example:"84"`
	WinRate      float64 `json:"winRate" example:"58.33"`
	ROI          float64 `json:"roi" example:"7"`
}

func NewBetStatsResponse(s domain.BetStats) BetStatsResponseDTO {
	return BetStatsResponseDTO{
		TotalBets:    s.TotalBets,
		TotalWins:    s.TotalWins,
		TotalLosses:  s.TotalLosses,
		TotalPushes:  s.TotalPushes,
		TotalPending: s.TotalPending,
		TotalStaked:  s.TotalStaked.InexactFloat64(),
		TotalReturns: s.TotalReturns.InexactFloat64(),
		NetProfit:    s.NetProfit.InexactFloat64(),
		WinRate:      s.WinRate.InexactFloat64(),
		ROI:          s.ROI.InexactFloat64(),
	}
}

type BankrollResponseDTO struct {
	TotalDeposits    float64 `json:"totalDeposits" example:"1500"`
	TotalWithdrawals float64 `json:"totalWithdrawals" example:"200"`
	CurrentBalance   float64 `json:"currentBalance" example:"1384"`
}

func NewBankrollResponse(b domain.BankrollBalance) BankrollResponseDTO {
	return BankrollResponseDTO{
		TotalDeposits:    b.TotalDeposits.InexactFloat64(),
		TotalWithdrawals: b.TotalWithdrawals.InexactFloat64(),
		CurrentBalance:   b.CurrentBalance.InexactFloat64(),
	}
}

type GroupStatsResponseDTO struct {
	Key     string  `json:"key" example:"Football"`
	Bets    int64   `json:"bets" example:"8"`
	Wins    int64   `json:"wins" example:"5"`
	Staked  float64 `json:"staked" example:"800"`
	Profit  float64 `json:"profit" example:"120.5"`
	WinRate float64 `json:"winRate" example:"62.5"`
	ROI     float64 `json:"roi" example:"15.06"`
}

func NewBreakdownResponse(groups []domain.GroupStats) []GroupStatsResponseDTO {
	out := make([]GroupStatsResponseDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupStatsResponseDTO{
			Key:     g.Key,
			Bets:    g.Bets,
			Wins:    g.Wins,
			Staked:  g.Staked.InexactFloat64(),
			Profit:  g.Profit.InexactFloat64(),
			WinRate: g.WinRate.InexactFloat64(),
			ROI:     g.ROI.InexactFloat64(),
		})
	}
	return out
}
