package dto

import (
	"github.com/GlebRadaev/betledger/internal/calculator"
	"github.com/shopspring/decimal"
)

type SingleRequestDTO struct {
	Stake decimal.Decimal `json:"stake" validate:"required,gt=0" swaggertype:"number" example:"10"`
	Odds  decimal.Decimal `json:"odds" validate:"required,gt=1" swaggertype:"number" example:"2.5"`
}

type SingleResponseDTO struct {
	Returns float64 `json:"returns" example:"25"`
	Profit  float64 `json:"profit" example:"15"`
}

func NewSingleResponse(r calculator.SingleResult) SingleResponseDTO {
	return SingleResponseDTO{
		Returns: r.Returns.InexactFloat64(),
		Profit:  r.Profit.InexactFloat64(),
	}
}

type AccumulatorRequestDTO struct {
	Stake decimal.Decimal   `json:"stake" validate:"required,gt=0" swaggertype:"number" example:"10"`
	Legs  []decimal.Decimal `json:"legs" validate:"required,min=1,dive,gt=1" swaggertype:"array,number" example:"1.5,2.0,1.8"`
}

type AccumulatorResponseDTO struct {
	CombinedOdds float64 `json:"combinedOdds" example:"5.4"`
	Returns      float64 `json:"returns" example:"54"`
	Profit       float64 `json:"profit" example:"44"`
}

func NewAccumulatorResponse(r calculator.AccumulatorResult) AccumulatorResponseDTO {
	return AccumulatorResponseDTO{
		CombinedOdds: r.CombinedOdds.InexactFloat64(),
		Returns:      r.Returns.InexactFloat64(),
		Profit:       r.Profit.InexactFloat64(),
	}
}

type ArbitrageRequestDTO struct {
	TotalStake decimal.Decimal `json:"totalStake" validate:"required,gt=0" swaggertype:"number" example:"100"`
	OddsA      decimal.Decimal `json:"oddsA" validate:"required,gt=1" swaggertype:"number" example:"2.1"`
	OddsB      decimal.Decimal `json:"oddsB" validate:"required,gt=1" swaggertype:"number" example:"2.1"`
}

type ArbitrageResponseDTO struct {
	ImpliedA     float64 `json:"impliedA" example:"0.4762"`
	ImpliedB     float64 `json:"impliedB" example:"0.4762"`
	TotalImplied float64 `json:"totalImplied" example:"0.9524"`
	Opportunity  bool    `json:"opportunity" example:"true"`
	StakeA       float64 `json:"stakeA" example:"50"`
	StakeB       float64 `json:"stakeB" example:"50"`
	Payout       float64 `json:"payout" example:"105"`
	Profit       float64 `json:"profit" example:"5"`
}

func NewArbitrageResponse(r calculator.ArbitrageResult) ArbitrageResponseDTO {
	return ArbitrageResponseDTO{
		ImpliedA:     r.ImpliedA.InexactFloat64(),
		ImpliedB:     r.ImpliedB.InexactFloat64(),
		TotalImplied: r.TotalImplied.InexactFloat64(),
		Opportunity:  r.Opportunity,
		StakeA:       r.StakeA.InexactFloat64(),
		StakeB:       r.StakeB.InexactFloat64(),
		Payout:       r.Payout.InexactFloat64(),
		Profit:       r.Profit.InexactFloat64(),
	}
}

type DutchingRequestDTO struct {
	TotalStake decimal.Decimal   `json:"totalStake" validate:"required,gt=0" swaggertype:"number" example:"100"`
	Odds       []decimal.Decimal `json:"odds" validate:"required,min=2,dive,gt=1" swaggertype:"array,number" example:"2.5,3.2,4.0"`
}

type DutchingResponseDTO struct {
	Stakes       []float64 `json:"stakes" example:"41.2,32.19,25.75"`
	TotalImplied float64   `json:"totalImplied" example:"0.9625"`
	Payout       float64   `json:"payout" example:"103.9"`
	Profit       float64   `json:"profit" example:"3.9"`
}

func NewDutchingResponse(r calculator.DutchingResult) DutchingResponseDTO {
	stakes := make([]float64, 0, len(r.Stakes))
	for _, s := range r.Stakes {
		stakes = append(stakes, s.InexactFloat64())
	}
	return DutchingResponseDTO{
		Stakes:       stakes,
		TotalImplied: r.TotalImplied.InexactFloat64(),
		Payout:       r.Payout.InexactFloat64(),
		Profit:       r.Profit.InexactFloat64(),
	}
}

type EachWayRequestDTO struct {
	Stake         decimal.Decimal `json:"stake" validate:"required,gt=0" swaggertype:"number" example:"10"`
	Odds          decimal.Decimal `json:"odds" validate:"required,gt=1" swaggertype:"number" example:"8"`
	PlaceFraction decimal.Decimal `json:"placeFraction" validate:"required,gt=0,lte=1" swaggertype:"number" example:"0.25"`
}

type EachWayResponseDTO struct {
	TotalStake   float64 `json:"totalStake" example:"20"`
	WinReturns   float64 `json:"winReturns" example:"80"`
	PlaceOdds    float64 `json:"placeOdds" example:"2.75"`
	PlaceReturns float64 `json:"placeReturns" example:"27.5"`
	WinProfit    float64 `json:"winProfit" example:"87.5"`
	PlaceProfit  float64 `json:"placeProfit" example:"7.5"`
}

func NewEachWayResponse(r calculator.EachWayResult) EachWayResponseDTO {
	return EachWayResponseDTO{
		TotalStake:   r.TotalStake.InexactFloat64(),
		WinReturns:   r.WinReturns.InexactFloat64(),
		PlaceOdds:    r.PlaceOdds.InexactFloat64(),
		PlaceReturns: r.PlaceReturns.InexactFloat64(),
		WinProfit:    r.WinProfit.InexactFloat64(),
		PlaceProfit:  r.PlaceProfit.InexactFloat64(),
	}
}
