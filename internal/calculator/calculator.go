// Package calculator holds the stateless bet calculators: single, accumulator,
// arbitrage, dutching and each-way. Money is rounded to cents and
// probabilities to four places; intermediate values keep full precision.
package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	moneyPlaces       int32 = 2
	probabilityPlaces int32 = 4
)

var (
	ErrInvalidStake         = errors.New("stake must be greater than 0")
	ErrInvalidOdds          = errors.New("odds must be greater than 1")
	ErrNotEnoughSelections  = errors.New("not enough selections")
	ErrInvalidPlaceFraction = errors.New("place fraction must be greater than 0 and at most 1")
)

var one = decimal.NewFromInt(1)

type SingleResult struct {
	Returns decimal.Decimal
	Profit  decimal.Decimal
}

type AccumulatorResult struct {
	CombinedOdds decimal.Decimal
	Returns      decimal.Decimal
	Profit       decimal.Decimal
}

type ArbitrageResult struct {
	ImpliedA     decimal.Decimal
	ImpliedB     decimal.Decimal
	TotalImplied decimal.Decimal
	Opportunity  bool
	StakeA       decimal.Decimal
	StakeB       decimal.Decimal
	Payout       decimal.Decimal
	Profit       decimal.Decimal
}

type DutchingResult struct {
	Stakes       []decimal.Decimal
	TotalImplied decimal.Decimal
	Payout       decimal.Decimal
	Profit       decimal.Decimal
}

type EachWayResult struct {
	TotalStake   decimal.Decimal
	WinReturns   decimal.Decimal
	PlaceOdds    decimal.Decimal
	PlaceReturns decimal.Decimal
	WinProfit    decimal.Decimal
	PlaceProfit  decimal.Decimal
}

func checkStake(stake decimal.Decimal) error {
	if !stake.IsPositive() {
		return ErrInvalidStake
	}
	return nil
}

func checkOdds(odds ...decimal.Decimal) error {
	for _, o := range odds {
		if !o.GreaterThan(one) {
			return ErrInvalidOdds
		}
	}
	return nil
}

func Single(stake, odds decimal.Decimal) (SingleResult, error) {
	if err := checkStake(stake); err != nil {
		return SingleResult{}, err
	}
	if err := checkOdds(odds); err != nil {
		return SingleResult{}, err
	}
	returns := stake.Mul(odds)
	return SingleResult{
		Returns: returns.Round(moneyPlaces),
		Profit:  returns.Sub(stake).Round(moneyPlaces),
	}, nil
}

func Accumulator(stake decimal.Decimal, legs []decimal.Decimal) (AccumulatorResult, error) {
	if err := checkStake(stake); err != nil {
		return AccumulatorResult{}, err
	}
	if len(legs) == 0 {
		return AccumulatorResult{}, ErrNotEnoughSelections
	}
	if err := checkOdds(legs...); err != nil {
		return AccumulatorResult{}, err
	}
	combined := one
	for _, o := range legs {
		combined = combined.Mul(o)
	}
	returns := stake.Mul(combined)
	return AccumulatorResult{
		CombinedOdds: combined.Round(moneyPlaces),
		Returns:      returns.Round(moneyPlaces),
		Profit:       returns.Sub(stake).Round(moneyPlaces),
	}, nil
}

// Arbitrage splits totalStake across two outcomes so both pay the same.
// Profit is the guaranteed payout minus the stake, reported only when the
// implied probabilities sum below one.
func Arbitrage(totalStake, oddsA, oddsB decimal.Decimal) (ArbitrageResult, error) {
	if err := checkStake(totalStake); err != nil {
		return ArbitrageResult{}, err
	}
	if err := checkOdds(oddsA, oddsB); err != nil {
		return ArbitrageResult{}, err
	}
	pA := one.Div(oddsA)
	pB := one.Div(oddsB)
	total := pA.Add(pB)
	payout := totalStake.Div(total)

	res := ArbitrageResult{
		ImpliedA:     pA.Round(probabilityPlaces),
		ImpliedB:     pB.Round(probabilityPlaces),
		TotalImplied: total.Round(probabilityPlaces),
		Opportunity:  total.LessThan(one),
		StakeA:       totalStake.Mul(pA).Div(total).Round(moneyPlaces),
		StakeB:       totalStake.Mul(pB).Div(total).Round(moneyPlaces),
		Payout:       payout.Round(moneyPlaces),
		Profit:       decimal.Zero,
	}
	if res.Opportunity {
		res.Profit = payout.Sub(totalStake).Round(moneyPlaces)
	}
	return res, nil
}

func Dutching(totalStake decimal.Decimal, odds []decimal.Decimal) (DutchingResult, error) {
	if err := checkStake(totalStake); err != nil {
		return DutchingResult{}, err
	}
	if len(odds) < 2 {
		return DutchingResult{}, ErrNotEnoughSelections
	}
	if err := checkOdds(odds...); err != nil {
		return DutchingResult{}, err
	}
	implied := make([]decimal.Decimal, len(odds))
	total := decimal.Zero
	for i, o := range odds {
		implied[i] = one.Div(o)
		total = total.Add(implied[i])
	}
	stakes := make([]decimal.Decimal, len(odds))
	for i := range odds {
		stakes[i] = totalStake.Mul(implied[i]).Div(total).Round(moneyPlaces)
	}
	payout := totalStake.Div(total)
	return DutchingResult{
		Stakes:       stakes,
		TotalImplied: total.Round(probabilityPlaces),
		Payout:       payout.Round(moneyPlaces),
		Profit:       payout.Sub(totalStake).Round(moneyPlaces),
	}, nil
}

// EachWay prices a win bet and a place bet of equal stake. placeFraction is
// the bookmaker's place terms, e.g. 0.25 for 1/4 odds.
func EachWay(stake, odds, placeFraction decimal.Decimal) (EachWayResult, error) {
	if err := checkStake(stake); err != nil {
		return EachWayResult{}, err
	}
	if err := checkOdds(odds); err != nil {
		return EachWayResult{}, err
	}
	if !placeFraction.IsPositive() || placeFraction.GreaterThan(one) {
		return EachWayResult{}, ErrInvalidPlaceFraction
	}
	winReturns := stake.Mul(odds)
	placeOdds := one.Add(odds.Sub(one).Mul(placeFraction))
	placeReturns := stake.Mul(placeOdds)
	totalStake := stake.Add(stake)
	return EachWayResult{
		TotalStake:   totalStake.Round(moneyPlaces),
		WinReturns:   winReturns.Round(moneyPlaces),
		PlaceOdds:    placeOdds.Round(moneyPlaces),
		PlaceReturns: placeReturns.Round(moneyPlaces),
		WinProfit:    winReturns.Add(placeReturns).Sub(totalStake).Round(moneyPlaces),
		PlaceProfit:  placeReturns.Sub(totalStake).Round(moneyPlaces),
	}, nil
}
