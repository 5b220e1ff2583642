package dto

import (
	"net/url"
	"time"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/GlebRadaev/betledger/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBetRequestDTO struct {
	Date      Date             `json:"date" validate:"required" swaggertype:"string" example:"2024-03-02"`
	Sport     string           `json:"sport" validate:"required" example:"Football"`
	League    *string          `json:"league,omitempty" example:"Premier League"`
	Event     string           `json:"event" validate:"required" example:"Arsenal vs Chelsea"`
	Market    string           `json:"market" validate:"required" example:"Match Result"`
	Selection string           `json:"selection" validate:"required" example:"Arsenal"`
	Bookmaker string           `json:"bookmaker" validate:"required" example:"Bet365"`
	Odds      decimal.Decimal  `json:"odds" validate:"required,gt=1,lte=99999999.99" swaggertype:"number" example:"1.91"`
	Stake     decimal.Decimal  `json:"stake" validate:"required,gt=0,lte=99999999.99" swaggertype:"number" example:"100"`
	BetType   string           `json:"betType" validate:"required" example:"Single"`
	Result    domain.BetResult `json:"result,omitempty" validate:"omitempty,oneof=Won Lost Push Pending" example:"Pending"`
	Notes     *string          `json:"notes,omitempty" example:"Team news looked good"`
}

func (r CreateBetRequestDTO) ToDomain(userID uuid.UUID) *domain.Bet {
	return &domain.Bet{
		UserID:    userID,
		Date:      r.Date.Time,
		Sport:     r.Sport,
		League:    r.League,
		Event:     r.Event,
		Market:    r.Market,
		Selection: r.Selection,
		Bookmaker: r.Bookmaker,
		Odds:      r.Odds,
		Stake:     r.Stake,
		BetType:   r.BetType,
		Result:    r.Result,
		Notes:     r.Notes,
	}
}

// UpdateBetRequestDTO is a partial update; absent fields keep their stored value.
type UpdateBetRequestDTO struct {
	Date      *Date             `json:"date,omitempty" swaggertype:"string" example:"2024-03-02"`
	Sport     *string           `json:"sport,omitempty" validate:"omitempty,min=1"`
	League    *string           `json:"league,omitempty"`
	Event     *string           `json:"event,omitempty" validate:"omitempty,min=1"`
	Market    *string           `json:"market,omitempty" validate:"omitempty,min=1"`
	Selection *string           `json:"selection,omitempty" validate:"omitempty,min=1"`
	Bookmaker *string           `json:"bookmaker,omitempty" validate:"omitempty,min=1"`
	Odds      *decimal.Decimal  `json:"odds,omitempty" validate:"omitempty,gt=1,lte=99999999.99" swaggertype:"number" example:"2.05"`
	Stake     *decimal.Decimal  `json:"stake,omitempty" validate:"omitempty,gt=0,lte=99999999.99" swaggertype:"number" example:"50"`
	BetType   *string           `json:"betType,omitempty" validate:"omitempty,min=1"`
	Result    *domain.BetResult `json:"result,omitempty" validate:"omitempty,oneof=Won Lost Push Pending" example:"Won"`
	Notes     *string           `json:"notes,omitempty"`
}

func (r UpdateBetRequestDTO) ToDomain() domain.BetUpdate {
	u := domain.BetUpdate{
		Sport:     r.Sport,
		League:    r.League,
		Event:     r.Event,
		Market:    r.Market,
		Selection: r.Selection,
		Bookmaker: r.Bookmaker,
		Odds:      r.Odds,
		Stake:     r.Stake,
		BetType:   r.BetType,
		Result:    r.Result,
		Notes:     r.Notes,
	}
	if r.Date != nil {
		t := r.Date.Time
		u.Date = &t
	}
	return u
}

type BetResponseDTO struct {
	ID        uuid.UUID        `json:"id" example:"8d3c1f5e-2b1a-4c9e-9f0d-7a6b5c4d3e2f"`
	UserID    uuid.UUID        `json:"userId" example:"3f2c1e9a-6a55-4f0e-9b7b-4f1a8e2f6c11"`
	Date      time.Time        `json:"date" example:"2024-03-02T00:00:00Z"`
	Sport     string           `json:"sport" example:"Football"`
	League    *string          `json:"league" example:"Premier League"`
	Event     string           `json:"event" example:"Arsenal vs Chelsea"`
	Market    string           `json:"market" example:"Match Result"`
	Selection string           `json:"selection" example:"Arsenal"`
	Bookmaker string           `json:"bookmaker" example:"Bet365"`
	Odds      string           `json:"odds" example:"1.91"`
	Stake     string           `json:"stake" example:"100.00"`
	BetType   string           `json:"betType" example:"Single"`
	Result    domain.BetResult `json:"result" example:"Won"`
	Profit    string           `json:"profit" example:"91.00"`
	Notes     *string          `json:"notes"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func NewBetResponse(b *domain.Bet) BetResponseDTO {
	return BetResponseDTO{
		ID:        b.ID,
		UserID:    b.UserID,
		Date:      b.Date,
		Sport:     b.Sport,
		League:    b.League,
		Event:     b.Event,
		Market:    b.Market,
		Selection: b.Selection,
		Bookmaker: b.Bookmaker,
		Odds:      b.Odds.StringFixed(domain.MoneyPlaces),
		Stake:     b.Stake.StringFixed(domain.MoneyPlaces),
		BetType:   b.BetType,
		Result:    b.Result,
		Profit:    b.Profit.StringFixed(domain.MoneyPlaces),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func NewBetsResponse(bets []domain.Bet) []BetResponseDTO {
	out := make([]BetResponseDTO, 0, len(bets))
	for i := range bets {
		out = append(out, NewBetResponse(&bets[i]))
	}
	return out
}

// ParseBetFilter reads the list filters from a query string. A bare day in
// "to" covers the whole day.
func ParseBetFilter(q url.Values) (domain.BetFilter, error) {
	var errs validate.Errors
	filter := domain.BetFilter{
		Sport:     q.Get("sport"),
		Bookmaker: q.Get("bookmaker"),
		Result:    domain.BetResult(q.Get("result")),
	}
	if filter.Result != "" && !filter.Result.Valid() {
		errs = append(errs, validate.FieldError{Field: "result", Message: "result must be one of: Won, Lost, Push, Pending"})
	}
	if v := q.Get("from"); v != "" {
		d, err := ParseDate(v)
		if err != nil {
			errs = append(errs, validate.FieldError{Field: "from", Message: "from must be a date"})
		} else {
			filter.From = &d.Time
		}
	}
	if v := q.Get("to"); v != "" {
		d, err := ParseDate(v)
		if err != nil {
			errs = append(errs, validate.FieldError{Field: "to", Message: "to must be a date"})
		} else {
			to := d.Time
			if len(v) == len(dayLayout) {
				to = to.Add(24*time.Hour - time.Nanosecond)
			}
			filter.To = &to
		}
	}
	if len(errs) > 0 {
		return domain.BetFilter{}, errs
	}
	return filter, nil
}
