package dto

import (
	"time"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequestDTO struct {
	Type        domain.TransactionType `json:"type" validate:"required,oneof=deposit withdrawal" example:"deposit"`
	Amount      decimal.Decimal        `json:"amount" validate:"required,gt=0,lte=99999999.99" swaggertype:"number" example:"500"`
	Description string                 `json:"description" validate:"required" example:"Initial bankroll"`
	Date        Date                   `json:"date" validate:"required" swaggertype:"string" example:"2024-03-01"`
}

func (r CreateTransactionRequestDTO) ToDomain(userID uuid.UUID) *domain.Transaction {
	return &domain.Transaction{
		UserID:      userID,
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		Date:        r.Date.Time,
	}
}

type TransactionResponseDTO struct {
	ID          uuid.UUID              `json:"id" example:"0b7e2c4a-1d3f-4a5b-8c6d-9e0f1a2b3c4d"`
	UserID      uuid.UUID              `json:"userId" example:"3f2c1e9a-6a55-4f0e-9b7b-4f1a8e2f6c11"`
	Type        domain.TransactionType `json:"type" example:"deposit"`
	Amount      string                 `json:"amount" example:"500.00"`
	Description string                 `json:"description" example:"Initial bankroll"`
	Date        time.Time              `json:"date" example:"2024-03-01T00:00:00Z"`
	CreatedAt   time.Time              `json:"createdAt"`
}

func NewTransactionResponse(t *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        t.Type,
		Amount:      t.Amount.StringFixed(domain.MoneyPlaces),
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}

func NewTransactionsResponse(txs []domain.Transaction) []TransactionResponseDTO {
	out := make([]TransactionResponseDTO, 0, len(txs))
	for i := range txs {
		out = append(out, NewTransactionResponse(&txs[i]))
	}
	return out
}
