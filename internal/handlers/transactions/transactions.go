package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/GlebRadaev/betledger/internal/dto"
	"github.com/GlebRadaev/betledger/internal/service/transactionservice"
	"github.com/GlebRadaev/betledger/pkg/auth"
	"github.com/GlebRadaev/betledger/pkg/utils"
	"github.com/GlebRadaev/betledger/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=transactions.go -destination=mock_service.go -package=transactions

type Service interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, id, userID uuid.UUID) (*domain.Transaction, error)
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// GetTransactions godoc
//
//	@Summary	List bankroll transactions
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.TransactionResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/transactions [get]
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	txs, err := h.transactionService.ListTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionsResponse(txs))
}

// CreateTransaction godoc
//
//	@Summary	Record a deposit or withdrawal
//	@Tags		Transactions
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateTransactionRequestDTO	true	"Transaction"
//	@Success	200		{object}	dto.TransactionResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid transaction data"
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction data")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithInvalid(w, "Invalid transaction data", err)
		return
	}
	tx, err := h.transactionService.CreateTransaction(r.Context(), req.ToDomain(userID))
	if err != nil {
		var verrs validate.Errors
		if errors.As(err, &verrs) {
			utils.RespondWithValidationError(w, "Invalid transaction data", verrs)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}

// GetTransaction godoc
//
//	@Summary	Get a transaction
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Transaction id"
//	@Success	200	{object}	dto.TransactionResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	tx, err := h.transactionService.GetTransaction(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, transactionservice.ErrTransactionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transaction")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}
