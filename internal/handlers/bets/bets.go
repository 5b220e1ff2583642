package bets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/GlebRadaev/betledger/internal/dto"
	"github.com/GlebRadaev/betledger/internal/service/betservice"
	"github.com/GlebRadaev/betledger/pkg/auth"
	"github.com/GlebRadaev/betledger/pkg/utils"
	"github.com/GlebRadaev/betledger/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=bets.go -destination=mock_service.go -package=bets

type Service interface {
	CreateBet(ctx context.Context, bet *domain.Bet) (*domain.Bet, error)
	ListBets(ctx context.Context, userID uuid.UUID, filter domain.BetFilter) ([]domain.Bet, error)
	GetBet(ctx context.Context, id, userID uuid.UUID) (*domain.Bet, error)
	UpdateBet(ctx context.Context, id, userID uuid.UUID, update domain.BetUpdate) (*domain.Bet, error)
	DeleteBet(ctx context.Context, id, userID uuid.UUID) error
}

type BetHandler struct {
	betService Service
}

func New(betService Service) *BetHandler {
	return &BetHandler{
		betService: betService,
	}
}

// GetBets godoc
//
//	@Summary		List bets
//	@Description	The caller's bets, newest first
//	@Tags			Bets
//	@Produce		json
//	@Security		BearerAuth
//	@Param			sport		query		string	false	"Sport"
//	@Param			bookmaker	query		string	false	"Bookmaker"
//	@Param			result		query		string	false	"Result"	Enums(Won, Lost, Push, Pending)
//	@Param			from		query		string	false	"Earliest bet date"
//	@Param			to			query		string	false	"Latest bet date"
//	@Success		200			{array}		dto.BetResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid filter"
//	@Failure		401			{object}	utils.Response	"Unauthorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/bets [get]
func (h *BetHandler) GetBets(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter, err := dto.ParseBetFilter(r.URL.Query())
	if err != nil {
		utils.RespondWithInvalid(w, "Invalid filter", err)
		return
	}
	bets, err := h.betService.ListBets(r.Context(), userID, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bets")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBetsResponse(bets))
}

// CreateBet godoc
//
//	@Summary		Record a bet
//	@Description	Result defaults to Pending; profit is derived from result, odds and stake
//	@Tags			Bets
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateBetRequestDTO	true	"Bet"
//	@Success		200		{object}	dto.BetResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid bet data"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bets [post]
func (h *BetHandler) CreateBet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateBetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bet data")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithInvalid(w, "Invalid bet data", err)
		return
	}
	bet, err := h.betService.CreateBet(r.Context(), req.ToDomain(userID))
	if err != nil {
		var verrs validate.Errors
		if errors.As(err, &verrs) {
			utils.RespondWithValidationError(w, "Invalid bet data", verrs)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create bet")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBetResponse(bet))
}

// GetBet godoc
//
//	@Summary	Get a bet
//	@Tags		Bets
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Bet id"
//	@Success	200	{object}	dto.BetResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Bet not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/bets/{id} [get]
func (h *BetHandler) GetBet(w http.ResponseWriter, r *http.Request) {
	userID, betID, ok := h.ids(w, r)
	if !ok {
		return
	}
	bet, err := h.betService.GetBet(r.Context(), betID, userID)
	if err != nil {
		if errors.Is(err, betservice.ErrBetNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Bet not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bet")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBetResponse(bet))
}

// UpdateBet godoc
//
//	@Summary		Update a bet
//	@Description	Partial update; profit is recomputed from the merged record
//	@Tags			Bets
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Bet id"
//	@Param			request	body		dto.UpdateBetRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.BetResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid bet data"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Bet not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/{id} [put]
func (h *BetHandler) UpdateBet(w http.ResponseWriter, r *http.Request) {
	userID, betID, ok := h.ids(w, r)
	if !ok {
		return
	}
	var req dto.UpdateBetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bet data")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithInvalid(w, "Invalid bet data", err)
		return
	}
	bet, err := h.betService.UpdateBet(r.Context(), betID, userID, req.ToDomain())
	if err != nil {
		var verrs validate.Errors
		switch {
		case errors.Is(err, betservice.ErrBetNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Bet not found")
		case errors.As(err, &verrs):
			utils.RespondWithValidationError(w, "Invalid bet data", verrs)
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update bet")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBetResponse(bet))
}

// DeleteBet godoc
//
//	@Summary	Delete a bet
//	@Tags		Bets
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Bet id"
//	@Success	200	{object}	dto.MessageResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Bet not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/bets/{id} [delete]
func (h *BetHandler) DeleteBet(w http.ResponseWriter, r *http.Request) {
	userID, betID, ok := h.ids(w, r)
	if !ok {
		return
	}
	if err := h.betService.DeleteBet(r.Context(), betID, userID); err != nil {
		if errors.Is(err, betservice.ErrBetNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Bet not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete bet")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Bet deleted successfully"})
}

// ids resolves the caller and the bet id from the path. A malformed id is
// reported the same way as a missing bet.
func (h *BetHandler) ids(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	betID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Bet not found")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, betID, true
}
