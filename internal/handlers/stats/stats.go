package stats

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/GlebRadaev/betledger/internal/dto"
	"github.com/GlebRadaev/betledger/internal/service/statsservice"
	"github.com/GlebRadaev/betledger/pkg/auth"
	"github.com/GlebRadaev/betledger/pkg/utils"
	"github.com/google/uuid"
)

//go:generate mockgen -source=stats.go -destination=mock_service.go -package=stats

type Service interface {
	BetStats(ctx context.Context, userID uuid.UUID) (*domain.BetStats, error)
	BankrollBalance(ctx context.Context, userID uuid.UUID) (*domain.BankrollBalance, error)
	Breakdown(ctx context.Context, userID uuid.UUID, by domain.GroupBy) ([]domain.GroupStats, error)
}

type StatsHandler struct {
	statsService Service
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetBetStats godoc
//
//	@Summary	Betting performance
//	@Tags		Stats
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BetStatsResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/stats/bets [get]
func (h *StatsHandler) GetBetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	stats, err := h.statsService.BetStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bet stats")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBetStatsResponse(*stats))
}

// GetBankroll godoc
//
//	@Summary	Bankroll balance
//	@Tags		Stats
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BankrollResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/stats/bankroll [get]
func (h *StatsHandler) GetBankroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	balance, err := h.statsService.BankrollBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bankroll")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBankrollResponse(*balance))
}

// GetBreakdown godoc
//
//	@Summary	Performance grouped by an attribute
//	@Tags		Stats
//	@Produce	json
//	@Security	BearerAuth
//	@Param		by	query		string	false	"Grouping, sport by default"	Enums(sport, bookmaker, market, betType)
//	@Success	200	{array}		dto.GroupStatsResponseDTO
//	@Failure	400	{object}	utils.Response	"Unsupported grouping"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/stats/breakdown [get]
func (h *StatsHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	by := domain.GroupBy(r.URL.Query().Get("by"))
	if by == "" {
		by = domain.GroupBySport
	}
	groups, err := h.statsService.Breakdown(r.Context(), userID, by)
	if err != nil {
		if errors.Is(err, statsservice.ErrUnsupportedGrouping) {
			utils.RespondWithError(w, http.StatusBadRequest, "Unsupported grouping")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch breakdown")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBreakdownResponse(groups))
}
