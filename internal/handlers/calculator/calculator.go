// Package calculator exposes the stateless bet calculators over HTTP. No
// authentication and no storage are involved.
package calculator

import (
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/betledger/internal/calculator"
	"github.com/GlebRadaev/betledger/internal/dto"
	"github.com/GlebRadaev/betledger/pkg/utils"
	"github.com/GlebRadaev/betledger/pkg/validate"
)

type CalculatorHandler struct{}

func New() *CalculatorHandler {
	return &CalculatorHandler{}
}

func decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithInvalid(w, "Invalid calculator input", err)
		return false
	}
	return true
}

// Single godoc
//
//	@Summary	Single bet returns
//	@Tags		Calculator
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SingleRequestDTO	true	"Stake and odds"
//	@Success	200		{object}	dto.SingleResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid calculator input"
//	@Router		/api/calculator/single [post]
func (h *CalculatorHandler) Single(w http.ResponseWriter, r *http.Request) {
	var req dto.SingleRequestDTO
	if !decode(w, r, &req) {
		return
	}
	res, err := calculator.Single(req.Stake, req.Odds)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSingleResponse(res))
}

// Accumulator godoc
//
//	@Summary	Accumulator returns
//	@Tags		Calculator
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AccumulatorRequestDTO	true	"Stake and leg odds"
//	@Success	200		{object}	dto.AccumulatorResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid calculator input"
//	@Router		/api/calculator/accumulator [post]
func (h *CalculatorHandler) Accumulator(w http.ResponseWriter, r *http.Request) {
	var req dto.AccumulatorRequestDTO
	if !decode(w, r, &req) {
		return
	}
	res, err := calculator.Accumulator(req.Stake, req.Legs)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccumulatorResponse(res))
}

// Arbitrage godoc
//
//	@Summary	Two-way arbitrage split
//	@Tags		Calculator
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ArbitrageRequestDTO	true	"Total stake and both odds"
//	@Success	200		{object}	dto.ArbitrageResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid calculator input"
//	@Router		/api/calculator/arbitrage [post]
func (h *CalculatorHandler) Arbitrage(w http.ResponseWriter, r *http.Request) {
	var req dto.ArbitrageRequestDTO
	if !decode(w, r, &req) {
		return
	}
	res, err := calculator.Arbitrage(req.TotalStake, req.OddsA, req.OddsB)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewArbitrageResponse(res))
}

// Dutching godoc
//
//	@Summary	Dutching stakes
//	@Tags		Calculator
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.DutchingRequestDTO	true	"Total stake and selection odds"
//	@Success	200		{object}	dto.DutchingResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid calculator input"
//	@Router		/api/calculator/dutching [post]
func (h *CalculatorHandler) Dutching(w http.ResponseWriter, r *http.Request) {
	var req dto.DutchingRequestDTO
	if !decode(w, r, &req) {
		return
	}
	res, err := calculator.Dutching(req.TotalStake, req.Odds)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDutchingResponse(res))
}

// EachWay godoc
//
//	@Summary	Each-way returns
//	@Tags		Calculator
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.EachWayRequestDTO	true	"Stake per part, odds and place terms"
//	@Success	200		{object}	dto.EachWayResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid calculator input"
//	@Router		/api/calculator/each-way [post]
func (h *CalculatorHandler) EachWay(w http.ResponseWriter, r *http.Request) {
	var req dto.EachWayRequestDTO
	if !decode(w, r, &req) {
		return
	}
	res, err := calculator.EachWay(req.Stake, req.Odds, req.PlaceFraction)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEachWayResponse(res))
}
