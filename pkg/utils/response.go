package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/betledger/pkg/validate"
	"go.uber.org/zap"
)

type Response struct {
	Message string                `json:"message"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

func RespondWithValidationError(w http.ResponseWriter, message string, errs validate.Errors) {
	RespondWithJSON(w, http.StatusBadRequest, Response{Message: message, Errors: errs})
}

// RespondWithInvalid answers 400, listing the failing fields when err carries them.
func RespondWithInvalid(w http.ResponseWriter, message string, err error) {
	var errs validate.Errors
	if errors.As(err, &errs) {
		RespondWithValidationError(w, message, errs)
		return
	}
	RespondWithError(w, http.StatusBadRequest, message)
}
