package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sfomin/gw-currency-rates/internal/logger"
	"github.com/sfomin/gw-currency-rates/internal/services"
)

// CurrencyDeleter defines the interface that the service must implement.
type CurrencyDeleter interface {
	Delete(ctx context.Context, code string) error
}

// DeleteCurrencyRequest represents the JSON body for deleting a currency
// swagger:model DeleteCurrencyRequest
type DeleteCurrencyRequest struct {
	// Currency code
	// required: true
	// default: USD
	Code string `json:"code"`
}

// NewDeleteCurrencyHandler returns an HTTP handler for deleting a currency.
// @Summary Delete a currency
// @Description Removes a currency rate entry.
// @Tags currencies
// @Accept json
// @Produce json
// @Param deleteCurrencyRequest body handlers.DeleteCurrencyRequest true "Currency to delete"
// @Success 200 {object} handlers.CurrencyStatusResponse "Currency deleted"
// @Failure 404 {object} handlers.CurrencyErrorResponse "Currency not found"
// @Failure 422 {object} handlers.CurrencyErrorResponse "Malformed code"
// @Router /delete [post]
// @Security BearerAuth
func NewDeleteCurrencyHandler(svc CurrencyDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req DeleteCurrencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Invalid request body"})
			return
		}

		req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
		if !validCode(req.Code) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Invalid code"})
			return
		}

		if err := svc.Delete(r.Context(), req.Code); err != nil {
			switch err {
			case services.ErrCurrencyNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Currency not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CurrencyStatusResponse{Message: "OK"})
	}
}
