package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sfomin/gw-currency-rates/internal/logger"
	"github.com/sfomin/gw-currency-rates/internal/services"
)

// CurrencyUpdater defines the interface that the service must implement.
type CurrencyUpdater interface {
	Update(ctx context.Context, code string, rate decimal.Decimal) error
}

// UpdateCurrencyRequest represents the JSON body for updating a rate
// swagger:model UpdateCurrencyRequest
type UpdateCurrencyRequest struct {
	// Currency code
	// required: true
	// default: USD
	Code string `json:"code"`

	// New rate to RUB
	// required: true
	// default: 76.1
	Rate decimal.Decimal `json:"rate"`
}

// NewUpdateCurrencyHandler returns an HTTP handler for updating a rate.
// @Summary Update a currency rate
// @Description Changes the rate of an existing currency.
// @Tags currencies
// @Accept json
// @Produce json
// @Param updateCurrencyRequest body handlers.UpdateCurrencyRequest true "Currency to update"
// @Success 200 {object} handlers.CurrencyStatusResponse "Rate updated"
// @Failure 404 {object} handlers.CurrencyErrorResponse "Currency not found"
// @Failure 422 {object} handlers.CurrencyErrorResponse "Malformed code or rate"
// @Router /update_currency [post]
// @Security BearerAuth
func NewUpdateCurrencyHandler(svc CurrencyUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req UpdateCurrencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Invalid request body"})
			return
		}

		req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
		if !validCode(req.Code) || !req.Rate.IsPositive() {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Invalid code or rate"})
			return
		}

		if err := svc.Update(r.Context(), req.Code, req.Rate); err != nil {
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
