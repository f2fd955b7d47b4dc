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

// CurrencyAdder defines the interface that the service must implement.
type CurrencyAdder interface {
	Add(ctx context.Context, code string, rate decimal.Decimal) error
}

// LoadCurrencyRequest represents the JSON body for adding a currency
// swagger:model LoadCurrencyRequest
type LoadCurrencyRequest struct {
	// Currency code
	// required: true
	// default: USD
	Code string `json:"code"`

	// Rate to RUB, decimal string or number
	// required: true
	// default: 75.5
	Rate decimal.Decimal `json:"rate"`
}

// CurrencyStatusResponse represents a successful mutation response
// swagger:model CurrencyStatusResponse
type CurrencyStatusResponse struct {
	// Status message
	// default: OK
	Message string `json:"message"`
}

// CurrencyErrorResponse represents an error response for currency operations
// swagger:model CurrencyErrorResponse
type CurrencyErrorResponse struct {
	// Error message
	// default: Currency already exists
	Error string `json:"error"`
}

// validCode reports whether code is 1-10 Latin letters. The gateway
// normalizes input before sending, so this only guards direct callers.
func validCode(code string) bool {
	if code == "" || len(code) > 10 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// NewLoadCurrencyHandler returns an HTTP handler for adding a currency.
// @Summary Add a currency
// @Description Creates a new currency rate entry. The code must be unique; uniqueness is enforced by the table constraint.
// @Tags currencies
// @Accept json
// @Produce json
// @Param loadCurrencyRequest body handlers.LoadCurrencyRequest true "Currency to add"
// @Success 200 {object} handlers.CurrencyStatusResponse "Currency added"
// @Failure 400 {object} handlers.CurrencyErrorResponse "Currency already exists"
// @Failure 422 {object} handlers.CurrencyErrorResponse "Malformed code or rate"
// @Router /load [post]
// @Security BearerAuth
func NewLoadCurrencyHandler(svc CurrencyAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req LoadCurrencyRequest
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

		if err := svc.Add(r.Context(), req.Code, req.Rate); err != nil {
			switch err {
			case services.ErrCurrencyAlreadyExists:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Currency already exists"})
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
