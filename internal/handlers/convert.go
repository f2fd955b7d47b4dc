package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sfomin/gw-currency-rates/internal/logger"
	"github.com/sfomin/gw-currency-rates/internal/models"
	"github.com/sfomin/gw-currency-rates/internal/services"
)

// Converter defines the interface that the service must implement.
type Converter interface {
	Convert(ctx context.Context, code string, amount decimal.Decimal) (*models.Conversion, error)
}

// NewConvertHandler returns an HTTP handler converting an amount to RUB.
// @Summary Convert an amount
// @Description Multiplies amount by the stored rate for code; the result carries 2 fractional digits.
// @Tags currencies
// @Produce json
// @Param code query string true "Currency code" default(USD)
// @Param amount query string true "Amount to convert, decimal" default(10)
// @Success 200 {object} models.Conversion "Conversion result"
// @Failure 404 {object} handlers.CurrencyErrorResponse "Currency not found"
// @Failure 422 {object} handlers.CurrencyErrorResponse "Malformed code or amount"
// @Router /convert [get]
func NewConvertHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		code := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("code")))
		amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
		if !validCode(code) || err != nil || !amount.IsPositive() {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Invalid code or amount"})
			return
		}

		conversion, err := svc.Convert(r.Context(), code, amount)
		if err != nil {
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
		json.NewEncoder(w).Encode(conversion)
	}
}
