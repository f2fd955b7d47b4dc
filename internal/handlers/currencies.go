package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sfomin/gw-currency-rates/internal/logger"
	"github.com/sfomin/gw-currency-rates/internal/models"
)

// CurrencyLister defines the interface that the service must implement.
type CurrencyLister interface {
	List(ctx context.Context) ([]models.Currency, error)
}

// NewListCurrenciesHandler returns an HTTP handler listing all currencies.
// @Summary List currencies
// @Description Returns all stored currencies ordered by code.
// @Tags currencies
// @Produce json
// @Success 200 {array} models.Currency "Stored currencies"
// @Failure 500 {object} handlers.CurrencyErrorResponse "Internal server error"
// @Router /currencies [get]
func NewListCurrenciesHandler(svc CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		currencies, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CurrencyErrorResponse{Error: "Internal server error"})
			return
		}

		if currencies == nil {
			currencies = []models.Currency{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(currencies)
	}
}
