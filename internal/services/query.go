package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sfomin/gw-currency-rates/internal/logger"
	"github.com/sfomin/gw-currency-rates/internal/models"
)

// CurrencyReader defines read operations on the currencies table.
type CurrencyReader interface {
	GetByCode(ctx context.Context, code string) (*models.CurrencyDB, error)
	List(ctx context.Context) ([]models.CurrencyDB, error)
}

// RateCacheReader caches rates by currency code.
type RateCacheReader interface {
	GetRate(ctx context.Context, code string) (decimal.Decimal, error)
	SetRate(ctx context.Context, code string, rate decimal.Decimal) error
}

// QueryService serves the read-only half of the store: listing and
// unit conversion.
type QueryService struct {
	reader CurrencyReader
	cache  RateCacheReader
}

// NewQueryService creates a new QueryService. Cache may be nil.
func NewQueryService(reader CurrencyReader, cache RateCacheReader) *QueryService {
	return &QueryService{
		reader: reader,
		cache:  cache,
	}
}

// List returns all currencies ordered by code.
func (svc *QueryService) List(ctx context.Context) ([]models.Currency, error) {
	rows, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list currencies", "err", err)
		return nil, err
	}

	currencies := make([]models.Currency, 0, len(rows))
	for _, row := range rows {
		currencies = append(currencies, models.Currency{
			Code: row.Code,
			Rate: row.Rate,
		})
	}

	return currencies, nil
}

// Convert multiplies amount by the stored rate for code. The arithmetic
// stays decimal throughout and the result carries 2 fractional digits.
func (svc *QueryService) Convert(ctx context.Context, code string, amount decimal.Decimal) (*models.Conversion, error) {
	rate, err := svc.rateForCode(ctx, code)
	if err != nil {
		return nil, err
	}

	return &models.Conversion{
		Code:   code,
		Amount: amount,
		Rate:   rate,
		Result: rate.Mul(amount).Round(2),
	}, nil
}

// rateForCode reads the rate from the cache first and falls back to the
// table, filling the cache on the way back.
func (svc *QueryService) rateForCode(ctx context.Context, code string) (decimal.Decimal, error) {
	if svc.cache != nil {
		if rate, err := svc.cache.GetRate(ctx, code); err == nil {
			return rate, nil
		}
	}

	currency, err := svc.reader.GetByCode(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to get currency", "code", code, "err", err)
		return decimal.Zero, err
	}
	if currency == nil {
		logger.Log.Errorw("currency not found", "code", code)
		return decimal.Zero, ErrCurrencyNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.SetRate(ctx, code, currency.Rate); err != nil {
			logger.Log.Warnw("failed to cache rate", "code", code, "err", err)
		}
	}

	return currency.Rate, nil
}
