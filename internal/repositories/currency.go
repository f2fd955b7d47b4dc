package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sfomin/gw-currency-rates/internal/logger"
	"github.com/sfomin/gw-currency-rates/internal/middlewares"
	"github.com/sfomin/gw-currency-rates/internal/models"
)

type CurrencyReadRepository struct {
	db *sqlx.DB
}

func NewCurrencyReadRepository(db *sqlx.DB) *CurrencyReadRepository {
	return &CurrencyReadRepository{db: db}
}

// GetByCode returns the currency with the given code, or nil if absent.
func (r *CurrencyReadRepository) GetByCode(ctx context.Context, code string) (*models.CurrencyDB, error) {
	const query = `
		SELECT id, code, rate
		FROM currencies
		WHERE code = $1
	`

	var currency models.CurrencyDB
	err := r.db.GetContext(ctx, &currency, query, code)

	logger.Log.Infow("currency get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &currency, nil
}

// List returns all currencies ordered by code.
func (r *CurrencyReadRepository) List(ctx context.Context) ([]models.CurrencyDB, error) {
	const query = `
		SELECT id, code, rate
		FROM currencies
		ORDER BY code
	`

	var currencies []models.CurrencyDB
	err := r.db.SelectContext(ctx, &currencies, query)

	logger.Log.Infow("currency list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(currencies),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return currencies, nil
}

type CurrencyWriteRepository struct {
	db *sqlx.DB
}

func NewCurrencyWriteRepository(db *sqlx.DB) *CurrencyWriteRepository {
	return &CurrencyWriteRepository{db: db}
}

// ext returns the transaction bound to the request context when the
// handler runs under TxMiddleware, otherwise the bare connection pool.
func (r *CurrencyWriteRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Insert adds a new currency. The uniqueness of code is enforced by the
// constraint, not by a prior existence check: of two concurrent inserts
// for the same code exactly one reports inserted=true.
func (r *CurrencyWriteRepository) Insert(ctx context.Context, code string, rate decimal.Decimal) (inserted bool, err error) {
	const query = `
		INSERT INTO currencies (code, rate)
		VALUES ($1, $2)
		ON CONFLICT (code) DO NOTHING
	`
	args := []any{code, rate}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("currency insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// UpdateRate changes the rate of an existing currency.
// Returns updated=false if the code is not present.
func (r *CurrencyWriteRepository) UpdateRate(ctx context.Context, code string, rate decimal.Decimal) (updated bool, err error) {
	const query = `
		UPDATE currencies
		SET rate = $2
		WHERE code = $1
	`
	args := []any{code, rate}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("currency update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// Delete removes a currency. Returns deleted=false if the code is not present.
func (r *CurrencyWriteRepository) Delete(ctx context.Context, code string) (deleted bool, err error) {
	const query = `
		DELETE FROM currencies
		WHERE code = $1
	`
	args := []any{code}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("currency delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
