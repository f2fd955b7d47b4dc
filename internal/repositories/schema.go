package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sfomin/gw-currency-rates/internal/logger"
)

// Bootstrap creates the currencies table if it does not exist yet.
// Both services run it at startup; the statement is idempotent.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS currencies (
			id BIGSERIAL PRIMARY KEY,
			code VARCHAR(10) NOT NULL UNIQUE,
			rate NUMERIC(18,6) NOT NULL CHECK (rate > 0)
		)
	`

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("schema bootstrap failed", "error", err)
		return err
	}

	logger.Log.Info("schema bootstrap complete")
	return nil
}
