package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/imaciel7/lar-doce-api/internal/middlewares"
)

// executor returns the transaction bound to ctx when one is present,
// so repositories called within TxMiddleware share a single commit.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
