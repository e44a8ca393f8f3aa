// Package repositories contains sqlx-backed access to the relational
// store. Repositories perform no authorization: ownership decisions are
// made one layer up, in the services.
package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/munawir355/muawir-alharbi/internal/middlewares"
)

// ext returns the request-scoped transaction when the tx middleware
// installed one, otherwise the connection pool. Writes issued through the
// middleware run inside a single transaction that is rolled back on
// failure.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
