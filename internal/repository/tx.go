package repository

import (
	"context"

	"github.com/eon-online/eon-server/internal/logger"
)

// Tx is the base interface for transactional operations. Every state-changing
// operation runs inside exactly one Tx: all writes become visible together on
// Commit or not at all.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback rolls back a transaction and logs any failure. Implementations
// must treat rollback after commit as a no-op, so deferring this is always safe.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
