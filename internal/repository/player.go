package repository

import (
	"context"
	"time"

	"github.com/eon-online/eon-server/internal/domain"
)

// Player defines the interface for player persistence.
// All mutations are targeted field updates: rebuilding and replacing the whole
// row would clobber fields written by concurrent calls.
type Player interface {
	GetByID(ctx context.Context, playerID string) (*domain.Player, error)
	Exists(ctx context.Context, playerID string) (bool, error)
	Create(ctx context.Context, player *domain.Player) error
	SetOnline(ctx context.Context, playerID string, online bool, at time.Time) error
	UpdateName(ctx context.Context, playerID, name string, at time.Time) error
	UpdateTransform(ctx context.Context, playerID string, t domain.Transform, at time.Time) error
	SetAttacking(ctx context.Context, playerID string, attacking bool, at time.Time) error
	UpdateHealth(ctx context.Context, playerID string, health float32, at time.Time) error
}
