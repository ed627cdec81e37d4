package repository

import (
	"context"

	"github.com/eon-online/eon-server/internal/domain"
)

// Item defines the interface for item definition persistence.
// Definitions are written only during seeding; reads happen once at startup
// when the in-memory catalog is built.
type Item interface {
	GetByID(ctx context.Context, itemID string) (*domain.ItemDefinition, error)
	ListAll(ctx context.Context) ([]domain.ItemDefinition, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, def domain.ItemDefinition) error
}
