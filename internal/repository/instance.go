package repository

import (
	"context"
	"time"

	"github.com/eon-online/eon-server/internal/domain"
)

// Instance defines the interface for game instance persistence
type Instance interface {
	Create(ctx context.Context, inst *domain.GameInstance) (int64, error)
	GetByID(ctx context.Context, instanceID int64) (*domain.GameInstance, error)
	List(ctx context.Context) ([]domain.GameInstance, error)
	SetState(ctx context.Context, instanceID int64, state domain.InstanceState) error

	SpawnWorldItem(ctx context.Context, item *domain.WorldItem) (int64, error)
	ListWorldItems(ctx context.Context, instanceID int64) ([]domain.WorldItem, error)
	// SetInteractableActive is a silent no-op when the row does not exist;
	// interactable toggles are low-stakes field writes.
	SetInteractableActive(ctx context.Context, interactableID int64, active bool) error

	BeginTx(ctx context.Context) (InstanceTx, error)
}

// InstanceTx defines the interface for instance transactions. Membership
// counting, spawn resets and world item pickups all mutate several rows that
// must stay consistent with each other.
type InstanceTx interface {
	Tx
	InventoryOps

	GetByIDForUpdate(ctx context.Context, instanceID int64) (*domain.GameInstance, error)
	AdjustPlayerCount(ctx context.Context, instanceID int64, delta int) error
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	SetPlayerInstance(ctx context.Context, playerID string, instanceID *int64, at time.Time) error
	ResetPlayerSpawn(ctx context.Context, playerID string, at time.Time) error
	GetWorldItemForUpdate(ctx context.Context, worldItemID int64) (*domain.WorldItem, error)
	MarkWorldItemCollected(ctx context.Context, worldItemID int64) error
}
