package repository

import (
	"context"
	"time"

	"github.com/eon-online/eon-server/internal/domain"
)

// InventoryOps are the transaction-scoped inventory operations. They are
// shared by every feature transaction that touches inventory rows so that an
// economy grant or a world item pickup commits atomically with its own writes.
type InventoryOps interface {
	// LockOwner serializes all inventory writes for one owner by locking the
	// owner's player row for the remainder of the transaction. Row locks on
	// existing entries cannot guard against two transactions inserting into
	// the same free slot, so every write path locks the owner first. Returns
	// domain.ErrPlayerNotFound for an unknown owner.
	LockOwner(ctx context.Context, ownerID string) error
	// ListEntriesForUpdate returns all entries for an owner, locked for the
	// remainder of the transaction. Slot allocation scans this snapshot under
	// the owner lock; slot uniqueness is enforced at write time, not by a
	// schema constraint.
	ListEntriesForUpdate(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error)
	GetEntryForUpdate(ctx context.Context, entryID int64) (*domain.InventoryEntry, error)
	InsertEntry(ctx context.Context, entry *domain.InventoryEntry) (int64, error)
	UpdateEntryQuantity(ctx context.Context, entryID int64, quantity int) error
	UpdateEntrySlot(ctx context.Context, entryID int64, slot int) error
	DeleteEntry(ctx context.Context, entryID int64) error
}

// Inventory defines the interface for inventory persistence
type Inventory interface {
	ListEntries(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error)
	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx defines the interface for inventory transactions. The player
// accessors exist for consumable effects: using an item heals the player in
// the same transaction that decrements the stack.
type InventoryTx interface {
	Tx
	InventoryOps
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayerHealth(ctx context.Context, playerID string, health float32, at time.Time) error
}
