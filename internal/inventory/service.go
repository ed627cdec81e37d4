package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/logger"
	"github.com/eon-online/eon-server/internal/repository"
)

// Catalog is the item definition lookup the service depends on
type Catalog interface {
	Lookup(itemID string) (*domain.ItemDefinition, error)
}

// Service defines the interface for inventory operations
type Service interface {
	Get(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error)
	AddStack(ctx context.Context, ownerID, itemID string, quantity int) (int, error)
	Remove(ctx context.Context, ownerID string, entryID int64, quantity int) error
	MoveSlot(ctx context.Context, ownerID string, entryID int64, newSlot int) error
	// UseItem consumes one unit of a consumable entry and applies its heal
	// effect, returning the owner's health afterwards.
	UseItem(ctx context.Context, ownerID string, entryID int64) (float32, error)
}

type service struct {
	repo    repository.Inventory
	catalog Catalog
	now     func() time.Time
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory, catalog Catalog) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the owner's entries sorted by slot index
func (s *service) Get(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error) {
	return s.repo.ListEntries(ctx, ownerID)
}

// AddStack adds quantity units of an item, returning the number actually
// added after stack capping
func (s *service) AddStack(ctx context.Context, ownerID, itemID string, quantity int) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAddStackCalled, "owner_id", ownerID, "item_id", itemID, "quantity", quantity)

	if quantity <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}

	def, err := s.catalog.Lookup(itemID)
	if err != nil {
		return 0, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return 0, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	added, err := Grant(ctx, tx, ownerID, def, quantity)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return 0, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	if added < quantity {
		log.Info(LogMsgExcessDiscarded, "owner_id", ownerID, "item_id", itemID, "requested", quantity, "added", added)
	}
	return added, nil
}

// Remove takes quantity units out of an entry, deleting it when emptied
func (s *service) Remove(ctx context.Context, ownerID string, entryID int64, quantity int) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRemoveCalled, "owner_id", ownerID, "entry_id", entryID, "quantity", quantity)

	if quantity <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entry, err := tx.GetEntryForUpdate(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.OwnerID != ownerID {
		return domain.ErrNotOwner
	}
	if quantity > entry.Quantity {
		return fmt.Errorf("%w: have %d, want %d", domain.ErrInsufficientQuantity, entry.Quantity, quantity)
	}

	if quantity == entry.Quantity {
		err = tx.DeleteEntry(ctx, entryID)
	} else {
		err = tx.UpdateEntryQuantity(ctx, entryID, entry.Quantity-quantity)
	}
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return nil
}

// MoveSlot relocates an entry, swapping with any occupant of the target slot
func (s *service) MoveSlot(ctx context.Context, ownerID string, entryID int64, newSlot int) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgMoveSlotCalled, "owner_id", ownerID, "entry_id", entryID, "new_slot", newSlot)

	if newSlot < 0 || newSlot >= domain.MaxInventorySlots {
		return fmt.Errorf("%w: %d", domain.ErrInvalidSlot, newSlot)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.LockOwner(ctx, ownerID); err != nil {
		return err
	}

	entries, err := tx.ListEntriesForUpdate(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to list inventory entries: %w", err)
	}

	var entry *domain.InventoryEntry
	for i := range entries {
		if entries[i].EntryID == entryID {
			entry = &entries[i]
			break
		}
	}
	if entry == nil {
		// either the entry does not exist or it belongs to someone else;
		// distinguish so callers get the right failure
		if _, err := tx.GetEntryForUpdate(ctx, entryID); err != nil {
			return err
		}
		return domain.ErrNotOwner
	}

	if entry.SlotIndex == newSlot {
		return tx.Commit(ctx)
	}

	if occupant := slotOccupant(entries, newSlot); occupant != nil {
		// swap: both entries trade indices, nothing is lost
		if err := tx.UpdateEntrySlot(ctx, occupant.EntryID, entry.SlotIndex); err != nil {
			return err
		}
	}
	if err := tx.UpdateEntrySlot(ctx, entryID, newSlot); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return nil
}

// UseItem consumes one unit of a consumable entry. The heal effect and the
// stack decrement commit together; an empty entry is deleted.
func (s *service) UseItem(ctx context.Context, ownerID string, entryID int64) (float32, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUseItemCalled, "owner_id", ownerID, "entry_id", entryID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return 0, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entry, err := tx.GetEntryForUpdate(ctx, entryID)
	if err != nil {
		return 0, err
	}
	if entry.OwnerID != ownerID {
		return 0, domain.ErrNotOwner
	}

	def, err := s.catalog.Lookup(entry.ItemID)
	if err != nil {
		return 0, err
	}
	if !def.IsConsumable() {
		return 0, fmt.Errorf("%w: %s", domain.ErrNotConsumable, entry.ItemID)
	}

	player, err := tx.GetPlayerForUpdate(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	health := player.Health
	if def.HealAmount > 0 {
		health = min(player.Health+def.HealAmount, player.MaxHealth)
		if err := tx.UpdatePlayerHealth(ctx, ownerID, health, s.now()); err != nil {
			return 0, err
		}
	}

	if entry.Quantity == 1 {
		err = tx.DeleteEntry(ctx, entryID)
	} else {
		err = tx.UpdateEntryQuantity(ctx, entryID, entry.Quantity-1)
	}
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return 0, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	log.Info(LogMsgItemUsed, "owner_id", ownerID, "item_id", entry.ItemID, "health", health)
	return health, nil
}
