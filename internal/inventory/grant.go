package inventory

import (
	"context"
	"fmt"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/repository"
)

// Grant adds quantity units of an item to an owner's inventory inside an
// already-open transaction. It is the single implementation of the stacking
// and slot allocation rules, shared by direct adds, purchases, gifts, grants,
// reclaims and world item pickups.
//
// Stackable items merge into their existing entry, capped at the item's max
// stack; quantity beyond the cap is discarded silently. New entries take the
// lowest free slot and fail with domain.ErrInventoryFull when none is left.
// The owner lock is taken before the scan so that two concurrent grants can
// never allocate the same free slot. Returns the number of units actually
// added.
func Grant(ctx context.Context, ops repository.InventoryOps, ownerID string, def *domain.ItemDefinition, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}

	if err := ops.LockOwner(ctx, ownerID); err != nil {
		return 0, err
	}

	entries, err := ops.ListEntriesForUpdate(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to list inventory entries: %w", err)
	}

	if def.MaxStack > 1 {
		if existing := findStackEntry(entries, def.ID); existing != nil {
			merged := cappedQuantity(existing.Quantity+quantity, def.MaxStack)
			added := merged - existing.Quantity
			if added == 0 {
				return 0, nil
			}
			if err := ops.UpdateEntryQuantity(ctx, existing.EntryID, merged); err != nil {
				return 0, fmt.Errorf("failed to update entry quantity: %w", err)
			}
			return added, nil
		}
	}

	slot, ok := lowestFreeSlot(entries)
	if !ok {
		return 0, domain.ErrInventoryFull
	}

	added := cappedQuantity(quantity, def.MaxStack)
	entry := &domain.InventoryEntry{
		OwnerID:   ownerID,
		ItemID:    def.ID,
		Quantity:  added,
		SlotIndex: slot,
	}
	if _, err := ops.InsertEntry(ctx, entry); err != nil {
		return 0, fmt.Errorf("failed to insert inventory entry: %w", err)
	}
	return added, nil
}

// HasUnit reports whether the owner already holds at least one unit of the
// item within the transaction's locked snapshot
func HasUnit(ctx context.Context, ops repository.InventoryOps, ownerID, itemID string) (bool, error) {
	entries, err := ops.ListEntriesForUpdate(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to list inventory entries: %w", err)
	}
	return findStackEntry(entries, itemID) != nil, nil
}
