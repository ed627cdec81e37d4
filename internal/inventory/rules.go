package inventory

import "github.com/eon-online/eon-server/internal/domain"

// lowestFreeSlot returns the smallest unused slot index for the entries of one
// owner. The second return is false when all slots are taken.
func lowestFreeSlot(entries []domain.InventoryEntry) (int, bool) {
	used := make(map[int]bool, len(entries))
	for _, e := range entries {
		used[e.SlotIndex] = true
	}
	for slot := 0; slot < domain.MaxInventorySlots; slot++ {
		if !used[slot] {
			return slot, true
		}
	}
	return 0, false
}

// findStackEntry returns the entry holding the item for the owner, or nil.
// Only meaningful for stackable items, which keep at most one entry per item.
func findStackEntry(entries []domain.InventoryEntry, itemID string) *domain.InventoryEntry {
	for i := range entries {
		if entries[i].ItemID == itemID {
			return &entries[i]
		}
	}
	return nil
}

// slotOccupant returns the entry currently sitting in the slot, or nil
func slotOccupant(entries []domain.InventoryEntry, slot int) *domain.InventoryEntry {
	for i := range entries {
		if entries[i].SlotIndex == slot {
			return &entries[i]
		}
	}
	return nil
}

// cappedQuantity clamps a quantity to the item's max stack. Excess is
// discarded silently rather than rejected; callers report what was kept.
func cappedQuantity(quantity, maxStack int) int {
	if quantity > maxStack {
		return maxStack
	}
	return quantity
}
