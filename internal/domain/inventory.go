package domain

// MaxInventorySlots is the number of slots in a player inventory.
// Slot indices range over [0, MaxInventorySlots).
const MaxInventorySlots = 100

// InventoryEntry is one slot occupant in a player's inventory.
// For items with MaxStack > 1 at most one entry exists per (owner, item);
// unique items (MaxStack == 1) occupy one entry per unit.
type InventoryEntry struct {
	EntryID   int64  `json:"entry_id" db:"entry_id"`
	OwnerID   string `json:"owner_id" db:"owner_id"`
	ItemID    string `json:"item_id" db:"item_id"`
	Quantity  int    `json:"quantity" db:"quantity"` // 1 <= Quantity <= item MaxStack
	SlotIndex int    `json:"slot_index" db:"slot_index"`
}
