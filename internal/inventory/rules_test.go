package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eon-online/eon-server/internal/domain"
)

func entryAt(slot int) domain.InventoryEntry {
	return domain.InventoryEntry{SlotIndex: slot}
}

func TestLowestFreeSlot(t *testing.T) {
	tests := []struct {
		name     string
		occupied []int
		want     int
		wantOK   bool
	}{
		{"empty inventory", nil, 0, true},
		{"first slot taken", []int{0}, 1, true},
		{"gap in the middle", []int{0, 1, 3}, 2, true},
		{"sparse high slots", []int{50, 99}, 0, true},
		{"all but last", rangeSlots(0, 99), 99, true},
		{"completely full", rangeSlots(0, 100), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]domain.InventoryEntry, 0, len(tt.occupied))
			for _, s := range tt.occupied {
				entries = append(entries, entryAt(s))
			}
			got, ok := lowestFreeSlot(entries)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func rangeSlots(from, to int) []int {
	slots := make([]int, 0, to-from)
	for s := from; s < to; s++ {
		slots = append(slots, s)
	}
	return slots
}

func TestCappedQuantity(t *testing.T) {
	assert.Equal(t, 10, cappedQuantity(14, 10))
	assert.Equal(t, 10, cappedQuantity(10, 10))
	assert.Equal(t, 3, cappedQuantity(3, 10))
	assert.Equal(t, 1, cappedQuantity(5, 1))
}

func TestFindStackEntry(t *testing.T) {
	entries := []domain.InventoryEntry{
		{EntryID: 1, ItemID: "wood", SlotIndex: 0},
		{EntryID: 2, ItemID: "stone", SlotIndex: 1},
	}

	found := findStackEntry(entries, "stone")
	assert.NotNil(t, found)
	assert.Equal(t, int64(2), found.EntryID)

	assert.Nil(t, findStackEntry(entries, "gold"))
}

func TestSlotOccupant(t *testing.T) {
	entries := []domain.InventoryEntry{
		{EntryID: 1, ItemID: "wood", SlotIndex: 4},
	}

	assert.NotNil(t, slotOccupant(entries, 4))
	assert.Nil(t, slotOccupant(entries, 5))
}
