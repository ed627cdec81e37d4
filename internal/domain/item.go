package domain

// ItemCategory classifies an item definition
type ItemCategory string

const (
	CategoryWeapon     ItemCategory = "weapon"
	CategoryConsumable ItemCategory = "consumable"
	CategoryKey        ItemCategory = "key"
	CategoryResource   ItemCategory = "resource"
	CategoryArmor      ItemCategory = "armor"
	CategoryAccessory  ItemCategory = "accessory"
	CategoryMount      ItemCategory = "mount"
	CategoryCompanion  ItemCategory = "companion"
	CategoryBundle     ItemCategory = "bundle"
	CategoryPass       ItemCategory = "pass"
)

// Rarity represents the rarity tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// ItemDefinition is the immutable template for an item type.
// Definitions are loaded once at startup and never change afterwards;
// the catalog hands out copies so callers cannot mutate shared state.
type ItemDefinition struct {
	ID           string       `json:"item_id" db:"item_id"`
	DisplayName  string       `json:"display_name" db:"display_name"`
	Description  string       `json:"description" db:"item_description"`
	Category     ItemCategory `json:"category" db:"category"`
	MaxStack     int          `json:"max_stack" db:"max_stack"` // >= 1
	IsPremium    bool         `json:"is_premium" db:"is_premium"`
	PremiumPrice int64        `json:"premium_price" db:"premium_price"` // 0 = not purchasable
	IsExclusive  bool         `json:"is_exclusive" db:"is_exclusive"`   // at most one unit ever owned per player
	Rarity       Rarity       `json:"rarity" db:"rarity"`
	HealAmount   float32      `json:"heal_amount" db:"heal_amount"` // health restored on use; 0 = no effect
}

// IsUnique reports whether each unit of the item occupies its own slot.
func (d *ItemDefinition) IsUnique() bool {
	return d.MaxStack == 1
}

// IsPurchasable reports whether the item can be bought with premium currency.
func (d *ItemDefinition) IsPurchasable() bool {
	return d.IsPremium && d.PremiumPrice > 0
}

// IsConsumable reports whether a unit can be used up for its effect.
func (d *ItemDefinition) IsConsumable() bool {
	return d.Category == CategoryConsumable
}
