package catalog

import "github.com/eon-online/eon-server/internal/domain"

// DefaultDefinitions returns the built-in item set used to seed a fresh
// database. Item ids are stable and referenced by clients; never rename them.
func DefaultDefinitions() []domain.ItemDefinition {
	return []domain.ItemDefinition{
		{
			ID:          "health_potion",
			DisplayName: "Health Potion",
			Description: "Restores a chunk of health when consumed",
			Category:    domain.CategoryConsumable,
			MaxStack:    10,
			Rarity:      domain.RarityCommon,
			HealAmount:  50,
		},
		{
			ID:          "iron_sword",
			DisplayName: "Iron Sword",
			Description: "A dependable blade",
			Category:    domain.CategoryWeapon,
			MaxStack:    1,
			Rarity:      domain.RarityCommon,
		},
		{
			ID:          "wood",
			DisplayName: "Wood",
			Description: "Basic crafting material",
			Category:    domain.CategoryResource,
			MaxStack:    50,
			Rarity:      domain.RarityCommon,
		},
		{
			ID:          "stone",
			DisplayName: "Stone",
			Description: "Basic crafting material",
			Category:    domain.CategoryResource,
			MaxStack:    50,
			Rarity:      domain.RarityCommon,
		},
		{
			ID:          "dungeon_key",
			DisplayName: "Dungeon Key",
			Description: "Opens a sealed dungeon door",
			Category:    domain.CategoryKey,
			MaxStack:    5,
			Rarity:      domain.RarityUncommon,
		},
		{
			ID:           "celestial_blade",
			DisplayName:  "Celestial Blade",
			Description:  "A blade forged from starlight",
			Category:     domain.CategoryWeapon,
			MaxStack:     1,
			IsPremium:    true,
			PremiumPrice: 1500,
			IsExclusive:  true,
			Rarity:       domain.RarityLegendary,
		},
		{
			ID:           "shadow_cloak",
			DisplayName:  "Shadow Cloak",
			Description:  "Woven from the dusk itself",
			Category:     domain.CategoryArmor,
			MaxStack:     1,
			IsPremium:    true,
			PremiumPrice: 900,
			IsExclusive:  true,
			Rarity:       domain.RarityEpic,
		},
		{
			ID:           "ember_fox",
			DisplayName:  "Ember Fox",
			Description:  "A loyal companion wreathed in cinders",
			Category:     domain.CategoryCompanion,
			MaxStack:     1,
			IsPremium:    true,
			PremiumPrice: 1200,
			IsExclusive:  true,
			Rarity:       domain.RarityEpic,
		},
		{
			ID:           "starter_bundle",
			DisplayName:  "Starter Bundle",
			Description:  "A bundle of useful supplies for new adventurers",
			Category:     domain.CategoryBundle,
			MaxStack:     1,
			IsPremium:    true,
			PremiumPrice: 500,
			Rarity:       domain.RarityRare,
		},
		{
			ID:           "adventurers_pass",
			DisplayName:  "Adventurer's Pass",
			Description:  "Season pass unlocking bonus rewards",
			Category:     domain.CategoryPass,
			MaxStack:     1,
			IsPremium:    true,
			PremiumPrice: 950,
			IsExclusive:  true,
			Rarity:       domain.RarityRare,
		},
	}
}
