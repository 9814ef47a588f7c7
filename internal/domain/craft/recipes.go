package craft

import (
	"survecho/internal/domain/world"
)

type RecipeID uint8

const (
	RecipeWoodenSpear RecipeID = iota + 1
	RecipeCampfire
	RecipeStoneAxe
	RecipeWoodenShack
)

func (r RecipeID) String() string {
	switch r {
	case RecipeWoodenSpear:
		return "wooden_spear"
	case RecipeCampfire:
		return "campfire"
	case RecipeStoneAxe:
		return "stone_axe"
	case RecipeWoodenShack:
		return "wooden_shack"
	default:
		return "unknown"
	}
}

func ParseRecipeID(s string) (RecipeID, bool) {
	switch s {
	case "wooden_spear":
		return RecipeWoodenSpear, true
	case "campfire":
		return RecipeCampfire, true
	case "stone_axe":
		return RecipeStoneAxe, true
	case "wooden_shack":
		return RecipeWoodenShack, true
	default:
		return 0, false
	}
}

// Requirement is one consumed input stack. Requirements are ordered slices
// so consumption and refunds walk them deterministically.
type Requirement struct {
	ItemID string
	Count  int
}

// Recipe is static process-wide configuration. Builds is StructureNone for
// recipes that grant an inventory item instead of placing a structure.
type Recipe struct {
	Name     string
	Requires []Requirement
	Builds   world.StructureKind
}

var recipeDefs = map[RecipeID]Recipe{
	RecipeWoodenSpear: {
		Name:     "Wooden Spear",
		Requires: []Requirement{{ItemID: "wood", Count: 3}, {ItemID: "stone", Count: 1}},
	},
	RecipeCampfire: {
		Name:     "Campfire",
		Requires: []Requirement{{ItemID: "wood", Count: 5}},
		Builds:   world.StructureCampfire,
	},
	RecipeStoneAxe: {
		Name:     "Stone Axe",
		Requires: []Requirement{{ItemID: "wood", Count: 2}, {ItemID: "stone", Count: 3}},
	},
	RecipeWoodenShack: {
		Name:     "Wooden Shack",
		Requires: []Requirement{{ItemID: "wood", Count: 20}},
		Builds:   world.StructureShack,
	},
}

func Lookup(id RecipeID) (Recipe, bool) {
	r, ok := recipeDefs[id]
	return r, ok
}

// Recipes lists every known recipe id in a stable order.
func Recipes() []RecipeID {
	return []RecipeID{RecipeWoodenSpear, RecipeCampfire, RecipeStoneAxe, RecipeWoodenShack}
}
