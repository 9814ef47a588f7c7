package craft

import (
	"errors"

	"survecho/internal/domain/survival"
	"survecho/internal/domain/world"
)

var (
	ErrUnknownRecipe    = errors.New("unknown recipe")
	ErrMissingMaterials = errors.New("missing materials")
	ErrPlacementBlocked = errors.New("placement blocked")
	ErrInventoryFull    = errors.New("inventory full")
)

// Resolver validates and applies recipes against an inventory and the world.
// Every outcome is atomic: a failed craft leaves the inventory exactly as it
// was before the attempt.
type Resolver struct{}

// Craft consumes the recipe's requirements and either grants one unit of the
// crafted item or places the recipe's structure at (tileX, tileY). When
// placement fails the consumed materials are fully refunded; the refund is a
// correctness requirement, not best effort.
func (Resolver) Craft(inv *survival.Inventory, w *world.World, id RecipeID, tileX, tileY int) error {
	recipe, ok := recipeDefs[id]
	if !ok {
		return ErrUnknownRecipe
	}
	for _, req := range recipe.Requires {
		if !inv.Has(req.ItemID, req.Count) {
			return ErrMissingMaterials
		}
	}
	for _, req := range recipe.Requires {
		inv.Remove(req.ItemID, req.Count)
	}

	if recipe.Builds != world.StructureNone {
		if !w.PlaceStructure(tileX, tileY, recipe.Builds) {
			refund(inv, recipe)
			return ErrPlacementBlocked
		}
		return nil
	}

	// The refund can always be applied: consuming the requirements freed at
	// least the stacks the refund re-creates.
	if !inv.Add(id.String(), recipe.Name, 1) {
		refund(inv, recipe)
		return ErrInventoryFull
	}
	return nil
}

func refund(inv *survival.Inventory, recipe Recipe) {
	for _, req := range recipe.Requires {
		inv.Add(req.ItemID, survival.ItemName(req.ItemID), req.Count)
	}
}
