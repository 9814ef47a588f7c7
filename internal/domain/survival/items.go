package survival

import "strings"

// Item ids are stable string keys; display names come from the catalog below
// and fall back to a capitalized id for items it does not know (crafted
// goods carry their recipe's display name instead).
const (
	ItemWood    = "wood"
	ItemStone   = "stone"
	ItemBerries = "berries"
)

var itemNames = map[string]string{
	ItemWood:    "Wood",
	ItemStone:   "Stone",
	ItemBerries: "Berries",
}

func ItemName(id string) string {
	if name, ok := itemNames[id]; ok {
		return name
	}
	if id == "" {
		return ""
	}
	return strings.ToUpper(id[:1]) + id[1:]
}
