package survival

import "testing"

func TestInventoryAddAndStackGrowth(t *testing.T) {
	inv := NewInventory(2)
	if !inv.Add(ItemWood, "Wood", 5) {
		t.Fatalf("expected add to succeed")
	}
	if !inv.Add(ItemWood, "Wood", 3) {
		t.Fatalf("expected restock to succeed")
	}
	if got, want := inv.Count(ItemWood), 8; got != want {
		t.Fatalf("stock mismatch: got=%d want=%d", got, want)
	}
	if got, want := inv.Stacks(), 1; got != want {
		t.Fatalf("stack count mismatch: got=%d want=%d", got, want)
	}
}

func TestInventoryCapacityBoundsDistinctStacksOnly(t *testing.T) {
	inv := NewInventory(2)
	inv.Add(ItemWood, "Wood", 1)
	inv.Add(ItemStone, "Stone", 1)
	if inv.Add(ItemBerries, "Berries", 1) {
		t.Fatalf("expected new stack beyond capacity to be rejected")
	}
	if inv.Has(ItemBerries, 1) {
		t.Fatalf("rejected add must not leave a partial stack")
	}
	// Restocking an existing id ignores capacity.
	if !inv.Add(ItemWood, "Wood", 99) {
		t.Fatalf("expected restock at capacity to succeed")
	}
}

func TestInventoryRemoveIsAllOrNothing(t *testing.T) {
	inv := NewInventory(0)
	inv.Add(ItemStone, "Stone", 3)

	if inv.Remove(ItemStone, 4) {
		t.Fatalf("expected over-removal to fail")
	}
	if got, want := inv.Count(ItemStone), 3; got != want {
		t.Fatalf("failed removal must not mutate: got=%d want=%d", got, want)
	}
	if inv.Remove(ItemWood, 1) {
		t.Fatalf("expected removal of absent id to fail")
	}
	if !inv.Remove(ItemStone, 3) {
		t.Fatalf("expected exact removal to succeed")
	}
	if inv.Has(ItemStone, 1) {
		t.Fatalf("expected stack deleted on reaching zero")
	}
	if got, want := inv.Stacks(), 0; got != want {
		t.Fatalf("stack count mismatch: got=%d want=%d", got, want)
	}
}

func TestInventoryConservation(t *testing.T) {
	inv := NewInventory(0)
	total := 0
	for i := 0; i < 10; i++ {
		inv.Add(ItemWood, "Wood", i+1)
		total += i + 1
	}
	for i := 0; i < 4; i++ {
		if inv.Remove(ItemWood, 2) {
			total -= 2
		}
	}
	if got := inv.Count(ItemWood); got != total {
		t.Fatalf("conservation violated: got=%d want=%d", got, total)
	}
}

func TestInventoryItemsPreserveInsertionOrder(t *testing.T) {
	inv := NewInventory(0)
	inv.Add(ItemStone, "Stone", 1)
	inv.Add(ItemWood, "Wood", 2)
	inv.Add(ItemBerries, "Berries", 3)
	inv.Remove(ItemWood, 2)
	inv.Add(ItemWood, "Wood", 1)

	items := inv.Items()
	wantOrder := []string{ItemStone, ItemBerries, ItemWood}
	if len(items) != len(wantOrder) {
		t.Fatalf("item count mismatch: got=%d want=%d", len(items), len(wantOrder))
	}
	for i, id := range wantOrder {
		if items[i].ID != id {
			t.Fatalf("order mismatch at %d: got=%q want=%q", i, items[i].ID, id)
		}
	}
}

func TestInventoryRoundTrip(t *testing.T) {
	inv := NewInventory(0)
	inv.Add(ItemWood, "Wood", 5)
	inv.Add(ItemStone, "Stone", 3)
	inv.Add("wooden_spear", "Wooden Spear", 1)

	restored := InventoryFromItems(0, inv.Items())
	got := restored.Items()
	want := inv.Items()
	if len(got) != len(want) {
		t.Fatalf("round trip count mismatch: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("round trip mismatch at %d: got=%+v want=%+v", i, got[i], want[i])
		}
	}
}
