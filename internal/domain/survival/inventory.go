package survival

// Item is one carried stack. Amount is always >= 1 while the stack exists.
type Item struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// Inventory maps item ids to stacks. Capacity bounds the number of distinct
// stacks, not the total quantity: it is checked only when a new id is
// inserted. Insertion order is tracked so serialization round-trips the
// stack list stably.
type Inventory struct {
	capacity int
	order    []string
	items    map[string]*Item
}

func NewInventory(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = InventoryCapacity
	}
	return &Inventory{capacity: capacity, items: make(map[string]*Item)}
}

// Add increments an existing stack unconditionally, or inserts a new stack
// if capacity allows. Returns false (and discards the items) when a new
// stack would exceed capacity.
func (inv *Inventory) Add(id, name string, amount int) bool {
	if id == "" || amount <= 0 {
		return false
	}
	if it, ok := inv.items[id]; ok {
		it.Amount += amount
		return true
	}
	if len(inv.items) >= inv.capacity {
		return false
	}
	inv.items[id] = &Item{ID: id, Name: name, Amount: amount}
	inv.order = append(inv.order, id)
	return true
}

// Remove fails without side effects when the id is absent or the stack is
// short; removal down to zero deletes the stack.
func (inv *Inventory) Remove(id string, amount int) bool {
	if amount <= 0 {
		return false
	}
	it, ok := inv.items[id]
	if !ok || it.Amount < amount {
		return false
	}
	it.Amount -= amount
	if it.Amount == 0 {
		delete(inv.items, id)
		for i, oid := range inv.order {
			if oid == id {
				inv.order = append(inv.order[:i], inv.order[i+1:]...)
				break
			}
		}
	}
	return true
}

func (inv *Inventory) Has(id string, amount int) bool {
	it, ok := inv.items[id]
	return ok && it.Amount >= amount
}

func (inv *Inventory) Count(id string) int {
	if it, ok := inv.items[id]; ok {
		return it.Amount
	}
	return 0
}

func (inv *Inventory) Stacks() int { return len(inv.items) }

// Items returns the stacks in insertion order. The slice is a copy.
func (inv *Inventory) Items() []Item {
	out := make([]Item, 0, len(inv.order))
	for _, id := range inv.order {
		if it, ok := inv.items[id]; ok {
			out = append(out, *it)
		}
	}
	return out
}

// InventoryFromItems rebuilds an inventory from a serialized stack list,
// preserving order. Duplicate ids merge into one stack; non-positive
// amounts are dropped.
func InventoryFromItems(capacity int, items []Item) *Inventory {
	inv := NewInventory(capacity)
	for _, it := range items {
		inv.Add(it.ID, it.Name, it.Amount)
	}
	return inv
}
