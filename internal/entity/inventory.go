package entity

import "slices"

// Inventory is a bounded, ordered list of equipment.
type Inventory struct {
	items    []*Equipment
	capacity int
}

// NewInventory returns an empty inventory holding at most capacity items.
func NewInventory(capacity int) *Inventory {
	return &Inventory{capacity: capacity}
}

func (inv *Inventory) Len() int   { return len(inv.items) }
func (inv *Inventory) Cap() int   { return inv.capacity }
func (inv *Inventory) Full() bool { return len(inv.items) >= inv.capacity }

// Items returns a copy of the contents in pickup order.
func (inv *Inventory) Items() []*Equipment { return slices.Clone(inv.items) }

// At returns the item at index i.
func (inv *Inventory) At(i int) (*Equipment, bool) {
	if i < 0 || i >= len(inv.items) {
		return nil, false
	}
	return inv.items[i], true
}

// Add appends e unless the inventory is full.
func (inv *Inventory) Add(e *Equipment) bool {
	if inv.Full() {
		return false
	}
	inv.items = append(inv.items, e)
	return true
}

// Remove drops e and reports whether it was present.
func (inv *Inventory) Remove(e *Equipment) bool {
	i := slices.Index(inv.items, e)
	if i < 0 {
		return false
	}
	inv.items = slices.Delete(inv.items, i, i+1)
	return true
}

func (inv *Inventory) Contains(e *Equipment) bool {
	return slices.Contains(inv.items, e)
}
