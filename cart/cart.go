// Package cart holds the uncommitted order of the current session. It is
// purely in-memory: the cart resets on restart and is cleared after a
// successful checkout.
package cart

import "sync"

// Item is the menu snapshot a caller adds to the cart. Name and Price are
// copied at add time and stay frozen even if the menu row changes later.
type Item struct {
	MenuID uint    `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// Line is one accumulated cart entry. Qty is always >= 1 while the line
// exists; a line that would reach zero is removed instead.
type Line struct {
	MenuID uint    `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Qty    int     `json:"qty"`
}

// Cart accumulates quantities per menu item, preserving insertion order.
// It is owned by whoever constructs it, not a package global, so tests can
// reset it per case.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddOrIncrement merges qty into the line for item, creating it on first add.
// A qty below 1 counts as 1, so a line can never be created at zero.
func (c *Cart) AddOrIncrement(item Item, qty int) {
	if qty < 1 {
		qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuID == item.MenuID {
			c.lines[i].Qty += qty
			return
		}
	}
	c.lines = append(c.lines, Line{
		MenuID: item.MenuID,
		Name:   item.Name,
		Price:  item.Price,
		Qty:    qty,
	})
}

// Decrement reduces the line's quantity by one, removing the line entirely
// when it stands at 1. Unknown ids are ignored.
func (c *Cart) Decrement(menuID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuID != menuID {
			continue
		}
		if c.lines[i].Qty > 1 {
			c.lines[i].Qty--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Remove deletes the line for menuID regardless of quantity. No-op if absent.
func (c *Cart) Remove(menuID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuID == menuID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// TotalPrice sums qty*price across all lines.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += float64(line.Qty) * line.Price
	}
	return total
}

// TotalLineCount counts distinct lines, not the sum of quantities.
func (c *Cart) TotalLineCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Lines returns a snapshot copy in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}
