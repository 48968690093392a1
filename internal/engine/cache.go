// Package engine validates intents, mutates the item store and records
// inverse operations for undo.
package engine

import (
	"time"

	"github.com/laulijun/udo/internal/domain"
)

// Cache is the in-memory item store. It exclusively owns all items:
// every accessor hands out copies, so callers can never alias live
// store state. IDs are assigned on insert, increase monotonically and
// are never reused, even after deletion.
type Cache struct {
	items  map[int]domain.Item
	nextID int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{items: make(map[int]domain.Item), nextID: 1}
}

// Insert stores a copy of the item under a freshly assigned ID and
// returns that copy.
func (c *Cache) Insert(it domain.Item) domain.Item {
	it = it.Clone()
	it.ID = c.nextID
	c.nextID++
	c.items[it.ID] = it
	return it
}

// Get returns a copy of the item with the given ID.
func (c *Cache) Get(id int) (domain.Item, bool) {
	it, ok := c.items[id]
	if !ok {
		return domain.Item{}, false
	}
	return it.Clone(), true
}

// Update replaces the stored item with the same ID.
func (c *Cache) Update(it domain.Item) bool {
	if _, ok := c.items[it.ID]; !ok {
		return false
	}
	c.items[it.ID] = it.Clone()
	return true
}

// Delete removes the item with the given ID, reporting whether it was
// present. The ID stays retired forever.
func (c *Cache) Delete(id int) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// All returns copies of every item, in no particular order.
func (c *Cache) All() []domain.Item {
	out := make([]domain.Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it.Clone())
	}
	return out
}

// ItemsOn returns the items whose relevant date (start for events, due
// for tasks) falls on the calendar day of the given time.
func (c *Cache) ItemsOn(day time.Time) []domain.Item {
	var out []domain.Item
	for _, it := range c.items {
		if when, ok := it.When(); ok && domain.SameDay(when, day) {
			out = append(out, it.Clone())
		}
	}
	domain.SortItems(out)
	return out
}

// ItemsBetween returns the items whose relevant date falls inside the
// inclusive [from, to] range.
func (c *Cache) ItemsBetween(from, to time.Time) []domain.Item {
	var out []domain.Item
	for _, it := range c.items {
		if when, ok := it.When(); ok && !when.Before(from) && !when.After(to) {
			out = append(out, it.Clone())
		}
	}
	domain.SortItems(out)
	return out
}

// Len returns the number of stored items.
func (c *Cache) Len() int {
	return len(c.items)
}

// Clear removes all items but keeps retired IDs retired.
func (c *Cache) Clear() {
	c.items = make(map[int]domain.Item)
}

// Restore replaces the cache contents with items loaded from storage,
// keeping their persisted IDs. The next assigned ID continues past the
// highest one seen.
func (c *Cache) Restore(items []domain.Item) {
	c.items = make(map[int]domain.Item, len(items))
	for _, it := range items {
		c.items[it.ID] = it.Clone()
		if it.ID >= c.nextID {
			c.nextID = it.ID + 1
		}
	}
}
