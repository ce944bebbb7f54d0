package data

import "github.com/FrostyKingzly/PokebotRANKED/itemfx"

// ItemsDB resolves an item id to its held-item effect descriptor.
type ItemsDB interface {
	GetItem(itemID string) (*itemfx.Item, bool)
}

// MapItemsDB is an ItemsDB backed by an in-memory map, populated once at
// construction from a loaded descriptor table.
type MapItemsDB struct {
	items map[string]*itemfx.Item
}

// NewMapItemsDB wraps an already-loaded map of item id to descriptor.
func NewMapItemsDB(items map[string]*itemfx.Item) *MapItemsDB {
	return &MapItemsDB{items: items}
}

// GetItem implements ItemsDB.
func (m *MapItemsDB) GetItem(itemID string) (*itemfx.Item, bool) {
	item, ok := m.items[itemID]
	return item, ok
}
