package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrInsufficientStock is returned when more units are requested than the item has left.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError carries the requested and available quantities.
type InsufficientStockError struct {
	ItemID    int
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: item %d, requested %d, available %d", ErrInsufficientStock, e.ItemID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Menu is the catalog of items keyed by id. Ids are handed out sequentially from 1.
type Menu struct {
	items  map[int]*Item
	nextID int
}

func NewMenu() *Menu {
	return &Menu{items: make(map[int]*Item), nextID: 1}
}

// Add creates an item with the next free id.
func (m *Menu) Add(name, category string, price kernel.Money, stock int) (*Item, error) {
	item, err := NewItem(m.nextID, name, category, price, stock)
	if err != nil {
		return nil, err
	}

	m.items[item.ID()] = item
	m.nextID++
	return item, nil
}

// Restore puts back a persisted item under its own id. Later Add calls continue after
// the largest restored id.
func (m *Menu) Restore(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if _, ok := m.items[item.ID()]; ok {
		return errs.NewObjectAlreadyExistsError("item id", item.ID())
	}

	m.items[item.ID()] = item
	m.nextID = max(m.nextID, item.ID()+1)
	return nil
}

// Find returns the item with the given id.
func (m *Menu) Find(id int) (*Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("item id", id)
	}
	return item, nil
}

// Reserve checks that quantity units of the item are available on top of the held
// units without taking them.
func (m *Menu) Reserve(id, held, quantity int) (*Item, error) {
	item, err := m.Find(id)
	if err != nil {
		return nil, err
	}
	if !item.HasStock(held, quantity) {
		return nil, &InsufficientStockError{ItemID: id, Requested: quantity, Available: max(item.Stock()-held, 0)}
	}
	return item, nil
}

// DecrementStock removes quantity units, flooring the stock at zero.
// Unknown ids are ignored.
func (m *Menu) DecrementStock(id, quantity int) {
	if item, ok := m.items[id]; ok {
		item.decrementStock(quantity)
	}
}

func (m *Menu) Len() int {
	return len(m.items)
}

// ForEach visits items in ascending id order until fn returns false.
func (m *Menu) ForEach(fn func(item *Item) bool) {
	for _, id := range slices.Sorted(maps.Keys(m.items)) {
		if !fn(m.items[id]) {
			return
		}
	}
}
