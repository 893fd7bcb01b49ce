package catalog

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a menu entry. Id is assigned by the Menu and starts at 1.
type Item struct {
	id       int
	name     string
	category string
	price    kernel.Money
	stock    int

	guard guard.ConstructorGuard
}

// NewItem validates the fields of a menu entry. Stock and price must not be negative.
func NewItem(id int, name, category string, price kernel.Money, stock int) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
		item.setPrice(price),
		item.setStock(stock),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() int {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Category() string {
	return i.category
}

func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) Stock() int {
	return i.stock
}

// HasStock reports whether quantity more units are available when held units are already spoken for.
func (i *Item) HasStock(held, quantity int) bool {
	return quantity <= i.stock-held
}

// Clone returns a detached copy.
func (i *Item) Clone() *Item {
	c := *i
	return &c
}

func (i *Item) decrementStock(quantity int) {
	i.stock = max(i.stock-quantity, 0)
}

func (i *Item) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	i.category = category
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	i.stock = stock
	return nil
}
