// Package cart holds a customer's pending selections before checkout.
package cart

import (
	"fmt"
	"slices"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Line is one selected catalog item. Name and price are captured when the line is added.
type Line struct {
	ItemID    int
	Name      string
	Quantity  int
	UnitPrice kernel.Money
}

// Amount returns quantity × unit price.
func (l Line) Amount() kernel.Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// Cart is an ordered list of lines. Adding an item already in the cart grows its line.
// The zero value is an empty cart.
type Cart struct {
	lines []Line
}

// Add appends a line or increases the quantity of an existing one.
func (c *Cart) Add(itemID int, name string, quantity int, unitPrice kernel.Money) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if i := c.index(itemID); i >= 0 {
		c.lines[i].Quantity += quantity
		return nil
	}

	c.lines = append(c.lines, Line{ItemID: itemID, Name: name, Quantity: quantity, UnitPrice: unitPrice})
	return nil
}

// Remove drops the line for itemID.
func (c *Cart) Remove(itemID int) error {
	i := c.index(itemID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart item", itemID)
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	return nil
}

// Quantity returns how many units of itemID are already in the cart.
func (c *Cart) Quantity(itemID int) int {
	if i := c.index(itemID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

func (c *Cart) Subtotal() kernel.Money {
	total := kernel.Zero()
	for _, l := range c.lines {
		total = total.Add(l.Amount())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) index(itemID int) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.ItemID == itemID })
}
