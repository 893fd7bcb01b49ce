package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// LineItem is one purchased catalog item inside an order. It is immutable.
type LineItem struct {
	itemID    int
	name      string
	quantity  int
	unitPrice kernel.Money
}

// NewLineItem validates and creates a line item. Quantity must be positive.
func NewLineItem(itemID int, name string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	var errItemID, errName, errQuantity, errPrice error
	if itemID <= 0 {
		errItemID = errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", itemID))
	}
	if name == "" {
		errName = errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		errQuantity = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		errPrice = errs.NewValueIsInvalidError("unit price")
	}

	if err := errors.Join(errItemID, errName, errQuantity, errPrice); err != nil {
		return LineItem{}, err
	}

	return LineItem{itemID: itemID, name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l LineItem) ItemID() int {
	return l.itemID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Amount returns quantity × unit price.
func (l LineItem) Amount() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}
