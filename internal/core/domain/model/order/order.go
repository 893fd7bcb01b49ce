package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsFinalized is returned when line items are added or totals recomputed
	// after Finalize has fixed the order's money fields.
	ErrOrderIsFinalized = errors.New("order is already finalized")

	// ErrOrderIsNotFinalized is returned when an order is admitted before its totals exist.
	ErrOrderIsNotFinalized = errors.New("order is not finalized")
)

// DeliveryFee is the flat fee charged on every order.
var DeliveryFee = kernel.MustMoney("2.99")

// TaxRate is applied to the discounted subtotal plus the delivery fee.
var TaxRate = decimal.RequireFromString("0.08")

// Order represents a food delivery order. It is the aggregate root that owns the
// order's line items and money totals and tracks its lifecycle status.
//
// Order follows these invariants:
//   - Id, username, delivery address and phone are always set
//   - Priority is one of Low, Normal, High, Express
//   - subtotal always equals the sum of line item amounts
//   - Once finalized, total = subtotal − discount + deliveryFee + tax
//   - statusTime is never earlier than orderTime
//   - Can only be created through NewOrder constructor
//
// Building an order is a two-step process: line items are appended with AddLine
// and the money fields are fixed with Finalize.
//
// Example:
//
//	o, err := order.NewOrder(seq.Next(), "user", "123 Main St", "9876543210", order.Normal, time.Now())
//	if err != nil {
//	    return err
//	}
//	price, _ := kernel.MoneyFromString("12.99")
//	_ = o.AddLine(1, "Margherita Pizza", 2, price)
//	_ = o.Finalize(kernel.Zero())
//	fmt.Println(o.Total()) // 31.29
type Order struct {
	// id is the sequential identifier of the order
	id ID

	// username is the account that placed the order
	username string

	// address is where the order is delivered
	address string

	// phone is the contact number for the delivery
	phone string

	// items are the purchased lines in display order
	items []LineItem

	// subtotal is Σ quantity × unitPrice
	subtotal kernel.Money

	// discount is the promo reduction applied to the subtotal
	discount kernel.Money

	// deliveryFee is the flat delivery charge
	deliveryFee kernel.Money

	// tax is charged on the discounted subtotal plus fee
	tax kernel.Money

	// total is what the customer pays
	total kernel.Money

	// priority decides dispatch order
	priority Priority

	// status is the current lifecycle state
	status Status

	// orderTime is when the order was created
	orderTime time.Time

	// statusTime is when status last changed
	statusTime time.Time

	// finalized is set once money fields are computed
	finalized bool

	guard guard.ConstructorGuard
}

// NewOrder creates an empty Pending order with zeroed totals.
//
// Parameters:
//   - id: Sequential identifier obtained from an IDSequence
//   - username: Account placing the order (required)
//   - address: Delivery address (required)
//   - phone: Contact phone (required)
//   - priority: Delivery tier (must be valid)
//   - now: Creation time, used for both orderTime and statusTime
//
// Returns:
//   - *Order: The created order
//   - error: All validation failures joined together
func NewOrder(id ID, username, address, phone string, priority Priority, now time.Time) (*Order, error) {
	order := &Order{
		deliveryFee: DeliveryFee,
		status:      Pending,
		orderTime:   now,
		statusTime:  now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setUsername(username),
		order.setAddress(address),
		order.setPhone(phone),
		order.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier.
func (o *Order) ID() ID {
	return o.id
}

// Username returns the account that placed the order.
func (o *Order) Username() string {
	return o.username
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Phone returns the delivery contact number.
func (o *Order) Phone() string {
	return o.phone
}

// Items returns a copy of the line items in display order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// ItemCount returns the number of line items.
func (o *Order) ItemCount() int {
	return len(o.items)
}

func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

func (o *Order) Discount() kernel.Money {
	return o.discount
}

func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

func (o *Order) Tax() kernel.Money {
	return o.tax
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Priority() Priority {
	return o.priority
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

func (o *Order) StatusTime() time.Time {
	return o.statusTime
}

// IsFinalized reports whether the money fields have been computed.
func (o *Order) IsFinalized() bool {
	return o.finalized
}

// EstimatedDelivery returns the promised arrival time for the order's priority.
func (o *Order) EstimatedDelivery() time.Time {
	return o.orderTime.Add(o.priority.DeliveryWindow())
}

// AddLine appends a line item and accumulates the subtotal.
// Stock availability is the caller's concern and is not checked here.
//
// Returns:
//   - ErrOrderIsFinalized if Finalize has already run
//   - a validation error if the line item is invalid
func (o *Order) AddLine(itemID int, name string, quantity int, unitPrice kernel.Money) error {
	if o.finalized {
		return ErrOrderIsFinalized
	}

	item, err := NewLineItem(itemID, name, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.subtotal = o.subtotal.Add(item.Amount())
	return nil
}

// Finalize fixes discount, tax and total:
//
//	tax   = round2((subtotal − discount + deliveryFee) × TaxRate)
//	total = subtotal − discount + deliveryFee + tax
//
// The discount must not exceed the subtotal.
func (o *Order) Finalize(discount kernel.Money) error {
	if o.finalized {
		return ErrOrderIsFinalized
	}
	if discount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("discount", fmt.Errorf("%s is negative", discount))
	}
	if o.subtotal.Sub(discount).IsNegative() {
		return errs.NewValueIsOutOfRangeError("discount", discount.String(), kernel.Zero().String(), o.subtotal.String())
	}

	taxable := o.subtotal.Sub(discount).Add(o.deliveryFee)
	o.discount = discount
	o.tax = taxable.MulRate(TaxRate).Round2()
	o.total = taxable.Add(o.tax)
	o.finalized = true
	return nil
}

// ChangeStatus sets a new status and refreshes statusTime.
// statusTime is clamped so that it never precedes orderTime.
func (o *Order) ChangeStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if now.Before(o.orderTime) {
		now = o.orderTime
	}
	o.status = status
	o.statusTime = now
	return nil
}

// Clone returns a detached copy. Mutating the copy never affects the original.
func (o *Order) Clone() *Order {
	c := *o
	c.items = slices.Clone(o.items)
	return &c
}

func (o *Order) setID(id ID) error {
	if id < FirstID {
		return errs.NewValueIsOutOfRangeError("order id", id, FirstID, "unbounded")
	}
	o.id = id
	return nil
}

func (o *Order) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	o.username = username
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}
