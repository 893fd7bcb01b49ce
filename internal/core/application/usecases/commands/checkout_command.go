package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to turn a customer's cart into an order.
// Address and phone are optional and default to the account's own.
//
// Example:
//
//	cmd, err := NewCheckoutCommand("user", "", "", "WELCOME10", order.Express)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrCartIsEmpty) {
//	    return err
//	}
//	fmt.Printf("Order %s placed, total %s", result.Order.ID(), result.Order.Total())
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	username  string
	address   string
	phone     string
	promoCode string
	priority  order.Priority

	guard guard.ConstructorGuard
}

// NewCheckoutCommand validates the username and the priority tier.
func NewCheckoutCommand(
	username, address, phone, promoCode string,
	priority order.Priority,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		address:   address,
		phone:     phone,
		promoCode: promoCode,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPriority(priority),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) Username() string {
	return c.username
}

func (c CheckoutCommand) Address() string {
	return c.address
}

func (c CheckoutCommand) Phone() string {
	return c.phone
}

// PromoCode returns the code to apply, empty for none.
func (c CheckoutCommand) PromoCode() string {
	return c.promoCode
}

func (c CheckoutCommand) Priority() order.Priority {
	return c.priority
}

func (c *CheckoutCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *CheckoutCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
