package commands

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrRemoveFromCartCommandIsNotConstructed = errors.New(
		"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
	)
)

// AddToCartCommand puts units of a menu item into an account's cart.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	username string
	itemID   int
	quantity int

	guard guard.ConstructorGuard
}

// NewAddToCartCommand requires a username, a positive item id and a positive quantity.
func NewAddToCartCommand(username string, itemID, quantity int) (AddToCartCommand, error) {
	cmd := AddToCartCommand{itemID: itemID, quantity: quantity, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		required("username", username, &cmd.username),
		positive("item id", itemID),
		positive("quantity", quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

func (c AddToCartCommand) Username() string {
	return c.username
}

func (c AddToCartCommand) ItemID() int {
	return c.itemID
}

func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

// AddToCartCommandHandler checks stock and updates the cart.
type AddToCartCommandHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewAddToCartCommandHandler(lifecycle *services.OrderLifecycle) AddToCartCommandHandler {
	return AddToCartCommandHandler{lifecycle: lifecycle}
}

// Handle returns catalog.ErrInsufficientStock when the cart would hold more units than are in stock.
func (h AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) (services.CartView, error) {
	if err := cmd.Validate(); err != nil {
		return services.CartView{}, err
	}
	if err := ctx.Err(); err != nil {
		return services.CartView{}, err
	}

	return h.lifecycle.AddToCart(cmd.Username(), cmd.ItemID(), cmd.Quantity())
}

// RemoveFromCartCommand drops a line from an account's cart.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	username string
	itemID   int

	guard guard.ConstructorGuard
}

func NewRemoveFromCartCommand(username string, itemID int) (RemoveFromCartCommand, error) {
	cmd := RemoveFromCartCommand{itemID: itemID, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		required("username", username, &cmd.username),
		positive("item id", itemID),
	); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

func (c RemoveFromCartCommand) Username() string {
	return c.username
}

func (c RemoveFromCartCommand) ItemID() int {
	return c.itemID
}

// RemoveFromCartCommandHandler removes cart lines.
type RemoveFromCartCommandHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewRemoveFromCartCommandHandler(lifecycle *services.OrderLifecycle) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{lifecycle: lifecycle}
}

func (h RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) (services.CartView, error) {
	if err := cmd.Validate(); err != nil {
		return services.CartView{}, err
	}
	if err := ctx.Err(); err != nil {
		return services.CartView{}, err
	}

	return h.lifecycle.RemoveFromCart(cmd.Username(), cmd.ItemID())
}

func positive(param string, value int) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%d is not greater than 0", value))
	}
	return nil
}
