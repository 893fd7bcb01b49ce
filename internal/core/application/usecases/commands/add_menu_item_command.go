package commands

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand adds a new item to the menu. The item id is assigned by the menu.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	name     string
	category string
	price    kernel.Money
	stock    int

	guard guard.ConstructorGuard
}

func NewAddMenuItemCommand(name, category string, price kernel.Money, stock int) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{price: price, guard: guard.NewConstructorGuard()}

	var errStock error
	if stock < 0 {
		errStock = errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	cmd.stock = stock

	if err := errors.Join(
		required("item name", name, &cmd.name),
		required("category", category, &cmd.category),
		errStock,
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) Name() string {
	return c.name
}

func (c AddMenuItemCommand) Category() string {
	return c.category
}

func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c AddMenuItemCommand) Stock() int {
	return c.stock
}

// AddMenuItemCommandHandler adds items to the lifecycle's menu.
type AddMenuItemCommandHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewAddMenuItemCommandHandler(lifecycle *services.OrderLifecycle) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{lifecycle: lifecycle}
}

func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (*catalog.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.lifecycle.AddMenuItem(cmd.Name(), cmd.Category(), cmd.Price(), cmd.Stock())
}
