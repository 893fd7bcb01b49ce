package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var ErrProcessNextOrderCommandIsNotConstructed = errors.New(
	"ProcessNextOrderCommand must be created via NewProcessNextOrderCommand constructor",
)

// ProcessNextOrderCommand confirms the most recently placed order awaiting confirmation.
type ProcessNextOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewProcessNextOrderCommand() ProcessNextOrderCommand {
	return ProcessNextOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ProcessNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessNextOrderCommandIsNotConstructed)
}

// ProcessNextOrderCommandHandler pops the admission stack and marks the order Confirmed.
type ProcessNextOrderCommandHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewProcessNextOrderCommandHandler(lifecycle *services.OrderLifecycle) ProcessNextOrderCommandHandler {
	return ProcessNextOrderCommandHandler{lifecycle: lifecycle}
}

// Handle returns order.ErrAdmissionStackIsEmpty when nothing awaits confirmation.
func (h ProcessNextOrderCommandHandler) Handle(ctx context.Context, cmd ProcessNextOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.lifecycle.ProcessNextOrder()
}
