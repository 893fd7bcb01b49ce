package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var ErrDispatchNextOrderCommandIsNotConstructed = errors.New(
	"DispatchNextOrderCommand must be created via NewDispatchNextOrderCommand constructor",
)

// DispatchNextOrderCommand hands the most urgent waiting order to a courier.
type DispatchNextOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewDispatchNextOrderCommand() DispatchNextOrderCommand {
	return DispatchNextOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c DispatchNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNextOrderCommandIsNotConstructed)
}

// DispatchNextOrderCommandHandler dequeues the dispatch queue and marks the order OutForDelivery.
type DispatchNextOrderCommandHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewDispatchNextOrderCommandHandler(lifecycle *services.OrderLifecycle) DispatchNextOrderCommandHandler {
	return DispatchNextOrderCommandHandler{lifecycle: lifecycle}
}

// Handle returns order.ErrDispatchQueueIsEmpty when nothing awaits delivery.
func (h DispatchNextOrderCommandHandler) Handle(ctx context.Context, cmd DispatchNextOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.lifecycle.DispatchNextOrder()
}
