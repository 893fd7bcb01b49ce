package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler changes the status of the single authoritative order record,
// so the change is visible through the admission stack, the dispatch queue and the history.
type UpdateOrderStatusCommandHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewUpdateOrderStatusCommandHandler(lifecycle *services.OrderLifecycle) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{lifecycle: lifecycle}
}

// Handle returns a snapshot of the updated order.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.lifecycle.UpdateStatus(cmd.OrderID(), cmd.Status())
}
