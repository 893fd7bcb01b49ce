package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetDeliveryQueueQueryIsNotConstructed = errors.New(
	"GetDeliveryQueueQuery must be created via NewGetDeliveryQueueQuery constructor",
)

// GetDeliveryQueueQuery lists the orders awaiting delivery in dispatch order:
// highest priority first, earliest admitted first within a priority.
type GetDeliveryQueueQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveryQueueQuery() GetDeliveryQueueQuery {
	return GetDeliveryQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueueQueryIsNotConstructed)
}

type GetDeliveryQueueQueryHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewGetDeliveryQueueQueryHandler(lifecycle *services.OrderLifecycle) GetDeliveryQueueQueryHandler {
	return GetDeliveryQueueQueryHandler{lifecycle: lifecycle}
}

func (h GetDeliveryQueueQueryHandler) Handle(ctx context.Context, query GetDeliveryQueueQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orders, err := h.lifecycle.DeliveryQueue()
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}
