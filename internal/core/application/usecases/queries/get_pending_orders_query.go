package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery lists the orders awaiting confirmation, newest first.
//
// Example:
//
//	orders, err := NewGetPendingOrdersQueryHandler(lifecycle).Handle(ctx, NewGetPendingOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders await confirmation\n", len(orders))
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryHandler walks the admission stack top to bottom.
type GetPendingOrdersQueryHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewGetPendingOrdersQueryHandler(lifecycle *services.OrderLifecycle) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{lifecycle: lifecycle}
}

func (h GetPendingOrdersQueryHandler) Handle(ctx context.Context, query GetPendingOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orders, err := h.lifecycle.PendingOrders()
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}
