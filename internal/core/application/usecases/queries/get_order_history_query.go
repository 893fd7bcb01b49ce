package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery lists orders in ascending id order. A viewer sees their own
// orders; the admin may ask for every order.
type GetOrderHistoryQuery struct {
	viewer string
	all    bool

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(viewer string, all bool) (GetOrderHistoryQuery, error) {
	if viewer == "" {
		return GetOrderHistoryQuery{}, errs.NewValueIsRequiredError("viewer")
	}
	return GetOrderHistoryQuery{viewer: viewer, all: all, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) Viewer() string {
	return q.viewer
}

func (q GetOrderHistoryQuery) All() bool {
	return q.all
}

type GetOrderHistoryQueryHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewGetOrderHistoryQueryHandler(lifecycle *services.OrderLifecycle) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{lifecycle: lifecycle}
}

// Handle returns services.ErrUnauthorized when a non-admin asks for every order.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !query.All() {
		orders, err := h.lifecycle.UserHistory(query.Viewer())
		if err != nil {
			return nil, err
		}
		return newOrderResponses(orders), nil
	}

	if !h.lifecycle.IsAdmin(query.Viewer()) {
		return nil, services.ErrUnauthorized
	}
	orders, err := h.lifecycle.History()
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}
