package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists the menu in item id order.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

type GetMenuQueryHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewGetMenuQueryHandler(lifecycle *services.OrderLifecycle) GetMenuQueryHandler {
	return GetMenuQueryHandler{lifecycle: lifecycle}
}

func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := h.lifecycle.MenuItems()
	out := make([]MenuItemResponse, len(items))
	for i, item := range items {
		out[i] = NewMenuItemResponse(item)
	}
	return out, nil
}
