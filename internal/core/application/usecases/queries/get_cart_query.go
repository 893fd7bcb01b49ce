package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery returns an account's cart. A user without a cart gets an empty one.
type GetCartQuery struct {
	username string

	guard guard.ConstructorGuard
}

func NewGetCartQuery(username string) (GetCartQuery, error) {
	if username == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("username")
	}
	return GetCartQuery{username: username, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) Username() string {
	return q.username
}

type GetCartQueryHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewGetCartQueryHandler(lifecycle *services.OrderLifecycle) GetCartQueryHandler {
	return GetCartQueryHandler{lifecycle: lifecycle}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return CartResponse{}, err
	}

	return NewCartResponse(h.lifecycle.Cart(query.Username())), nil
}
