package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetPromoCodesQueryIsNotConstructed = errors.New(
	"GetPromoCodesQuery must be created via NewGetPromoCodesQuery constructor",
)

// GetPromoCodesQuery lists the registered promo codes in registration order.
type GetPromoCodesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPromoCodesQuery() GetPromoCodesQuery {
	return GetPromoCodesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPromoCodesQuery) Validate() error {
	return q.guard.Validate(ErrGetPromoCodesQueryIsNotConstructed)
}

type GetPromoCodesQueryHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewGetPromoCodesQueryHandler(lifecycle *services.OrderLifecycle) GetPromoCodesQueryHandler {
	return GetPromoCodesQueryHandler{lifecycle: lifecycle}
}

func (h GetPromoCodesQueryHandler) Handle(ctx context.Context, query GetPromoCodesQuery) ([]PromoCodeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	codes := h.lifecycle.PromoCodes()
	out := make([]PromoCodeResponse, len(codes))
	for i, c := range codes {
		out[i] = NewPromoCodeResponse(c)
	}
	return out, nil
}
