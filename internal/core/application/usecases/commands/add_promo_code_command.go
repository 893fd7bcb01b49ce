package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/promo"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddPromoCodeCommandIsNotConstructed = errors.New(
	"AddPromoCodeCommand must be created via NewAddPromoCodeCommand constructor",
)

// AddPromoCodeCommand registers a percentage discount code.
type AddPromoCodeCommand struct {
	code promo.Code

	guard guard.ConstructorGuard
}

// NewAddPromoCodeCommand requires a code and a percentage in (0, 100].
func NewAddPromoCodeCommand(code string, percent decimal.Decimal) (AddPromoCodeCommand, error) {
	c, err := promo.NewCode(code, percent)
	if err != nil {
		return AddPromoCodeCommand{}, err
	}
	return AddPromoCodeCommand{code: c, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPromoCodeCommand) Validate() error {
	return c.guard.Validate(ErrAddPromoCodeCommandIsNotConstructed)
}

func (c AddPromoCodeCommand) Code() string {
	return c.code.Code()
}

func (c AddPromoCodeCommand) Percent() decimal.Decimal {
	return c.code.Percent()
}

// AddPromoCodeCommandHandler adds codes to the lifecycle's promo registry.
type AddPromoCodeCommandHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewAddPromoCodeCommandHandler(lifecycle *services.OrderLifecycle) AddPromoCodeCommandHandler {
	return AddPromoCodeCommandHandler{lifecycle: lifecycle}
}

// Handle returns an ObjectAlreadyExistsError for a code that is already registered.
func (h AddPromoCodeCommandHandler) Handle(ctx context.Context, cmd AddPromoCodeCommand) (promo.Code, error) {
	if err := cmd.Validate(); err != nil {
		return promo.Code{}, err
	}
	if err := ctx.Err(); err != nil {
		return promo.Code{}, err
	}

	return h.lifecycle.AddPromoCode(cmd.Code(), cmd.Percent())
}
