package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

// CheckoutCommandHandler places orders through the order lifecycle.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(lifecycle)
//	cmd, _ := NewCheckoutCommand("user", "", "", "", order.Normal)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	if result.PromoErr != nil {
//	    // the order was placed without a discount
//	}
type CheckoutCommandHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewCheckoutCommandHandler(lifecycle *services.OrderLifecycle) CheckoutCommandHandler {
	return CheckoutCommandHandler{lifecycle: lifecycle}
}

// Handle runs checkout for the command's account. An unknown promo code does not fail
// the command; it is reported in the result's PromoErr.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (services.CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.CheckoutResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return services.CheckoutResult{}, err
	}

	return h.lifecycle.Checkout(services.CheckoutRequest{
		Username:  cmd.Username(),
		Address:   cmd.Address(),
		Phone:     cmd.Phone(),
		PromoCode: cmd.PromoCode(),
		Priority:  cmd.Priority(),
	})
}
