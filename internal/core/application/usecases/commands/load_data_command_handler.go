package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// DefaultsSource supplies the data used for collections that storage does not hold.
type DefaultsSource interface {
	Defaults() (ports.Snapshot, error)
}

// LoadDataResult reports how many records were restored and which collections were seeded.
type LoadDataResult struct {
	Accounts   int
	MenuItems  int
	PromoCodes int

	SeededAccounts   bool
	SeededMenu       bool
	SeededPromoCodes bool
}

// LoadDataCommandHandler reads the stored snapshot and restores it into the lifecycle.
//
// Example:
//
//	handler := NewLoadDataCommandHandler(lifecycle, uowFactory, seed.Embedded())
//	result, err := handler.Handle(ctx, NewLoadDataCommand())
//	if err != nil {
//	    return fmt.Errorf("load failed: %w", err)
//	}
//	log.Info("data loaded", "accounts", result.Accounts, "seeded_menu", result.SeededMenu)
type LoadDataCommandHandler struct {
	lifecycle  *services.OrderLifecycle
	uowFactory UoWFactory
	defaults   DefaultsSource
}

func NewLoadDataCommandHandler(
	lifecycle *services.OrderLifecycle,
	uowFactory UoWFactory,
	defaults DefaultsSource,
) LoadDataCommandHandler {
	return LoadDataCommandHandler{lifecycle: lifecycle, uowFactory: uowFactory, defaults: defaults}
}

// Handle restores every stored collection. Each empty collection is seeded independently.
func (h LoadDataCommandHandler) Handle(ctx context.Context, cmd LoadDataCommand) (LoadDataResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoadDataResult{}, err
	}

	stored, err := h.read(ctx)
	if err != nil {
		return LoadDataResult{}, err
	}

	var result LoadDataResult
	if len(stored.Accounts) == 0 || len(stored.MenuItems) == 0 || len(stored.PromoCodes) == 0 {
		defaults, err := h.defaults.Defaults()
		if err != nil {
			return LoadDataResult{}, fmt.Errorf("default data: %w", err)
		}
		if len(stored.Accounts) == 0 {
			stored.Accounts, result.SeededAccounts = defaults.Accounts, true
		}
		if len(stored.MenuItems) == 0 {
			stored.MenuItems, result.SeededMenu = defaults.MenuItems, true
		}
		if len(stored.PromoCodes) == 0 {
			stored.PromoCodes, result.SeededPromoCodes = defaults.PromoCodes, true
		}
	}

	for _, a := range stored.Accounts {
		if err := h.lifecycle.RestoreAccount(a); err != nil {
			return LoadDataResult{}, fmt.Errorf("restore account %q: %w", a.Username(), err)
		}
	}
	for _, item := range stored.MenuItems {
		if err := h.lifecycle.RestoreMenuItem(item); err != nil {
			return LoadDataResult{}, fmt.Errorf("restore menu item %d: %w", item.ID(), err)
		}
	}
	for _, code := range stored.PromoCodes {
		if _, err := h.lifecycle.AddPromoCode(code.Code(), code.Percent()); err != nil {
			return LoadDataResult{}, fmt.Errorf("restore promo code %q: %w", code.Code(), err)
		}
	}

	result.Accounts = len(stored.Accounts)
	result.MenuItems = len(stored.MenuItems)
	result.PromoCodes = len(stored.PromoCodes)
	return result, nil
}

func (h LoadDataCommandHandler) read(ctx context.Context) (ports.Snapshot, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accounts, err := uow.AccountRepository().GetAll(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}
	items, err := uow.MenuRepository().GetAll(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}
	codes, err := uow.PromoCodeRepository().GetAll(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return ports.Snapshot{}, err
	}

	return ports.Snapshot{Accounts: accounts, MenuItems: items, PromoCodes: codes}, nil
}
