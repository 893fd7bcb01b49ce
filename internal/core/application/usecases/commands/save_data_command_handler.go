package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// SaveDataCommandHandler writes a snapshot of the order-independent data in one transaction.
// Orders are not persisted.
type SaveDataCommandHandler struct {
	lifecycle  *services.OrderLifecycle
	uowFactory UoWFactory
}

func NewSaveDataCommandHandler(lifecycle *services.OrderLifecycle, uowFactory UoWFactory) SaveDataCommandHandler {
	return SaveDataCommandHandler{lifecycle: lifecycle, uowFactory: uowFactory}
}

// Handle replaces the stored accounts, menu items and promo codes. Either all three
// are replaced or none is.
func (h SaveDataCommandHandler) Handle(ctx context.Context, cmd SaveDataCommand) (ports.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return ports.Snapshot{}, err
	}

	data := h.lifecycle.Snapshot()
	snapshot := ports.Snapshot{
		Accounts:   data.Accounts,
		MenuItems:  data.MenuItems,
		PromoCodes: data.PromoCodes,
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AccountRepository().ReplaceAll(ctx, snapshot.Accounts); err != nil {
		return ports.Snapshot{}, err
	}
	if err := uow.MenuRepository().ReplaceAll(ctx, snapshot.MenuItems); err != nil {
		return ports.Snapshot{}, err
	}
	if err := uow.PromoCodeRepository().ReplaceAll(ctx, snapshot.PromoCodes); err != nil {
		return ports.Snapshot{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return ports.Snapshot{}, err
	}

	return snapshot, nil
}
