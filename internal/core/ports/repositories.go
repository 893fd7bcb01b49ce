package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/promo"
)

// AccountRepository stores the account directory as a whole.
type AccountRepository interface {
	// ReplaceAll overwrites every stored account with the given ones, keeping their order.
	ReplaceAll(ctx context.Context, accounts []*account.Account) error

	// GetAll returns every stored account in the order it was saved.
	GetAll(ctx context.Context) ([]*account.Account, error)
}

// MenuRepository stores the menu items with their remaining stock.
type MenuRepository interface {
	// ReplaceAll overwrites every stored item. Item ids are kept.
	ReplaceAll(ctx context.Context, items []*catalog.Item) error

	// GetAll returns every stored item in ascending id order.
	GetAll(ctx context.Context) ([]*catalog.Item, error)
}

// PromoCodeRepository stores the promo codes.
type PromoCodeRepository interface {
	// ReplaceAll overwrites every stored code.
	ReplaceAll(ctx context.Context, codes []promo.Code) error

	// GetAll returns every stored code in the order it was saved.
	GetAll(ctx context.Context) ([]promo.Code, error)
}

// Snapshot is the persisted state of the system.
type Snapshot struct {
	Accounts   []*account.Account
	MenuItems  []*catalog.Item
	PromoCodes []promo.Code
}
