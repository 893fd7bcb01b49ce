// Package catalogrepo persists menu items with their remaining stock.
package catalogrepo

import (
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// MenuItemDTO represents a menu item row. Item ids are assigned by the menu, not the database.
type MenuItemDTO struct {
	ID       int             `gorm:"primaryKey;autoIncrement:false"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Category string          `gorm:"type:varchar(255);not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock    int             `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming convention to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *catalog.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:       item.ID(),
		Name:     item.Name(),
		Category: item.Category(),
		Price:    item.Price().Decimal(),
		Stock:    item.Stock(),
	}
}

func toDomain(dto MenuItemDTO) (*catalog.Item, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.NewItem(dto.ID, dto.Name, dto.Category, price, dto.Stock)
}
