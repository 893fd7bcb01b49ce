package catalogrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// ReplaceAll truncates the menu table and inserts the given items with their ids.
func (r *GormMenuRepository) ReplaceAll(ctx context.Context, items []*catalog.Item) error {
	dtos := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(item))
	}

	db := r.db.WithContext(ctx)
	if err := db.Exec("TRUNCATE TABLE " + pq.QuoteIdentifier(MenuItemDTO{}.TableName())).Error; err != nil {
		return err
	}
	if len(dtos) == 0 {
		return nil
	}
	return db.Create(&dtos).Error
}

// GetAll returns every stored item in ascending id order.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]*catalog.Item, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*catalog.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
