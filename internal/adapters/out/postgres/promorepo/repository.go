package promorepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/promo"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormPromoCodeRepository implements PromoCodeRepository using GORM.
type GormPromoCodeRepository struct {
	db *gorm.DB
}

// NewGormPromoCodeRepository creates a new GORM promo code repository.
func NewGormPromoCodeRepository(db *gorm.DB) *GormPromoCodeRepository {
	return &GormPromoCodeRepository{db: db}
}

// ReplaceAll truncates the promo code table and inserts the given codes in order.
func (r *GormPromoCodeRepository) ReplaceAll(ctx context.Context, codes []promo.Code) error {
	dtos := make([]PromoCodeDTO, 0, len(codes))
	for i, c := range codes {
		dtos = append(dtos, fromDomain(c, i))
	}

	db := r.db.WithContext(ctx)
	if err := db.Exec("TRUNCATE TABLE " + pq.QuoteIdentifier(PromoCodeDTO{}.TableName())).Error; err != nil {
		return err
	}
	if len(dtos) == 0 {
		return nil
	}
	return db.Create(&dtos).Error
}

// GetAll returns every stored code in registration order.
func (r *GormPromoCodeRepository) GetAll(ctx context.Context) ([]promo.Code, error) {
	var dtos []PromoCodeDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	codes := make([]promo.Code, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}

	return codes, nil
}
