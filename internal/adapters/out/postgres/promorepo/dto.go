// Package promorepo persists promo codes.
package promorepo

import (
	"fooddelivery/internal/core/domain/model/promo"

	"github.com/shopspring/decimal"
)

// PromoCodeDTO represents a promo code row. Position keeps registration order.
type PromoCodeDTO struct {
	Code     string          `gorm:"type:varchar(64);primaryKey"`
	Percent  decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Position int             `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming convention to use "promo_codes".
func (PromoCodeDTO) TableName() string {
	return "promo_codes"
}

func fromDomain(c promo.Code, position int) PromoCodeDTO {
	return PromoCodeDTO{Code: c.Code(), Percent: c.Percent(), Position: position}
}

func toDomain(dto PromoCodeDTO) (promo.Code, error) {
	return promo.NewCode(dto.Code, dto.Percent)
}
