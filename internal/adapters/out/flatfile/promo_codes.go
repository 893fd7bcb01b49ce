package flatfile

import (
	"context"

	"fooddelivery/internal/core/domain/model/promo"

	"github.com/shopspring/decimal"
)

// promo.dat: code,percent
const promoCodeFields = 2

type promoCodeRepository struct {
	uow *UnitOfWork
}

func (r *promoCodeRepository) ReplaceAll(ctx context.Context, codes []promo.Code) error {
	records := make([][]string, 0, len(codes))
	for _, c := range codes {
		records = append(records, []string{c.Code(), c.Percent().StringFixed(2)})
	}
	return r.uow.write(ctx, PromoCodesFile, records)
}

func (r *promoCodeRepository) GetAll(ctx context.Context) ([]promo.Code, error) {
	records, err := r.uow.read(ctx, PromoCodesFile, promoCodeFields)
	if err != nil {
		return nil, err
	}

	codes := make([]promo.Code, 0, len(records))
	for i, rec := range records {
		percent, err := decimal.NewFromString(rec[1])
		if err != nil {
			return nil, lineError(PromoCodesFile, i, err)
		}
		c, err := promo.NewCode(rec[0], percent)
		if err != nil {
			return nil, lineError(PromoCodesFile, i, err)
		}
		codes = append(codes, c)
	}
	return codes, nil
}
