package accountrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// ReplaceAll truncates the accounts table and inserts the given accounts in order.
// Every account is validated before anything is written.
func (r *GormAccountRepository) ReplaceAll(ctx context.Context, accounts []*account.Account) error {
	dtos := make([]AccountDTO, 0, len(accounts))
	for i, a := range accounts {
		if err := a.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(a, i))
	}

	db := r.db.WithContext(ctx)
	if err := db.Exec("TRUNCATE TABLE " + pq.QuoteIdentifier(AccountDTO{}.TableName())).Error; err != nil {
		return err
	}
	if len(dtos) == 0 {
		return nil
	}
	return db.Create(&dtos).Error
}

// GetAll returns every stored account in save order.
func (r *GormAccountRepository) GetAll(ctx context.Context) ([]*account.Account, error) {
	var dtos []AccountDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	accounts := make([]*account.Account, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	return accounts, nil
}
