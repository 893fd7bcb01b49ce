// Package accountrepo provides data transfer objects and mapping functions for account persistence.
// This package implements the repository pattern for the account directory, handling
// the conversion between domain entities and database rows.
package accountrepo

import (
	"fooddelivery/internal/core/domain/model/account"
)

// AccountDTO represents the database structure for persisting accounts.
// Position records the save order so that GetAll returns accounts as they were given.
type AccountDTO struct {
	Username      string `gorm:"type:varchar(255);primaryKey"`
	Password      string `gorm:"type:varchar(255);not null"`
	Address       string `gorm:"type:text;not null"`
	Phone         string `gorm:"type:varchar(64);not null"`
	LoyaltyPoints int    `gorm:"type:int;not null;default:0"`
	Position      int    `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming convention to use "accounts" instead of "account_dtos".
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account, position int) AccountDTO {
	return AccountDTO{
		Username:      a.Username(),
		Password:      a.Password(),
		Address:       a.Address(),
		Phone:         a.Phone(),
		LoyaltyPoints: a.LoyaltyPoints(),
		Position:      position,
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	return account.RestoreAccount(dto.Username, dto.Password, dto.Address, dto.Phone, dto.LoyaltyPoints)
}
