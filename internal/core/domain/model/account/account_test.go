package account_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("should create account with zero points", func(t *testing.T) {
		a, err := account.NewAccount("user", "user123", "123 Main St", "9876543210")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "user", a.Username())
		assert.Equal(t, "123 Main St", a.Address())
		assert.Equal(t, "9876543210", a.Phone())
		assert.Equal(t, 0, a.LoyaltyPoints())
	})

	t.Run("should join missing field errors", func(t *testing.T) {
		_, err := account.NewAccount("", "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"username", "password", "address", "phone"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should fail validation for struct literal", func(t *testing.T) {
		assert.Equal(t, account.ErrAccountIsNotConstructed, (&account.Account{}).Validate())
	})
}

func TestRestoreAccount(t *testing.T) {
	a, err := account.RestoreAccount("admin", "admin123", "Admin Office", "1234567890", 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, a.LoyaltyPoints())

	_, err = account.RestoreAccount("admin", "admin123", "Admin Office", "1234567890", -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAccount_CheckPassword(t *testing.T) {
	a, err := account.NewAccount("user", "user123", "123 Main St", "9876543210")
	require.NoError(t, err)

	assert.True(t, a.CheckPassword("user123"))
	assert.False(t, a.CheckPassword("USER123"))
	assert.False(t, a.CheckPassword(""))
}

func TestAccount_AddLoyaltyPoints(t *testing.T) {
	tests := []struct {
		name  string
		total string
		want  int
	}{
		{"whole points from cents", "31.29", 312},
		{"floors fractional points", "10.05", 100},
		{"zero total", "0.00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := account.RestoreAccount("user", "user123", "123 Main St", "9876543210", 5)
			require.NoError(t, err)

			earned := a.AddLoyaltyPoints(kernel.MustMoney(tt.total))

			assert.Equal(t, tt.want, earned)
			assert.Equal(t, 5+tt.want, a.LoyaltyPoints())
		})
	}
}

func TestAccount_Clone(t *testing.T) {
	a, err := account.NewAccount("user", "user123", "123 Main St", "9876543210")
	require.NoError(t, err)

	c := a.Clone()
	c.AddLoyaltyPoints(kernel.MustMoney("1.00"))

	assert.Equal(t, 0, a.LoyaltyPoints())
	assert.Equal(t, 10, c.LoyaltyPoints())
}
