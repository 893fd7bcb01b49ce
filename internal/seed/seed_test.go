package seed_test

import (
	"testing"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaults(t *testing.T) {
	snapshot, err := seed.Embedded().Defaults()
	require.NoError(t, err)

	t.Run("admin and demo user", func(t *testing.T) {
		require.Len(t, snapshot.Accounts, 2)
		admin := snapshot.Accounts[0]
		assert.Equal(t, "admin", admin.Username())
		assert.True(t, admin.CheckPassword("admin123"))
		assert.Equal(t, "1234567890", admin.Phone())
		assert.Equal(t, 1000, admin.LoyaltyPoints())

		user := snapshot.Accounts[1]
		assert.Equal(t, "user", user.Username())
		assert.Equal(t, "123 Main St", user.Address())
		assert.Equal(t, 0, user.LoyaltyPoints())
	})

	t.Run("three promo codes", func(t *testing.T) {
		require.Len(t, snapshot.PromoCodes, 3)
		got := make(map[string]string, 3)
		for _, c := range snapshot.PromoCodes {
			got[c.Code()] = c.Percent().String()
		}
		assert.Equal(t, map[string]string{"WELCOME10": "10", "SAVE20": "20", "FIRSTORDER": "15"}, got)
	})

	t.Run("twelve menu items numbered from one", func(t *testing.T) {
		require.Len(t, snapshot.MenuItems, 12)
		for i, item := range snapshot.MenuItems {
			assert.Equal(t, i+1, item.ID())
		}

		first := snapshot.MenuItems[0]
		assert.Equal(t, "Margherita Pizza", first.Name())
		assert.Equal(t, "Pizza", first.Category())
		assert.Equal(t, "12.99", first.Price().String())
		assert.Equal(t, 50, first.Stock())

		last := snapshot.MenuItems[11]
		assert.Equal(t, "Iced Tea", last.Name())
		assert.Equal(t, "2.49", last.Price().String())
		assert.Equal(t, 120, last.Stock())
	})
}

func TestDefaultsAreFreshOnEveryCall(t *testing.T) {
	first, err := seed.Embedded().Defaults()
	require.NoError(t, err)
	second, err := seed.Embedded().Defaults()
	require.NoError(t, err)

	first.Accounts[1].AddLoyaltyPoints(first.MenuItems[0].Price())
	assert.Equal(t, 0, second.Accounts[1].LoyaltyPoints())
}

func TestFromBytesRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "negative stock",
			doc:  "menu:\n  - name: Fries\n    category: Sides\n    price: \"3.99\"\n    stock: -1\n",
			want: errs.ErrValueIsInvalid,
		},
		{
			name: "promo above one hundred percent",
			doc:  "promo_codes:\n  - code: HUGE\n    percent: \"150\"\n",
			want: errs.ErrValueIsOutOfRange,
		},
		{
			name: "account without password",
			doc:  "accounts:\n  - username: ghost\n    address: Nowhere\n    phone: \"1\"\n",
			want: errs.ErrValueIsRequired,
		},
		{
			name: "price that is not a number",
			doc:  "menu:\n  - name: Fries\n    category: Sides\n    price: cheap\n    stock: 1\n",
			want: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.FromBytes([]byte(tt.doc)).Defaults()
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFromBytesRejectsMalformedYAML(t *testing.T) {
	_, err := seed.FromBytes([]byte("menu: [unclosed")).Defaults()
	require.Error(t, err)
}
