package account_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAccount(t *testing.T, username string) *account.Account {
	t.Helper()
	a, err := account.NewAccount(username, username+"-pw", username+" street", "555")
	require.NoError(t, err)
	return a
}

func TestDirectory(t *testing.T) {
	t.Run("should walk accounts in username order", func(t *testing.T) {
		var d account.Directory
		for _, name := range []string{"mike", "alice", "zoe", "bob"} {
			require.NoError(t, d.Insert(mustAccount(t, name)))
		}

		var names []string
		d.InOrder(func(a *account.Account) bool {
			names = append(names, a.Username())
			return true
		})

		assert.Equal(t, []string{"alice", "bob", "mike", "zoe"}, names)
		assert.Equal(t, 4, d.Len())
	})

	t.Run("should find by exact username", func(t *testing.T) {
		var d account.Directory
		alice := mustAccount(t, "alice")
		require.NoError(t, d.Insert(alice))

		got, err := d.Find("alice")
		require.NoError(t, err)
		assert.Same(t, alice, got)
		assert.True(t, d.Contains("alice"))

		_, err = d.Find("Alice")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject duplicate username", func(t *testing.T) {
		var d account.Directory
		require.NoError(t, d.Insert(mustAccount(t, "alice")))

		err := d.Insert(mustAccount(t, "alice"))

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Equal(t, 1, d.Len())
	})

	t.Run("should reject unconstructed account", func(t *testing.T) {
		var d account.Directory

		require.ErrorIs(t, d.Insert(&account.Account{}), account.ErrAccountIsNotConstructed)
	})

	t.Run("should stop walking when callback returns false", func(t *testing.T) {
		var d account.Directory
		for _, name := range []string{"b", "a", "c"} {
			require.NoError(t, d.Insert(mustAccount(t, name)))
		}

		count := 0
		d.InOrder(func(*account.Account) bool {
			count++
			return false
		})

		assert.Equal(t, 1, count)
	})
}
