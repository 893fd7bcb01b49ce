package flatfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"fooddelivery/internal/adapters/out/flatfile"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promo"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T) (*flatfile.UnitOfWorkFactory, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	factory, err := flatfile.NewUnitOfWorkFactory(dir)
	require.NoError(t, err)
	return factory, dir
}

func testAccounts(t *testing.T) []*account.Account {
	t.Helper()
	admin, err := account.RestoreAccount("admin", "admin123", "Admin Office", "1234567890", 1000)
	require.NoError(t, err)
	user, err := account.NewAccount("user", "user123", "12 Main St, Apt 4", "9876543210")
	require.NoError(t, err)
	return []*account.Account{admin, user}
}

func testItems(t *testing.T) []*catalog.Item {
	t.Helper()
	pizza, err := catalog.NewItem(1, "Margherita Pizza", "Pizza", kernel.MustMoney("12.99"), 50)
	require.NoError(t, err)
	tea, err := catalog.NewItem(12, "Iced Tea", "Drinks", kernel.MustMoney("2.49"), 0)
	require.NoError(t, err)
	return []*catalog.Item{pizza, tea}
}

func testCodes(t *testing.T) []promo.Code {
	t.Helper()
	welcome, err := promo.NewCode("WELCOME10", decimal.NewFromInt(10))
	require.NoError(t, err)
	first, err := promo.NewCode("FIRSTORDER", decimal.RequireFromString("15"))
	require.NoError(t, err)
	return []promo.Code{welcome, first}
}

func TestUnitOfWork_CommitWritesEveryFile(t *testing.T) {
	ctx := t.Context()
	factory, dir := newFactory(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.AccountRepository().ReplaceAll(ctx, testAccounts(t)))
	require.NoError(t, uow.MenuRepository().ReplaceAll(ctx, testItems(t)))
	require.NoError(t, uow.PromoCodeRepository().ReplaceAll(ctx, testCodes(t)))

	_, err := os.Stat(filepath.Join(dir, flatfile.MenuFile))
	require.ErrorIs(t, err, os.ErrNotExist, "nothing reaches disk before commit")

	require.NoError(t, uow.Commit(ctx))

	menu, err := os.ReadFile(filepath.Join(dir, flatfile.MenuFile))
	require.NoError(t, err)
	assert.Equal(t, "1,Margherita Pizza,Pizza,12.99,50\n12,Iced Tea,Drinks,2.49,0\n", string(menu))

	promos, err := os.ReadFile(filepath.Join(dir, flatfile.PromoCodesFile))
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10,10.00\nFIRSTORDER,15.00\n", string(promos))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temporary files are left behind")
}

func TestUnitOfWork_RoundTrip(t *testing.T) {
	ctx := t.Context()
	factory, _ := newFactory(t)

	writer := factory.Create()
	require.NoError(t, writer.Begin(ctx))
	require.NoError(t, writer.AccountRepository().ReplaceAll(ctx, testAccounts(t)))
	require.NoError(t, writer.MenuRepository().ReplaceAll(ctx, testItems(t)))
	require.NoError(t, writer.PromoCodeRepository().ReplaceAll(ctx, testCodes(t)))
	require.NoError(t, writer.Commit(ctx))

	reader := factory.Create()

	t.Run("accounts keep order, points and addresses with commas", func(t *testing.T) {
		got, err := reader.AccountRepository().GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "admin", got[0].Username())
		assert.Equal(t, 1000, got[0].LoyaltyPoints())
		assert.Equal(t, "12 Main St, Apt 4", got[1].Address())
		assert.True(t, got[1].CheckPassword("user123"))
	})

	t.Run("menu keeps ids, prices and stock", func(t *testing.T) {
		got, err := reader.MenuRepository().GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 12, got[1].ID())
		assert.Equal(t, "2.49", got[1].Price().String())
		assert.Equal(t, 0, got[1].Stock())
	})

	t.Run("promo codes keep registration order", func(t *testing.T) {
		got, err := reader.PromoCodeRepository().GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "WELCOME10", got[0].Code())
		assert.True(t, got[1].Percent().Equal(decimal.NewFromInt(15)))
	})
}

func TestUnitOfWork_MissingFilesReadAsEmpty(t *testing.T) {
	ctx := t.Context()
	factory, _ := newFactory(t)
	uow := factory.Create()

	accounts, err := uow.AccountRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	items, err := uow.MenuRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	codes, err := uow.PromoCodeRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestUnitOfWork_RollbackDiscardsStagedWrites(t *testing.T) {
	ctx := t.Context()
	factory, _ := newFactory(t)

	require.NoError(t, factory.Create().MenuRepository().ReplaceAll(ctx, testItems(t)))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.MenuRepository().ReplaceAll(ctx, nil))

	inside, err := uow.MenuRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, inside, "the transaction reads its own writes")

	require.NoError(t, uow.Rollback(ctx))

	after, err := factory.Create().MenuRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestUnitOfWork_TransactionErrors(t *testing.T) {
	ctx := t.Context()
	factory, _ := newFactory(t)
	uow := factory.Create()

	require.ErrorIs(t, uow.Commit(ctx), flatfile.ErrNoActiveTransaction)
	require.ErrorIs(t, uow.Rollback(ctx), flatfile.ErrNoActiveTransaction)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx), "a second begin keeps the open transaction")
	require.NoError(t, uow.Commit(ctx))
	require.ErrorIs(t, uow.Rollback(ctx), flatfile.ErrNoActiveTransaction)
}

func TestUnitOfWork_RejectsCorruptFiles(t *testing.T) {
	ctx := t.Context()

	t.Run("negative stock", func(t *testing.T) {
		factory, dir := newFactory(t)
		writeFile(t, dir, flatfile.MenuFile, "1,Fries,Sides,3.99,-1\n")
		_, err := factory.Create().MenuRepository().GetAll(ctx)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "menu.dat line 1")
	})

	t.Run("points that are not a number", func(t *testing.T) {
		factory, dir := newFactory(t)
		writeFile(t, dir, flatfile.AccountsFile, "user,user123,Main St,123,lots\n")
		_, err := factory.Create().AccountRepository().GetAll(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "users.dat line 1")
	})

	t.Run("wrong number of fields", func(t *testing.T) {
		factory, dir := newFactory(t)
		writeFile(t, dir, flatfile.PromoCodesFile, "WELCOME10\n")
		_, err := factory.Create().PromoCodeRepository().GetAll(ctx)
		require.Error(t, err)
	})

	t.Run("percent out of range", func(t *testing.T) {
		factory, dir := newFactory(t)
		writeFile(t, dir, flatfile.PromoCodesFile, "HUGE,150.00\n")
		_, err := factory.Create().PromoCodeRepository().GetAll(ctx)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestUnitOfWork_RejectsUnconstructedEntities(t *testing.T) {
	ctx := t.Context()
	factory, _ := newFactory(t)
	uow := factory.Create()

	require.ErrorIs(t, uow.AccountRepository().ReplaceAll(ctx, []*account.Account{{}}), account.ErrAccountIsNotConstructed)
	require.ErrorIs(t, uow.MenuRepository().ReplaceAll(ctx, []*catalog.Item{{}}), catalog.ErrItemIsNotConstructed)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
