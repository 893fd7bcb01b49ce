package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promo"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultsSnapshot(t *testing.T) ports.Snapshot {
	t.Helper()
	admin, err := account.RestoreAccount("admin", "admin123", "Admin Office", "1234567890", 1000)
	require.NoError(t, err)
	pizza, err := catalog.NewItem(1, "Margherita Pizza", "Pizza", kernel.MustMoney("12.99"), 50)
	require.NoError(t, err)
	code, err := promo.NewCode("WELCOME10", decimal.NewFromInt(10))
	require.NoError(t, err)
	return ports.Snapshot{
		Accounts:   []*account.Account{admin},
		MenuItems:  []*catalog.Item{pizza},
		PromoCodes: []promo.Code{code},
	}
}

func TestLoadDataCommandHandler_Handle_RestoresStoredData(t *testing.T) {
	ctx := t.Context()
	stored := defaultsSnapshot(t)
	user, err := account.RestoreAccount("user", "user123", "123 Main St", "9876543210", 312)
	require.NoError(t, err)
	stored.Accounts = append(stored.Accounts, user)

	r := newRepos()
	uow := new(MockUoW)
	r.wire(uow)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		r.accounts.On("GetAll", ctx).Return(stored.Accounts, nil).Once(),
		r.menu.On("GetAll", ctx).Return(stored.MenuItems, nil).Once(),
		r.promos.On("GetAll", ctx).Return(stored.PromoCodes, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	defaults := new(MockDefaultsSource)

	l := services.NewOrderLifecycle()
	h := commands.NewLoadDataCommandHandler(l, factory, defaults)
	result, err := h.Handle(ctx, commands.NewLoadDataCommand())

	require.NoError(t, err)
	assert.Equal(t, commands.LoadDataResult{Accounts: 2, MenuItems: 1, PromoCodes: 1}, result)
	defaults.AssertNotCalled(t, "Defaults")
	uow.AssertExpectations(t)

	restored, err := l.Account("user")
	require.NoError(t, err)
	assert.Equal(t, 312, restored.LoyaltyPoints())
	assert.Equal(t, 1, l.MenuItemCount())
	assert.Len(t, l.PromoCodes(), 1)
}

func TestLoadDataCommandHandler_Handle_SeedsEmptyCollections(t *testing.T) {
	ctx := t.Context()
	defaultsData := defaultsSnapshot(t)
	storedItem, err := catalog.NewItem(4, "Classic Burger", "Burgers", kernel.MustMoney("8.99"), 3)
	require.NoError(t, err)

	r := newRepos()
	uow := new(MockUoW)
	r.wire(uow)
	uow.On("Begin", ctx).Return(nil).Once()
	r.accounts.On("GetAll", ctx).Return(nil, nil).Once()
	r.menu.On("GetAll", ctx).Return([]*catalog.Item{storedItem}, nil).Once()
	r.promos.On("GetAll", ctx).Return(nil, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	defaults := new(MockDefaultsSource)
	defaults.On("Defaults").Return(defaultsData, nil).Once()

	l := services.NewOrderLifecycle()
	h := commands.NewLoadDataCommandHandler(l, factory, defaults)
	result, err := h.Handle(ctx, commands.NewLoadDataCommand())

	require.NoError(t, err)
	assert.True(t, result.SeededAccounts)
	assert.True(t, result.SeededPromoCodes)
	assert.False(t, result.SeededMenu)

	items := l.MenuItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Classic Burger", items[0].Name())
	admin, err := l.Account("admin")
	require.NoError(t, err)
	assert.Equal(t, 1000, admin.LoyaltyPoints())
	defaults.AssertExpectations(t)
}

func TestLoadDataCommandHandler_Handle_ReadError(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	uow := new(MockUoW)
	r.wire(uow)
	uow.On("Begin", ctx).Return(nil).Once()
	r.accounts.On("GetAll", ctx).Return(nil, errors.New("corrupt file")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	l := services.NewOrderLifecycle()
	h := commands.NewLoadDataCommandHandler(l, factory, new(MockDefaultsSource))
	_, err := h.Handle(ctx, commands.NewLoadDataCommand())

	require.EqualError(t, err, "corrupt file")
	assert.Equal(t, 0, l.AccountCount())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestLoadDataCommandHandler_Handle_DefaultsError(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	uow := new(MockUoW)
	r.wire(uow)
	uow.On("Begin", ctx).Return(nil).Once()
	r.accounts.On("GetAll", ctx).Return(nil, nil).Once()
	r.menu.On("GetAll", ctx).Return(nil, nil).Once()
	r.promos.On("GetAll", ctx).Return(nil, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	defaults := new(MockDefaultsSource)
	defaults.On("Defaults").Return(ports.Snapshot{}, errors.New("bad yaml")).Once()

	h := commands.NewLoadDataCommandHandler(services.NewOrderLifecycle(), factory, defaults)
	_, err := h.Handle(ctx, commands.NewLoadDataCommand())

	require.ErrorContains(t, err, "bad yaml")
}

func TestLoadDataCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewLoadDataCommandHandler(services.NewOrderLifecycle(), factory, new(MockDefaultsSource))

	_, err := h.Handle(t.Context(), commands.LoadDataCommand{})

	require.ErrorIs(t, err, commands.ErrLoadDataCommandIsNotConstructed)
}
