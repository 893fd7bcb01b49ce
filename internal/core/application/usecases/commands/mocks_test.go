package commands_test

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/promo"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) ReplaceAll(ctx context.Context, accounts []*account.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) GetAll(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]*account.Account)
	return accounts, args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) ReplaceAll(ctx context.Context, items []*catalog.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*catalog.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*catalog.Item)
	return items, args.Error(1)
}

type MockPromoCodeRepository struct{ mock.Mock }

func (m *MockPromoCodeRepository) ReplaceAll(ctx context.Context, codes []promo.Code) error {
	args := m.Called(ctx, codes)
	return args.Error(0)
}

func (m *MockPromoCodeRepository) GetAll(ctx context.Context) ([]promo.Code, error) {
	args := m.Called(ctx)
	codes, _ := args.Get(0).([]promo.Code)
	return codes, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) PromoCodeRepository() ports.PromoCodeRepository {
	args := m.Called()
	return args.Get(0).(ports.PromoCodeRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDefaultsSource struct{ mock.Mock }

func (m *MockDefaultsSource) Defaults() (ports.Snapshot, error) {
	args := m.Called()
	return args.Get(0).(ports.Snapshot), args.Error(1)
}

type repos struct {
	accounts *MockAccountRepository
	menu     *MockMenuRepository
	promos   *MockPromoCodeRepository
}

func newRepos() repos {
	return repos{
		accounts: new(MockAccountRepository),
		menu:     new(MockMenuRepository),
		promos:   new(MockPromoCodeRepository),
	}
}

func (r repos) wire(uow *MockUoW) {
	uow.On("AccountRepository").Return(r.accounts).Maybe()
	uow.On("MenuRepository").Return(r.menu).Maybe()
	uow.On("PromoCodeRepository").Return(r.promos).Maybe()
}
