package flatfile

import (
	"context"
	"strconv"

	"fooddelivery/internal/core/domain/model/account"
)

// users.dat: username,password,address,phone,loyaltyPoints
const accountFields = 5

type accountRepository struct {
	uow *UnitOfWork
}

func (r *accountRepository) ReplaceAll(ctx context.Context, accounts []*account.Account) error {
	records := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		if err := a.Validate(); err != nil {
			return err
		}
		records = append(records, []string{
			a.Username(),
			a.Password(),
			a.Address(),
			a.Phone(),
			strconv.Itoa(a.LoyaltyPoints()),
		})
	}
	return r.uow.write(ctx, AccountsFile, records)
}

func (r *accountRepository) GetAll(ctx context.Context) ([]*account.Account, error) {
	records, err := r.uow.read(ctx, AccountsFile, accountFields)
	if err != nil {
		return nil, err
	}

	accounts := make([]*account.Account, 0, len(records))
	for i, rec := range records {
		points, err := strconv.Atoi(rec[4])
		if err != nil {
			return nil, lineError(AccountsFile, i, err)
		}
		a, err := account.RestoreAccount(rec[0], rec[1], rec[2], rec[3], points)
		if err != nil {
			return nil, lineError(AccountsFile, i, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
