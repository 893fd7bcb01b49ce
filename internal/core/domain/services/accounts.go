package services

import (
	"fooddelivery/internal/core/domain/model/account"
)

// SignUp registers a new account. Duplicate usernames yield an ObjectAlreadyExistsError.
func (l *OrderLifecycle) SignUp(username, password, address, phone string) (*account.Account, error) {
	a, err := account.NewAccount(username, password, address, phone)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.accounts.Insert(a); err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

// Authenticate compares the password in plain text. Unknown usernames and wrong
// passwords both yield ErrUnauthorized.
func (l *OrderLifecycle) Authenticate(username, password string) (*account.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.accounts.Find(username)
	if err != nil || !a.CheckPassword(password) {
		return nil, ErrUnauthorized
	}
	return a.Clone(), nil
}

// Account returns a snapshot of the named account.
func (l *OrderLifecycle) Account(username string) (*account.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.accounts.Find(username)
	if err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

// Accounts lists every account in ascending username order.
func (l *OrderLifecycle) Accounts() []*account.Account {
	var out []*account.Account
	l.ForEachAccountInOrder(func(a *account.Account) bool {
		out = append(out, a)
		return true
	})
	return out
}

// ForEachAccountInOrder visits account snapshots in ascending username order.
// fn must not call back into the lifecycle.
func (l *OrderLifecycle) ForEachAccountInOrder(fn func(a *account.Account) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.accounts.InOrder(func(a *account.Account) bool {
		return fn(a.Clone())
	})
}

// RestoreAccount puts back a persisted account, loyalty balance included.
func (l *OrderLifecycle) RestoreAccount(a *account.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.accounts.Insert(a.Clone())
}

// AccountCount returns the number of registered accounts.
func (l *OrderLifecycle) AccountCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.accounts.Len()
}
