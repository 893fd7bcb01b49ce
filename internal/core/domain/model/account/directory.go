package account

import (
	"errors"

	"fooddelivery/internal/pkg/bst"
	"fooddelivery/internal/pkg/errs"
)

// Directory indexes accounts by username in an unbalanced binary search tree.
// The zero value is an empty directory.
type Directory struct {
	tree bst.Tree[string, *Account]
}

// Insert adds a new account. A username that is already present yields an
// ObjectAlreadyExistsError and leaves the directory unchanged.
func (d *Directory) Insert(a *Account) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if err := d.tree.Insert(a.Username(), a); err != nil {
		if errors.Is(err, bst.ErrDuplicateKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("username", a.Username(), err)
		}
		return err
	}
	return nil
}

// Find looks an account up by exact username.
func (d *Directory) Find(username string) (*Account, error) {
	a, ok := d.tree.Search(username)
	if !ok {
		return nil, errs.NewObjectNotFoundError("username", username)
	}
	return a, nil
}

// Contains reports whether username is registered.
func (d *Directory) Contains(username string) bool {
	_, ok := d.tree.Search(username)
	return ok
}

func (d *Directory) Len() int {
	return d.tree.Len()
}

// InOrder visits accounts in ascending username order until fn returns false.
func (d *Directory) InOrder(fn func(a *Account) bool) {
	d.tree.InOrder(func(_ string, a *Account) bool {
		return fn(a)
	})
}
