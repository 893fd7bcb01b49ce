// Package flatfile stores the order-independent data as comma-separated text files in
// one directory: users.dat, menu.dat and promo.dat.
//
// A unit of work stages every ReplaceAll in memory after Begin and writes the files on
// Commit. Each file is written to a temporary sibling and renamed into place, so a
// reader never sees a half-written file. Without Begin, writes go straight to disk.
//
// Example:
//
//	factory, err := flatfile.NewUnitOfWorkFactory("./data")
//	if err != nil {
//	    return err
//	}
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//	if err := uow.MenuRepository().ReplaceAll(ctx, items); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package flatfile

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"sync"

	"fooddelivery/internal/core/ports"
)

// File names inside the data directory.
const (
	AccountsFile   = "users.dat"
	MenuFile       = "menu.dat"
	PromoCodesFile = "promo.dat"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when Begin was not called.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one data directory.
// Units created by the same factory never write files concurrently.
type UnitOfWorkFactory struct {
	dir string
	mu  *sync.Mutex
}

// NewUnitOfWorkFactory creates the data directory if needed.
func NewUnitOfWorkFactory(dir string) (*UnitOfWorkFactory, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &UnitOfWorkFactory{dir: dir, mu: &sync.Mutex{}}, nil
}

// Create produces a new UnitOfWork with no open transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{dir: f.dir, mu: f.mu}
}

// UnitOfWork is a file-backed transaction. It is not safe for concurrent use.
type UnitOfWork struct {
	dir string
	mu  *sync.Mutex

	// staged is nil outside a transaction.
	staged map[string][][]string
}

// Begin opens a transaction. Calling it twice keeps the first one.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.staged == nil {
		uow.staged = make(map[string][][]string)
	}
	return nil
}

// Commit writes every staged file. All temporary files are written before any is
// renamed into place.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.staged == nil {
		return ErrNoActiveTransaction
	}
	staged := uow.staged
	uow.staged = nil

	if err := ctx.Err(); err != nil {
		return err
	}

	uow.mu.Lock()
	defer uow.mu.Unlock()

	names := slices.Sorted(maps.Keys(staged))

	temps := make(map[string]string, len(names))
	defer func() {
		for _, tmp := range temps {
			_ = os.Remove(tmp)
		}
	}()

	for _, name := range names {
		tmp, err := writeTemp(uow.dir, name, staged[name])
		if err != nil {
			return err
		}
		temps[name] = tmp
	}

	for _, name := range names {
		if err := os.Rename(temps[name], uow.path(name)); err != nil {
			return fmt.Errorf("replace %s: %w", name, err)
		}
		delete(temps, name)
	}
	return nil
}

// Rollback drops the staged writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.staged == nil {
		return ErrNoActiveTransaction
	}
	uow.staged = nil
	return nil
}

func (uow *UnitOfWork) AccountRepository() ports.AccountRepository {
	return &accountRepository{uow: uow}
}

func (uow *UnitOfWork) MenuRepository() ports.MenuRepository {
	return &menuRepository{uow: uow}
}

func (uow *UnitOfWork) PromoCodeRepository() ports.PromoCodeRepository {
	return &promoCodeRepository{uow: uow}
}

func (uow *UnitOfWork) write(ctx context.Context, name string, records [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.staged != nil {
		uow.staged[name] = records
		return nil
	}

	uow.mu.Lock()
	defer uow.mu.Unlock()

	tmp, err := writeTemp(uow.dir, name, records)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, uow.path(name)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

// read sees the transaction's own staged writes before the files on disk.
func (uow *UnitOfWork) read(ctx context.Context, name string, fields int) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if records, ok := uow.staged[name]; ok {
		return records, nil
	}

	uow.mu.Lock()
	defer uow.mu.Unlock()

	return readFile(uow.path(name), fields)
}
