// Package ports defines the persistence contracts of the delivery system.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
//
// Orders live only in memory. What survives a restart is the order-independent
// data: accounts with their loyalty balance, the menu with remaining stock and the
// promo codes.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each save or load.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a persistence transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes every write since Begin durable.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards every write since Begin.
	// After Commit there is nothing to discard and an error is returned, which deferred calls ignore.
	Rollback(ctx context.Context) error

	// AccountRepository returns an AccountRepository bound to the current transaction.
	AccountRepository() AccountRepository

	// MenuRepository returns a MenuRepository bound to the current transaction.
	MenuRepository() MenuRepository

	// PromoCodeRepository returns a PromoCodeRepository bound to the current transaction.
	PromoCodeRepository() PromoCodeRepository
}
