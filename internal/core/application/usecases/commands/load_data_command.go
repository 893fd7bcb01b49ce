package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrLoadDataCommandIsNotConstructed = errors.New(
	"LoadDataCommand must be created via NewLoadDataCommand constructor",
)

// LoadDataCommand restores accounts, menu and promo codes from storage at startup.
// Collections that storage does not hold yet are filled with default data.
type LoadDataCommand struct {
	guard guard.ConstructorGuard
}

func NewLoadDataCommand() LoadDataCommand {
	return LoadDataCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c LoadDataCommand) Validate() error {
	return c.guard.Validate(ErrLoadDataCommandIsNotConstructed)
}
