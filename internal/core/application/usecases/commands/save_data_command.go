package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrSaveDataCommandIsNotConstructed = errors.New(
	"SaveDataCommand must be created via NewSaveDataCommand constructor",
)

// SaveDataCommand flushes accounts, menu and promo codes to storage.
//
// Example:
//
//	handler := NewSaveDataCommandHandler(lifecycle, uowFactory)
//	if err := handler.Handle(ctx, NewSaveDataCommand()); err != nil {
//	    return fmt.Errorf("save failed: %w", err)
//	}
type SaveDataCommand struct {
	guard guard.ConstructorGuard
}

func NewSaveDataCommand() SaveDataCommand {
	return SaveDataCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SaveDataCommand) Validate() error {
	return c.guard.Validate(ErrSaveDataCommandIsNotConstructed)
}
