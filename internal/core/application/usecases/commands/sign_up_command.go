package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrSignUpCommandIsNotConstructed = errors.New(
	"SignUpCommand must be created via NewSignUpCommand constructor",
)

// SignUpCommand registers a new customer account.
//
// Example:
//
//	cmd, err := NewSignUpCommand("alice", "secret", "7 Elm St", "5551234")
//	if err != nil {
//	    return err
//	}
//	if _, err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // username is taken
//	}
type SignUpCommand struct { //nolint:recvcheck //using for validation
	username string
	password string
	address  string
	phone    string

	guard guard.ConstructorGuard
}

// NewSignUpCommand requires every field.
func NewSignUpCommand(username, password, address, phone string) (SignUpCommand, error) {
	cmd := SignUpCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		required("username", username, &cmd.username),
		required("password", password, &cmd.password),
		required("address", address, &cmd.address),
		required("phone", phone, &cmd.phone),
	); err != nil {
		return SignUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

func (c SignUpCommand) Username() string {
	return c.username
}

func (c SignUpCommand) Password() string {
	return c.password
}

func (c SignUpCommand) Address() string {
	return c.address
}

func (c SignUpCommand) Phone() string {
	return c.phone
}

// SignUpCommandHandler inserts accounts into the directory.
type SignUpCommandHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewSignUpCommandHandler(lifecycle *services.OrderLifecycle) SignUpCommandHandler {
	return SignUpCommandHandler{lifecycle: lifecycle}
}

// Handle returns an ObjectAlreadyExistsError for a taken username.
func (h SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.lifecycle.SignUp(cmd.Username(), cmd.Password(), cmd.Address(), cmd.Phone())
}

func required(param, value string, dst *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*dst = value
	return nil
}
