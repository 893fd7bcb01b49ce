package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery checks a username and password pair.
//
// Example:
//
//	query, _ := NewAuthenticateQuery("admin", "admin123")
//	principal, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrUnauthorized) {
//	    // unknown user or wrong password
//	}
//	if principal.IsAdmin {
//	    // operator endpoints are allowed
//	}
type AuthenticateQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateQuery(username, password string) (AuthenticateQuery, error) {
	var errUsername, errPassword error
	if username == "" {
		errUsername = errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		errPassword = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(errUsername, errPassword); err != nil {
		return AuthenticateQuery{}, err
	}
	return AuthenticateQuery{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

func (q AuthenticateQuery) Username() string {
	return q.username
}

func (q AuthenticateQuery) Password() string {
	return q.password
}

// AuthenticateQueryResponse is the authenticated principal.
type AuthenticateQueryResponse struct {
	Account AccountResponse
	IsAdmin bool
}

type AuthenticateQueryHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewAuthenticateQueryHandler(lifecycle *services.OrderLifecycle) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{lifecycle: lifecycle}
}

func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	a, err := h.lifecycle.Authenticate(query.Username(), query.Password())
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}
	return AuthenticateQueryResponse{
		Account: NewAccountResponse(a),
		IsAdmin: h.lifecycle.IsAdmin(a.Username()),
	}, nil
}
