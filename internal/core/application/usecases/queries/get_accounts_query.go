package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetAccountsQueryIsNotConstructed = errors.New(
		"GetAccountsQuery must be created via NewGetAccountsQuery constructor",
	)
	ErrGetAccountQueryIsNotConstructed = errors.New(
		"GetAccountQuery must be created via NewGetAccountQuery constructor",
	)
)

// GetAccountsQuery lists every account in username order.
type GetAccountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAccountsQuery() GetAccountsQuery {
	return GetAccountsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAccountsQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountsQueryIsNotConstructed)
}

type GetAccountsQueryHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewGetAccountsQueryHandler(lifecycle *services.OrderLifecycle) GetAccountsQueryHandler {
	return GetAccountsQueryHandler{lifecycle: lifecycle}
}

func (h GetAccountsQueryHandler) Handle(ctx context.Context, query GetAccountsQuery) ([]AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accounts := h.lifecycle.Accounts()
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = NewAccountResponse(a)
	}
	return out, nil
}

// GetAccountQuery looks up one account by username.
type GetAccountQuery struct {
	username string

	guard guard.ConstructorGuard
}

func NewGetAccountQuery(username string) (GetAccountQuery, error) {
	if username == "" {
		return GetAccountQuery{}, errs.NewValueIsRequiredError("username")
	}
	return GetAccountQuery{username: username, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

func (q GetAccountQuery) Username() string {
	return q.username
}

type GetAccountQueryHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewGetAccountQueryHandler(lifecycle *services.OrderLifecycle) GetAccountQueryHandler {
	return GetAccountQueryHandler{lifecycle: lifecycle}
}

func (h GetAccountQueryHandler) Handle(ctx context.Context, query GetAccountQuery) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return AccountResponse{}, err
	}

	a, err := h.lifecycle.Account(query.Username())
	if err != nil {
		return AccountResponse{}, err
	}
	return NewAccountResponse(a), nil
}
