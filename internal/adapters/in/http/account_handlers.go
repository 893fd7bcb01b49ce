package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// SignUp handles POST /api/v1/accounts.
func (s *Server) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSignUpCommand(req.Username, req.Password, req.Address, req.Phone)
	if err != nil {
		return s.fail(c, err)
	}

	a, err := s.commands.SignUp.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toAccount(queries.NewAccountResponse(a)))
}

// GetMe handles GET /api/v1/me.
func (s *Server) GetMe(c echo.Context) error {
	query, err := queries.NewGetAccountQuery(username(c))
	if err != nil {
		return s.fail(c, err)
	}

	a, err := s.queries.Account.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAccount(a))
}

// GetAccounts handles GET /api/v1/accounts, listing accounts by username.
func (s *Server) GetAccounts(c echo.Context) error {
	accounts, err := s.queries.Accounts.Handle(c.Request().Context(), queries.NewGetAccountsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Account, len(accounts))
	for i, a := range accounts {
		response[i] = toAccount(a)
	}
	return c.JSON(http.StatusOK, response)
}
