package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(c echo.Context) error {
	items, err := s.queries.Menu.Handle(c.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = toMenuItem(item)
	}
	return c.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu.
func (s *Server) AddMenuItem(c echo.Context) error {
	var req NewMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAddMenuItemCommand(req.Name, req.Category, price, req.Stock)
	if err != nil {
		return s.fail(c, err)
	}

	item, err := s.commands.AddMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toMenuItem(queries.NewMenuItemResponse(item)))
}

// GetPromoCodes handles GET /api/v1/promo-codes.
func (s *Server) GetPromoCodes(c echo.Context) error {
	codes, err := s.queries.PromoCodes.Handle(c.Request().Context(), queries.NewGetPromoCodesQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]PromoCode, len(codes))
	for i, code := range codes {
		response[i] = toPromoCode(code)
	}
	return c.JSON(http.StatusOK, response)
}

// AddPromoCode handles POST /api/v1/promo-codes.
func (s *Server) AddPromoCode(c echo.Context) error {
	var req NewPromoCodeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewAddPromoCodeCommand(req.Code, req.Percent)
	if err != nil {
		return s.fail(c, err)
	}

	code, err := s.commands.AddPromoCode.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toPromoCode(queries.NewPromoCodeResponse(code)))
}
