package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(c echo.Context) error {
	query, err := queries.NewGetCartQuery(username(c))
	if err != nil {
		return s.fail(c, err)
	}

	cart, err := s.queries.Cart.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toCart(cart))
}

// AddToCart handles POST /api/v1/cart/items.
func (s *Server) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewAddToCartCommand(username(c), req.ItemID, req.Quantity)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.commands.AddToCart.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toCart(queries.NewCartResponse(view)))
}

// RemoveFromCart handles DELETE /api/v1/cart/items/:itemId.
func (s *Server) RemoveFromCart(c echo.Context) error {
	var itemID int
	if err := echo.PathParamsBinder(c).MustInt("itemId", &itemID).BindError(); err != nil {
		return badRequest(c, "Invalid item id")
	}

	cmd, err := commands.NewRemoveFromCartCommand(username(c), itemID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.commands.RemoveFromCart.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toCart(queries.NewCartResponse(view)))
}
