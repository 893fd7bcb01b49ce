// Package http exposes the delivery system over a JSON REST API built on echo.
// Every route except signup, the menu and the health check requires HTTP Basic
// credentials of a registered account; operator routes also require the admin account.
package http

import (
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Commands groups the command handlers served over HTTP.
type Commands struct {
	SignUp            commands.SignUpCommandHandler
	AddMenuItem       commands.AddMenuItemCommandHandler
	AddPromoCode      commands.AddPromoCodeCommandHandler
	AddToCart         commands.AddToCartCommandHandler
	RemoveFromCart    commands.RemoveFromCartCommandHandler
	Checkout          commands.CheckoutCommandHandler
	ProcessNextOrder  commands.ProcessNextOrderCommandHandler
	DispatchNextOrder commands.DispatchNextOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	SaveData          commands.SaveDataCommandHandler
}

// Queries groups the query handlers served over HTTP.
type Queries struct {
	Authenticate  queries.AuthenticateQueryHandler
	Account       queries.GetAccountQueryHandler
	Accounts      queries.GetAccountsQueryHandler
	Menu          queries.GetMenuQueryHandler
	PromoCodes    queries.GetPromoCodesQueryHandler
	Cart          queries.GetCartQueryHandler
	TrackOrder    queries.TrackOrderQueryHandler
	OrderHistory  queries.GetOrderHistoryQueryHandler
	PendingOrders queries.GetPendingOrdersQueryHandler
	DeliveryQueue queries.GetDeliveryQueueQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds Commands, qs Queries, logger *slog.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		logger:   logger.With("component", "http"),
	}
}

// NewEcho builds the echo instance with recovery, request ids, request logging and every route.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestID())
	e.Use(s.requestLogger())

	s.Register(e)
	return e
}

// Register attaches every route to e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	public := e.Group("/api/v1")
	public.POST("/accounts", s.SignUp)
	public.GET("/menu", s.GetMenu)

	api := e.Group("/api/v1", middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Validator: s.authenticate,
		Realm:     "fooddelivery",
	}))
	api.GET("/me", s.GetMe)
	api.GET("/promo-codes", s.GetPromoCodes)
	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddToCart)
	api.DELETE("/cart/items/:itemId", s.RemoveFromCart)
	api.POST("/checkout", s.Checkout)
	api.GET("/orders/history", s.GetOrderHistory)
	api.GET("/orders/:id", s.TrackOrder)

	api.GET("/accounts", s.GetAccounts, requireAdmin)
	api.POST("/menu", s.AddMenuItem, requireAdmin)
	api.POST("/promo-codes", s.AddPromoCode, requireAdmin)
	api.GET("/orders/pending", s.GetPendingOrders, requireAdmin)
	api.POST("/orders/pending/next", s.ProcessNextOrder, requireAdmin)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus, requireAdmin)
	api.GET("/deliveries", s.GetDeliveryQueue, requireAdmin)
	api.POST("/deliveries/next", s.DispatchNextOrder, requireAdmin)
	api.POST("/admin/save", s.SaveData, requireAdmin)
}
