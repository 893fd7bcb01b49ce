package http

import (
	"cmp"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Checkout handles POST /api/v1/checkout. An unknown promo code does not fail the
// checkout; it is reported in promoWarning and the order carries no discount.
func (s *Server) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	priority, err := order.ParsePriority(cmp.Or(req.Priority, order.Normal.String()))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCheckoutCommand(username(c), req.Address, req.Phone, req.PromoCode, priority)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.commands.Checkout.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	response := CheckoutResponse{
		Order:        toOrder(queries.NewOrderResponse(result.Order)),
		PointsEarned: result.PointsEarned,
	}
	if result.PromoErr != nil {
		response.PromoWarning = result.PromoErr.Error()
	}
	return c.JSON(http.StatusCreated, response)
}

// TrackOrder handles GET /api/v1/orders/:id for the owner or the admin.
func (s *Server) TrackOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	query, err := queries.NewTrackOrderQuery(id, username(c))
	if err != nil {
		return s.fail(c, err)
	}

	tracking, err := s.queries.TrackOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Tracking{
		Order:             toOrder(tracking.Order),
		Pool:              tracking.Pool,
		Stage:             tracking.Stage,
		OnTrack:           tracking.OnTrack,
		EstimatedDelivery: tracking.EstimatedDelivery,
	})
}

// GetOrderHistory handles GET /api/v1/orders/history. The admin may pass ?all=true.
func (s *Server) GetOrderHistory(c echo.Context) error {
	var all bool
	if err := echo.QueryParamsBinder(c).Bool("all", &all).BindError(); err != nil {
		return badRequest(c, "Invalid all flag")
	}

	query, err := queries.NewGetOrderHistoryQuery(username(c), all)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.queries.OrderHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrders(orders))
}

// GetPendingOrders handles GET /api/v1/orders/pending, newest first.
func (s *Server) GetPendingOrders(c echo.Context) error {
	orders, err := s.queries.PendingOrders.Handle(c.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrders(orders))
}

// ProcessNextOrder handles POST /api/v1/orders/pending/next.
func (s *Server) ProcessNextOrder(c echo.Context) error {
	o, err := s.commands.ProcessNextOrder.Handle(c.Request().Context(), commands.NewProcessNextOrderCommand())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

// GetDeliveryQueue handles GET /api/v1/deliveries in dispatch order.
func (s *Server) GetDeliveryQueue(c echo.Context) error {
	orders, err := s.queries.DeliveryQueue.Handle(c.Request().Context(), queries.NewGetDeliveryQueueQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrders(orders))
}

// DispatchNextOrder handles POST /api/v1/deliveries/next.
func (s *Server) DispatchNextOrder(c echo.Context) error {
	o, err := s.commands.DispatchNextOrder.Handle(c.Request().Context(), commands.NewDispatchNextOrderCommand())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.commands.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

// SaveData handles POST /api/v1/admin/save.
func (s *Server) SaveData(c echo.Context) error {
	snapshot, err := s.commands.SaveData.Handle(c.Request().Context(), commands.NewSaveDataCommand())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, SaveResponse{
		Accounts:   len(snapshot.Accounts),
		MenuItems:  len(snapshot.MenuItems),
		PromoCodes: len(snapshot.PromoCodes),
	})
}

func orderID(c echo.Context) (order.ID, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return 0, err
	}
	return order.ID(id), nil
}
