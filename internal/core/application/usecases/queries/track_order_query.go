package queries

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery asks for the progress of one order on behalf of a viewer.
//
// Example:
//
//	query, _ := NewTrackOrderQuery(1000, "user")
//	tracking, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrUnauthorized) {
//	    // the viewer neither placed the order nor is the admin
//	}
//	fmt.Printf("stage %d of 4, expected by %s\n", tracking.Stage, tracking.EstimatedDelivery)
type TrackOrderQuery struct {
	orderID order.ID
	viewer  string

	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(orderID order.ID, viewer string) (TrackOrderQuery, error) {
	var errID, errViewer error
	if orderID < order.FirstID {
		errID = errs.NewValueIsOutOfRangeError("order id", orderID, order.FirstID, "unbounded")
	}
	if viewer == "" {
		errViewer = errs.NewValueIsRequiredError("viewer")
	}
	if err := errors.Join(errID, errViewer); err != nil {
		return TrackOrderQuery{}, err
	}
	return TrackOrderQuery{orderID: orderID, viewer: viewer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) OrderID() order.ID {
	return q.orderID
}

func (q TrackOrderQuery) Viewer() string {
	return q.viewer
}

// TrackOrderQueryResponse is the progress read model.
type TrackOrderQueryResponse struct {
	Order OrderResponse

	// Pool names the structure that answered the lookup.
	Pool string

	Stage             int
	OnTrack           bool
	EstimatedDelivery time.Time
}

type TrackOrderQueryHandler struct {
	lifecycle *services.OrderLifecycle
}

func NewTrackOrderQueryHandler(lifecycle *services.OrderLifecycle) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{lifecycle: lifecycle}
}

func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	tracking, err := h.lifecycle.TrackOrder(query.OrderID(), query.Viewer())
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return TrackOrderQueryResponse{
		Order:             NewOrderResponse(tracking.Order),
		Pool:              tracking.Pool.String(),
		Stage:             tracking.Stage,
		OnTrack:           tracking.OnTrack,
		EstimatedDelivery: tracking.EstimatedDelivery,
	}, nil
}
