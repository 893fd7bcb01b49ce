// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return flat read models built from detached snapshots of the order lifecycle.
package queries

import (
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/promo"
	"fooddelivery/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// OrderLineResponse is one line of an order in the read model.
type OrderLineResponse struct {
	ItemID    int
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	Amount    kernel.Money
}

// OrderResponse represents an order with its money breakdown and lifecycle timestamps.
//
// Example:
//
//	response := NewOrderResponse(o)
//	fmt.Printf("#%s %s %s total %s\n", response.ID, response.Priority, response.Status, response.Total)
type OrderResponse struct {
	ID          order.ID
	Username    string
	Address     string
	Phone       string
	Items       []OrderLineResponse
	Subtotal    kernel.Money
	Discount    kernel.Money
	DeliveryFee kernel.Money
	Tax         kernel.Money
	Total       kernel.Money
	Priority    order.Priority
	Status      order.Status
	OrderTime   time.Time
	StatusTime  time.Time
}

// NewOrderResponse flattens an order snapshot.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	lines := make([]OrderLineResponse, len(items))
	for i, item := range items {
		lines[i] = OrderLineResponse{
			ItemID:    item.ItemID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Amount:    item.Amount(),
		}
	}

	return OrderResponse{
		ID:          o.ID(),
		Username:    o.Username(),
		Address:     o.Address(),
		Phone:       o.Phone(),
		Items:       lines,
		Subtotal:    o.Subtotal(),
		Discount:    o.Discount(),
		DeliveryFee: o.DeliveryFee(),
		Tax:         o.Tax(),
		Total:       o.Total(),
		Priority:    o.Priority(),
		Status:      o.Status(),
		OrderTime:   o.OrderTime(),
		StatusTime:  o.StatusTime(),
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = NewOrderResponse(o)
	}
	return out
}

// AccountResponse is an account without its password.
type AccountResponse struct {
	Username      string
	Address       string
	Phone         string
	LoyaltyPoints int
}

func NewAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		Username:      a.Username(),
		Address:       a.Address(),
		Phone:         a.Phone(),
		LoyaltyPoints: a.LoyaltyPoints(),
	}
}

// MenuItemResponse is a menu entry with its remaining stock.
type MenuItemResponse struct {
	ID       int
	Name     string
	Category string
	Price    kernel.Money
	Stock    int
}

func NewMenuItemResponse(item *catalog.Item) MenuItemResponse {
	return MenuItemResponse{
		ID:       item.ID(),
		Name:     item.Name(),
		Category: item.Category(),
		Price:    item.Price(),
		Stock:    item.Stock(),
	}
}

// PromoCodeResponse is a promo code and its percentage.
type PromoCodeResponse struct {
	Code    string
	Percent decimal.Decimal
}

func NewPromoCodeResponse(c promo.Code) PromoCodeResponse {
	return PromoCodeResponse{Code: c.Code(), Percent: c.Percent()}
}

// CartLineResponse is one cart line with its amount.
type CartLineResponse struct {
	ItemID    int
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	Amount    kernel.Money
}

// CartResponse is a cart with its subtotal.
type CartResponse struct {
	Lines    []CartLineResponse
	Subtotal kernel.Money
}

func NewCartResponse(view services.CartView) CartResponse {
	lines := make([]CartLineResponse, len(view.Lines))
	for i, l := range view.Lines {
		lines[i] = CartLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Amount:    l.Amount(),
		}
	}
	return CartResponse{Lines: lines, Subtotal: view.Subtotal}
}
