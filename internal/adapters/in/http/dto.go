package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type NewMenuItemRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

type NewPromoCodeRequest struct {
	Code    string          `json:"code"`
	Percent decimal.Decimal `json:"percent"`
}

type AddToCartRequest struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

// CheckoutRequest leaves address and phone empty to use the account's own.
type CheckoutRequest struct {
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	PromoCode string `json:"promoCode"`
	Priority  string `json:"priority"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Amounts are rendered as strings with two decimal places.

type Account struct {
	Username      string `json:"username"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

type MenuItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
}

type PromoCode struct {
	Code    string `json:"code"`
	Percent string `json:"percent"`
}

type CartLine struct {
	ItemID    int    `json:"itemId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Amount    string `json:"amount"`
}

type Cart struct {
	Lines    []CartLine `json:"lines"`
	Subtotal string     `json:"subtotal"`
}

type OrderLine struct {
	ItemID    int    `json:"itemId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Amount    string `json:"amount"`
}

type Order struct {
	ID          int64       `json:"id"`
	Username    string      `json:"username"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Items       []OrderLine `json:"items"`
	Subtotal    string      `json:"subtotal"`
	Discount    string      `json:"discount"`
	DeliveryFee string      `json:"deliveryFee"`
	Tax         string      `json:"tax"`
	Total       string      `json:"total"`
	Priority    string      `json:"priority"`
	Status      string      `json:"status"`
	OrderTime   time.Time   `json:"orderTime"`
	StatusTime  time.Time   `json:"statusTime"`
}

type CheckoutResponse struct {
	Order        Order  `json:"order"`
	PointsEarned int    `json:"pointsEarned"`
	PromoWarning string `json:"promoWarning,omitempty"`
}

type Tracking struct {
	Order             Order     `json:"order"`
	Pool              string    `json:"pool"`
	Stage             int       `json:"stage"`
	OnTrack           bool      `json:"onTrack"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

type SaveResponse struct {
	Accounts   int `json:"accounts"`
	MenuItems  int `json:"menuItems"`
	PromoCodes int `json:"promoCodes"`
}

func toAccount(a queries.AccountResponse) Account {
	return Account{
		Username:      a.Username,
		Address:       a.Address,
		Phone:         a.Phone,
		LoyaltyPoints: a.LoyaltyPoints,
	}
}

func toMenuItem(item queries.MenuItemResponse) MenuItem {
	return MenuItem{
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price.String(),
		Stock:    item.Stock,
	}
}

func toPromoCode(c queries.PromoCodeResponse) PromoCode {
	return PromoCode{Code: c.Code, Percent: c.Percent.StringFixed(2)}
}

func toCart(c queries.CartResponse) Cart {
	lines := make([]CartLine, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = CartLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			Amount:    l.Amount.String(),
		}
	}
	return Cart{Lines: lines, Subtotal: c.Subtotal.String()}
}

func toOrder(o queries.OrderResponse) Order {
	items := make([]OrderLine, len(o.Items))
	for i, l := range o.Items {
		items[i] = OrderLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			Amount:    l.Amount.String(),
		}
	}
	return Order{
		ID:          int64(o.ID),
		Username:    o.Username,
		Address:     o.Address,
		Phone:       o.Phone,
		Items:       items,
		Subtotal:    o.Subtotal.String(),
		Discount:    o.Discount.String(),
		DeliveryFee: o.DeliveryFee.String(),
		Tax:         o.Tax.String(),
		Total:       o.Total.String(),
		Priority:    o.Priority.String(),
		Status:      o.Status.String(),
		OrderTime:   o.OrderTime,
		StatusTime:  o.StatusTime,
	}
}

func toOrders(orders []queries.OrderResponse) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = toOrder(o)
	}
	return out
}
