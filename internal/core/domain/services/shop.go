package services

import (
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promo"

	"github.com/shopspring/decimal"
)

// AddMenuItem adds an item to the menu under the next free id.
func (l *OrderLifecycle) AddMenuItem(name, category string, price kernel.Money, stock int) (*catalog.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, err := l.menu.Add(name, category, price, stock)
	if err != nil {
		return nil, err
	}
	return item.Clone(), nil
}

// RestoreMenuItem puts back a persisted item under its own id.
func (l *OrderLifecycle) RestoreMenuItem(item *catalog.Item) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := item.Validate(); err != nil {
		return err
	}
	return l.menu.Restore(item.Clone())
}

// MenuItem returns a snapshot of one item.
func (l *OrderLifecycle) MenuItem(id int) (*catalog.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, err := l.menu.Find(id)
	if err != nil {
		return nil, err
	}
	return item.Clone(), nil
}

// MenuItems lists the menu in ascending id order.
func (l *OrderLifecycle) MenuItems() []*catalog.Item {
	var out []*catalog.Item
	l.ForEachMenuItem(func(item *catalog.Item) bool {
		out = append(out, item)
		return true
	})
	return out
}

// ForEachMenuItem visits item snapshots in ascending id order.
// fn must not call back into the lifecycle.
func (l *OrderLifecycle) ForEachMenuItem(fn func(item *catalog.Item) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.menu.ForEach(func(item *catalog.Item) bool {
		return fn(item.Clone())
	})
}

// MenuItemCount returns the number of menu items.
func (l *OrderLifecycle) MenuItemCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.menu.Len()
}

// AddPromoCode registers a percentage discount code.
func (l *OrderLifecycle) AddPromoCode(code string, percent decimal.Decimal) (promo.Code, error) {
	c, err := promo.NewCode(code, percent)
	if err != nil {
		return promo.Code{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.promos.Add(c); err != nil {
		return promo.Code{}, err
	}
	return c, nil
}

// PromoCodes lists codes in the order they were added.
func (l *OrderLifecycle) PromoCodes() []promo.Code {
	var out []promo.Code
	l.ForEachPromo(func(c promo.Code) bool {
		out = append(out, c)
		return true
	})
	return out
}

// ForEachPromo visits codes in the order they were added.
// fn must not call back into the lifecycle.
func (l *OrderLifecycle) ForEachPromo(fn func(code promo.Code) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.promos.ForEach(fn)
}

// CartView is a snapshot of a customer's cart.
type CartView struct {
	Lines    []cart.Line
	Subtotal kernel.Money
}

// AddToCart puts quantity units of a menu item into the account's cart. The combined
// quantity must not exceed the item's stock, otherwise catalog.ErrInsufficientStock
// is returned and the cart is unchanged.
func (l *OrderLifecycle) AddToCart(username string, itemID, quantity int) (CartView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.accounts.Find(username); err != nil {
		return CartView{}, err
	}

	c := l.cartOf(username)
	item, err := l.menu.Reserve(itemID, c.Quantity(itemID), quantity)
	if err != nil {
		return CartView{}, err
	}
	if err := c.Add(item.ID(), item.Name(), quantity, item.Price()); err != nil {
		return CartView{}, err
	}
	return viewOf(c), nil
}

// RemoveFromCart drops the line for itemID from the account's cart.
func (l *OrderLifecycle) RemoveFromCart(username string, itemID int) (CartView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.cartOf(username)
	if err := c.Remove(itemID); err != nil {
		return CartView{}, err
	}
	return viewOf(c), nil
}

// Cart returns the account's cart. Accounts that never added anything see an empty cart.
func (l *OrderLifecycle) Cart(username string) CartView {
	l.mu.Lock()
	defer l.mu.Unlock()

	return viewOf(l.cartOf(username))
}

func (l *OrderLifecycle) cartOf(username string) *cart.Cart {
	c, ok := l.carts[username]
	if !ok {
		c = &cart.Cart{}
		l.carts[username] = c
	}
	return c
}

func viewOf(c *cart.Cart) CartView {
	return CartView{Lines: c.Lines(), Subtotal: c.Subtotal()}
}
