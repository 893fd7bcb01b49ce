package services

import (
	"cmp"
	"errors"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/promo"
	"fooddelivery/internal/pkg/errs"
)

// DefaultAdminUsername is the account treated as operator when no other is configured.
const DefaultAdminUsername = "admin"

// OrderLifecycle is the process-wide context of the delivery system. It owns the order
// store and the three order pools together with the account directory, the menu, the
// promo registry and the per-account carts.
//
// Key responsibilities:
//   - Building, pricing and admitting orders at checkout
//   - Resolving an order id by probing admission, dispatch and history in that order
//   - Status changes, confirmation of the newest order and dispatch of the most urgent one
//   - Tracking with owner-or-admin authorization
//
// Business rules:
//   - Every operation is serialised behind one mutex
//   - Checkout either completes every step or changes nothing
//   - Orders and accounts handed out are detached clones
//
// Example usage:
//
//	lifecycle := services.NewOrderLifecycle(services.WithAdmin("admin"))
//	_, _ = lifecycle.SignUp("user", "user123", "123 Main St", "9876543210")
//	_, _ = lifecycle.AddToCart("user", 1, 2)
//	result, err := lifecycle.Checkout(services.CheckoutRequest{Username: "user", Priority: order.Normal})
//	if errors.Is(err, services.ErrCartIsEmpty) {
//	    return
//	}
//	fmt.Println(result.Order.Total())
type OrderLifecycle struct {
	mu sync.Mutex

	now   func() time.Time
	admin string

	ids       order.IDSequence
	orders    *order.Store
	admission order.AdmissionStack
	dispatch  order.DispatchQueue
	history   order.HistoryIndex

	accounts account.Directory
	menu     *catalog.Menu
	promos   promo.Registry
	carts    map[string]*cart.Cart
}

// Option customises an OrderLifecycle at construction.
type Option func(*OrderLifecycle)

// WithClock replaces time.Now as the source of order and status timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *OrderLifecycle) {
		l.now = now
	}
}

// WithAdmin names the operator account. Empty names are ignored.
func WithAdmin(username string) Option {
	return func(l *OrderLifecycle) {
		if username != "" {
			l.admin = username
		}
	}
}

// NewOrderLifecycle creates an empty context.
func NewOrderLifecycle(opts ...Option) *OrderLifecycle {
	l := &OrderLifecycle{
		now:    time.Now,
		admin:  DefaultAdminUsername,
		orders: order.NewStore(),
		menu:   catalog.NewMenu(),
		carts:  make(map[string]*cart.Cart),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CheckoutRequest carries the checkout inputs. Empty Address or Phone fall back to the
// values stored on the account.
type CheckoutRequest struct {
	Username  string
	Address   string
	Phone     string
	PromoCode string
	Priority  order.Priority
}

// CheckoutResult is the outcome of a successful checkout.
type CheckoutResult struct {
	// Order is a snapshot of the admitted order.
	Order *order.Order

	// PointsEarned is the loyalty credit, zero when the account does not exist.
	PointsEarned int

	// PromoErr is set when the promo code did not resolve. The order was placed without a discount.
	PromoErr error
}

// Checkout turns the customer's cart into an order.
//
// Steps:
//  1. Reject with ErrCartIsEmpty if the cart has no lines
//  2. Resolve the promo code; an unknown code is reported in PromoErr and gives no discount
//  3. Build and finalize the order from the cart lines
//  4. Store the order and admit its id to the admission stack, dispatch queue and history index
//  5. Decrement catalog stock for every line, flooring at zero
//  6. Credit floor(total × 10) loyalty points to the account
//  7. Clear the cart
//
// Nothing is mutated when steps 1 to 3 fail, and no later step can fail.
func (l *OrderLifecycle) Checkout(req CheckoutRequest) (CheckoutResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.carts[req.Username]
	if !ok || c.IsEmpty() {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	address, phone := req.Address, req.Phone
	acc, accErr := l.accounts.Find(req.Username)
	if accErr == nil {
		address = cmp.Or(address, acc.Address())
		phone = cmp.Or(phone, acc.Phone())
	}

	discount := kernel.Zero()
	var promoErr error
	if req.PromoCode != "" {
		code, err := l.promos.Resolve(req.PromoCode)
		if err != nil {
			promoErr = err
		} else {
			discount = code.DiscountOn(c.Subtotal())
		}
	}

	o, err := l.buildOrder(req.Username, address, phone, req.Priority, c.Lines(), discount)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err := l.admit(o); err != nil {
		return CheckoutResult{}, err
	}
	l.ids.Next()

	for _, line := range c.Lines() {
		l.menu.DecrementStock(line.ItemID, line.Quantity)
	}

	earned := 0
	if accErr == nil {
		earned = acc.AddLoyaltyPoints(o.Total())
	}
	c.Clear()

	return CheckoutResult{Order: o.Clone(), PointsEarned: earned, PromoErr: promoErr}, nil
}

func (l *OrderLifecycle) buildOrder(
	username, address, phone string,
	priority order.Priority,
	lines []cart.Line,
	discount kernel.Money,
) (*order.Order, error) {
	o, err := order.NewOrder(l.ids.Peek(), username, address, phone, priority, l.now())
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := o.AddLine(line.ItemID, line.Name, line.Quantity, line.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := o.Finalize(discount); err != nil {
		return nil, err
	}
	return o, nil
}

// admit stores the order and places its id in all three pools.
// The id is fresh, so only the store can reject it and it does so before any pool is touched.
func (l *OrderLifecycle) admit(o *order.Order) error {
	if err := l.orders.Add(o); err != nil {
		return err
	}

	l.admission.Push(o.ID())
	if err := l.dispatch.Enqueue(o.ID(), o.Priority()); err != nil {
		return err
	}
	return l.history.Insert(o.ID())
}

// FindByID probes the admission stack, then the dispatch queue, then the history index,
// and reports which one answered.
func (l *OrderLifecycle) FindByID(id order.ID) (*order.Order, Pool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, pool, err := l.find(id)
	if err != nil {
		return nil, NoPool, err
	}
	return o.Clone(), pool, nil
}

func (l *OrderLifecycle) find(id order.ID) (*order.Order, Pool, error) {
	var pool Pool
	switch {
	case l.admission.Contains(id):
		pool = AdmissionPool
	case l.dispatch.Contains(id):
		pool = DispatchPool
	case l.history.Contains(id):
		pool = HistoryPool
	default:
		return nil, NoPool, errs.NewObjectNotFoundError("order id", id)
	}

	o, err := l.orders.Get(id)
	if err != nil {
		return nil, NoPool, err
	}
	return o, pool, nil
}

// UpdateStatus finds the order and sets its status in one step.
// Any valid status may be set.
func (l *OrderLifecycle) UpdateStatus(id order.ID, status order.Status) (*order.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, _, err := l.find(id)
	if err != nil {
		return nil, err
	}
	if err := o.ChangeStatus(status, l.now()); err != nil {
		return nil, err
	}
	return o.Clone(), nil
}

// ProcessNextOrder takes the most recently admitted order off the admission stack
// and marks it Confirmed. A Delivered or Cancelled order leaves the stack with its
// status untouched.
func (l *OrderLifecycle) ProcessNextOrder() (*order.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id, err := l.admission.Pop()
	if err != nil {
		return nil, err
	}
	return l.changeStatus(id, order.Confirmed)
}

// DispatchNextOrder takes the most urgent order off the dispatch queue and marks it
// OutForDelivery. Among equal priorities the earliest admitted order goes first.
// A Delivered or Cancelled order leaves the queue with its status untouched.
func (l *OrderLifecycle) DispatchNextOrder() (*order.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, err := l.dispatch.Dequeue()
	if err != nil {
		return nil, err
	}
	return l.changeStatus(entry.ID, order.OutForDelivery)
}

func (l *OrderLifecycle) changeStatus(id order.ID, status order.Status) (*order.Order, error) {
	o, err := l.orders.Get(id)
	if err != nil {
		return nil, err
	}
	if o.Status().IsFinal() {
		return o.Clone(), nil
	}
	if err := o.ChangeStatus(status, l.now()); err != nil {
		return nil, err
	}
	return o.Clone(), nil
}

// Tracking describes where an order stands.
type Tracking struct {
	Order *order.Order
	Pool  Pool

	// Stage is the progress position, Pending 0 to Delivered 4.
	// OnTrack is false for cancelled orders, whose Stage is meaningless.
	Stage   int
	OnTrack bool

	EstimatedDelivery time.Time
}

// TrackOrder returns the progress of an order. Only the admin and the account that
// placed the order may track it.
func (l *OrderLifecycle) TrackOrder(id order.ID, viewer string) (Tracking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, pool, err := l.find(id)
	if err != nil {
		return Tracking{}, err
	}
	if viewer != l.admin && viewer != o.Username() {
		return Tracking{}, ErrUnauthorized
	}

	stage, onTrack := o.Status().Stage()
	return Tracking{
		Order:             o.Clone(),
		Pool:              pool,
		Stage:             stage,
		OnTrack:           onTrack,
		EstimatedDelivery: o.EstimatedDelivery(),
	}, nil
}

// PendingOrders lists the admission stack, newest first.
func (l *OrderLifecycle) PendingOrders() ([]*order.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.snapshots(l.admission.IDs())
}

// DeliveryQueue lists the dispatch queue front to back.
func (l *OrderLifecycle) DeliveryQueue() ([]*order.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.dispatch.Entries()
	ids := make([]order.ID, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return l.snapshots(ids)
}

// History lists every order in ascending id order.
func (l *OrderLifecycle) History() ([]*order.Order, error) {
	return l.historyWhere(func(*order.Order) bool { return true })
}

// UserHistory lists the orders placed by username in ascending id order.
func (l *OrderLifecycle) UserHistory(username string) ([]*order.Order, error) {
	return l.historyWhere(func(o *order.Order) bool { return o.Username() == username })
}

func (l *OrderLifecycle) historyWhere(keep func(*order.Order) bool) ([]*order.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var (
		out     []*order.Order
		walkErr error
	)
	l.history.Ascend(func(id order.ID) bool {
		o, err := l.orders.Get(id)
		if err != nil {
			walkErr = err
			return false
		}
		if keep(o) {
			out = append(out, o.Clone())
		}
		return true
	})
	return out, walkErr
}

func (l *OrderLifecycle) snapshots(ids []order.ID) ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(ids))
	var errList []error
	for _, id := range ids {
		o, err := l.orders.Get(id)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		out = append(out, o.Clone())
	}
	return out, errors.Join(errList...)
}

// DataSnapshot holds the order-independent collections as of one instant.
type DataSnapshot struct {
	Accounts   []*account.Account
	MenuItems  []*catalog.Item
	PromoCodes []promo.Code
}

// Snapshot collects accounts, menu items and promo codes under one lock, so a
// checkout is either wholly reflected (points and stock) or not at all.
func (l *OrderLifecycle) Snapshot() DataSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	var s DataSnapshot
	l.accounts.InOrder(func(a *account.Account) bool {
		s.Accounts = append(s.Accounts, a.Clone())
		return true
	})
	l.menu.ForEach(func(item *catalog.Item) bool {
		s.MenuItems = append(s.MenuItems, item.Clone())
		return true
	})
	l.promos.ForEach(func(c promo.Code) bool {
		s.PromoCodes = append(s.PromoCodes, c)
		return true
	})
	return s
}

// IsAdmin reports whether username is the operator account.
func (l *OrderLifecycle) IsAdmin(username string) bool {
	return username == l.admin
}
