package services_test

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/promo"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startedAt = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// stepClock advances by one minute on every reading.
func stepClock() func() time.Time {
	var mu sync.Mutex
	current := startedAt
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := current
		current = current.Add(time.Minute)
		return now
	}
}

func newLifecycle(t *testing.T) *services.OrderLifecycle {
	t.Helper()

	l := services.NewOrderLifecycle(services.WithClock(stepClock()), services.WithAdmin("admin"))

	_, err := l.SignUp("admin", "admin123", "Admin Office", "1234567890")
	require.NoError(t, err)
	_, err = l.SignUp("user", "user123", "123 Main St", "9876543210")
	require.NoError(t, err)
	_, err = l.SignUp("other", "other123", "9 Side Rd", "5550001111")
	require.NoError(t, err)

	_, err = l.AddMenuItem("Margherita Pizza", "Pizza", kernel.MustMoney("12.99"), 50)
	require.NoError(t, err)
	_, err = l.AddMenuItem("Classic Burger", "Burgers", kernel.MustMoney("8.99"), 60)
	require.NoError(t, err)
	_, err = l.AddMenuItem("Coca Cola", "Drinks", kernel.MustMoney("1.99"), 3)
	require.NoError(t, err)

	_, err = l.AddPromoCode("FIRSTORDER", decimal.NewFromInt(15))
	require.NoError(t, err)

	return l
}

func placeOrder(t *testing.T, l *services.OrderLifecycle, username string, priority order.Priority) *order.Order {
	t.Helper()
	_, err := l.AddToCart(username, 2, 1)
	require.NoError(t, err)
	result, err := l.Checkout(services.CheckoutRequest{Username: username, Priority: priority})
	require.NoError(t, err)
	return result.Order
}

func TestOrderLifecycle_Checkout(t *testing.T) {
	t.Run("should price two pizzas without promo", func(t *testing.T) {
		l := newLifecycle(t)
		_, err := l.AddToCart("user", 1, 2)
		require.NoError(t, err)

		result, err := l.Checkout(services.CheckoutRequest{Username: "user", Priority: order.Normal})

		require.NoError(t, err)
		require.NoError(t, result.PromoErr)
		o := result.Order
		assert.Equal(t, order.FirstID, o.ID())
		assert.Equal(t, "25.98", o.Subtotal().String())
		assert.Equal(t, "0.00", o.Discount().String())
		assert.Equal(t, "2.99", o.DeliveryFee().String())
		assert.Equal(t, "2.32", o.Tax().String())
		assert.Equal(t, "31.29", o.Total().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "123 Main St", o.Address())
		assert.Equal(t, "9876543210", o.Phone())
		assert.Equal(t, 312, result.PointsEarned)
	})

	t.Run("should admit order into every pool and apply side effects", func(t *testing.T) {
		l := newLifecycle(t)
		_, err := l.AddToCart("user", 1, 2)
		require.NoError(t, err)

		result, err := l.Checkout(services.CheckoutRequest{Username: "user", Priority: order.High})
		require.NoError(t, err)

		pending, err := l.PendingOrders()
		require.NoError(t, err)
		queue, err := l.DeliveryQueue()
		require.NoError(t, err)
		history, err := l.History()
		require.NoError(t, err)
		for _, pool := range [][]*order.Order{pending, queue, history} {
			require.Len(t, pool, 1)
			assert.Equal(t, result.Order.ID(), pool[0].ID())
		}

		item, err := l.MenuItem(1)
		require.NoError(t, err)
		assert.Equal(t, 48, item.Stock())

		acc, err := l.Account("user")
		require.NoError(t, err)
		assert.Equal(t, 312, acc.LoyaltyPoints())

		assert.Empty(t, l.Cart("user").Lines)
	})

	t.Run("should apply promo percentage to subtotal", func(t *testing.T) {
		l := newLifecycle(t)
		_, err := l.AddToCart("user", 1, 2)
		require.NoError(t, err)

		result, err := l.Checkout(services.CheckoutRequest{Username: "user", PromoCode: "FIRSTORDER", Priority: order.Low})

		require.NoError(t, err)
		o := result.Order
		assert.Equal(t, "3.90", o.Discount().String())
		assert.True(t, o.Subtotal().Sub(o.Discount()).Add(o.DeliveryFee()).Add(o.Tax()).Equal(o.Total()))
		assert.Equal(t, "2.01", o.Tax().String())
		assert.Equal(t, "27.08", o.Total().String())
	})

	t.Run("should complete checkout and report unknown promo code", func(t *testing.T) {
		l := newLifecycle(t)
		_, err := l.AddToCart("user", 1, 2)
		require.NoError(t, err)

		result, err := l.Checkout(services.CheckoutRequest{Username: "user", PromoCode: "BOGUS", Priority: order.Normal})

		require.NoError(t, err)
		require.ErrorIs(t, result.PromoErr, promo.ErrInvalidPromoCode)
		assert.Equal(t, "31.29", result.Order.Total().String())
	})

	t.Run("should reject empty cart without consuming an id", func(t *testing.T) {
		l := newLifecycle(t)

		_, err := l.Checkout(services.CheckoutRequest{Username: "user", Priority: order.Normal})
		require.ErrorIs(t, err, services.ErrCartIsEmpty)

		o := placeOrder(t, l, "user", order.Normal)
		assert.Equal(t, order.FirstID, o.ID())
	})

	t.Run("should reject invalid priority and leave state untouched", func(t *testing.T) {
		l := newLifecycle(t)
		_, err := l.AddToCart("user", 1, 1)
		require.NoError(t, err)

		_, err = l.Checkout(services.CheckoutRequest{Username: "user", Priority: order.UnknownPriority})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		history, err := l.History()
		require.NoError(t, err)
		assert.Empty(t, history)
		assert.Len(t, l.Cart("user").Lines, 1)
		item, err := l.MenuItem(1)
		require.NoError(t, err)
		assert.Equal(t, 50, item.Stock())
	})

	t.Run("should prefer explicit address and phone", func(t *testing.T) {
		l := newLifecycle(t)
		_, err := l.AddToCart("user", 1, 1)
		require.NoError(t, err)

		result, err := l.Checkout(services.CheckoutRequest{
			Username: "user",
			Address:  "1 Office Park",
			Phone:    "111",
			Priority: order.Express,
		})

		require.NoError(t, err)
		assert.Equal(t, "1 Office Park", result.Order.Address())
		assert.Equal(t, "111", result.Order.Phone())
	})

	t.Run("should hand out sequential ids", func(t *testing.T) {
		l := newLifecycle(t)

		first := placeOrder(t, l, "user", order.Low)
		second := placeOrder(t, l, "other", order.Low)

		assert.Equal(t, order.ID(1000), first.ID())
		assert.Equal(t, order.ID(1001), second.ID())
	})
}

func TestOrderLifecycle_AddToCart(t *testing.T) {
	t.Run("should reject quantity above stock including cart contents", func(t *testing.T) {
		l := newLifecycle(t)
		_, err := l.AddToCart("user", 3, 2)
		require.NoError(t, err)

		_, err = l.AddToCart("user", 3, 2)

		require.ErrorIs(t, err, catalog.ErrInsufficientStock)
		assert.Equal(t, 2, l.Cart("user").Lines[0].Quantity)
	})

	t.Run("should reject a quantity that would overflow the cart line", func(t *testing.T) {
		l := newLifecycle(t)
		_, err := l.AddToCart("user", 1, 1)
		require.NoError(t, err)

		_, err = l.AddToCart("user", 1, math.MaxInt)

		require.ErrorIs(t, err, catalog.ErrInsufficientStock)
		view := l.Cart("user")
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 1, view.Lines[0].Quantity)
		assert.Equal(t, "12.99", view.Subtotal.String())

		result, err := l.Checkout(services.CheckoutRequest{Username: "user", Priority: order.Normal})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Order.Items()[0].Quantity())
	})

	t.Run("should reject unknown item and unknown account", func(t *testing.T) {
		l := newLifecycle(t)

		_, err := l.AddToCart("user", 99, 1)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = l.AddToCart("ghost", 1, 1)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should snapshot price and report subtotal", func(t *testing.T) {
		l := newLifecycle(t)

		_, err := l.AddToCart("user", 1, 2)
		require.NoError(t, err)
		view, err := l.AddToCart("user", 2, 1)
		require.NoError(t, err)

		assert.Equal(t, "34.97", view.Subtotal.String())
		assert.Equal(t, "Margherita Pizza", view.Lines[0].Name)
	})

	t.Run("should remove lines", func(t *testing.T) {
		l := newLifecycle(t)
		_, err := l.AddToCart("user", 1, 2)
		require.NoError(t, err)

		view, err := l.RemoveFromCart("user", 1)
		require.NoError(t, err)
		assert.Empty(t, view.Lines)

		_, err = l.RemoveFromCart("user", 1)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should keep carts separate per account", func(t *testing.T) {
		l := newLifecycle(t)
		_, err := l.AddToCart("user", 1, 2)
		require.NoError(t, err)

		assert.Empty(t, l.Cart("other").Lines)
	})
}

func TestOrderLifecycle_FindByID(t *testing.T) {
	t.Run("should probe admission then dispatch then history", func(t *testing.T) {
		l := newLifecycle(t)
		o := placeOrder(t, l, "user", order.Normal)

		_, pool, err := l.FindByID(o.ID())
		require.NoError(t, err)
		assert.Equal(t, services.AdmissionPool, pool)

		_, err = l.ProcessNextOrder()
		require.NoError(t, err)
		_, pool, err = l.FindByID(o.ID())
		require.NoError(t, err)
		assert.Equal(t, services.DispatchPool, pool)

		_, err = l.DispatchNextOrder()
		require.NoError(t, err)
		found, pool, err := l.FindByID(o.ID())
		require.NoError(t, err)
		assert.Equal(t, services.HistoryPool, pool)
		assert.Equal(t, order.OutForDelivery, found.Status())
	})

	t.Run("should report unknown id", func(t *testing.T) {
		l := newLifecycle(t)

		_, pool, err := l.FindByID(4242)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, services.NoPool, pool)
	})

	t.Run("should hand out detached snapshots", func(t *testing.T) {
		l := newLifecycle(t)
		o := placeOrder(t, l, "user", order.Normal)

		found, _, err := l.FindByID(o.ID())
		require.NoError(t, err)
		require.NoError(t, found.ChangeStatus(order.Cancelled, startedAt.Add(time.Hour)))

		again, _, err := l.FindByID(o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Pending, again.Status())
	})
}

func TestOrderLifecycle_UpdateStatus(t *testing.T) {
	t.Run("should be visible through every access path", func(t *testing.T) {
		l := newLifecycle(t)
		o := placeOrder(t, l, "user", order.Normal)

		updated, err := l.UpdateStatus(o.ID(), order.Preparing)
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, updated.Status())
		assert.True(t, updated.StatusTime().After(updated.OrderTime()))

		pending, err := l.PendingOrders()
		require.NoError(t, err)
		queue, err := l.DeliveryQueue()
		require.NoError(t, err)
		history, err := l.History()
		require.NoError(t, err)
		for _, pool := range [][]*order.Order{pending, queue, history} {
			assert.Equal(t, order.Preparing, pool[0].Status())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		l := newLifecycle(t)
		o := placeOrder(t, l, "user", order.Normal)

		_, err := l.UpdateStatus(o.ID(), order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report unknown order", func(t *testing.T) {
		l := newLifecycle(t)

		_, err := l.UpdateStatus(999, order.Delivered)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderLifecycle_ProcessNextOrder(t *testing.T) {
	t.Run("should confirm newest order first", func(t *testing.T) {
		l := newLifecycle(t)
		placeOrder(t, l, "user", order.Normal)
		newest := placeOrder(t, l, "other", order.Normal)

		confirmed, err := l.ProcessNextOrder()

		require.NoError(t, err)
		assert.Equal(t, newest.ID(), confirmed.ID())
		assert.Equal(t, order.Confirmed, confirmed.Status())
		pending, err := l.PendingOrders()
		require.NoError(t, err)
		assert.Len(t, pending, 1)
	})

	t.Run("should not revive a cancelled order", func(t *testing.T) {
		l := newLifecycle(t)
		o := placeOrder(t, l, "user", order.Normal)
		_, err := l.UpdateStatus(o.ID(), order.Cancelled)
		require.NoError(t, err)

		processed, err := l.ProcessNextOrder()
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, processed.Status())

		dispatched, err := l.DispatchNextOrder()
		require.NoError(t, err)
		assert.Equal(t, o.ID(), dispatched.ID())
		assert.Equal(t, order.Cancelled, dispatched.Status())

		found, _, err := l.FindByID(o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, found.Status())
	})

	t.Run("should report empty stack", func(t *testing.T) {
		l := newLifecycle(t)

		o, err := l.ProcessNextOrder()

		require.ErrorIs(t, err, order.ErrAdmissionStackIsEmpty)
		assert.Nil(t, o)
	})
}

func TestOrderLifecycle_DispatchNextOrder(t *testing.T) {
	t.Run("should dispatch by priority then arrival", func(t *testing.T) {
		l := newLifecycle(t)
		normalFirst := placeOrder(t, l, "user", order.Normal)
		express := placeOrder(t, l, "other", order.Express)
		normalSecond := placeOrder(t, l, "user", order.Normal)
		low := placeOrder(t, l, "other", order.Low)

		queue, err := l.DeliveryQueue()
		require.NoError(t, err)
		var queued []order.ID
		for _, o := range queue {
			queued = append(queued, o.ID())
		}
		assert.Equal(t, []order.ID{express.ID(), normalFirst.ID(), normalSecond.ID(), low.ID()}, queued)

		var dispatched []order.ID
		for range 4 {
			o, err := l.DispatchNextOrder()
			require.NoError(t, err)
			assert.Equal(t, order.OutForDelivery, o.Status())
			dispatched = append(dispatched, o.ID())
		}
		assert.Equal(t, queued, dispatched)

		_, err = l.DispatchNextOrder()
		require.ErrorIs(t, err, order.ErrDispatchQueueIsEmpty)
		require.ErrorIs(t, err, errs.ErrCollectionIsEmpty)
	})
}

func TestOrderLifecycle_TrackOrder(t *testing.T) {
	t.Run("should let owner track progress and eta", func(t *testing.T) {
		l := newLifecycle(t)
		o := placeOrder(t, l, "user", order.High)
		_, err := l.UpdateStatus(o.ID(), order.Preparing)
		require.NoError(t, err)

		tracking, err := l.TrackOrder(o.ID(), "user")

		require.NoError(t, err)
		assert.Equal(t, 2, tracking.Stage)
		assert.True(t, tracking.OnTrack)
		assert.Equal(t, services.AdmissionPool, tracking.Pool)
		assert.Equal(t, o.OrderTime().Add(time.Hour), tracking.EstimatedDelivery)
	})

	t.Run("should let admin track any order", func(t *testing.T) {
		l := newLifecycle(t)
		o := placeOrder(t, l, "user", order.Express)

		tracking, err := l.TrackOrder(o.ID(), "admin")

		require.NoError(t, err)
		assert.Equal(t, 0, tracking.Stage)
		assert.Equal(t, o.OrderTime().Add(30*time.Minute), tracking.EstimatedDelivery)
	})

	t.Run("should deny other accounts", func(t *testing.T) {
		l := newLifecycle(t)
		o := placeOrder(t, l, "user", order.Normal)

		_, err := l.TrackOrder(o.ID(), "other")

		require.ErrorIs(t, err, services.ErrUnauthorized)
	})

	t.Run("should report cancelled orders off track", func(t *testing.T) {
		l := newLifecycle(t)
		o := placeOrder(t, l, "user", order.Normal)
		_, err := l.UpdateStatus(o.ID(), order.Cancelled)
		require.NoError(t, err)

		tracking, err := l.TrackOrder(o.ID(), "user")

		require.NoError(t, err)
		assert.False(t, tracking.OnTrack)
	})
}

func TestOrderLifecycle_History(t *testing.T) {
	l := newLifecycle(t)
	a := placeOrder(t, l, "user", order.Normal)
	b := placeOrder(t, l, "other", order.Low)
	c := placeOrder(t, l, "user", order.Express)

	all, err := l.History()
	require.NoError(t, err)
	mine, err := l.UserHistory("user")
	require.NoError(t, err)
	none, err := l.UserHistory("admin")
	require.NoError(t, err)

	ids := func(orders []*order.Order) []order.ID {
		var out []order.ID
		for _, o := range orders {
			out = append(out, o.ID())
		}
		return out
	}
	assert.Equal(t, []order.ID{a.ID(), b.ID(), c.ID()}, ids(all))
	assert.Equal(t, []order.ID{a.ID(), c.ID()}, ids(mine))
	assert.Empty(t, none)
}

func TestOrderLifecycle_Accounts(t *testing.T) {
	t.Run("should reject duplicate signup", func(t *testing.T) {
		l := newLifecycle(t)

		_, err := l.SignUp("user", "x", "y", "z")

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Equal(t, 3, l.AccountCount())
	})

	t.Run("should authenticate with exact password", func(t *testing.T) {
		l := newLifecycle(t)

		a, err := l.Authenticate("user", "user123")
		require.NoError(t, err)
		assert.Equal(t, "user", a.Username())

		_, err = l.Authenticate("user", "wrong")
		require.ErrorIs(t, err, services.ErrUnauthorized)

		_, err = l.Authenticate("ghost", "user123")
		require.ErrorIs(t, err, services.ErrUnauthorized)
	})

	t.Run("should list accounts by username", func(t *testing.T) {
		l := newLifecycle(t)

		var names []string
		for _, a := range l.Accounts() {
			names = append(names, a.Username())
		}

		assert.Equal(t, []string{"admin", "other", "user"}, names)
		assert.True(t, l.IsAdmin("admin"))
		assert.False(t, l.IsAdmin("user"))
	})
}

func TestOrderLifecycle_Snapshot(t *testing.T) {
	l := newLifecycle(t)
	placeOrder(t, l, "user", order.Normal)

	snapshot := l.Snapshot()

	require.Len(t, snapshot.Accounts, 3)
	assert.Equal(t, "user", snapshot.Accounts[2].Username())
	assert.Equal(t, 129, snapshot.Accounts[2].LoyaltyPoints())
	require.Len(t, snapshot.MenuItems, 3)
	assert.Equal(t, 59, snapshot.MenuItems[1].Stock())
	require.Len(t, snapshot.PromoCodes, 1)
	assert.Equal(t, "FIRSTORDER", snapshot.PromoCodes[0].Code())
}

func TestOrderLifecycle_Restore(t *testing.T) {
	l := services.NewOrderLifecycle()
	item, err := catalog.NewItem(5, "Onion Rings", "Sides", kernel.MustMoney("4.99"), 80)
	require.NoError(t, err)

	require.NoError(t, l.RestoreMenuItem(item))
	require.ErrorIs(t, l.RestoreMenuItem(item), errs.ErrObjectAlreadyExists)

	added, err := l.AddMenuItem("Garlic Bread", "Sides", kernel.MustMoney("2.99"), 90)
	require.NoError(t, err)
	assert.Equal(t, 6, added.ID())
	assert.Equal(t, 2, l.MenuItemCount())
	assert.Len(t, l.MenuItems(), 2)
}

func TestOrderLifecycle_ConcurrentCheckouts(t *testing.T) {
	l := services.NewOrderLifecycle()
	_, err := l.AddMenuItem("Coca Cola", "Drinks", kernel.MustMoney("1.99"), 1000)
	require.NoError(t, err)

	const customers = 20
	for i := range customers {
		_, err := l.SignUp(fmt.Sprintf("c%02d", i), "pw", "addr", "phone")
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	results := make(chan order.ID, customers)
	for i := range customers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("c%02d", i)
			if _, err := l.AddToCart(name, 1, 1); err != nil {
				return
			}
			result, err := l.Checkout(services.CheckoutRequest{Username: name, Priority: order.Normal})
			if err == nil {
				results <- result.Order.ID()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[order.ID]bool)
	for id := range results {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, customers)

	item, err := l.MenuItem(1)
	require.NoError(t, err)
	assert.Equal(t, 1000-customers, item.Stock())
}
