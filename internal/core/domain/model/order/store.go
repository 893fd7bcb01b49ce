package order

import (
	"fooddelivery/internal/pkg/errs"
)

// Store is the sole owner of Order records. AdmissionStack, DispatchQueue and
// HistoryIndex refer to orders by ID and resolve them here.
type Store struct {
	orders map[ID]*Order
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{orders: make(map[ID]*Order)}
}

// Add takes ownership of a finalized order. A second order with the same id is rejected.
func (s *Store) Add(o *Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.IsFinalized() {
		return ErrOrderIsNotFinalized
	}
	if _, ok := s.orders[o.ID()]; ok {
		return errs.NewObjectAlreadyExistsError("order id", o.ID())
	}

	s.orders[o.ID()] = o
	return nil
}

// Get returns the owned record. Callers that hand the order outside the owning
// context should Clone it first.
func (s *Store) Get(id ID) (*Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order id", id)
	}
	return o, nil
}

// Len returns the number of stored orders.
func (s *Store) Len() int {
	return len(s.orders)
}
