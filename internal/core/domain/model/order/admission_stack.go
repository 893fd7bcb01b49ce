package order

import (
	"fmt"
	"slices"

	"fooddelivery/internal/pkg/errs"
)

// ErrAdmissionStackIsEmpty is returned by Pop when no order awaits confirmation.
var ErrAdmissionStackIsEmpty = fmt.Errorf("admission stack: %w", errs.ErrCollectionIsEmpty)

// AdmissionStack is the LIFO pool of newly placed orders awaiting operator
// confirmation. The most recently placed order is handed out first.
// The zero value is an empty stack.
type AdmissionStack struct {
	ids []ID
}

// Push places id on top of the stack.
func (s *AdmissionStack) Push(id ID) {
	s.ids = append(s.ids, id)
}

// Pop removes and returns the most recently pushed id.
func (s *AdmissionStack) Pop() (ID, error) {
	if len(s.ids) == 0 {
		return 0, ErrAdmissionStackIsEmpty
	}

	top := s.ids[len(s.ids)-1]
	s.ids = s.ids[:len(s.ids)-1]
	return top, nil
}

// Len returns the number of waiting orders.
func (s *AdmissionStack) Len() int {
	return len(s.ids)
}

// Contains reports whether id is waiting on the stack.
func (s *AdmissionStack) Contains(id ID) bool {
	return slices.Contains(s.ids, id)
}

// IDs lists waiting ids from top (next to pop) to bottom.
func (s *AdmissionStack) IDs() []ID {
	out := slices.Clone(s.ids)
	slices.Reverse(out)
	return out
}
