package order

import (
	"errors"

	"fooddelivery/internal/pkg/avl"
	"fooddelivery/internal/pkg/errs"
)

// HistoryIndex records every order id ever created in an AVL tree, giving
// O(log n) membership checks and ascending enumeration.
// The zero value is an empty index.
type HistoryIndex struct {
	tree avl.Tree[ID, struct{}]
}

// Insert indexes id. An id already present is left as it is and reported as AlreadyExists.
func (h *HistoryIndex) Insert(id ID) error {
	if err := h.tree.Insert(id, struct{}{}); err != nil {
		if errors.Is(err, avl.ErrDuplicateKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order id", id, err)
		}
		return err
	}
	return nil
}

// Contains reports whether id was ever indexed.
func (h *HistoryIndex) Contains(id ID) bool {
	_, ok := h.tree.Search(id)
	return ok
}

// Len returns the number of indexed ids.
func (h *HistoryIndex) Len() int {
	return h.tree.Len()
}

// Height returns the height of the underlying tree.
func (h *HistoryIndex) Height() int {
	return h.tree.Height()
}

// Ascend calls fn for every id in ascending order until fn returns false.
func (h *HistoryIndex) Ascend(fn func(id ID) bool) {
	h.tree.Ascend(func(id ID, _ struct{}) bool {
		return fn(id)
	})
}

// IDs lists every indexed id in ascending order.
func (h *HistoryIndex) IDs() []ID {
	return h.tree.Keys()
}
