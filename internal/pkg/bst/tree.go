// Package bst implements an unbalanced binary search tree with unique keys.
//
// Like package avl it keeps nodes in a slice arena addressed by position. No
// rebalancing is performed, so depth follows insertion order; it suits small,
// append-only key sets such as a registry of user accounts.
package bst

import (
	"cmp"
	"errors"
)

// ErrDuplicateKey is returned by Insert when the key is already stored.
var ErrDuplicateKey = errors.New("bst: duplicate key")

const none = 0

type node[K cmp.Ordered, V any] struct {
	key   K
	value V
	left  int
	right int
}

// Tree is a binary search tree keyed by K. The zero value is an empty tree.
type Tree[K cmp.Ordered, V any] struct {
	nodes []node[K, V]
	root  int
}

// Len returns the number of stored keys.
func (t *Tree[K, V]) Len() int {
	return len(t.nodes)
}

// Insert adds key with value. A present key is left untouched and ErrDuplicateKey is returned.
func (t *Tree[K, V]) Insert(key K, value V) error {
	link := &t.root
	for *link != none {
		n := &t.nodes[*link-1]
		switch {
		case key < n.key:
			link = &n.left
		case key > n.key:
			link = &n.right
		default:
			return ErrDuplicateKey
		}
	}

	// link may point into the arena, so it is written before append can move the backing array
	*link = len(t.nodes) + 1
	t.nodes = append(t.nodes, node[K, V]{key: key, value: value})
	return nil
}

// Search returns the value stored under key.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	ref := t.root
	for ref != none {
		n := &t.nodes[ref-1]
		switch {
		case key < n.key:
			ref = n.left
		case key > n.key:
			ref = n.right
		default:
			return n.value, true
		}
	}

	var zero V
	return zero, false
}

// InOrder calls fn for every key in ascending order until fn returns false.
func (t *Tree[K, V]) InOrder(fn func(key K, value V) bool) {
	var stack []int
	ref := t.root
	for ref != none || len(stack) > 0 {
		for ref != none {
			stack = append(stack, ref)
			ref = t.nodes[ref-1].left
		}
		ref = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[ref-1]
		if !fn(n.key, n.value) {
			return
		}
		ref = n.right
	}
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Depth() int {
	type frame struct{ ref, depth int }

	deepest := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.ref == none {
			continue
		}
		deepest = max(deepest, f.depth)
		n := t.nodes[f.ref-1]
		stack = append(stack, frame{n.left, f.depth + 1}, frame{n.right, f.depth + 1})
	}
	return deepest
}
