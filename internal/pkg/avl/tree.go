// Package avl implements a height-balanced binary search tree.
//
// Nodes live in a slice arena and refer to their children by position, so the
// tree never hands out pointers into its own storage. Keys are unique: inserting
// a key that is already present leaves the tree untouched and reports
// ErrDuplicateKey. The zero value is an empty tree ready for use.
package avl

import (
	"cmp"
	"errors"
	"iter"
)

// ErrDuplicateKey is returned by Insert when the key is already stored.
var ErrDuplicateKey = errors.New("avl: duplicate key")

// none is the reference held by an absent child. Arena position i is referenced as i+1.
const none = 0

type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	height int
	left   int
	right  int
}

// Tree is an AVL tree keyed by K. It is not safe for concurrent use.
type Tree[K cmp.Ordered, V any] struct {
	nodes []node[K, V]
	root  int
}

// New returns an empty tree with room for capacity nodes.
func New[K cmp.Ordered, V any](capacity int) *Tree[K, V] {
	return &Tree[K, V]{nodes: make([]node[K, V], 0, capacity)}
}

// Len returns the number of stored keys.
func (t *Tree[K, V]) Len() int {
	return len(t.nodes)
}

// Height returns the number of nodes on the longest root-to-leaf path; an empty tree has height 0.
func (t *Tree[K, V]) Height() int {
	return t.height(t.root)
}

// Insert stores value under key and rebalances on the way back up.
// An existing key is never overwritten.
func (t *Tree[K, V]) Insert(key K, value V) error {
	root, inserted := t.insert(t.root, key, value)
	if !inserted {
		return ErrDuplicateKey
	}
	t.root = root
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

// Ascend calls fn for every key in ascending order until fn returns false.
func (t *Tree[K, V]) Ascend(fn func(key K, value V) bool) {
	stack := make([]int, 0, t.Height())
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

// All returns an iterator over key/value pairs in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Ascend(yield)
	}
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Len())
	t.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (t *Tree[K, V]) insert(ref int, key K, value V) (int, bool) {
	if ref == none {
		t.nodes = append(t.nodes, node[K, V]{key: key, value: value, height: 1})
		return len(t.nodes), true
	}

	// the arena may grow during recursion, so nodes are re-read by position after every call
	switch nodeKey := t.nodes[ref-1].key; {
	case key < nodeKey:
		child, inserted := t.insert(t.nodes[ref-1].left, key, value)
		if !inserted {
			return ref, false
		}
		t.nodes[ref-1].left = child
	case key > nodeKey:
		child, inserted := t.insert(t.nodes[ref-1].right, key, value)
		if !inserted {
			return ref, false
		}
		t.nodes[ref-1].right = child
	default:
		return ref, false
	}

	t.updateHeight(ref)
	balance := t.balance(ref)
	left, right := t.nodes[ref-1].left, t.nodes[ref-1].right

	switch {
	case balance > 1 && key < t.nodes[left-1].key:
		return t.rotateRight(ref), true
	case balance < -1 && key > t.nodes[right-1].key:
		return t.rotateLeft(ref), true
	case balance > 1 && key > t.nodes[left-1].key:
		t.nodes[ref-1].left = t.rotateLeft(left)
		return t.rotateRight(ref), true
	case balance < -1 && key < t.nodes[right-1].key:
		t.nodes[ref-1].right = t.rotateRight(right)
		return t.rotateLeft(ref), true
	}

	return ref, true
}

// rotateRight lifts the left child of y and returns it as the new subtree root.
//
//	    y          x
//	   / \        / \
//	  x   C  ->  A   y
//	 / \            / \
//	A   B          B   C
func (t *Tree[K, V]) rotateRight(y int) int {
	x := t.nodes[y-1].left
	b := t.nodes[x-1].right

	t.nodes[x-1].right = y
	t.nodes[y-1].left = b

	t.updateHeight(y)
	t.updateHeight(x)
	return x
}

// rotateLeft lifts the right child of x and returns it as the new subtree root.
//
//	  x              y
//	 / \            / \
//	A   y    ->    x   C
//	   / \        / \
//	  B   C      A   B
func (t *Tree[K, V]) rotateLeft(x int) int {
	y := t.nodes[x-1].right
	b := t.nodes[y-1].left

	t.nodes[y-1].left = x
	t.nodes[x-1].right = b

	t.updateHeight(x)
	t.updateHeight(y)
	return y
}

func (t *Tree[K, V]) height(ref int) int {
	if ref == none {
		return 0
	}
	return t.nodes[ref-1].height
}

func (t *Tree[K, V]) balance(ref int) int {
	if ref == none {
		return 0
	}
	n := t.nodes[ref-1]
	return t.height(n.left) - t.height(n.right)
}

func (t *Tree[K, V]) updateHeight(ref int) {
	n := &t.nodes[ref-1]
	n.height = 1 + max(t.height(n.left), t.height(n.right))
}
