package order

import (
	"cmp"
	"container/heap"
	"fmt"
	"slices"

	"fooddelivery/internal/pkg/errs"
)

// ErrDispatchQueueIsEmpty is returned by Dequeue when no order awaits delivery.
var ErrDispatchQueueIsEmpty = fmt.Errorf("dispatch queue: %w", errs.ErrCollectionIsEmpty)

// QueueEntry is one waiting delivery as seen from the front of the queue.
type QueueEntry struct {
	ID       ID
	Priority Priority
}

type queueItem struct {
	id       ID
	priority Priority
	seq      uint64
}

// before orders items front to back: higher priority first, then earlier arrival.
func (a queueItem) before(b queueItem) bool {
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.seq < b.seq
}

type queueHeap []queueItem

func (h queueHeap) Len() int           { return len(h) }
func (h queueHeap) Less(i, j int) bool { return h[i].before(h[j]) }
func (h queueHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *queueHeap) Push(x any)        { *h = append(*h, x.(queueItem)) }
func (h *queueHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// DispatchQueue is the priority pool of orders awaiting delivery.
//
// Express orders leave before High, High before Normal, Normal before Low,
// regardless of arrival. Within one tier orders leave in arrival order. The
// queue is a binary heap keyed by (priority, arrival sequence), giving
// O(log n) Enqueue and Dequeue. The zero value is an empty queue.
type DispatchQueue struct {
	items queueHeap
	seq   uint64
}

// Enqueue adds id with the given priority.
func (q *DispatchQueue) Enqueue(id ID, priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	heap.Push(&q.items, queueItem{id: id, priority: priority, seq: q.seq})
	q.seq++
	return nil
}

// Dequeue removes and returns the front entry: highest priority, oldest among ties.
func (q *DispatchQueue) Dequeue() (QueueEntry, error) {
	if q.items.Len() == 0 {
		return QueueEntry{}, ErrDispatchQueueIsEmpty
	}

	item := heap.Pop(&q.items).(queueItem)
	return QueueEntry{ID: item.id, Priority: item.priority}, nil
}

// Len returns the number of waiting deliveries.
func (q *DispatchQueue) Len() int {
	return q.items.Len()
}

// Contains reports whether id is waiting in the queue.
func (q *DispatchQueue) Contains(id ID) bool {
	return slices.ContainsFunc(q.items, func(item queueItem) bool { return item.id == id })
}

// Entries lists waiting deliveries front to back.
func (q *DispatchQueue) Entries() []QueueEntry {
	sorted := slices.Clone(q.items)
	slices.SortFunc(sorted, func(a, b queueItem) int {
		if a.before(b) {
			return -1
		}
		if b.before(a) {
			return 1
		}
		return cmp.Compare(a.id, b.id)
	})

	out := make([]QueueEntry, len(sorted))
	for i, item := range sorted {
		out[i] = QueueEntry{ID: item.id, Priority: item.priority}
	}
	return out
}
