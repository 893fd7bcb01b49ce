package services

// Pool names the structure that answered an order lookup.
type Pool int

const (
	// NoPool is reported when no structure holds the order.
	NoPool Pool = iota

	// AdmissionPool is the LIFO stack of orders awaiting confirmation.
	AdmissionPool

	// DispatchPool is the priority queue of orders awaiting delivery.
	DispatchPool

	// HistoryPool is the id-ordered index of every order ever created.
	HistoryPool
)

func (p Pool) String() string {
	switch p {
	case AdmissionPool:
		return "admission"
	case DispatchPool:
		return "dispatch"
	case HistoryPool:
		return "history"
	default:
		return "none"
	}
}
