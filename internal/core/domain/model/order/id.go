package order

import "strconv"

// FirstID is the identifier given to the first order of a process.
const FirstID ID = 1000

// ID identifies an order. Ids are plain increasing integers, stable for the process lifetime.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IDSequence hands out monotonically increasing order ids starting at FirstID.
// The zero value is ready to use.
type IDSequence struct {
	next ID
}

// Next returns the next unused id.
func (s *IDSequence) Next() ID {
	if s.next < FirstID {
		s.next = FirstID
	}
	id := s.next
	s.next++
	return id
}

// Peek returns the id the next call to Next will hand out.
func (s *IDSequence) Peek() ID {
	return max(s.next, FirstID)
}
