package orderbook

import (
	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
)

// slot addresses one order record inside the book's arena.
type slot = int32

// arena is a slab of order records owned by the book. Records are recycled
// through a free list so steady-state matching does not allocate; nothing
// outside the book ever holds a pointer into the slab.
type arena struct {
	orders []orderbookv1.Order
	free   []slot
}

func (a *arena) alloc(o orderbookv1.Order) slot {
	if n := len(a.free); n > 0 {
		s := a.free[n-1]
		a.free = a.free[:n-1]
		a.orders[s] = o
		return s
	}
	a.orders = append(a.orders, o)
	return slot(len(a.orders) - 1)
}

func (a *arena) release(s slot) {
	a.orders[s] = orderbookv1.Order{}
	a.free = append(a.free, s)
}

func (a *arena) at(s slot) *orderbookv1.Order {
	return &a.orders[s]
}

// live returns the number of records currently in use.
func (a *arena) live() int {
	return len(a.orders) - len(a.free)
}

func (a *arena) reset() {
	a.orders = a.orders[:0]
	a.free = a.free[:0]
}
