package orderbook

import (
	"github.com/google/btree"

	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
)

const ladderDegree = 32

// priceLevel is the FIFO queue of all resting orders sharing one exact price
// on one side. queue holds arena slots in strict arrival order; volume is the
// sum of remaining quantity across the queue.
type priceLevel struct {
	price  int64
	queue  []slot
	volume int64
}

// bookSide is one price-ordered side of the book. The ladder's comparison is
// chosen per side so that Min() is always the best price: lowest ask,
// highest bid.
type bookSide struct {
	action orderbookv1.OrderAction
	ladder *btree.BTreeG[*priceLevel]
}

func newBookSide(action orderbookv1.OrderAction) *bookSide {
	less := func(a, b *priceLevel) bool { return a.price < b.price }
	if action == orderbookv1.Bid {
		less = func(a, b *priceLevel) bool { return a.price > b.price }
	}
	return &bookSide{
		action: action,
		ladder: btree.NewG(ladderDegree, less),
	}
}

func (s *bookSide) level(price int64) (*priceLevel, bool) {
	return s.ladder.Get(&priceLevel{price: price})
}

// best returns the level at the most aggressive price, nil when empty.
func (s *bookSide) best() *priceLevel {
	lvl, ok := s.ladder.Min()
	if !ok {
		return nil
	}
	return lvl
}

// enqueue appends an order slot at the tail of its price level, creating the
// level if needed. Arrival order within the level is preserved.
func (s *bookSide) enqueue(price int64, sl slot, remaining int64) {
	lvl, ok := s.level(price)
	if !ok {
		lvl = &priceLevel{price: price}
		s.ladder.ReplaceOrInsert(lvl)
	}
	lvl.queue = append(lvl.queue, sl)
	lvl.volume += remaining
}

// remove takes an order slot out of its price level, dropping the level once
// empty. Reports whether the slot was found.
func (s *bookSide) remove(price int64, sl slot, remaining int64) bool {
	lvl, ok := s.level(price)
	if !ok {
		return false
	}
	for i, q := range lvl.queue {
		if q != sl {
			continue
		}
		lvl.queue = append(lvl.queue[:i], lvl.queue[i+1:]...)
		lvl.volume -= remaining
		if len(lvl.queue) == 0 {
			s.ladder.Delete(lvl)
		}
		return true
	}
	return false
}

func (s *bookSide) dropLevel(lvl *priceLevel) {
	s.ladder.Delete(lvl)
}

// ascend walks the side's levels from best to worst price.
func (s *bookSide) ascend(fn func(lvl *priceLevel) bool) {
	s.ladder.Ascend(func(lvl *priceLevel) bool {
		return fn(lvl)
	})
}

func (s *bookSide) levelCount() int {
	return s.ladder.Len()
}

func (s *bookSide) clear() {
	s.ladder.Clear(false)
}

// crosses reports whether a taker with the given limit may execute at
// levelPrice. limit == 0 on an IOC order means "match at any price".
func (s *bookSide) crosses(taker *orderbookv1.Order, levelPrice int64) bool {
	if taker.Type == orderbookv1.IOC && taker.Price == 0 {
		return true
	}
	if taker.Action == orderbookv1.Bid {
		return levelPrice <= taker.Price
	}
	return levelPrice >= taker.Price
}
