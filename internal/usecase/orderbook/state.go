package orderbook

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
)

// StateHash folds the state hashes of every resting order, in price-ladder
// iteration order (asks then bids), together with the last price. Two books
// that replayed the same command sequence hash identically regardless of
// when each command was timestamped.
func (b *Book) StateHash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	write := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	for _, side := range []*bookSide{b.asks, b.bids} {
		side.ascend(func(lvl *priceLevel) bool {
			for _, s := range lvl.queue {
				write(b.arena.at(s).StateHash())
			}
			return true
		})
	}
	write(uint64(b.lastPrice))
	return d.Sum64()
}

// ValidateInternalState cross-checks the price ladder against the order
// index. Any failure wraps ErrUnknownSymbolState: it indicates a bug, and
// the book instance must not process further commands.
func (b *Book) ValidateInternalState() error {
	queued := 0
	for _, side := range []*bookSide{b.asks, b.bids} {
		var prev int64
		first := true
		var fail error
		side.ascend(func(lvl *priceLevel) bool {
			if len(lvl.queue) == 0 {
				fail = fmt.Errorf("%w: empty %s level at price %d", orderbookv1.ErrUnknownSymbolState, side.action, lvl.price)
				return false
			}
			if !first {
				ordered := lvl.price > prev
				if side.action == orderbookv1.Bid {
					ordered = lvl.price < prev
				}
				if !ordered {
					fail = fmt.Errorf("%w: %s ladder not strictly ordered at price %d", orderbookv1.ErrUnknownSymbolState, side.action, lvl.price)
					return false
				}
			}
			prev = lvl.price
			first = false

			var volume int64
			for _, s := range lvl.queue {
				o := b.arena.at(s)
				if o.Action != side.action || o.Price != lvl.price {
					fail = fmt.Errorf("%w: order %d misplaced at %s level %d", orderbookv1.ErrUnknownSymbolState, o.OrderID, side.action, lvl.price)
					return false
				}
				if o.Remaining() <= 0 {
					fail = fmt.Errorf("%w: filled order %d still resting", orderbookv1.ErrUnknownSymbolState, o.OrderID)
					return false
				}
				indexed, ok := b.index[o.OrderID]
				if !ok || indexed != s {
					fail = fmt.Errorf("%w: order %d not reachable through the index", orderbookv1.ErrUnknownSymbolState, o.OrderID)
					return false
				}
				volume += o.Remaining()
				queued++
			}
			if volume != lvl.volume {
				fail = fmt.Errorf("%w: %s level %d volume drift, queued %d stored %d", orderbookv1.ErrUnknownSymbolState, side.action, lvl.price, volume, lvl.volume)
				return false
			}
			return true
		})
		if fail != nil {
			return fail
		}
	}

	if queued != len(b.index) {
		return fmt.Errorf("%w: index holds %d orders, ladders hold %d", orderbookv1.ErrUnknownSymbolState, len(b.index), queued)
	}
	if live := b.arena.live(); live != queued {
		return fmt.Errorf("%w: arena holds %d live records, ladders hold %d", orderbookv1.ErrUnknownSymbolState, live, queued)
	}
	for id := range b.conditional {
		if _, ok := b.index[id]; !ok {
			return fmt.Errorf("%w: armed conditional order %d is not resting", orderbookv1.ErrUnknownSymbolState, id)
		}
	}
	return nil
}
