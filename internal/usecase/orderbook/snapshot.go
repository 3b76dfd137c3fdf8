package orderbook

import (
	"fmt"

	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
	snapshotv1 "github.com/luca-simonetti/exchange-core/internal/domain/snapshot/v1"
)

// CreateSnapshot captures every resting order in its canonical binary
// encoding, in price-ladder iteration order, plus the last price and the
// state hash at capture time. The order offset is filled in by the engine.
func (b *Book) CreateSnapshot() *snapshotv1.Snapshot {
	var encoded [][]byte
	for _, side := range []*bookSide{b.asks, b.bids} {
		side.ascend(func(lvl *priceLevel) bool {
			for _, s := range lvl.queue {
				buf, _ := b.arena.at(s).MarshalBinary()
				encoded = append(encoded, buf)
			}
			return true
		})
	}
	return &snapshotv1.Snapshot{
		Symbol: b.spec.Symbol,
		OrderBookSnapshot: snapshotv1.OrderBookSnapshot{
			Orders:    encoded,
			LastPrice: b.lastPrice,
			StateHash: b.StateHash(),
		},
	}
}

// RestoreOrderbook rebuilds the book from a snapshot, replacing the current
// state. Orders are re-inserted directly without matching; the decoded type
// byte is untrusted (wire quirk), and all restored orders rest, so the type
// is forced to GTC.
func (b *Book) RestoreOrderbook(snapshot *snapshotv1.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot cannot be nil")
	}

	b.Clear()

	for i, buf := range snapshot.OrderBookSnapshot.Orders {
		var o orderbookv1.Order
		if err := o.UnmarshalBinary(buf); err != nil {
			return fmt.Errorf("failed to restore order at position %d: %w", i, err)
		}
		o.Type = orderbookv1.GTC
		if _, exists := b.index[o.OrderID]; exists {
			return fmt.Errorf("failed to restore order at position %d: %w", i, orderbookv1.ErrDuplicateOrderID)
		}
		b.rest(o)
	}
	b.lastPrice = snapshot.OrderBookSnapshot.LastPrice

	if want := snapshot.OrderBookSnapshot.StateHash; want != 0 {
		if got := b.StateHash(); got != want {
			return fmt.Errorf("%w: restored state hash %x, snapshot carries %x", orderbookv1.ErrUnknownSymbolState, got, want)
		}
	}
	return nil
}
