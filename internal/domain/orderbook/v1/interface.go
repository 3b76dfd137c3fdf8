package orderbookv1

import (
	snapshotv1 "github.com/luca-simonetti/exchange-core/internal/domain/snapshot/v1"
)

// OrderBook defines the matching core for a single symbol. Implementations
// are single-threaded: one lane owns the book and applies commands strictly
// one at a time, including the entire conditional-order cascade a command
// triggers.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderbookv1_mock
type OrderBook interface {
	// PlaceOrder matches the command against resting liquidity and returns
	// the trade events produced, including fills from stop-loss/take-profit
	// activations cascading off the command. A rejected command returns a
	// sentinel error, zero events and leaves the book untouched.
	PlaceOrder(cmd OrderCommand) ([]TradeEvent, error)
	// CancelOrder removes a resting order. Does not affect the last price.
	CancelOrder(orderID int64) error
	// GetOrderByID returns a copy of a resting order, including activated
	// conditional orders addressable by their negated original id.
	GetOrderByID(orderID int64) (Order, bool)
	// GetLastPrice returns the most recent trade price, 0 before any trade.
	GetLastPrice() int64
	// GetL2MarketDataSnapshot aggregates up to depth levels per side,
	// best price first. depth <= 0 means no limit.
	GetL2MarketDataSnapshot(depth int) L2MarketData

	AskOrders() []Order
	BidOrders() []Order
	AskTotalVolume() int64
	BidTotalVolume() int64

	// StateHash folds the state hashes of all resting orders plus the last
	// price into one digest, for cross-instance replay verification.
	StateHash() uint64
	// ValidateInternalState cross-checks the index against the price ladder.
	// A non-nil result wraps ErrUnknownSymbolState and means the instance
	// must stop processing commands.
	ValidateInternalState() error

	CreateSnapshot() *snapshotv1.Snapshot
	RestoreOrderbook(snapshot *snapshotv1.Snapshot) error
	Clear()
}
