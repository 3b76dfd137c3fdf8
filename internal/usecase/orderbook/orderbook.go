package orderbook

import (
	"fmt"
	"sort"
	"time"

	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
	"github.com/luca-simonetti/exchange-core/pkg/logger"
)

// Book is a price-time-priority limit order book for a single symbol.
//
// The book is single-threaded by design: one lane owns it and applies
// commands one at a time to completion, including the whole stop-loss /
// take-profit cascade a command sets off. That sequential model is what lets
// the FIFO and price-priority invariants and the deterministic state hash
// hold without any locking in here.
type Book struct {
	spec   orderbookv1.SymbolSpec
	logger *logger.Logger

	asks *bookSide
	bids *bookSide

	arena arena
	// index maps a live order id (including negated ids of activated
	// conditional orders) to its arena slot.
	index map[int64]slot
	// conditional tracks resting caller-assigned orders that carry an armed
	// stop-loss or take-profit range. Activated orders never re-arm.
	conditional map[int64]struct{}

	// lastPrice is the most recent execution price, 0 before any trade.
	lastPrice int64

	now func() int64
}

// NewBook creates an empty book for the given symbol specification.
func NewBook(spec orderbookv1.SymbolSpec, log *logger.Logger) *Book {
	return &Book{
		spec:        spec,
		logger:      log,
		asks:        newBookSide(orderbookv1.Ask),
		bids:        newBookSide(orderbookv1.Bid),
		index:       make(map[int64]slot),
		conditional: make(map[int64]struct{}),
		now:         func() int64 { return time.Now().UnixNano() },
	}
}

// PlaceOrder matches an order command against the opposite side, rests or
// discards the remainder, then re-evaluates conditional orders against the
// updated last price until no more of them trigger. A rejected command
// returns a sentinel error and leaves the book exactly as it was.
func (b *Book) PlaceOrder(cmd orderbookv1.OrderCommand) ([]orderbookv1.TradeEvent, error) {
	if err := b.validateCommand(cmd); err != nil {
		return nil, err
	}

	taker := orderbookv1.Order{
		OrderID:         cmd.OrderID,
		Price:           cmd.Price,
		Size:            cmd.Size,
		ReserveBidPrice: cmd.ReserveBidPrice,
		Action:          cmd.Action,
		Type:            cmd.Type,
		UID:             cmd.UID,
		Timestamp:       b.now(),
		StopLoss:        cmd.StopLoss,
		TakeProfit:      cmd.TakeProfit,
	}

	events := b.matchAndRest(&taker)
	events = append(events, b.reevaluateTriggers()...)
	return events, nil
}

func (b *Book) validateCommand(cmd orderbookv1.OrderCommand) error {
	if cmd.Size <= 0 {
		return fmt.Errorf("%w: got %d", orderbookv1.ErrInvalidSize, cmd.Size)
	}
	if cmd.Price < 0 || (cmd.Type == orderbookv1.GTC && cmd.Price == 0) {
		return fmt.Errorf("%w: got %d", orderbookv1.ErrInvalidPrice, cmd.Price)
	}
	if cmd.StopLoss != nil && !cmd.StopLoss.Valid() {
		return fmt.Errorf("%w: stop-loss [%d,%d]", orderbookv1.ErrInvalidRange, cmd.StopLoss.Low, cmd.StopLoss.High)
	}
	if cmd.TakeProfit != nil && !cmd.TakeProfit.Valid() {
		return fmt.Errorf("%w: take-profit [%d,%d]", orderbookv1.ErrInvalidRange, cmd.TakeProfit.Low, cmd.TakeProfit.High)
	}
	if _, exists := b.index[cmd.OrderID]; exists {
		return fmt.Errorf("%w: id %d", orderbookv1.ErrDuplicateOrderID, cmd.OrderID)
	}
	return nil
}

// matchAndRest runs the taker through the opposite side and applies the
// residual rule: GTC remainders rest at the tail of their price level, IOC
// remainders are discarded.
func (b *Book) matchAndRest(taker *orderbookv1.Order) []orderbookv1.TradeEvent {
	opposite := b.bids
	if taker.Action == orderbookv1.Bid {
		opposite = b.asks
	}

	events := b.matchAgainst(opposite, taker)

	if taker.Remaining() > 0 && taker.Type == orderbookv1.GTC {
		b.rest(*taker)
	}
	return events
}

// matchAgainst walks the side from best price outward, filling resting
// orders in strict arrival order within each level. Every fill trades at the
// resting order's price and moves the last price there.
func (b *Book) matchAgainst(side *bookSide, taker *orderbookv1.Order) []orderbookv1.TradeEvent {
	var events []orderbookv1.TradeEvent

	for taker.Remaining() > 0 {
		lvl := side.best()
		if lvl == nil || !side.crosses(taker, lvl.price) {
			break
		}

		for len(lvl.queue) > 0 && taker.Remaining() > 0 {
			s := lvl.queue[0]
			maker := b.arena.at(s)

			qty := taker.Remaining()
			if r := maker.Remaining(); r < qty {
				qty = r
			}

			maker.Filled += qty
			taker.Filled += qty
			lvl.volume -= qty
			b.lastPrice = lvl.price

			makerDone := maker.IsFilled()
			events = append(events, orderbookv1.TradeEvent{
				MakerOrderID: maker.OrderID,
				TakerOrderID: taker.OrderID,
				MakerUID:     maker.UID,
				TakerUID:     taker.UID,
				TakerAction:  taker.Action,
				Price:        lvl.price,
				Size:         qty,
				MakerFilled:  makerDone,
				Timestamp:    b.now(),
			})

			if makerDone {
				lvl.queue = lvl.queue[1:]
				delete(b.index, maker.OrderID)
				delete(b.conditional, maker.OrderID)
				b.arena.release(s)
			}
		}

		if len(lvl.queue) == 0 {
			side.dropLevel(lvl)
		}
	}

	return events
}

// rest inserts an order at the tail of its price level and arms its
// conditional ranges when it still has any.
func (b *Book) rest(o orderbookv1.Order) {
	s := b.arena.alloc(o)
	b.index[o.OrderID] = s
	b.sideFor(o.Action).enqueue(o.Price, s, o.Remaining())

	if !orderbookv1.IsTriggeredID(o.OrderID) && (o.StopLoss.Valid() || o.TakeProfit.Valid()) {
		b.conditional[o.OrderID] = struct{}{}
	}
}

// reevaluateTriggers withdraws and re-submits every resting conditional
// order whose range contains the current last price, running to a fixed
// point: an activation's own fills can move the last price and trigger
// further orders. The cascade has no cycle breaker other than the natural
// exhaustion of liquidity and conditional orders.
func (b *Book) reevaluateTriggers() []orderbookv1.TradeEvent {
	var events []orderbookv1.TradeEvent
	for {
		pending := b.collectTriggered()
		if len(pending) == 0 {
			return events
		}
		for _, id := range pending {
			events = append(events, b.activate(id)...)
		}
	}
}

// collectTriggered gathers armed orders whose stop-loss or take-profit
// contains the last price, in ascending id order so cascades replay
// deterministically.
func (b *Book) collectTriggered() []int64 {
	if b.lastPrice == 0 {
		return nil
	}
	var ids []int64
	for id := range b.conditional {
		s, ok := b.index[id]
		if !ok {
			continue
		}
		o := b.arena.at(s)
		if o.StopLoss.Contains(b.lastPrice) || o.TakeProfit.Contains(b.lastPrice) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// activate withdraws a triggered order and re-submits it as a marketable GTC
// order under its derived id, priced at the triggering boundary: the low
// bound for a stop-loss, the high bound for a take-profit. Stop-loss wins
// when both ranges contain the last price. The activated order is stamped at
// activation time, so it queues behind anything already resting at its new
// price.
func (b *Book) activate(id int64) []orderbookv1.TradeEvent {
	s, ok := b.index[id]
	if !ok {
		delete(b.conditional, id)
		return nil
	}

	derived := orderbookv1.TriggeredID(id)
	if _, exists := b.index[derived]; exists {
		// The derived slot is occupied; drop the trigger rather than clobber
		// a live order.
		delete(b.conditional, id)
		b.logger.Warn("conditional trigger dropped, derived id already live",
			logger.Field{Key: "symbol", Value: b.spec.Symbol},
			logger.Field{Key: "orderID", Value: id},
			logger.Field{Key: "derivedID", Value: derived},
		)
		return nil
	}

	orig := *b.arena.at(s)

	var price int64
	switch {
	case orig.StopLoss.Contains(b.lastPrice):
		price = orig.StopLoss.Low
	case orig.TakeProfit.Contains(b.lastPrice):
		price = orig.TakeProfit.High
	default:
		// An earlier activation in the same sweep moved the last price back
		// out of range; the order stays armed.
		return nil
	}

	// Withdraw the original record.
	b.sideFor(orig.Action).remove(orig.Price, s, orig.Remaining())
	delete(b.index, id)
	delete(b.conditional, id)
	b.arena.release(s)

	activated := orderbookv1.Order{
		OrderID:         derived,
		Price:           price,
		Size:            orig.Size,
		Filled:          orig.Filled,
		ReserveBidPrice: price,
		Action:          orig.Action,
		Type:            orderbookv1.GTC,
		UID:             orig.UID,
		Timestamp:       b.now(),
		StopLoss:        orig.StopLoss,
		TakeProfit:      orig.TakeProfit,
	}

	b.logger.Info("conditional order activated",
		logger.Field{Key: "symbol", Value: b.spec.Symbol},
		logger.Field{Key: "orderID", Value: id},
		logger.Field{Key: "derivedID", Value: derived},
		logger.Field{Key: "price", Value: price},
		logger.Field{Key: "lastPrice", Value: b.lastPrice},
	)

	return b.matchAndRest(&activated)
}

// CancelOrder removes a resting order from its level and index. The last
// price is unaffected.
func (b *Book) CancelOrder(orderID int64) error {
	s, ok := b.index[orderID]
	if !ok {
		return fmt.Errorf("%w: id %d", orderbookv1.ErrOrderNotFound, orderID)
	}
	o := b.arena.at(s)
	b.sideFor(o.Action).remove(o.Price, s, o.Remaining())
	delete(b.index, orderID)
	delete(b.conditional, orderID)
	b.arena.release(s)
	return nil
}

// GetOrderByID returns a copy of a resting order. Activated conditional
// orders are reachable through their negated original id.
func (b *Book) GetOrderByID(orderID int64) (orderbookv1.Order, bool) {
	s, ok := b.index[orderID]
	if !ok {
		return orderbookv1.Order{}, false
	}
	return *b.arena.at(s), true
}

// GetLastPrice returns the most recent trade price, 0 before any trade.
func (b *Book) GetLastPrice() int64 {
	return b.lastPrice
}

// GetL2MarketDataSnapshot aggregates up to depth levels per side from best
// to worst price. The projection never mutates book state.
func (b *Book) GetL2MarketDataSnapshot(depth int) orderbookv1.L2MarketData {
	if b.spec.MaxDepth > 0 && (depth <= 0 || depth > b.spec.MaxDepth) {
		depth = b.spec.MaxDepth
	}
	return orderbookv1.L2MarketData{
		Asks:      b.collectLevels(b.asks, depth),
		Bids:      b.collectLevels(b.bids, depth),
		LastPrice: b.lastPrice,
	}
}

func (b *Book) collectLevels(side *bookSide, depth int) []orderbookv1.L2Level {
	levels := make([]orderbookv1.L2Level, 0, side.levelCount())
	side.ascend(func(lvl *priceLevel) bool {
		levels = append(levels, orderbookv1.L2Level{
			Price:  lvl.price,
			Volume: lvl.volume,
			Orders: int64(len(lvl.queue)),
		})
		return depth <= 0 || len(levels) < depth
	})
	return levels
}

// AskOrders returns copies of all resting ask orders, best price first and
// in arrival order within each level.
func (b *Book) AskOrders() []orderbookv1.Order {
	return b.collectOrders(b.asks)
}

// BidOrders returns copies of all resting bid orders, best price first and
// in arrival order within each level.
func (b *Book) BidOrders() []orderbookv1.Order {
	return b.collectOrders(b.bids)
}

func (b *Book) collectOrders(side *bookSide) []orderbookv1.Order {
	var orders []orderbookv1.Order
	side.ascend(func(lvl *priceLevel) bool {
		for _, s := range lvl.queue {
			orders = append(orders, *b.arena.at(s))
		}
		return true
	})
	return orders
}

// AskTotalVolume returns the total remaining ask volume.
func (b *Book) AskTotalVolume() int64 {
	return b.totalVolume(b.asks)
}

// BidTotalVolume returns the total remaining bid volume.
func (b *Book) BidTotalVolume() int64 {
	return b.totalVolume(b.bids)
}

func (b *Book) totalVolume(side *bookSide) int64 {
	var total int64
	side.ascend(func(lvl *priceLevel) bool {
		total += lvl.volume
		return true
	})
	return total
}

func (b *Book) sideFor(action orderbookv1.OrderAction) *bookSide {
	if action == orderbookv1.Bid {
		return b.bids
	}
	return b.asks
}

// Clear empties the book. Used by tests and when rebuilding from snapshot.
func (b *Book) Clear() {
	b.asks.clear()
	b.bids.clear()
	b.arena.reset()
	b.index = make(map[int64]slot)
	b.conditional = make(map[int64]struct{})
	b.lastPrice = 0
}
