package orderbookv1

// TradeEvent describes a single fill produced by matching. The execution
// price is always the resting (maker) order's price: price improvement goes
// to the order that was already in the book.
type TradeEvent struct {
	MakerOrderID int64       `json:"makerOrderID"`
	TakerOrderID int64       `json:"takerOrderID"`
	MakerUID     int64       `json:"makerUID"`
	TakerUID     int64       `json:"takerUID"`
	TakerAction  OrderAction `json:"takerAction"`
	Price        int64       `json:"price"`
	Size         int64       `json:"size"`
	// MakerFilled is set when this fill fully depletes the resting order.
	MakerFilled bool  `json:"makerFilled"`
	Timestamp   int64 `json:"timestamp"`
}
