package orderbookv1

// OrderCommand is a validated order command consumed by the book. Commands
// arrive pre-validated for risk/balance by upstream collaborators; the book
// only checks its own invariants (duplicate id, size, price, ranges).
type OrderCommand struct {
	Type            OrderType
	OrderID         int64
	UID             int64
	Price           int64
	ReserveBidPrice int64
	Size            int64
	Action          OrderAction
	StopLoss        *Range
	TakeProfit      *Range
}

// NewOrderCommand builds a plain order command without conditional ranges.
func NewOrderCommand(t OrderType, orderID, uid, price, reserveBidPrice, size int64, action OrderAction) OrderCommand {
	return OrderCommand{
		Type:            t,
		OrderID:         orderID,
		UID:             uid,
		Price:           price,
		ReserveBidPrice: reserveBidPrice,
		Size:            size,
		Action:          action,
	}
}

// TriggeredID derives the identifier under which an activated stop-loss or
// take-profit order is re-submitted. Activated orders are addressable by the
// negation of the original id, which keeps them traceable to the original
// placement while never colliding with a live caller-assigned id.
func TriggeredID(orderID int64) int64 {
	return -orderID
}

// IsTriggeredID reports whether an identifier belongs to the derived
// namespace of activated conditional orders.
func IsTriggeredID(orderID int64) bool {
	return orderID < 0
}

// OriginalID maps a derived identifier back to the original placement id.
func OriginalID(orderID int64) int64 {
	if orderID < 0 {
		return -orderID
	}
	return orderID
}
