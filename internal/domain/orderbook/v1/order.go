package orderbookv1

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// OrderAction identifies the side of an order.
type OrderAction int8

const (
	// Ask is a sell order.
	Ask OrderAction = 0
	// Bid is a buy order.
	Bid OrderAction = 1
)

// Opposite returns the other side.
func (a OrderAction) Opposite() OrderAction {
	if a == Ask {
		return Bid
	}
	return Ask
}

func (a OrderAction) String() string {
	if a == Bid {
		return "bid"
	}
	return "ask"
}

// OrderType classifies how the unfilled remainder of an order is handled.
type OrderType int8

const (
	// GTC is good-till-cancel: the unfilled remainder rests in the book.
	GTC OrderType = 0
	// IOC is immediate-or-cancel: the unfilled remainder is discarded.
	IOC OrderType = 1
)

func (t OrderType) String() string {
	if t == IOC {
		return "ioc"
	}
	return "gtc"
}

// EncodedOrderSize is the size in bytes of the canonical binary layout of an
// Order: five int64 economic fields, two single-byte classification fields,
// uid, timestamp and two ranges of two int64 each.
const EncodedOrderSize = 8*5 + 2 + 8*2 + 8*4

// Order is a resting order record. Order records live only inside the book;
// the same record is reused for instantly matching marketable orders and for
// re-priced stop/take-profit activations, so no external references to a
// record are ever handed out.
type Order struct {
	OrderID int64
	Price   int64
	Size    int64
	Filled  int64

	// ReserveBidPrice is the price ceiling reserved for GTC bids during fast
	// price moves in exchange mode. For bids it is >= Price.
	ReserveBidPrice int64

	Action OrderAction
	Type   OrderType
	UID    int64

	// Timestamp orders arrivals within a price level. It is excluded from
	// Equals and StateHash so replays that re-stamp commands compare equal.
	Timestamp int64

	StopLoss   *Range
	TakeProfit *Range
}

// Remaining returns the unfilled quantity.
func (o *Order) Remaining() int64 {
	return o.Size - o.Filled
}

// IsFilled reports whether the order has been fully executed.
func (o *Order) IsFilled() bool {
	return o.Filled >= o.Size
}

// MarshalBinary encodes the order into its canonical little-endian layout.
// The type byte has always been written as the constant 1 on the wire; the
// quirk is kept so existing snapshots stay decodable byte-for-byte.
func (o *Order) MarshalBinary() ([]byte, error) {
	buf := make([]byte, EncodedOrderSize)
	i := 0
	for _, v := range []int64{o.OrderID, o.Price, o.Size, o.Filled, o.ReserveBidPrice} {
		binary.LittleEndian.PutUint64(buf[i:], uint64(v))
		i += 8
	}
	buf[i] = byte(o.Action)
	i++
	buf[i] = 1 // wire quirk, not o.Type
	i++
	binary.LittleEndian.PutUint64(buf[i:], uint64(o.UID))
	i += 8
	binary.LittleEndian.PutUint64(buf[i:], uint64(o.Timestamp))
	i += 8
	for _, v := range []int64{rangeHigh(o.StopLoss), rangeLow(o.StopLoss), rangeHigh(o.TakeProfit), rangeLow(o.TakeProfit)} {
		binary.LittleEndian.PutUint64(buf[i:], uint64(v))
		i += 8
	}
	return buf, nil
}

// UnmarshalBinary decodes an order from its canonical layout. All fields are
// reconstructed exactly except Type, which the wire always carries as 1 and
// therefore cannot be trusted.
func (o *Order) UnmarshalBinary(data []byte) error {
	if len(data) < EncodedOrderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrShortBuffer, len(data), EncodedOrderSize)
	}
	i := 0
	read := func() int64 {
		v := int64(binary.LittleEndian.Uint64(data[i:]))
		i += 8
		return v
	}
	o.OrderID = read()
	o.Price = read()
	o.Size = read()
	o.Filled = read()
	o.ReserveBidPrice = read()
	o.Action = OrderAction(data[i])
	i++
	o.Type = OrderType(data[i])
	i++
	o.UID = read()
	o.Timestamp = read()
	slHigh, slLow := read(), read()
	tpHigh, tpLow := read(), read()
	o.StopLoss = rangeFromBounds(slLow, slHigh)
	o.TakeProfit = rangeFromBounds(tpLow, tpHigh)
	return nil
}

// Equals compares two orders field by field, ignoring Timestamp so replayed
// state with fresh timestamps still compares equal.
func (o *Order) Equals(other *Order) bool {
	if o == other {
		return true
	}
	if o == nil || other == nil {
		return false
	}
	return o.OrderID == other.OrderID &&
		o.Action == other.Action &&
		o.Price == other.Price &&
		o.Size == other.Size &&
		o.ReserveBidPrice == other.ReserveBidPrice &&
		o.Filled == other.Filled &&
		rangeEqual(o.StopLoss, other.StopLoss) &&
		rangeEqual(o.TakeProfit, other.TakeProfit) &&
		o.UID == other.UID
}

// StateHash returns a deterministic digest of the order, excluding Timestamp.
// It is the building block of the whole-book state hash used to verify that
// independently replayed books reached identical states.
func (o *Order) StateHash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	write := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	write(o.OrderID)
	write(int64(o.Action))
	write(o.Price)
	write(o.Size)
	write(o.ReserveBidPrice)
	write(o.Filled)
	write(rangeLow(o.StopLoss))
	write(rangeHigh(o.StopLoss))
	write(rangeLow(o.TakeProfit))
	write(rangeHigh(o.TakeProfit))
	write(o.UID)
	return d.Sum64()
}

func (o *Order) String() string {
	side := "A"
	if o.Action == Bid {
		side = "B"
	}
	return fmt.Sprintf("[%d %s%d:%d F%d U%d]", o.OrderID, side, o.Price, o.Size, o.Filled, o.UID)
}

func rangeLow(r *Range) int64 {
	if r == nil {
		return 0
	}
	return r.Low
}

func rangeHigh(r *Range) int64 {
	if r == nil {
		return 0
	}
	return r.High
}

func rangeFromBounds(low, high int64) *Range {
	if low == 0 && high == 0 {
		return nil
	}
	return &Range{Low: low, High: high}
}

func rangeEqual(a, b *Range) bool {
	return rangeLow(a) == rangeLow(b) && rangeHigh(a) == rangeHigh(b)
}
