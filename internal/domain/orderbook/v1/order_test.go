package orderbookv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *Order {
	return &Order{
		OrderID:         42,
		Price:           50_000,
		Size:            100,
		Filled:          30,
		ReserveBidPrice: 50_100,
		Action:          Bid,
		Type:            GTC,
		UID:             7,
		Timestamp:       1_700_000_000_000,
		StopLoss:        &Range{Low: 46_000, High: 48_000},
		TakeProfit:      &Range{Low: 55_000, High: 60_000},
	}
}

func TestOrder_Remaining(t *testing.T) {
	o := testOrder()
	assert.Equal(t, int64(70), o.Remaining())
	assert.False(t, o.IsFilled())

	o.Filled = o.Size
	assert.Equal(t, int64(0), o.Remaining())
	assert.True(t, o.IsFilled())
}

func TestOrder_BinaryRoundTrip(t *testing.T) {
	o := testOrder()

	buf, err := o.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, EncodedOrderSize, len(buf))

	var decoded Order
	require.NoError(t, decoded.UnmarshalBinary(buf))

	assert.Equal(t, o.OrderID, decoded.OrderID)
	assert.Equal(t, o.Price, decoded.Price)
	assert.Equal(t, o.Size, decoded.Size)
	assert.Equal(t, o.Filled, decoded.Filled)
	assert.Equal(t, o.ReserveBidPrice, decoded.ReserveBidPrice)
	assert.Equal(t, o.Action, decoded.Action)
	assert.Equal(t, o.UID, decoded.UID)
	assert.Equal(t, o.Timestamp, decoded.Timestamp)
	assert.Equal(t, o.StopLoss, decoded.StopLoss)
	assert.Equal(t, o.TakeProfit, decoded.TakeProfit)
	assert.True(t, o.Equals(&decoded))
}

func TestOrder_BinaryTypeByteQuirk(t *testing.T) {
	// The wire always carries 1 in the type byte, regardless of the order's
	// actual type. Decoders must not trust it.
	o := testOrder()
	o.Type = GTC

	buf, err := o.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, byte(1), buf[41])

	o.Type = IOC
	buf, err = o.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, byte(1), buf[41])
}

func TestOrder_BinaryAbsentRanges(t *testing.T) {
	o := testOrder()
	o.StopLoss = nil
	o.TakeProfit = nil

	buf, err := o.MarshalBinary()
	require.NoError(t, err)

	var decoded Order
	require.NoError(t, decoded.UnmarshalBinary(buf))
	assert.Nil(t, decoded.StopLoss)
	assert.Nil(t, decoded.TakeProfit)
}

func TestOrder_UnmarshalShortBuffer(t *testing.T) {
	var o Order
	err := o.UnmarshalBinary(make([]byte, EncodedOrderSize-1))
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestOrder_EqualsIgnoresTimestamp(t *testing.T) {
	a := testOrder()
	b := testOrder()
	b.Timestamp = a.Timestamp + 12345

	assert.True(t, a.Equals(b))

	b.Filled++
	assert.False(t, a.Equals(b))
}

func TestOrder_EqualsNil(t *testing.T) {
	o := testOrder()
	var nilOrder *Order

	assert.False(t, o.Equals(nil))
	assert.True(t, nilOrder.Equals(nil))
}

func TestOrder_StateHash(t *testing.T) {
	a := testOrder()
	b := testOrder()

	// Timestamps differ, hashes must not
	b.Timestamp = a.Timestamp + 999
	assert.Equal(t, a.StateHash(), b.StateHash())

	// Any economic field difference must show up
	b.Price++
	assert.NotEqual(t, a.StateHash(), b.StateHash())

	b = testOrder()
	b.StopLoss = &Range{Low: 1, High: 2}
	assert.NotEqual(t, a.StateHash(), b.StateHash())
}

func TestOrderAction_Opposite(t *testing.T) {
	assert.Equal(t, Bid, Ask.Opposite())
	assert.Equal(t, Ask, Bid.Opposite())
	assert.Equal(t, "ask", Ask.String())
	assert.Equal(t, "bid", Bid.String())
}

func TestTriggeredID(t *testing.T) {
	assert.Equal(t, int64(-42), TriggeredID(42))
	assert.True(t, IsTriggeredID(-42))
	assert.False(t, IsTriggeredID(42))
	assert.Equal(t, int64(42), OriginalID(-42))
}
