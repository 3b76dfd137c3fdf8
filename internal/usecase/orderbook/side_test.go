package orderbook

import (
	"testing"

	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookSide_BestPrice(t *testing.T) {
	asks := newBookSide(orderbookv1.Ask)
	asks.enqueue(110, 0, 5)
	asks.enqueue(90, 1, 5)
	asks.enqueue(100, 2, 5)

	// Lowest ask is best
	require.NotNil(t, asks.best())
	assert.Equal(t, int64(90), asks.best().price)

	bids := newBookSide(orderbookv1.Bid)
	bids.enqueue(90, 0, 5)
	bids.enqueue(110, 1, 5)
	bids.enqueue(100, 2, 5)

	// Highest bid is best
	require.NotNil(t, bids.best())
	assert.Equal(t, int64(110), bids.best().price)
}

func TestBookSide_EnqueuePreservesArrivalOrder(t *testing.T) {
	side := newBookSide(orderbookv1.Ask)
	side.enqueue(100, 7, 1)
	side.enqueue(100, 3, 2)
	side.enqueue(100, 9, 3)

	lvl, ok := side.level(100)
	require.True(t, ok)
	assert.Equal(t, []slot{7, 3, 9}, lvl.queue)
	assert.Equal(t, int64(6), lvl.volume)
	assert.Equal(t, 1, side.levelCount())
}

func TestBookSide_RemoveDropsEmptyLevel(t *testing.T) {
	side := newBookSide(orderbookv1.Ask)
	side.enqueue(100, 1, 5)
	side.enqueue(100, 2, 3)

	assert.True(t, side.remove(100, 1, 5))
	lvl, ok := side.level(100)
	require.True(t, ok)
	assert.Equal(t, []slot{2}, lvl.queue)
	assert.Equal(t, int64(3), lvl.volume)

	assert.True(t, side.remove(100, 2, 3))
	_, ok = side.level(100)
	assert.False(t, ok)
	assert.Equal(t, 0, side.levelCount())

	// Removing from a missing level or a missing slot reports false
	assert.False(t, side.remove(100, 2, 3))
	side.enqueue(200, 4, 1)
	assert.False(t, side.remove(200, 99, 1))
}

func TestBookSide_AscendOrder(t *testing.T) {
	bids := newBookSide(orderbookv1.Bid)
	bids.enqueue(90, 0, 1)
	bids.enqueue(110, 1, 1)
	bids.enqueue(100, 2, 1)

	var prices []int64
	bids.ascend(func(lvl *priceLevel) bool {
		prices = append(prices, lvl.price)
		return true
	})
	assert.Equal(t, []int64{110, 100, 90}, prices)
}

func TestBookSide_Crosses(t *testing.T) {
	asks := newBookSide(orderbookv1.Ask)
	bids := newBookSide(orderbookv1.Bid)

	bid := &orderbookv1.Order{Action: orderbookv1.Bid, Type: orderbookv1.GTC, Price: 100}
	assert.True(t, asks.crosses(bid, 100))
	assert.True(t, asks.crosses(bid, 90))
	assert.False(t, asks.crosses(bid, 101))

	ask := &orderbookv1.Order{Action: orderbookv1.Ask, Type: orderbookv1.GTC, Price: 100}
	assert.True(t, bids.crosses(ask, 100))
	assert.True(t, bids.crosses(ask, 110))
	assert.False(t, bids.crosses(ask, 99))

	// IOC at price 0 crosses everything
	sweep := &orderbookv1.Order{Action: orderbookv1.Bid, Type: orderbookv1.IOC, Price: 0}
	assert.True(t, asks.crosses(sweep, 1_000_000))
}

func TestArena_AllocRelease(t *testing.T) {
	var a arena

	s1 := a.alloc(orderbookv1.Order{OrderID: 1})
	s2 := a.alloc(orderbookv1.Order{OrderID: 2})
	assert.Equal(t, 2, a.live())
	assert.Equal(t, int64(1), a.at(s1).OrderID)
	assert.Equal(t, int64(2), a.at(s2).OrderID)

	a.release(s1)
	assert.Equal(t, 1, a.live())

	// Released slots are recycled
	s3 := a.alloc(orderbookv1.Order{OrderID: 3})
	assert.Equal(t, s1, s3)
	assert.Equal(t, int64(3), a.at(s3).OrderID)
	assert.Equal(t, 2, a.live())

	a.reset()
	assert.Equal(t, 0, a.live())
}
