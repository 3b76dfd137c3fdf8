package orderbookv1

// L2Level is one aggregated price level of a market depth snapshot: the
// price, the total remaining volume resting at that price and the number of
// orders queued there.
type L2Level struct {
	Price  int64 `json:"price"`
	Volume int64 `json:"volume"`
	Orders int64 `json:"orders"`
}

// L2MarketData is a read-only aggregated depth view. Both sides are ordered
// from best to worst price and reflect a single consistent instant.
type L2MarketData struct {
	Asks      []L2Level `json:"asks"`
	Bids      []L2Level `json:"bids"`
	LastPrice int64     `json:"lastPrice"`
}

// AskVolumeSum returns the total resting ask volume visible in the snapshot.
func (m *L2MarketData) AskVolumeSum() int64 {
	return levelVolumeSum(m.Asks)
}

// BidVolumeSum returns the total resting bid volume visible in the snapshot.
func (m *L2MarketData) BidVolumeSum() int64 {
	return levelVolumeSum(m.Bids)
}

func levelVolumeSum(levels []L2Level) int64 {
	var sum int64
	for _, l := range levels {
		sum += l.Volume
	}
	return sum
}
