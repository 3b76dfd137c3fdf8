package snapshotv1

// Snapshot captures the full state of one order book at a point of the
// command stream, for restore-on-boot and cross-instance replay checks.
type Snapshot struct {
	Symbol      string `json:"symbol"`
	OrderOffset int64  `json:"orderOffset"`

	OrderBookSnapshot OrderBookSnapshot `json:"orderBookSnapshot"`
}

// OrderBookSnapshot is the book's replayable state: every resting order in
// its canonical binary encoding, in price-ladder iteration order, plus the
// last traded price and the deterministic state hash at capture time.
type OrderBookSnapshot struct {
	// Orders holds canonically encoded order records. encoding/json carries
	// []byte as base64, so the wire layout survives the JSON envelope intact.
	Orders    [][]byte `json:"orders"`
	LastPrice int64    `json:"lastPrice"`
	StateHash uint64   `json:"stateHash"`
}
