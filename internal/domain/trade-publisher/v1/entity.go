package tradepublisherv1

import (
	"encoding/json"

	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
)

// TradeEventPayload is the JSON shape of one trade on the outbound topic,
// consumed by settlement and market-data publication downstream.
type TradeEventPayload struct {
	Symbol       string `json:"symbol"`
	MakerOrderID int64  `json:"makerOrderID"`
	TakerOrderID int64  `json:"takerOrderID"`
	MakerUID     int64  `json:"makerUID"`
	TakerUID     int64  `json:"takerUID"`
	TakerSide    string `json:"takerSide"` // buy | sell
	Price        int64  `json:"price"`
	Size         int64  `json:"size"`
	MakerFilled  bool   `json:"makerFilled"`
	Timestamp    int64  `json:"timestamp"`
}

// CreateFromTrade builds an outbound payload from a book trade event.
func CreateFromTrade(symbol string, ev orderbookv1.TradeEvent) *TradeEventPayload {
	side := "sell"
	if ev.TakerAction == orderbookv1.Bid {
		side = "buy"
	}
	return &TradeEventPayload{
		Symbol:       symbol,
		MakerOrderID: ev.MakerOrderID,
		TakerOrderID: ev.TakerOrderID,
		MakerUID:     ev.MakerUID,
		TakerUID:     ev.TakerUID,
		TakerSide:    side,
		Price:        ev.Price,
		Size:         ev.Size,
		MakerFilled:  ev.MakerFilled,
		Timestamp:    ev.Timestamp,
	}
}

// ToBytes converts the trade event to its wire encoding.
func ToBytes(ev *TradeEventPayload) []byte {
	buf, err := json.Marshal(ev)
	if err != nil {
		return nil
	}
	return buf
}

// FromBytes converts a wire encoding back to a trade event.
func FromBytes(data []byte) *TradeEventPayload {
	var ev TradeEventPayload
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil
	}
	return &ev
}
