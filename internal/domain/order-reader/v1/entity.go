package orderreaderv1

import (
	"fmt"

	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
)

// Payload type discriminators on the order command topic.
const (
	TypeGTC    = "gtc"
	TypeIOC    = "ioc"
	TypeCancel = "cancel"
)

// Action discriminators on the order command topic.
const (
	ActionAsk = "ask"
	ActionBid = "bid"
)

// PlaceOrderPayload is the JSON shape of one order command on the intake
// topic. Commands arrive already validated for risk and balance.
type PlaceOrderPayload struct {
	Type            string             `json:"type"` // gtc | ioc | cancel
	OrderID         int64              `json:"orderID"`
	UID             int64              `json:"uid"`
	Price           int64              `json:"price"`
	ReserveBidPrice int64              `json:"reserveBidPrice"`
	Size            int64              `json:"size"`
	Action          string             `json:"action"` // ask | bid
	StopLoss        *orderbookv1.Range `json:"stopLoss,omitempty"`
	TakeProfit      *orderbookv1.Range `json:"takeProfit,omitempty"`
	Offset          int64              `json:"offset"` // Offset of the command in the stream
}

// IsCancel reports whether the payload is a cancel command.
func (p *PlaceOrderPayload) IsCancel() bool {
	return p.Type == TypeCancel
}

// ToCommand converts the payload into a book command.
func (p *PlaceOrderPayload) ToCommand() (orderbookv1.OrderCommand, error) {
	var t orderbookv1.OrderType
	switch p.Type {
	case TypeGTC:
		t = orderbookv1.GTC
	case TypeIOC:
		t = orderbookv1.IOC
	default:
		return orderbookv1.OrderCommand{}, fmt.Errorf("unknown order type %q", p.Type)
	}

	var action orderbookv1.OrderAction
	switch p.Action {
	case ActionAsk:
		action = orderbookv1.Ask
	case ActionBid:
		action = orderbookv1.Bid
	default:
		return orderbookv1.OrderCommand{}, fmt.Errorf("unknown order action %q", p.Action)
	}

	return orderbookv1.OrderCommand{
		Type:            t,
		OrderID:         p.OrderID,
		UID:             p.UID,
		Price:           p.Price,
		ReserveBidPrice: p.ReserveBidPrice,
		Size:            p.Size,
		Action:          action,
		StopLoss:        p.StopLoss,
		TakeProfit:      p.TakeProfit,
	}, nil
}
