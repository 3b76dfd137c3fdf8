package engine

import (
	"errors"

	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
)

// rejectionReason maps a book error to a stable metric label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, orderbookv1.ErrDuplicateOrderID):
		return "duplicate_order_id"
	case errors.Is(err, orderbookv1.ErrOrderNotFound):
		return "order_not_found"
	case errors.Is(err, orderbookv1.ErrInvalidSize):
		return "invalid_size"
	case errors.Is(err, orderbookv1.ErrInvalidPrice):
		return "invalid_price"
	case errors.Is(err, orderbookv1.ErrInvalidRange):
		return "invalid_range"
	default:
		return "other"
	}
}
