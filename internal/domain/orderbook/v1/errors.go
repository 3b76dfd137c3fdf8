package orderbookv1

import "errors"

var (
	// ErrDuplicateOrderID is returned when a placed order id already exists in the book.
	ErrDuplicateOrderID = errors.New("order id already exists in the book")
	// ErrOrderNotFound is returned when cancelling or looking up an absent order.
	ErrOrderNotFound = errors.New("order not found in the book")
	// ErrInvalidSize is returned for orders with a non-positive size.
	ErrInvalidSize = errors.New("size must be positive")
	// ErrInvalidPrice is returned for orders with a non-positive limit price.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrInvalidRange is returned for malformed stop-loss/take-profit ranges.
	ErrInvalidRange = errors.New("invalid stop-loss/take-profit range")
	// ErrUnknownSymbolState indicates the internal consistency check failed.
	// This is a bug, not a user error: the book instance must be halted.
	ErrUnknownSymbolState = errors.New("order book internal state is inconsistent")
	// ErrShortBuffer is returned when decoding an order from a truncated buffer.
	ErrShortBuffer = errors.New("buffer too short for canonical order layout")
)
