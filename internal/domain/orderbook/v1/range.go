package orderbookv1

// Range is an inclusive price interval attached to an order as a stop-loss or
// take-profit trigger. It is immutable once attached to an order.
type Range struct {
	Low  int64 `json:"low"`
	High int64 `json:"high"`
}

// Valid reports whether the range carries trigger information.
// A range with both endpoints at zero is treated as absent.
func (r *Range) Valid() bool {
	if r == nil {
		return false
	}
	return r.Low != 0 || r.High != 0
}

// Contains reports whether value falls inside the range. A degenerate range
// (low == high, or high == 0) never matches, so a zero or point interval
// cannot fire a trigger spuriously.
func (r *Range) Contains(value int64) bool {
	if r == nil {
		return false
	}
	return r.Low <= value && value <= r.High && r.Low != r.High && r.High != 0
}
