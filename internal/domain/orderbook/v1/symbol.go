package orderbookv1

// SymbolSpec is the per-book symbol configuration. It is set once at book
// construction and read-only thereafter; each book instance owns exactly one
// symbol's liquidity.
type SymbolSpec struct {
	Symbol string
	// MaxDepth caps the number of levels an L2 snapshot may return per side.
	// 0 means no cap.
	MaxDepth int
}
