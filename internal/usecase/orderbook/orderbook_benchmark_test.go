package orderbook

import (
	"testing"

	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
	"github.com/luca-simonetti/exchange-core/pkg/logger"
)

func setupBenchmarkBook(b *testing.B) *Book {
	b.Helper()
	log, err := logger.NewLogger(logger.WithOutputPaths([]string{}))
	if err != nil {
		b.Fatal(err)
	}
	return NewBook(orderbookv1.SymbolSpec{Symbol: "BTC-USD"}, log)
}

func BenchmarkBook_RestingOrders(b *testing.B) {
	book := setupBenchmarkBook(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		price := int64(50_000 + i%1000)
		_, err := book.PlaceOrder(gtc(int64(i+1), 1, price, 10, orderbookv1.Ask))
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBook_MatchingOrders(b *testing.B) {
	book := setupBenchmarkBook(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := int64(2*i + 1)
		if _, err := book.PlaceOrder(gtc(id, 1, 50_000, 10, orderbookv1.Ask)); err != nil {
			b.Fatal(err)
		}
		if _, err := book.PlaceOrder(ioc(id+1, 2, 50_000, 10, orderbookv1.Bid)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBook_L2Snapshot(b *testing.B) {
	book := setupBenchmarkBook(b)
	for i := int64(0); i < 500; i++ {
		if _, err := book.PlaceOrder(gtc(i+1, 1, 50_000+i, 10, orderbookv1.Ask)); err != nil {
			b.Fatal(err)
		}
		if _, err := book.PlaceOrder(gtc(-i-1, 1, 49_999-i, 10, orderbookv1.Bid)); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = book.GetL2MarketDataSnapshot(20)
	}
}

func BenchmarkBook_StateHash(b *testing.B) {
	book := setupBenchmarkBook(b)
	for i := int64(0); i < 1000; i++ {
		if _, err := book.PlaceOrder(gtc(i+1, 1, 50_000+i, 10, orderbookv1.Ask)); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = book.StateHash()
	}
}
