package engine

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	orderreaderv1 "github.com/luca-simonetti/exchange-core/internal/domain/order-reader/v1"
	orderreadermock "github.com/luca-simonetti/exchange-core/internal/domain/order-reader/v1/mock"
	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
	snapshotmock "github.com/luca-simonetti/exchange-core/internal/domain/snapshot/v1/mock"
	tradepublishermock "github.com/luca-simonetti/exchange-core/internal/domain/trade-publisher/v1/mock"
	"github.com/luca-simonetti/exchange-core/internal/usecase/orderbook"
	"github.com/luca-simonetti/exchange-core/pkg/config"
	"github.com/luca-simonetti/exchange-core/pkg/logger"
)

func setupBenchmarkEngine(b *testing.B) *Engine {
	ctrl := gomock.NewController(b)

	mockOrderReader := orderreadermock.NewMockOrderReader(ctrl)
	mockSnapshotStore := snapshotmock.NewMockStore(ctrl)
	mockTradePublisher := tradepublishermock.NewMockTradePublisher(ctrl)

	log, err := logger.NewLogger(logger.WithOutputPaths([]string{}))
	if err != nil {
		b.Fatal(err)
	}

	book := orderbook.NewBook(orderbookv1.SymbolSpec{Symbol: "BTC-USD"}, log)

	mockSnapshotStore.EXPECT().
		LoadStore(gomock.Any()).
		Return(nil, nil).
		Times(1)

	mockTradePublisher.EXPECT().
		PublishTradeEvent(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	engine := NewEngine(book, mockOrderReader, mockTradePublisher, mockSnapshotStore, log, &config.Config{
		Symbol: "BTC-USD",
	}, nil)
	engine.ctx = context.Background()
	return engine
}

func BenchmarkEngine_ProcessRestingOrders(b *testing.B) {
	engine := setupBenchmarkEngine(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		payload := &orderreaderv1.PlaceOrderPayload{
			Type:    orderreaderv1.TypeGTC,
			OrderID: int64(i + 1),
			UID:     1,
			Price:   int64(50_000 + i%1000),
			Size:    10,
			Action:  orderreaderv1.ActionAsk,
		}
		if err := engine.processPayload(payload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEngine_ProcessMatchingOrders(b *testing.B) {
	engine := setupBenchmarkEngine(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := int64(2*i + 1)
		ask := &orderreaderv1.PlaceOrderPayload{
			Type:    orderreaderv1.TypeGTC,
			OrderID: id,
			UID:     1,
			Price:   50_000,
			Size:    10,
			Action:  orderreaderv1.ActionAsk,
		}
		bid := &orderreaderv1.PlaceOrderPayload{
			Type:    orderreaderv1.TypeIOC,
			OrderID: id + 1,
			UID:     2,
			Price:   50_000,
			Size:    10,
			Action:  orderreaderv1.ActionBid,
		}
		if err := engine.processPayload(ask); err != nil {
			b.Fatal(err)
		}
		if err := engine.processPayload(bid); err != nil {
			b.Fatal(err)
		}
	}
}
