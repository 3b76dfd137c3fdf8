package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	orderreaderv1 "github.com/luca-simonetti/exchange-core/internal/domain/order-reader/v1"
	orderreadermock "github.com/luca-simonetti/exchange-core/internal/domain/order-reader/v1/mock"
	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
	snapshotv1 "github.com/luca-simonetti/exchange-core/internal/domain/snapshot/v1"
	snapshotmock "github.com/luca-simonetti/exchange-core/internal/domain/snapshot/v1/mock"
	tradepublishermock "github.com/luca-simonetti/exchange-core/internal/domain/trade-publisher/v1/mock"
	"github.com/luca-simonetti/exchange-core/internal/usecase/orderbook"
	"github.com/luca-simonetti/exchange-core/pkg/config"
	"github.com/luca-simonetti/exchange-core/pkg/logger"
	"github.com/luca-simonetti/exchange-core/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fixtures and helpers
type testFixture struct {
	ctrl               *gomock.Controller
	mockOrderReader    *orderreadermock.MockOrderReader
	mockSnapshotStore  *snapshotmock.MockStore
	mockTradePublisher *tradepublishermock.MockTradePublisher
	orderbook          *orderbook.Book
	logger             *logger.Logger
	config             *config.Config
}

func setupTestFixture(t *testing.T) *testFixture {
	ctrl := gomock.NewController(t)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	return &testFixture{
		ctrl:               ctrl,
		mockOrderReader:    orderreadermock.NewMockOrderReader(ctrl),
		mockSnapshotStore:  snapshotmock.NewMockStore(ctrl),
		mockTradePublisher: tradepublishermock.NewMockTradePublisher(ctrl),
		orderbook:          orderbook.NewBook(orderbookv1.SymbolSpec{Symbol: "BTC-USD"}, log),
		logger:             log,
		config: &config.Config{
			Symbol: "BTC-USD",
			KafkaConfig: config.KafkaConfig{
				Brokers: []string{"localhost:9092"},
				Topic:   "order-commands",
			},
			TradePublisherConfig: config.TradePublisherConfig{
				Brokers: []string{"localhost:9092"},
				Topic:   "trades",
			},
		},
	}
}

func (f *testFixture) teardown() {
	f.ctrl.Finish()
}

func gtcPayload(orderID, uid, price, size int64, action string) *orderreaderv1.PlaceOrderPayload {
	return &orderreaderv1.PlaceOrderPayload{
		Type:    orderreaderv1.TypeGTC,
		OrderID: orderID,
		UID:     uid,
		Price:   price,
		Size:    size,
		Action:  action,
	}
}

// Helper function to create engine with initialized context
func createTestEngine(fixture *testFixture) *Engine {
	engine := NewEngine(
		fixture.orderbook,
		fixture.mockOrderReader,
		fixture.mockTradePublisher,
		fixture.mockSnapshotStore,
		fixture.logger,
		fixture.config,
		nil,
	)

	// Initialize context to prevent nil pointer dereference
	engine.ctx = context.Background()

	return engine
}

func TestNewEngine(t *testing.T) {
	t.Run("no snapshot available", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		fixture.mockSnapshotStore.EXPECT().
			LoadStore(gomock.Any()).
			Return(nil, nil).
			Times(1)

		engine := createTestEngine(fixture)

		assert.Equal(t, int64(-1), engine.GetOrderOffset())
		assert.Equal(t, int64(0), engine.GetLastSnapshotOffset())
		assert.Equal(t, int64(0), engine.GetTotalTrades())
	})

	t.Run("restores book from snapshot", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		resting := &orderbookv1.Order{
			OrderID: 1,
			Price:   50_000,
			Size:    10,
			Action:  orderbookv1.Ask,
			UID:     7,
		}
		encoded, err := resting.MarshalBinary()
		require.NoError(t, err)

		fixture.mockSnapshotStore.EXPECT().
			LoadStore(gomock.Any()).
			Return(&snapshotv1.Snapshot{
				Symbol:      "BTC-USD",
				OrderOffset: 1500,
				OrderBookSnapshot: snapshotv1.OrderBookSnapshot{
					Orders:    [][]byte{encoded},
					LastPrice: 49_900,
				},
			}, nil).
			Times(1)

		engine := createTestEngine(fixture)

		assert.Equal(t, int64(1500), engine.GetOrderOffset())
		assert.Equal(t, int64(1500), engine.GetLastSnapshotOffset())
		assert.Equal(t, int64(49_900), fixture.orderbook.GetLastPrice())

		o, found := fixture.orderbook.GetOrderByID(1)
		require.True(t, found)
		assert.Equal(t, int64(50_000), o.Price)
	})
}

func TestNewEngineWithOptions(t *testing.T) {
	fixture := setupTestFixture(t)
	defer fixture.teardown()

	fixture.mockSnapshotStore.EXPECT().
		LoadStore(gomock.Any()).
		Return(nil, nil).
		Times(1)

	engine := NewEngineWithOptions(
		fixture.orderbook,
		fixture.mockOrderReader,
		fixture.mockTradePublisher,
		fixture.mockSnapshotStore,
		fixture.logger,
		fixture.config,
		nil,
		&Options{
			SnapshotInterval:    time.Second,
			SnapshotOffsetDelta: 5,
		},
	)

	assert.Equal(t, time.Second, engine.snapshotInterval)
	assert.Equal(t, int64(5), engine.snapshotOffsetDelta)
}

func TestEngineOptionsFromConfig(t *testing.T) {
	t.Run("configured snapshot cadence is honored", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		fixture.config.SnapshotConfig = config.SnapshotConfig{
			Interval:    5 * time.Second,
			OffsetDelta: 250,
		}

		fixture.mockSnapshotStore.EXPECT().
			LoadStore(gomock.Any()).
			Return(nil, nil).
			Times(1)

		engine := NewEngineWithOptions(
			fixture.orderbook,
			fixture.mockOrderReader,
			fixture.mockTradePublisher,
			fixture.mockSnapshotStore,
			fixture.logger,
			fixture.config,
			nil,
			EngineOptionsFromConfig(fixture.config),
		)

		assert.Equal(t, 5*time.Second, engine.snapshotInterval)
		assert.Equal(t, int64(250), engine.snapshotOffsetDelta)
	})

	t.Run("unset values keep defaults", func(t *testing.T) {
		assert.Equal(t, DefaultEngineOptions(), EngineOptionsFromConfig(&config.Config{}))
	})
}

func TestEngine_ProcessPayload(t *testing.T) {
	t.Run("resting order publishes nothing", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		fixture.mockSnapshotStore.EXPECT().LoadStore(gomock.Any()).Return(nil, nil)
		engine := createTestEngine(fixture)

		err := engine.processPayload(gtcPayload(1, 10, 50_000, 5, orderreaderv1.ActionAsk))
		require.NoError(t, err)

		assert.Equal(t, int64(5), fixture.orderbook.AskTotalVolume())
		assert.Equal(t, int64(0), engine.GetTotalTrades())
	})

	t.Run("matching orders publish trade events", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		fixture.mockSnapshotStore.EXPECT().LoadStore(gomock.Any()).Return(nil, nil)
		engine := createTestEngine(fixture)

		require.NoError(t, engine.processPayload(gtcPayload(1, 10, 50_000, 5, orderreaderv1.ActionAsk)))

		fixture.mockTradePublisher.EXPECT().
			PublishTradeEvent(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		require.NoError(t, engine.processPayload(gtcPayload(2, 20, 50_000, 5, orderreaderv1.ActionBid)))

		assert.Equal(t, int64(1), engine.GetTotalTrades())
		assert.Equal(t, int64(50_000), fixture.orderbook.GetLastPrice())
	})

	t.Run("cancel removes a resting order", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		fixture.mockSnapshotStore.EXPECT().LoadStore(gomock.Any()).Return(nil, nil)
		engine := createTestEngine(fixture)

		require.NoError(t, engine.processPayload(gtcPayload(1, 10, 50_000, 5, orderreaderv1.ActionAsk)))

		err := engine.processPayload(&orderreaderv1.PlaceOrderPayload{
			Type:    orderreaderv1.TypeCancel,
			OrderID: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), fixture.orderbook.AskTotalVolume())
	})

	t.Run("cancel of unknown order fails", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		fixture.mockSnapshotStore.EXPECT().LoadStore(gomock.Any()).Return(nil, nil)
		engine := createTestEngine(fixture)

		err := engine.processPayload(&orderreaderv1.PlaceOrderPayload{
			Type:    orderreaderv1.TypeCancel,
			OrderID: 404,
		})
		assert.ErrorIs(t, err, orderbookv1.ErrOrderNotFound)
	})

	t.Run("unknown payload type fails", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		fixture.mockSnapshotStore.EXPECT().LoadStore(gomock.Any()).Return(nil, nil)
		engine := createTestEngine(fixture)

		err := engine.processPayload(&orderreaderv1.PlaceOrderPayload{
			Type:    "fok",
			OrderID: 1,
			Size:    1,
			Price:   1,
			Action:  orderreaderv1.ActionBid,
		})
		assert.Error(t, err)
	})

	t.Run("rejected command leaves the book untouched", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		fixture.mockSnapshotStore.EXPECT().LoadStore(gomock.Any()).Return(nil, nil)
		engine := createTestEngine(fixture)

		require.NoError(t, engine.processPayload(gtcPayload(1, 10, 50_000, 5, orderreaderv1.ActionAsk)))
		before := fixture.orderbook.StateHash()

		err := engine.processPayload(gtcPayload(1, 10, 50_000, 5, orderreaderv1.ActionAsk))
		assert.ErrorIs(t, err, orderbookv1.ErrDuplicateOrderID)
		assert.Equal(t, before, fixture.orderbook.StateHash())
	})
}

func TestEngine_StopActivationMetric(t *testing.T) {
	fixture := setupTestFixture(t)
	defer fixture.teardown()

	fixture.mockSnapshotStore.EXPECT().
		LoadStore(gomock.Any()).
		Return(nil, nil).
		Times(1)

	m := metrics.NewMetricsWith(prometheus.NewRegistry(), "BTC-USD")
	engine := NewEngine(
		fixture.orderbook,
		fixture.mockOrderReader,
		fixture.mockTradePublisher,
		fixture.mockSnapshotStore,
		fixture.logger,
		fixture.config,
		m,
	)
	engine.ctx = context.Background()

	fixture.mockTradePublisher.EXPECT().
		PublishTradeEvent(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	// Resting bid the activated stop will take out
	require.NoError(t, engine.processPayload(gtcPayload(3, 30, 49, 10, orderreaderv1.ActionBid)))

	stop := gtcPayload(1, 10, 70, 10, orderreaderv1.ActionAsk)
	stop.StopLoss = &orderbookv1.Range{Low: 48, High: 52}
	require.NoError(t, engine.processPayload(stop))

	require.NoError(t, engine.processPayload(gtcPayload(4, 40, 50, 7, orderreaderv1.ActionAsk)))

	// Trade at 50 lands inside the stop range; the activated ask takes
	// the resting bid at 49 under its derived id
	taker := gtcPayload(5, 50, 50, 7, orderreaderv1.ActionBid)
	taker.Type = orderreaderv1.TypeIOC
	require.NoError(t, engine.processPayload(taker))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.StopActivations))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.TradesTotal))
	assert.Equal(t, int64(49), fixture.orderbook.GetLastPrice())
}

func TestEngine_SnapshotManagement(t *testing.T) {
	t.Run("should create snapshot after offset delta", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		fixture.mockSnapshotStore.EXPECT().LoadStore(gomock.Any()).Return(nil, nil)
		engine := NewEngineWithOptions(
			fixture.orderbook,
			fixture.mockOrderReader,
			fixture.mockTradePublisher,
			fixture.mockSnapshotStore,
			fixture.logger,
			fixture.config,
			nil,
			&Options{SnapshotInterval: time.Hour, SnapshotOffsetDelta: 100},
		)
		engine.ctx = context.Background()

		assert.False(t, engine.shouldCreateSnapshot())

		engine.setOrderOffset(50)
		assert.False(t, engine.shouldCreateSnapshot())

		engine.setOrderOffset(100)
		assert.True(t, engine.shouldCreateSnapshot())
	})

	t.Run("create and store snapshot", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		fixture.mockSnapshotStore.EXPECT().LoadStore(gomock.Any()).Return(nil, nil)
		engine := createTestEngine(fixture)

		require.NoError(t, engine.processPayload(gtcPayload(1, 10, 50_000, 5, orderreaderv1.ActionAsk)))
		engine.setOrderOffset(2500)

		fixture.mockSnapshotStore.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshot *snapshotv1.Snapshot) error {
				assert.Equal(t, "BTC-USD", snapshot.Symbol)
				assert.Equal(t, int64(2500), snapshot.OrderOffset)
				assert.Len(t, snapshot.OrderBookSnapshot.Orders, 1)
				return nil
			}).
			Times(1)

		engine.createAndStoreSnapshot()
		assert.Equal(t, int64(2500), engine.GetLastSnapshotOffset())
	})

	t.Run("store failure keeps the last snapshot offset", func(t *testing.T) {
		fixture := setupTestFixture(t)
		defer fixture.teardown()

		fixture.mockSnapshotStore.EXPECT().LoadStore(gomock.Any()).Return(nil, nil)
		engine := createTestEngine(fixture)
		engine.setOrderOffset(2500)

		fixture.mockSnapshotStore.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(errors.New("redis down")).
			Times(1)

		engine.createAndStoreSnapshot()
		assert.Equal(t, int64(0), engine.GetLastSnapshotOffset())
	})
}

func TestEngine_StartStop(t *testing.T) {
	fixture := setupTestFixture(t)
	defer fixture.teardown()

	fixture.mockSnapshotStore.EXPECT().LoadStore(gomock.Any()).Return(nil, nil)
	fixture.mockOrderReader.EXPECT().SetOffset(int64(-1)).Return(nil)
	fixture.mockOrderReader.EXPECT().
		ReadMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, *orderreaderv1.PlaceOrderPayload, error) {
			<-ctx.Done()
			return kafka.Message{}, nil, ctx.Err()
		}).
		AnyTimes()
	fixture.mockOrderReader.EXPECT().Close().Return(nil)

	engine := NewEngine(
		fixture.orderbook,
		fixture.mockOrderReader,
		fixture.mockTradePublisher,
		fixture.mockSnapshotStore,
		fixture.logger,
		fixture.config,
		nil,
	)

	require.NoError(t, engine.Start(context.Background()))

	// Give the processor a moment to spin up
	time.Sleep(50 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, engine.Stop(stopCtx))
}

func TestEngine_ResumeAfterOffsetZeroSnapshot(t *testing.T) {
	fixture := setupTestFixture(t)
	defer fixture.teardown()

	fixture.mockSnapshotStore.EXPECT().
		LoadStore(gomock.Any()).
		Return(&snapshotv1.Snapshot{
			Symbol:      "BTC-USD",
			OrderOffset: 0,
		}, nil).
		Times(1)

	// The command at offset 0 is already applied; the reader must resume at 1
	fixture.mockOrderReader.EXPECT().SetOffset(int64(1)).Return(nil)
	fixture.mockOrderReader.EXPECT().
		ReadMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, *orderreaderv1.PlaceOrderPayload, error) {
			<-ctx.Done()
			return kafka.Message{}, nil, ctx.Err()
		}).
		AnyTimes()
	fixture.mockOrderReader.EXPECT().Close().Return(nil)

	engine := NewEngine(
		fixture.orderbook,
		fixture.mockOrderReader,
		fixture.mockTradePublisher,
		fixture.mockSnapshotStore,
		fixture.logger,
		fixture.config,
		nil,
	)

	assert.Equal(t, int64(0), engine.GetOrderOffset())

	require.NoError(t, engine.Start(context.Background()))
	time.Sleep(50 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, engine.Stop(stopCtx))
}
