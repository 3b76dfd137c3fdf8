package engine

import (
	"context"
	"sync"
	"time"

	orderreaderv1 "github.com/luca-simonetti/exchange-core/internal/domain/order-reader/v1"
	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
	snapshotv1 "github.com/luca-simonetti/exchange-core/internal/domain/snapshot/v1"
	tradepublisherv1 "github.com/luca-simonetti/exchange-core/internal/domain/trade-publisher/v1"
	"github.com/luca-simonetti/exchange-core/pkg/config"
	"github.com/luca-simonetti/exchange-core/pkg/logger"
	"github.com/luca-simonetti/exchange-core/pkg/metrics"
	"go.uber.org/zap/zapcore"
)

// Engine is the main processing loop for one symbol: it reads order commands
// from the intake topic, applies them to the book one at a time, publishes
// the resulting trade events and periodically snapshots the book.
type Engine struct {
	// Core components
	orderbook      orderbookv1.OrderBook
	orderReader    orderreaderv1.OrderReader
	tradePublisher tradepublisherv1.TradePublisher
	snapshotStore  snapshotv1.Store
	logger         *logger.Logger
	config         *config.Config
	metrics        *metrics.Metrics

	// The book itself is not goroutine-safe. bookMu serializes the order
	// processor against the snapshot manager.
	bookMu sync.Mutex

	mu                 sync.RWMutex
	orderOffset        int64
	lastSnapshotOffset int64

	// Shutdown coordination
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	snapshotInterval    time.Duration
	snapshotOffsetDelta int64

	// Trade statistics
	totalTrades int64
	tradesMutex sync.RWMutex
}

// NewEngine creates a new instance of Engine with the provided dependencies.
func NewEngine(
	orderbook orderbookv1.OrderBook,
	orderReader orderreaderv1.OrderReader,
	tradePublisher tradepublisherv1.TradePublisher,
	snapshotStore snapshotv1.Store,
	logger *logger.Logger,
	config *config.Config,
	metrics *metrics.Metrics,
) *Engine {
	return NewEngineWithOptions(orderbook, orderReader, tradePublisher, snapshotStore, logger, config, metrics, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options.
func NewEngineWithOptions(
	orderbook orderbookv1.OrderBook,
	orderReader orderreaderv1.OrderReader,
	tradePublisher tradepublisherv1.TradePublisher,
	snapshotStore snapshotv1.Store,
	logger *logger.Logger,
	config *config.Config,
	metrics *metrics.Metrics,
	options *Options,
) *Engine {
	e := &Engine{
		orderbook:      orderbook,
		orderReader:    orderReader,
		tradePublisher: tradePublisher,
		snapshotStore:  snapshotStore,
		logger:         logger,
		config:         config,
		metrics:        metrics,

		snapshotInterval:    options.SnapshotInterval,
		snapshotOffsetDelta: options.SnapshotOffsetDelta,
		orderOffset:         -1,
	}

	// Restore the book before any command is read
	if err := e.loadSnapshot(context.Background()); err != nil {
		e.logger.GetZap().Fatal("Failed to load snapshot", zapcore.Field{
			Key:       "error",
			Interface: err,
		})
	}

	return e
}

// Start initializes the engine and starts processing routines.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(2)
	go e.runOrderProcessor()
	go e.runSnapshotManager()

	e.logger.Info("Engine started", logger.Field{
		Key:   "symbol",
		Value: e.config.Symbol,
	})

	return nil
}

// Stop gracefully shuts down the engine.
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	// Wait for goroutines to finish with timeout
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("Engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("Engine stop timeout exceeded")
		return ctx.Err()
	}
}

// runOrderProcessor combines command reading and book application in a
// single goroutine, keeping the book strictly sequential.
func (e *Engine) runOrderProcessor() {
	defer e.wg.Done()

	e.logger.Info("Starting order processor", logger.Field{
		Key:   "symbol",
		Value: e.config.Symbol,
	})

	// Resume one past the last applied command. Offset 0 is a valid
	// restored position, only the fresh-start marker -1 passes through.
	currentOffset := e.getOrderOffset()
	if currentOffset >= 0 {
		currentOffset++
	}

	if err := e.orderReader.SetOffset(currentOffset); err != nil {
		e.logger.GetZap().Fatal("Failed to set offset for order reader", zapcore.Field{
			Key:       "error",
			Interface: err,
		})
	}

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Order processor shutting down")
			e.orderReader.Close()
			return
		default:
			msg, payload, err := e.orderReader.ReadMessage(e.ctx)
			if err != nil {
				e.logger.ErrorContext(e.ctx, err, logger.Field{
					Key:   "action",
					Value: "read_order_message",
				})
				// Simple backoff
				time.Sleep(100 * time.Millisecond)
				continue
			}

			if err := e.orderReader.CommitMessages(e.ctx, msg); err != nil {
				e.logger.ErrorContext(e.ctx, err, logger.Field{
					Key:   "action",
					Value: "commit_order_message",
				})
			}

			if err := e.processPayload(payload); err != nil {
				e.logger.ErrorContext(e.ctx, err, logger.Field{
					Key:   "action",
					Value: "process_order",
				}, logger.Field{
					Key:   "orderID",
					Value: payload.OrderID,
				})
			}

			e.setOrderOffset(msg.Offset)
		}
	}
}

// runSnapshotManager handles periodic snapshots.
func (e *Engine) runSnapshotManager() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.snapshotInterval)
	defer ticker.Stop()

	e.logger.Info("Starting snapshot manager")

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Snapshot manager shutting down")
			return
		case <-ticker.C:
			if e.shouldCreateSnapshot() {
				e.createAndStoreSnapshot()
			}
		}
	}
}

// processPayload applies a single order command to the book.
func (e *Engine) processPayload(payload *orderreaderv1.PlaceOrderPayload) error {
	e.logger.Debug("Processing order",
		logger.Field{Key: "type", Value: payload.Type},
		logger.Field{Key: "orderID", Value: payload.OrderID},
		logger.Field{Key: "uid", Value: payload.UID},
	)

	if payload.IsCancel() {
		e.bookMu.Lock()
		err := e.orderbook.CancelOrder(payload.OrderID)
		e.bookMu.Unlock()
		if err != nil {
			e.countRejected(err)
			return err
		}
		e.countProcessed(payload.Type)
		return nil
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		e.countRejected(err)
		return err
	}

	e.bookMu.Lock()
	trades, err := e.orderbook.PlaceOrder(cmd)
	lastPrice := e.orderbook.GetLastPrice()
	e.bookMu.Unlock()
	if err != nil {
		e.countRejected(err)
		return err
	}

	e.countProcessed(payload.Type)
	if len(trades) > 0 {
		e.publishTrades(trades, lastPrice)
	}
	return nil
}

// publishTrades pushes trade events to the outbound topic and updates
// statistics. Publish failures are logged and skipped; the book has already
// moved on and the stream stays replayable from snapshots.
func (e *Engine) publishTrades(trades []orderbookv1.TradeEvent, lastPrice int64) {
	e.tradesMutex.Lock()
	e.totalTrades += int64(len(trades))
	currentTotal := e.totalTrades
	e.tradesMutex.Unlock()

	for _, trade := range trades {
		ev := tradepublisherv1.CreateFromTrade(e.config.Symbol, trade)
		if err := e.tradePublisher.PublishTradeEvent(e.ctx, ev); err != nil {
			e.logger.ErrorContext(e.ctx, err, logger.Field{
				Key:   "action",
				Value: "publish_trade_event",
			}, logger.Field{
				Key:   "makerOrderID",
				Value: trade.MakerOrderID,
			})
			continue
		}
		if e.metrics != nil {
			e.metrics.TradesTotal.Inc()
			e.metrics.TradeVolume.Add(float64(trade.Size))
		}
	}

	if e.metrics != nil {
		// An activated stop shows up in the stream as a taker under its
		// derived id. One activation can fill across several events, so
		// count distinct takers. An activation that rests without crossing
		// is not observable here.
		activated := make(map[int64]struct{})
		for _, trade := range trades {
			if orderbookv1.IsTriggeredID(trade.TakerOrderID) {
				activated[trade.TakerOrderID] = struct{}{}
			}
		}
		if len(activated) > 0 {
			e.metrics.StopActivations.Add(float64(len(activated)))
		}
		e.metrics.LastPrice.Set(float64(lastPrice))
	}

	e.logger.Info("Trades executed",
		logger.Field{Key: "tradeCount", Value: len(trades)},
		logger.Field{Key: "totalTrades", Value: currentTotal},
		logger.Field{Key: "lastPrice", Value: lastPrice},
	)
}

func (e *Engine) countProcessed(payloadType string) {
	if e.metrics != nil {
		e.metrics.OrdersProcessed.WithLabelValues(payloadType).Inc()
	}
}

func (e *Engine) countRejected(err error) {
	if e.metrics != nil {
		e.metrics.OrdersRejected.WithLabelValues(rejectionReason(err)).Inc()
	}
}

// shouldCreateSnapshot checks if a snapshot should be created.
func (e *Engine) shouldCreateSnapshot() bool {
	e.mu.RLock()
	currentOffset := e.orderOffset
	lastSnapshotOffset := e.lastSnapshotOffset
	e.mu.RUnlock()

	if currentOffset <= 0 {
		return false
	}

	delta := currentOffset - lastSnapshotOffset
	return delta >= e.snapshotOffsetDelta
}

// createAndStoreSnapshot validates the book, then captures and stores a
// snapshot. A failed validation stops the engine: the book can no longer be
// trusted and must be rebuilt from the last good snapshot.
func (e *Engine) createAndStoreSnapshot() {
	currentOffset := e.getOrderOffset()

	e.logger.Info("Creating snapshot", logger.Field{
		Key:   "currentOffset",
		Value: currentOffset,
	})

	e.bookMu.Lock()
	if err := e.orderbook.ValidateInternalState(); err != nil {
		e.bookMu.Unlock()
		e.logger.ErrorContext(e.ctx, err, logger.Field{
			Key:   "action",
			Value: "validate_internal_state",
		})
		e.cancel()
		return
	}
	snapshot := e.orderbook.CreateSnapshot()
	depth := e.orderbook.GetL2MarketDataSnapshot(0)
	e.bookMu.Unlock()

	snapshot.OrderOffset = currentOffset

	if err := e.snapshotStore.Store(e.ctx, snapshot); err != nil {
		e.logger.ErrorContext(e.ctx, err, logger.Field{
			Key:   "action",
			Value: "store_snapshot",
		})
		return
	}

	e.setLastSnapshotOffset(currentOffset)
	if e.metrics != nil {
		e.metrics.SnapshotsCreated.Inc()
		e.metrics.BookDepth.WithLabelValues("ask").Set(float64(len(depth.Asks)))
		e.metrics.BookDepth.WithLabelValues("bid").Set(float64(len(depth.Bids)))
	}
	e.logger.Info("Snapshot stored successfully", logger.Field{
		Key:   "symbol",
		Value: e.config.Symbol,
	}, logger.Field{
		Key:   "offset",
		Value: currentOffset,
	})
}

// Thread-safe getters and setters
func (e *Engine) getOrderOffset() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.orderOffset
}

func (e *Engine) setOrderOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.orderOffset = offset
}

func (e *Engine) getLastSnapshotOffset() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastSnapshotOffset
}

func (e *Engine) setLastSnapshotOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSnapshotOffset = offset
}

// loadSnapshot loads and restores the orderbook from snapshot.
func (e *Engine) loadSnapshot(ctx context.Context) error {
	snapshot, err := e.snapshotStore.LoadStore(ctx)
	if err != nil {
		return err
	}

	if snapshot != nil {
		if err := e.orderbook.RestoreOrderbook(snapshot); err != nil {
			return err
		}
		e.mu.Lock()
		e.orderOffset = snapshot.OrderOffset
		e.lastSnapshotOffset = snapshot.OrderOffset
		e.mu.Unlock()

		e.logger.Info("Orderbook restored from snapshot", logger.Field{
			Key:   "orderOffset",
			Value: snapshot.OrderOffset,
		})
	}

	return nil
}

// GetOrderOffset returns the current order offset.
func (e *Engine) GetOrderOffset() int64 {
	return e.getOrderOffset()
}

// GetLastSnapshotOffset returns the last snapshot offset.
func (e *Engine) GetLastSnapshotOffset() int64 {
	return e.getLastSnapshotOffset()
}

// GetTotalTrades returns the total number of trades published.
func (e *Engine) GetTotalTrades() int64 {
	e.tradesMutex.RLock()
	defer e.tradesMutex.RUnlock()
	return e.totalTrades
}
