package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	app "github.com/luca-simonetti/exchange-core/internal/app/engine"
	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
	orderreader "github.com/luca-simonetti/exchange-core/internal/usecase/order-reader"
	orderbook "github.com/luca-simonetti/exchange-core/internal/usecase/orderbook"
	snapshot "github.com/luca-simonetti/exchange-core/internal/usecase/snapshot"
	tradepublisher "github.com/luca-simonetti/exchange-core/internal/usecase/trade-publisher"
	"github.com/luca-simonetti/exchange-core/pkg/config"
	"github.com/luca-simonetti/exchange-core/pkg/logger"
	"github.com/luca-simonetti/exchange-core/pkg/metrics"
	"github.com/luca-simonetti/exchange-core/pkg/redis"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	var err error
	cfg = &config.Config{}
	err = config.Load(cfg)
	if err != nil {
		panic(err)
	}

	logger, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}

	log = logger
}

func main() {
	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	redisConfig := redis.DefaultConfig()
	redisConfig.Addrs = strings.Split(cfg.RedisConfig.Addrs, ",")
	redisConfig.Password = cfg.RedisConfig.Password
	redisConfig.Username = cfg.RedisConfig.Username
	redisConfig.DB = cfg.RedisConfig.DB
	// Initialize Redis client
	rclient := redis.NewClient(log, redisConfig)

	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_redis",
		})
		return
	}

	// Expose Prometheus metrics
	m := metrics.NewMetrics(cfg.Symbol)
	metricsServer := &http.Server{
		Addr:    cfg.MetricsConfig.Addr,
		Handler: promhttp.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "serve_metrics",
			})
		}
	}()

	// Initialize components
	book := orderbook.NewBook(orderbookv1.SymbolSpec{
		Symbol:   cfg.Symbol,
		MaxDepth: cfg.MaxDepth,
	}, log)
	oReader := orderreader.NewReader(cfg.KafkaConfig, log)
	snapshotStore := snapshot.NewSnapshotStore(rclient, cfg.Symbol, log)
	tradePublisher := tradepublisher.NewPublisher(cfg.TradePublisherConfig, log)
	engine := app.NewEngineWithOptions(
		book,
		oReader,
		tradePublisher,
		snapshotStore,
		log,
		cfg,
		m,
		app.EngineOptionsFromConfig(cfg),
	)

	// Start the engine
	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_engine",
		})
		return
	}

	log.Info("Matching engine started successfully", logger.Field{
		Key:   "symbol",
		Value: cfg.Symbol,
	})

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info("Received shutdown signal", logger.Field{
		Key:   "signal",
		Value: sig.String(),
	})

	// Cancel the main context to signal shutdown
	cancel()

	// Create a timeout context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Stop the engine gracefully
	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_engine",
		})
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "shutdown_metrics_server",
		})
	}

	if err := tradePublisher.Close(); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "close_trade_publisher",
		})
	}

	if err := rclient.Disconnect(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "disconnect_redis",
		})
	}

	log.Info("Matching engine shutdown complete")
}
