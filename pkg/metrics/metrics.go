package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the matching engine metrics.
type Metrics struct {
	OrdersProcessed  *prometheus.CounterVec
	OrdersRejected   *prometheus.CounterVec
	TradesTotal      prometheus.Counter
	TradeVolume      prometheus.Counter
	StopActivations  prometheus.Counter
	SnapshotsCreated prometheus.Counter
	BookDepth        *prometheus.GaugeVec
	LastPrice        prometheus.Gauge
}

// NewMetrics creates and registers the matching engine metrics on the
// default registry.
func NewMetrics(symbol string) *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer, symbol)
}

// NewMetricsWith creates and registers the matching engine metrics on the
// given registerer. Tests pass a fresh registry to avoid duplicate
// registration across cases.
func NewMetricsWith(reg prometheus.Registerer, symbol string) *Metrics {
	labels := prometheus.Labels{"symbol": symbol}
	factory := promauto.With(reg)
	return &Metrics{
		OrdersProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "matching_orders_processed_total",
				Help:        "Total number of order commands processed",
				ConstLabels: labels,
			},
			[]string{"type"},
		),
		OrdersRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "matching_orders_rejected_total",
				Help:        "Total number of order commands rejected",
				ConstLabels: labels,
			},
			[]string{"reason"},
		),
		TradesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name:        "matching_trades_total",
				Help:        "Total number of trades executed",
				ConstLabels: labels,
			},
		),
		TradeVolume: factory.NewCounter(
			prometheus.CounterOpts{
				Name:        "matching_trade_volume_total",
				Help:        "Total traded volume in size units",
				ConstLabels: labels,
			},
		),
		StopActivations: factory.NewCounter(
			prometheus.CounterOpts{
				Name:        "matching_stop_activations_total",
				Help:        "Total number of stop-loss/take-profit activations",
				ConstLabels: labels,
			},
		),
		SnapshotsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name:        "matching_snapshots_created_total",
				Help:        "Total number of book snapshots stored",
				ConstLabels: labels,
			},
		),
		BookDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "matching_book_depth_levels",
				Help:        "Number of price levels resting per side",
				ConstLabels: labels,
			},
			[]string{"side"},
		),
		LastPrice: factory.NewGauge(
			prometheus.GaugeOpts{
				Name:        "matching_last_price",
				Help:        "Most recent trade price",
				ConstLabels: labels,
			},
		),
	}
}
