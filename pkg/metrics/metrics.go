package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_cache_operations_total",
			Help: "Page cache operations",
		},
		[]string{"op"}, // hit|miss|bypass|expired|evicted
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "page_cache_size",
			Help: "Number of pages currently cached",
		},
	)
)

var (
	OrdersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Number of orders committed successfully",
		},
	)
	OrdersRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_rejected_total",
			Help: "Number of orders rejected before commit",
		},
		[]string{"reason"}, // not_found|insufficient_stock|internal
	)
)

var (
	ImportMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_messages_consumed_total",
			Help: "Number of catalog-import messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	ImportMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_messages_processed_total",
			Help: "Number of catalog-import messages processed successfully",
		},
		[]string{"topic"},
	)
	ImportMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_messages_failed_total",
			Help: "Number of catalog-import messages failed to process",
		},
		[]string{"topic"},
	)
)

var registered = false

// MustRegister — регистрирует коллекторы; повторный вызов безопасен.
func MustRegister() {
	if registered {
		return
	}
	registered = true
	prometheus.MustRegister(
		CacheOps, CacheSize,
		OrdersPlaced, OrdersRejected,
		ImportMessagesConsumed, ImportMessagesProcessed, ImportMessagesFailed,
	)
}
