package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Gunvolt24/record-store/pkg/metrics"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Повторный вызов не должен паниковать.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	beforeHit := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit"))
	beforeMiss := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss"))

	metrics.CacheOps.WithLabelValues("hit").Inc()
	metrics.CacheOps.WithLabelValues("miss").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit")); got != beforeHit+1 {
		t.Fatalf("CacheOps{hit}: got=%v want=%v", got, beforeHit+1)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss")); got != beforeMiss+1 {
		t.Fatalf("CacheOps{miss}: got=%v want=%v", got, beforeMiss+1)
	}
}

func TestOrderCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforePlaced := testutil.ToFloat64(metrics.OrdersPlaced)
	beforeRejected := testutil.ToFloat64(metrics.OrdersRejected.WithLabelValues("insufficient_stock"))

	metrics.OrdersPlaced.Inc()
	metrics.OrdersRejected.WithLabelValues("insufficient_stock").Inc()

	if got := testutil.ToFloat64(metrics.OrdersPlaced); got != beforePlaced+1 {
		t.Fatalf("OrdersPlaced: got=%v want=%v", got, beforePlaced+1)
	}
	if got := testutil.ToFloat64(metrics.OrdersRejected.WithLabelValues("insufficient_stock")); got != beforeRejected+1 {
		t.Fatalf("OrdersRejected: got=%v want=%v", got, beforeRejected+1)
	}
}

func TestImportCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.ImportMessagesConsumed.WithLabelValues("records"))
	metrics.ImportMessagesConsumed.WithLabelValues("records").Inc()

	if got := testutil.ToFloat64(metrics.ImportMessagesConsumed.WithLabelValues("records")); got != before+1 {
		t.Fatalf("ImportMessagesConsumed: got=%v want=%v", got, before+1)
	}
}
