package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStorefrontMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStorefrontMetrics(reg)

	m.IncOrderConfirmed("cod")
	m.IncOrderConfirmed("cod")
	m.IncOrderConfirmed("")
	m.IncNotifyFailure()
	m.IncPriceMiss()
	m.IncCartRestoreError()
	m.ObserveSubmitDuration("confirmed", 120*time.Millisecond)

	if got := testutil.ToFloat64(m.ordersConfirmed.WithLabelValues("cod")); got != 2 {
		t.Fatalf("expected 2 cod orders, got %v", got)
	}
	if got := testutil.ToFloat64(m.ordersConfirmed.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty payment method to normalize to unknown, got %v", got)
	}
	if got := testutil.ToFloat64(m.notifyFailures); got != 1 {
		t.Fatalf("expected 1 notify failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.priceMisses); got != 1 {
		t.Fatalf("expected 1 price miss, got %v", got)
	}
	if got := testutil.ToFloat64(m.cartRestoreErrs); got != 1 {
		t.Fatalf("expected 1 cart restore error, got %v", got)
	}
}

func TestStorefrontMetricsNilSafe(t *testing.T) {
	var m *StorefrontMetrics
	m.IncOrderConfirmed("cod")
	m.IncNotifyFailure()
	m.IncPriceMiss()
	m.IncCartRestoreError()
	m.ObserveSubmitDuration("confirmed", time.Second)

	unregistered := NewStorefrontMetrics(nil)
	unregistered.IncOrderConfirmed("card")
}
