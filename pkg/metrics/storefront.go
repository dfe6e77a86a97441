package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records order submission and cart health counters.
type StorefrontMetrics struct {
	submitDuration  *prometheus.HistogramVec
	ordersConfirmed *prometheus.CounterVec
	notifyFailures  prometheus.Counter
	priceMisses     prometheus.Counter
	cartRestoreErrs prometheus.Counter
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	submitDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "order_submit_duration_seconds",
		Help:    "Duration of order submissions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	ordersConfirmed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_confirmed_total",
		Help: "Confirmed orders by payment method.",
	}, []string{"payment_method"})
	notifyFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_notify_failures_total",
		Help: "Order notification sends that exhausted retries.",
	})
	priceMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "price_resolution_misses_total",
		Help: "Size selections whose price label could not be resolved.",
	})
	cartRestoreErrs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_restore_errors_total",
		Help: "Cart slots that failed to restore and fell back to empty.",
	})
	reg.MustRegister(submitDuration, ordersConfirmed, notifyFailures, priceMisses, cartRestoreErrs)
	return &StorefrontMetrics{
		submitDuration:  submitDuration,
		ordersConfirmed: ordersConfirmed,
		notifyFailures:  notifyFailures,
		priceMisses:     priceMisses,
		cartRestoreErrs: cartRestoreErrs,
	}
}

// ObserveSubmitDuration records how long a submission took.
func (m *StorefrontMetrics) ObserveSubmitDuration(outcome string, duration time.Duration) {
	if m == nil || m.submitDuration == nil {
		return
	}
	m.submitDuration.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

// IncOrderConfirmed counts a confirmed order under its payment method.
func (m *StorefrontMetrics) IncOrderConfirmed(paymentMethod string) {
	if m == nil || m.ordersConfirmed == nil {
		return
	}
	m.ordersConfirmed.WithLabelValues(normalizeLabel(paymentMethod)).Inc()
}

// IncNotifyFailure counts a notification send that gave up.
func (m *StorefrontMetrics) IncNotifyFailure() {
	if m == nil || m.notifyFailures == nil {
		return
	}
	m.notifyFailures.Inc()
}

// IncPriceMiss counts a size/price label lookup that fell back to zero.
func (m *StorefrontMetrics) IncPriceMiss() {
	if m == nil || m.priceMisses == nil {
		return
	}
	m.priceMisses.Inc()
}

// IncCartRestoreError counts a cart restore that fell back to empty.
func (m *StorefrontMetrics) IncCartRestoreError() {
	if m == nil || m.cartRestoreErrs == nil {
		return
	}
	m.cartRestoreErrs.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
