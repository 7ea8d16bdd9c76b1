package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds the counters for the order lifecycle.
type OrderMetrics struct {
	OrdersCreatedTotal         prometheus.CounterVec
	OrdersCreatedAmountTotal   prometheus.CounterVec
	OrdersCompletedTotal       prometheus.CounterVec
	OrdersCompletedAmountTotal prometheus.CounterVec
	VerifyFailuresTotal        prometheus.CounterVec
	PlaceOrderDuration         prometheus.HistogramVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total number of orders created",
			},
			[]string{"seller_id"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total amount of created orders",
			},
			[]string{"seller_id"},
		),

		OrdersCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_completed_total",
				Help: "Total number of completed orders",
			},
			[]string{"seller_id"},
		),

		OrdersCompletedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_completed_amount_total",
				Help: "Total amount of completed orders",
			},
			[]string{"seller_id"},
		),

		VerifyFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_verify_failures_total",
				Help: "Delivery code verification failures by reason",
			},
			[]string{"reason"},
		),

		PlaceOrderDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "place_order_duration_seconds",
				Help:    "Time spent placing an order batch",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"outcome"},
		),
	}
}

func (m *OrderMetrics) RecordOrderCreated(sellerID string, amount float64) {
	m.OrdersCreatedTotal.WithLabelValues(sellerID).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(sellerID).Add(amount)
}

func (m *OrderMetrics) RecordOrderCompleted(sellerID string, amount float64) {
	m.OrdersCompletedTotal.WithLabelValues(sellerID).Inc()
	m.OrdersCompletedAmountTotal.WithLabelValues(sellerID).Add(amount)
}

func (m *OrderMetrics) RecordVerifyFailure(reason string) {
	m.VerifyFailuresTotal.WithLabelValues(reason).Inc()
}

func (m *OrderMetrics) RecordPlaceOrderDuration(outcome string, seconds float64) {
	m.PlaceOrderDuration.WithLabelValues(outcome).Observe(seconds)
}
