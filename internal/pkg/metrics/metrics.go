// Package metrics holds the prometheus collectors of the service.
//
// All Observe methods are safe on a nil *Metrics, so components built in tests
// without a registry need no special casing.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "foodorder"

type Metrics struct {
	orderChanges     *prometheus.CounterVec
	paymentCallbacks *prometheus.CounterVec
	publishFailures  prometheus.Counter
	purgedOrders     prometheus.Counter
	httpRequests     *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		orderChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_changes_total",
			Help:      "Committed order status changes by reason.",
		}, []string{"reason"}),
		paymentCallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_callbacks_total",
			Help:      "Gateway callbacks by outcome and result.",
		}, []string{"outcome", "result"}),
		publishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_event_publish_failures_total",
			Help:      "Order-changed event batches that could not be published.",
		}),
		purgedOrders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purged_orders_total",
			Help:      "Orders removed by the retention job.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
	}

	reg.MustRegister(m.orderChanges, m.paymentCallbacks, m.publishFailures, m.purgedOrders, m.httpRequests)
	return m
}

func (m *Metrics) ObserveOrderChange(reason string) {
	if m == nil {
		return
	}
	m.orderChanges.WithLabelValues(reason).Inc()
}

// ObservePaymentCallback counts a success/failure report; result is "ok" or "error".
func (m *Metrics) ObservePaymentCallback(outcome string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.paymentCallbacks.WithLabelValues(outcome, result).Inc()
}

func (m *Metrics) ObservePublishFailure() {
	if m == nil {
		return
	}
	m.publishFailures.Inc()
}

func (m *Metrics) ObservePurgedOrders(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.purgedOrders.Add(float64(n))
}

func (m *Metrics) ObserveHTTPRequest(method, route string, code int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}
