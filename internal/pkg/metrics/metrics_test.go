package metrics_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveOrderChange("placed")
	m.ObserveOrderChange("placed")
	m.ObservePaymentCallback("success", nil)
	m.ObservePaymentCallback("success", errors.New("boom"))
	m.ObservePublishFailure()
	m.ObservePurgedOrders(3)
	m.ObservePurgedOrders(0)
	m.ObserveHTTPRequest("GET", "/api/v1/orders", 200)

	count, err := testutil.GatherAndCount(reg,
		"foodorder_order_changes_total",
		"foodorder_payment_callbacks_total",
		"foodorder_order_event_publish_failures_total",
		"foodorder_purged_orders_total",
		"foodorder_http_requests_total",
	)
	require.NoError(t, err)
	// one series for order changes, two for callbacks, one each for the rest
	assert.Equal(t, 6, count)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveOrderChange("placed")
		m.ObservePaymentCallback("failure", nil)
		m.ObservePublishFailure()
		m.ObservePurgedOrders(1)
		m.ObserveHTTPRequest("POST", "/", 500)
	})
}
