// Package metrics collects counters for the order workflow on a private
// Prometheus registry. The demo has no metrics endpoint; Snapshot exposes
// the current values for printing at the end of a run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

type Registry struct {
	reg *prometheus.Registry

	OrdersCreated     prometheus.Counter
	OrdersPaid        prometheus.Counter
	OrdersShipped     prometheus.Counter
	PaymentFailures   prometheus.Counter
	NotificationsSent prometheus.Counter
	PaymentLatencySec prometheus.Histogram
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	created := prometheus.NewCounter(prometheus.CounterOpts{Name: "orders_created_total"})
	paid := prometheus.NewCounter(prometheus.CounterOpts{Name: "orders_paid_total"})
	shipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "orders_shipped_total"})
	paymentFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "payment_failures_total"})
	notifications := prometheus.NewCounter(prometheus.CounterOpts{Name: "notifications_sent_total"})
	paymentLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "payment_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})

	reg.MustRegister(created, paid, shipped, paymentFailures, notifications, paymentLatency)

	return &Registry{
		reg:               reg,
		OrdersCreated:     created,
		OrdersPaid:        paid,
		OrdersShipped:     shipped,
		PaymentFailures:   paymentFailures,
		NotificationsSent: notifications,
		PaymentLatencySec: paymentLatency,
	}
}

// Snapshot gathers the registry and returns counter values by metric name.
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64)

	families, err := r.reg.Gather()
	if err != nil {
		return out
	}
	for _, family := range families {
		if family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		var total float64
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		out[family.GetName()] = total
	}
	return out
}
