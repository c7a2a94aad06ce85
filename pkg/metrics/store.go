package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics counts domain-store operations and the soft failures they absorb.
type StoreMetrics struct {
	ops          *prometheus.CounterVec
	softFailures *prometheus.CounterVec
	orders       prometheus.Counter
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operations_total",
		Help: "Domain store operations by store and operation.",
	}, []string{"store", "op"})
	softFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_soft_failures_total",
		Help: "Storage failures absorbed by the soft-fail policy.",
	}, []string{"store", "op", "kind"})
	orders := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders materialized at checkout.",
	})
	reg.MustRegister(ops, softFailures, orders)
	return &StoreMetrics{
		ops:          ops,
		softFailures: softFailures,
		orders:       orders,
	}
}

// IncOp increments the operation counter for the named store op.
func (s *StoreMetrics) IncOp(store, op string) {
	if s == nil || s.ops == nil {
		return
	}
	s.ops.WithLabelValues(normalizeLabel(store), normalizeLabel(op)).Inc()
}

// IncReadFailure records a storage read that degraded to an empty collection.
func (s *StoreMetrics) IncReadFailure(store, op string) {
	if s == nil || s.softFailures == nil {
		return
	}
	s.softFailures.WithLabelValues(normalizeLabel(store), normalizeLabel(op), "read").Inc()
}

// IncWriteFailure records a write whose in-memory result was still returned.
func (s *StoreMetrics) IncWriteFailure(store, op string) {
	if s == nil || s.softFailures == nil {
		return
	}
	s.softFailures.WithLabelValues(normalizeLabel(store), normalizeLabel(op), "write").Inc()
}

// IncOrderCreated bumps the checkout counter.
func (s *StoreMetrics) IncOrderCreated() {
	if s == nil || s.orders == nil {
		return
	}
	s.orders.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
