package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics counts cart activity and order submissions.
type OrderMetrics struct {
	cartOps     *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

// NewOrderMetrics registers the storefront metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_operations_total",
		Help: "Cart operations applied, by operation.",
	}, []string{"op"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_order_submissions_total",
		Help: "Order submissions, by result (composed or the rejection kind).",
	}, []string{"result"})
	reg.MustRegister(cartOps, submissions)
	return &OrderMetrics{cartOps: cartOps, submissions: submissions}
}

// IncCartOp records one add/remove/quantity operation.
func (m *OrderMetrics) IncCartOp(op string) {
	if m == nil || m.cartOps == nil {
		return
	}
	m.cartOps.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncSubmission records a submission outcome.
func (m *OrderMetrics) IncSubmission(result string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(result)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
