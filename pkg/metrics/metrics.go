package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the marketplace counters. Registration goes through an
// injectable registerer so tests can use a private registry.
type Metrics struct {
	cartMutations     *prometheus.CounterVec
	ordersCreated     prometheus.Counter
	statusTransitions *prometheus.CounterVec
}

func New() *Metrics {
	return newWithRegisterer(prometheus.DefaultRegisterer)
}

func NewForTesting() *Metrics {
	return newWithRegisterer(prometheus.NewRegistry())
}

func newWithRegisterer(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bhojonbox_cart_mutations_total",
			Help: "Total number of cart store mutations by operation",
		}, []string{"op"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bhojonbox_orders_created_total",
			Help: "Total number of orders created",
		}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bhojonbox_order_status_transitions_total",
			Help: "Total number of accepted order status transitions",
		}, []string{"to"}),
	}

	reg.MustRegister(m.cartMutations, m.ordersCreated, m.statusTransitions)
	return m
}

func (m *Metrics) CartMutation(op string) {
	if m == nil {
		return
	}
	m.cartMutations.WithLabelValues(op).Inc()
}

func (m *Metrics) OrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

func (m *Metrics) StatusTransition(to string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(to).Inc()
}
