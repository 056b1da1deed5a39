// Package metrics holds the domain counters exposed next to the HTTP metrics on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts domain level outcomes that the HTTP status alone does not name
type Metrics struct {
	domainErrors *prometheus.CounterVec
	tokens       *prometheus.CounterVec
}

// New creates the counters and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		domainErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "articles_api",
			Name:      "domain_errors_total",
			Help:      "Requests rejected by a validation, uniqueness or reference check.",
		}, []string{"type"}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "articles_api",
			Name:      "tokens_total",
			Help:      "Token requests by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.domainErrors, m.tokens)
	return m
}

// DomainError records a rejected request of the given error type
func (m *Metrics) DomainError(errType string) {
	if m == nil {
		return
	}
	m.domainErrors.WithLabelValues(errType).Inc()
}

// Token records a token request as issued or rejected
func (m *Metrics) Token(issued bool) {
	if m == nil {
		return
	}
	result := "rejected"
	if issued {
		result = "issued"
	}
	m.tokens.WithLabelValues(result).Inc()
}
