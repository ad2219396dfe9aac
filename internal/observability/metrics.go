package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Metrics exposes the application-level counters served on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	ClaimsSubmitted   *prometheus.CounterVec
	ClaimsUpdated     prometheus.Counter
	ContentChanges    *prometheus.CounterVec
	ConstanciasServed prometheus.Counter
	LoginAttempts     *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())

	m := &Metrics{
		registry: registry,
		ClaimsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fogon_claims_submitted_total",
			Help: "Claims registered through the public claims book.",
		}, []string{"tipo_registro"}),
		ClaimsUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fogon_claims_updated_total",
			Help: "Admin updates applied to existing claims.",
		}),
		ContentChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fogon_content_changes_total",
			Help: "Catalog and settings mutations by table.",
		}, []string{"table"}),
		ConstanciasServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fogon_constancias_served_total",
			Help: "Constancia PDF downloads served.",
		}),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fogon_login_attempts_total",
			Help: "Admin login attempts by outcome.",
		}, []string{"outcome"}),
	}

	registry.MustRegister(
		m.ClaimsSubmitted,
		m.ClaimsUpdated,
		m.ContentChanges,
		m.ConstanciasServed,
		m.LoginAttempts,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

var Module = fx.Module("observability",
	fx.Provide(New),
)
