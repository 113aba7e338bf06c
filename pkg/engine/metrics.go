package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/toastify/pkg/toast"
)

// MetricsConfig configures the Prometheus metrics of an engine.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "toastify").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the engine metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "toastify",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors of an engine.
// A nil *Metrics records nothing.
type Metrics struct {
	active  *prometheus.GaugeVec
	queued  prometheus.Gauge
	shown   *prometheus.CounterVec
	removed prometheus.Counter
}

// NewMetrics registers the engine collectors.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		active: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_toasts",
			Help:        "Number of toasts currently rendered, by position",
			ConstLabels: config.ConstLabels,
		}, []string{"position"}),

		queued: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "queued_toasts",
			Help:        "Number of toasts waiting for a free slot",
			ConstLabels: config.ConstLabels,
		}),

		shown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_shown_total",
			Help:        "Total number of toasts shown, by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		removed: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_removed_total",
			Help:        "Total number of toasts removed after their exit",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) toastShown(t toast.Type) {
	if m == nil {
		return
	}
	m.shown.WithLabelValues(string(t)).Inc()
}

func (m *Metrics) toastRemoved() {
	if m == nil {
		return
	}
	m.removed.Inc()
}

// observe sets the gauges from a full count.
func (m *Metrics) observe(byPosition map[toast.Position]int, queued int) {
	if m == nil {
		return
	}
	for _, pos := range toast.Positions {
		m.active.WithLabelValues(string(pos)).Set(float64(byPosition[pos]))
	}
	m.queued.Set(float64(queued))
}
