package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Config holds configuration for metrics collection. No function in this
// module reads a Config: NewRegistry takes its Registerer directly and
// always uses the "enki" namespace with no extra labels.
type Config struct {
	// Enabled records whether metrics collection is active.
	Enabled bool

	// Registry is the Prometheus registry to use.
	Registry prometheus.Registerer

	// Namespace names the metrics namespace; DefaultConfig sets "enki".
	Namespace string

	// Labels holds additional constant labels.
	Labels prometheus.Labels
}

// DefaultConfig returns a default metrics configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		Registry:  prometheus.DefaultRegisterer,
		Namespace: "enki",
		Labels:    nil,
	}
}

// Instrumentable is an interface for components that can be instrumented with metrics.
type Instrumentable interface {
	// EnableMetrics enables metrics collection for this component.
	EnableMetrics(config Config) error
	
	// DisableMetrics disables metrics collection for this component.
	DisableMetrics()
	
	// MetricsEnabled returns true if metrics are currently enabled.
	MetricsEnabled() bool
}