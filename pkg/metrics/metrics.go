package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for the enkiTS scheduler.
type Registry struct {
	PartitionsSubmitted *prometheus.CounterVec
	PartitionsStolen    *prometheus.CounterVec
	PartitionsInlined   *prometheus.CounterVec
	PipeDepth           *prometheus.GaugeVec
	WorkSetCompletion   *prometheus.HistogramVec
}

// DefaultRegistry is a Registry registered against
// prometheus.DefaultRegisterer. The scheduler's metrics constructors take
// a Registry explicitly; none of them falls back to this one.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		PartitionsSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "enki",
				Subsystem: "scheduler",
				Name:      "partitions_submitted_total",
				Help:      "Total number of partitions pushed onto a pipe by AddTaskSetToPipe",
			},
			[]string{"scheduler_name"},
		),

		PartitionsStolen: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "enki",
				Subsystem: "scheduler",
				Name:      "partitions_stolen_total",
				Help:      "Total number of partitions executed via a back-pop from a peer's pipe",
			},
			[]string{"scheduler_name"},
		),

		PartitionsInlined: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "enki",
				Subsystem: "scheduler",
				Name:      "partitions_inlined_total",
				Help:      "Total number of partitions executed inline because the submitter's pipe was full",
			},
			[]string{"scheduler_name"},
		),

		PipeDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "enki",
				Subsystem: "scheduler",
				Name:      "pipe_depth",
				Help:      "Best-effort occupancy of a worker's pipe at the moment of last observation",
			},
			[]string{"scheduler_name", "worker_id"},
		),

		WorkSetCompletion: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "enki",
				Subsystem: "scheduler",
				Name:      "workset_completion_seconds",
				Help:      "Wall-clock time between AddTaskSetToPipe and a WorkSet's completion counter reaching zero",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"scheduler_name"},
		),
	}
}
