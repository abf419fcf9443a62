package scheduler

import (
	"strconv"
	"time"

	enkimetrics "github.com/ssghost/enkiTS/pkg/metrics"
)

// NewWithMetrics is New, instrumented against reg under name.
func NewWithMetrics(name string, reg *enkimetrics.Registry) *Scheduler {
	return NewWithConfigAndMetrics(Config{}, name, reg)
}

// NewWithConfigAndMetrics is NewWithConfig, instrumented against reg
// under name. Pipe depth is sampled by a background goroutine started
// alongside the workers and stopped by Shutdown.
func NewWithConfigAndMetrics(cfg Config, name string, reg *enkimetrics.Registry) *Scheduler {
	s := NewWithConfig(cfg)
	s.name = name
	s.registry = reg
	s.metricsEnabled = true

	s.wg.Add(1)
	go s.samplePipeDepths()

	return s
}

// pipeDepthSampleInterval governs how often the pipe-depth gauge is
// refreshed; frequent enough to be useful on a dashboard, infrequent
// enough not to contend with the hot path on the pipes' atomic cursors.
const pipeDepthSampleInterval = 100 * time.Millisecond

func (s *Scheduler) samplePipeDepths() {
	defer s.wg.Done()

	ticker := time.NewTicker(pipeDepthSampleInterval)
	defer ticker.Stop()

	for s.running.Load() {
		<-ticker.C
		for i, p := range s.pipes {
			depth := p.Depth()
			s.registry.PipeDepth.WithLabelValues(s.name, strconv.Itoa(i)).Set(float64(depth))
		}
	}
}
