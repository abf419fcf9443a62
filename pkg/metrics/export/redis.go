package export

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for a Publisher.
type Config struct {
	// Redis is the client used to write snapshots. Required.
	Redis *redis.Client

	// KeyPrefix namespaces the Redis hash key; the full key is
	// KeyPrefix + ":" + InstanceID.
	KeyPrefix string

	// InstanceID distinguishes this process's snapshot from others
	// sharing the same KeyPrefix.
	InstanceID string

	// Interval is how often a snapshot is published.
	Interval time.Duration

	// RedisTimeout bounds each write's context, mirroring the teacher's
	// per-call Redis timeout convention.
	RedisTimeout time.Duration
}

func (c Config) key() string {
	return fmt.Sprintf("%s:%s", c.KeyPrefix, c.InstanceID)
}

// Publisher periodically gathers metric families from a
// prometheus.Gatherer and writes their values into a Redis hash.
type Publisher struct {
	cfg     Config
	gather  prometheus.Gatherer
	stop    chan struct{}
	stopped chan struct{}
}

// NewPublisher returns a Publisher that snapshots gather into Redis
// according to cfg. Call Start to begin publishing and Stop to end it.
func NewPublisher(gather prometheus.Gatherer, cfg Config) *Publisher {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.RedisTimeout <= 0 {
		cfg.RedisTimeout = 2 * time.Second
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "enki:metrics"
	}

	return &Publisher{
		cfg:     cfg,
		gather:  gather,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start launches the background publish loop. It returns immediately;
// the loop runs until Stop is called.
func (p *Publisher) Start() {
	go p.run()
}

func (p *Publisher) run() {
	defer close(p.stopped)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			if err := p.publishOnce(); err != nil {
				// A failed publish is dropped: the error is neither
				// logged nor recorded, and the loop carries on with the
				// next tick. Keeping the loop alive matters more than
				// any single failed write.
				continue
			}
		}
	}
}

// Stop ends the publish loop and waits for it to exit.
func (p *Publisher) Stop() {
	close(p.stop)
	<-p.stopped
}

// Snapshot gathers the current metric values without involving Redis,
// for tests and for callers that want to inspect what would be
// published.
func (p *Publisher) Snapshot() (map[string]float64, error) {
	families, err := p.gather.Gather()
	if err != nil {
		return nil, fmt.Errorf("export: gather metrics: %w", err)
	}
	return flatten(families), nil
}

func (p *Publisher) publishOnce() error {
	snapshot, err := p.Snapshot()
	if err != nil {
		return err
	}
	if len(snapshot) == 0 {
		return nil
	}

	fields := make(map[string]interface{}, len(snapshot))
	for k, v := range snapshot {
		fields[k] = v
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.RedisTimeout)
	defer cancel()

	return p.cfg.Redis.HSet(ctx, p.cfg.key(), fields).Err()
}

// flatten reduces Prometheus metric families to a flat field-name ->
// value map, joining the metric name and its label values since Redis
// hash fields carry no label structure of their own.
func flatten(families []*dto.MetricFamily) map[string]float64 {
	out := make(map[string]float64)
	for _, family := range families {
		name := family.GetName()
		for _, m := range family.GetMetric() {
			field := name
			for _, lp := range m.GetLabel() {
				field += "." + lp.GetValue()
			}

			switch {
			case m.Counter != nil:
				out[field] = m.Counter.GetValue()
			case m.Gauge != nil:
				out[field] = m.Gauge.GetValue()
			case m.Histogram != nil:
				out[field+".count"] = float64(m.Histogram.GetSampleCount())
				out[field+".sum"] = m.Histogram.GetSampleSum()
			}
		}
	}
	return out
}
