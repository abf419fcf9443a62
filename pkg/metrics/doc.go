// Package metrics provides Prometheus instrumentation for the enkiTS
// scheduler.
//
// # Overview
//
// The metrics package instruments:
//   - Partition submission (how a WorkSet's range gets split and queued)
//   - Stealing (how often peers take work instead of the owner)
//   - Inline-overflow (how often a full pipe forces synchronous execution)
//   - Pipe occupancy and per-WorkSet completion latency
//
// # Quick Start
//
//	sched := scheduler.NewWithMetrics("frame_scheduler", metrics.DefaultRegistry)
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
//	reg := prometheus.NewRegistry()
//	registry := metrics.NewRegistry(reg)
//	sched := scheduler.NewWithConfigAndMetrics(scheduler.Config{NumWorkers: 4}, "frame_scheduler", registry)
//
// # Available Metrics
//
//   - enki_scheduler_partitions_submitted_total
//   - enki_scheduler_partitions_stolen_total
//   - enki_scheduler_partitions_inlined_total
//   - enki_scheduler_pipe_depth
//   - enki_scheduler_workset_completion_seconds
//
// # Performance
//
// Metrics collection only runs when a scheduler is constructed with
// metrics enabled; an unmetered Scheduler pays no counter-increment cost
// on its hot path.
package metrics
