// enkidemo is a small command-line demonstration of the enkiTS
// scheduler: it partitions a configurable amount of synthetic work
// across a worker pool and reports how many items were processed, by
// how many workers, and how long it took.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssghost/enkiTS/pkg/enki/scheduler"
	"github.com/ssghost/enkiTS/pkg/enki/task"
	enkimetrics "github.com/ssghost/enkiTS/pkg/metrics"
)

var (
	numWorkers  int
	numItems    int
	itemCostUs  int
	withMetrics bool
	logLevel    string
)

func main() {
	root := &cobra.Command{
		Use:   "enkidemo",
		Short: "Demonstrates the enkiTS work-stealing scheduler",
		RunE:  runDemo,
	}

	root.Flags().IntVar(&numWorkers, "workers", 0, "Worker count (default: runtime.NumCPU())")
	root.Flags().IntVar(&numItems, "items", 1_000_000, "Number of work items in the demo WorkSet")
	root.Flags().IntVar(&itemCostUs, "item-cost-us", 0, "Simulated per-item cost in microseconds")
	root.Flags().BoolVar(&withMetrics, "metrics", false, "Enable Prometheus instrumentation")
	root.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	var sched *scheduler.Scheduler
	if withMetrics {
		sched = scheduler.NewWithConfigAndMetrics(scheduler.Config{NumWorkers: numWorkers}, "enkidemo", enkimetrics.DefaultRegistry)
	} else {
		sched = scheduler.NewWithConfig(scheduler.Config{NumWorkers: numWorkers})
	}
	defer sched.WaitForAllAndShutdown()

	logger.Info("starting demo", "workers", sched.NumTaskThreads(), "items", numItems)

	var processed int64
	start := time.Now()

	ws := task.NewFunc(uint32(numItems), func(r task.Range, workerID uint32) {
		for i := r.Start; i < r.End; i++ {
			if itemCostUs > 0 {
				spin(time.Duration(itemCostUs) * time.Microsecond)
			}
			atomic.AddInt64(&processed, 1)
		}
	})

	sched.AddTaskSetToPipe(ws)
	sched.WaitForTaskSet(ws)

	elapsed := time.Since(start)
	fmt.Printf("processed %d items across %d workers in %s\n", atomic.LoadInt64(&processed), sched.NumTaskThreads(), elapsed)

	return nil
}

// spin busy-waits for d, standing in for CPU-bound per-item work
// without depending on a scheduler timer or external workload.
func spin(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		_ = rand.Int()
	}
}
