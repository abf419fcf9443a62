package scheduler

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	enkierrors "github.com/ssghost/enkiTS/pkg/common/errors"
	"github.com/ssghost/enkiTS/pkg/common/validation"
	"github.com/ssghost/enkiTS/pkg/enki/pipe"
	"github.com/ssghost/enkiTS/pkg/enki/task"
	enkimetrics "github.com/ssghost/enkiTS/pkg/metrics"
)

// Scheduler is a fixed pool of worker goroutines sharing lock-less
// per-worker pipes. The zero value is not usable; construct one with
// New, NewSize, or NewWithConfig.
type Scheduler struct {
	name string

	numWorkers    uint32
	pipes         []*pipe.Bounded
	numPartitions uint32

	running      atomic.Bool
	runningCount atomic.Int32
	wake         *wakeEvent
	wg           sync.WaitGroup

	// live tracks WorkSets currently submitted and not yet observed
	// complete, keyed by the task.Set itself and valued by its
	// submission instant. It backs WaitForAllStrict (spec's recommended
	// stricter alternative to the pipe-emptiness-only WaitForAll) and,
	// when metrics are enabled, the submit-to-completion latency
	// histogram.
	live sync.Map // task.Set -> time.Time

	metricsEnabled bool
	registry       *enkimetrics.Registry
}

// New creates a Scheduler with runtime.NumCPU() workers.
func New() *Scheduler {
	return NewWithConfig(Config{})
}

// NewSize creates a Scheduler with exactly n workers, including the
// calling goroutine. Panics if n < 1, matching the teacher's
// NewWithConfig(workerCount<=0) panic convention for invalid
// construction arguments.
func NewSize(n int) *Scheduler {
	if err := validation.ValidatePositive("n", n, enkierrors.ErrInvalidWorkerCount); err != nil {
		panic(err)
	}
	return NewWithConfig(Config{NumWorkers: n})
}

// NewWithConfig creates a Scheduler from cfg.
func NewWithConfig(cfg Config) *Scheduler {
	n := cfg.resolvedWorkers()
	if err := validation.ValidatePositive("NumWorkers", n, enkierrors.ErrInvalidWorkerCount); err != nil {
		panic(err)
	}

	s := &Scheduler{}
	s.start(uint32(n))
	return s
}

// start allocates pipes and launches workers 1..n-1. The calling
// goroutine itself is worker 0 and never has a goroutine spawned for it.
func (s *Scheduler) start(n uint32) {
	s.numWorkers = n
	s.pipes = make([]*pipe.Bounded, n)
	for i := range s.pipes {
		s.pipes[i] = pipe.New()
	}

	// Target numWorkers-1 chunks per worker, leaving surplus items for
	// stealing; guard the n==1 case, which the original leaves as an
	// undefined divide-by-zero (see DESIGN.md).
	s.numPartitions = n * (n - 1)
	if s.numPartitions == 0 {
		s.numPartitions = 1
	}

	s.wake = newWakeEvent()
	s.running.Store(true)

	for i := uint32(1); i < n; i++ {
		s.wg.Add(1)
		s.runningCount.Add(1)
		go s.workerLoop(i)
	}
}

// workerLoop is the dispatch loop for a non-main worker: try its own
// pipe, then steal, then spin, then block on the wake event.
func (s *Scheduler) workerLoop(workerID uint32) {
	defer s.wg.Done()
	defer s.runningCount.Add(-1)

	spin := 0
	for s.running.Load() {
		ch := s.wake.arm()
		if s.tryRunOne(workerID) {
			spin = 0
			continue
		}
		spin++
		if spin > SpinThreshold {
			<-ch
			spin = 0
		}
	}
}

// tryRunOne attempts to run exactly one ready item on behalf of
// workerID: its own pipe's front first, then a round-robin steal from
// peers' backs starting at its neighbour. Returns whether it ran work.
func (s *Scheduler) tryRunOne(workerID uint32) bool {
	var it task.Item
	if s.pipes[workerID].TryPopFront(&it) {
		s.runItem(it, workerID, false)
		return true
	}

	if s.numWorkers > 1 {
		for i := (workerID + 1) % s.numWorkers; i != workerID; i = (i + 1) % s.numWorkers {
			if s.pipes[i].TryPopBack(&it) {
				s.runItem(it, workerID, true)
				return true
			}
		}
	}

	return false
}

func (s *Scheduler) runItem(it task.Item, workerID uint32, stolen bool) {
	it.Run(workerID)
	if s.metricsEnabled && stolen {
		s.registry.PartitionsStolen.WithLabelValues(s.name).Inc()
	}
	if c, ok := task.Holder(it.Set); ok && c.Load() == 0 {
		if s.metricsEnabled {
			if submitted, ok := s.live.Load(it.Set); ok {
				elapsed := time.Since(submitted.(time.Time))
				s.registry.WorkSetCompletion.WithLabelValues(s.name).Observe(elapsed.Seconds())
			}
		}
		s.live.Delete(it.Set)
	}
}

// NumTaskThreads returns the configured worker count.
func (s *Scheduler) NumTaskThreads() int {
	return int(s.numWorkers)
}

// Shutdown stops accepting dispatch, wakes every blocked worker, and
// joins all worker goroutines before returning. A single signal is not
// enough: a worker can read running as stale-true at its loop top, then
// arm a channel created by this signal's own rotation, and block on it
// past SpinThreshold with no further signal pending. So this keeps
// signalling, the same way the original keeps signalling its event
// while any worker thread is still marked running, until runningCount
// confirms every worker has observed the flag and exited its loop.
func (s *Scheduler) Shutdown() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	for s.runningCount.Load() > 0 {
		s.wake.signal()
		runtime.Gosched()
	}
	s.wg.Wait()
}
