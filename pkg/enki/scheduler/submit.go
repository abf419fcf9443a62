package scheduler

import (
	"fmt"
	"time"

	enkierrors "github.com/ssghost/enkiTS/pkg/common/errors"
	"github.com/ssghost/enkiTS/pkg/common/validation"
	"github.com/ssghost/enkiTS/pkg/enki/task"
)

// AddTaskSetToPipe partitions ws and enqueues it for execution, as if
// called from worker 0 (the caller of New/NewSize/NewWithConfig). It
// never blocks: a partition that doesn't fit the caller's pipe is run
// inline instead of queued.
func (s *Scheduler) AddTaskSetToPipe(ws task.Set) {
	s.AddTaskSetToPipeFromWorker(ws, 0)
}

// AddTaskSetToPipeFromWorker is the nested-wait variant of
// AddTaskSetToPipe: call it from inside a Set's own ExecuteRange,
// passing the workerID that ExecuteRange was invoked with, so the child
// WorkSet's partitions land on the correct owner pipe. Panics if the
// scheduler has already been shut down: a submission after Shutdown has
// no worker left to ever drain it.
func (s *Scheduler) AddTaskSetToPipeFromWorker(ws task.Set, workerID uint32) {
	if !s.running.Load() {
		panic(fmt.Errorf("scheduler: AddTaskSetToPipe: %w", enkierrors.ErrNotRunning))
	}
	if err := validation.ValidateNotNil("workSet", ws, enkierrors.ErrNilWorkSet); err != nil {
		panic(fmt.Errorf("scheduler: AddTaskSetToPipe: %w", err))
	}

	n := ws.Len()
	if n == 0 {
		return
	}

	counter, ok := task.Holder(ws)
	if !ok {
		panic("scheduler: WorkSet does not embed task.Base")
	}

	chunk := n / s.numPartitions
	if chunk == 0 {
		chunk = 1
	}

	s.live.Store(ws, time.Now())

	// Hold one extra count for the whole submission, so a partition that
	// is stolen and finished before the next one is counted in cannot
	// drive the counter to zero (and retire the live entry) early.
	counter.Add(1)

	mypipe := s.pipes[workerID]
	var start uint32
	for start < n {
		end := start + chunk
		if end > n {
			// Only the final partition may be shorter than chunk.
			end = n
		}
		r := task.Range{Start: start, End: end}

		// The completion counter must be incremented before the item
		// becomes visible to any other worker: a thief observing the
		// item and running it to completion must never decrement a
		// counter that hasn't yet counted it in. This increment is the
		// load-bearing edge of that happens-before chain.
		counter.Add(1)

		item := task.Item{Set: ws, Range: r}
		if mypipe.TryPushFront(item) {
			if s.metricsEnabled {
				s.registry.PartitionsSubmitted.WithLabelValues(s.name).Inc()
			}
		} else {
			if s.metricsEnabled {
				s.registry.PartitionsInlined.WithLabelValues(s.name).Inc()
			}
			item.Run(workerID)
		}

		start = end
	}

	s.wake.signal()

	if counter.Add(-1) == 0 {
		// Every partition finished while the guard was still held, so no
		// runItem call saw the counter reach zero.
		if s.metricsEnabled {
			if submitted, ok := s.live.Load(ws); ok {
				s.registry.WorkSetCompletion.WithLabelValues(s.name).Observe(time.Since(submitted.(time.Time)).Seconds())
			}
		}
		s.live.Delete(ws)
	}
}
