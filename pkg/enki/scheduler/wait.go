package scheduler

import (
	"fmt"
	"runtime"

	enkierrors "github.com/ssghost/enkiTS/pkg/common/errors"
	"github.com/ssghost/enkiTS/pkg/enki/task"
)

// WaitForTaskSet busy-runs ready work from any pipe, as worker 0, until
// ws's completion counter reaches zero. Pass nil to instead run at most
// one ready item and return immediately: a yield hint for a loop that
// wants to make progress without fully blocking on a particular set.
func (s *Scheduler) WaitForTaskSet(ws task.Set) {
	s.WaitForTaskSetFromWorker(ws, 0)
}

// WaitForTaskSetFromWorker is the nested-wait variant of
// WaitForTaskSet: call it with the workerID ExecuteRange was invoked
// with when waiting on a child WorkSet from inside a parent's range.
// Panics if the scheduler has already been shut down: with no workers
// left running, a counter that hasn't already reached zero never will,
// and busy-waiting on it would spin forever.
func (s *Scheduler) WaitForTaskSetFromWorker(ws task.Set, workerID uint32) {
	if !s.running.Load() {
		panic(fmt.Errorf("scheduler: WaitForTaskSet: %w", enkierrors.ErrNotRunning))
	}

	if ws == nil {
		s.tryRunOne(workerID)
		return
	}

	counter, ok := task.Holder(ws)
	if !ok {
		panic("scheduler: WorkSet does not embed task.Base")
	}

	for counter.Load() > 0 {
		if !s.tryRunOne(workerID) {
			// Nothing ready anywhere right now; another worker is
			// presumably mid-flight on the remaining partitions. Yield
			// the goroutine rather than hot-spin the OS thread.
			runtime.Gosched()
		}
	}
}

// WaitForAll busy-waits, as worker 0, until every pipe but its own
// (pipes[1:]) is observed empty. This is a loose, best-effort
// definition: it does not track individual WorkSets' completion
// counters, only pipe occupancy, so an item that was popped but whose
// ExecuteRange is still running is not accounted for. It mirrors the
// original scheduler's own WaitforAll, including its quirk of never
// checking worker 0's own pipe.
func (s *Scheduler) WaitForAll() {
	for {
		empty := true
		for i := uint32(1); i < s.numWorkers; i++ {
			if !s.pipes[i].IsEmpty() {
				empty = false
				break
			}
		}
		if empty {
			return
		}
		if !s.tryRunOne(0) {
			runtime.Gosched()
		}
	}
}

// WaitForAllStrict is the stricter alternative to WaitForAll: it waits
// until every WorkSet submitted
// via AddTaskSetToPipe(FromWorker) has actually reached completion
// (counter == 0), not merely until pipes look empty. Unlike WaitForAll
// it is unaffected by a stolen item still executing elsewhere.
func (s *Scheduler) WaitForAllStrict() {
	for {
		done := true
		s.live.Range(func(key, _ interface{}) bool {
			ws := key.(task.Set)
			if c, ok := task.Holder(ws); ok && c.Load() > 0 {
				done = false
				return false
			}
			s.live.Delete(key)
			return true
		})
		if done {
			return
		}
		if !s.tryRunOne(0) {
			runtime.Gosched()
		}
	}
}

// WaitForAllAndShutdown waits for all outstanding work with
// WaitForAllStrict and then shuts the scheduler down. It is the
// idiomatic defer target for a scheduler created at program startup.
func (s *Scheduler) WaitForAllAndShutdown() {
	s.WaitForAllStrict()
	s.Shutdown()
}
