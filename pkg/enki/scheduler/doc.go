/*
Package scheduler implements enkiTS's scheduling core: a fixed pool of
worker goroutines draining per-worker lock-less pipes (pkg/enki/pipe),
onto which a caller-supplied WorkSet (pkg/enki/task) is partitioned and
from which any participant goroutine can cooperatively wait.

Basic usage:

	sched := scheduler.New() // runtime.NumCPU() workers
	defer sched.WaitForAllAndShutdown()

	ws := task.NewFunc(10000, func(r task.Range, workerID uint32) {
		for i := r.Start; i < r.End; i++ {
			// process element i
		}
	})

	sched.AddTaskSetToPipe(ws)
	sched.WaitForTaskSet(ws)

Key properties:

  - The submitting goroutine counts as worker 0 and is never idle
    during a wait: it participates in the dispatch loop itself.
  - AddTaskSetToPipe never blocks. If the submitter's own pipe is full
    it executes the overflow partition inline instead of queueing it.
  - WaitForTaskSet never blocks on an OS primitive either; it busy-runs
    ready work from any pipe until the target WorkSet's completion
    counter reaches zero. This is an intentional latency/throughput
    trade for short, frame-scale waits.
  - Task priorities, cross-process scheduling, dependency ordering,
    cancellation of an in-flight partition, and fairness between
    WorkSets submitted back-to-back are explicitly out of scope.

Nested waits:

A WorkSet's ExecuteRange callback may submit and wait on a child
WorkSet without deadlocking: it must use the *FromWorker variants with
its own workerID (the one ExecuteRange was called with), since there is
no implicit thread-local lookup of "the current worker" in Go:

	sched.AddTaskSetToPipeFromWorker(child, workerID)
	sched.WaitForTaskSetFromWorker(child, workerID)
*/
package scheduler
