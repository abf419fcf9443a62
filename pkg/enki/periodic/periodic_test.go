package periodic

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/ssghost/enkiTS/pkg/enki/scheduler"
	"github.com/ssghost/enkiTS/pkg/enki/task"
)

func TestScheduleInvalidCron(t *testing.T) {
	sched := scheduler.NewSize(2)
	defer sched.Shutdown()

	r := NewRunner(sched)
	if err := r.Schedule("bad", "not a cron expr", func() task.Set { return task.NewFunc(1, func(task.Range, uint32) {}) }); err == nil {
		t.Fatal("expected an error for an invalid cron expression")
	}
}

func TestScheduleRejectsEmptyID(t *testing.T) {
	sched := scheduler.NewSize(2)
	defer sched.Shutdown()

	r := NewRunner(sched)
	if err := r.Schedule("", "@daily", func() task.Set { return task.NewFunc(1, func(task.Range, uint32) {}) }); err == nil {
		t.Fatal("expected an error for an empty job id")
	}
}

func TestScheduleRejectsSecondsField(t *testing.T) {
	sched := scheduler.NewSize(2)
	defer sched.Shutdown()

	var runs atomic.Int32
	r := NewRunner(sched)
	defer r.Stop()

	err := r.Schedule("tick", "* * * * * *", func() task.Set {
		return task.NewFunc(1, func(task.Range, uint32) {
			runs.Add(1)
		})
	})
	// The default parser here doesn't include seconds, so a six-field
	// expression is rejected; this exercises the error path rather than
	// a real tick, since waiting out a real minute-granularity cron
	// entry isn't suitable for a unit test.
	if err == nil {
		t.Fatal("expected six-field cron expression to be rejected by the minute-granularity parser")
	}
}

func TestCancelRemovesJob(t *testing.T) {
	sched := scheduler.NewSize(2)
	defer sched.Shutdown()

	r := NewRunner(sched)
	if err := r.Schedule("daily", "@daily", func() task.Set { return task.NewFunc(1, func(task.Range, uint32) {}) }); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	if !r.Cancel("daily") {
		t.Fatal("expected Cancel to find the registered job")
	}
	if r.Cancel("daily") {
		t.Fatal("expected second Cancel to report nothing found")
	}
	if _, ok := r.Next("daily"); ok {
		t.Fatal("expected Next to report no job after cancellation")
	}
}

func TestNextReturnsFutureTime(t *testing.T) {
	sched := scheduler.NewSize(2)
	defer sched.Shutdown()

	r := NewRunner(sched)
	defer r.Stop()

	if err := r.Schedule("hourly", "@hourly", func() task.Set { return task.NewFunc(1, func(task.Range, uint32) {}) }); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	next, ok := r.Next("hourly")
	if !ok {
		t.Fatal("expected a registered next run time")
	}
	if !next.After(time.Now()) {
		t.Fatalf("expected next run %v to be in the future", next)
	}
}
