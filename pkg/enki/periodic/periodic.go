package periodic

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	enkierrors "github.com/ssghost/enkiTS/pkg/common/errors"
	"github.com/ssghost/enkiTS/pkg/common/validation"
	"github.com/ssghost/enkiTS/pkg/enki/scheduler"
	"github.com/ssghost/enkiTS/pkg/enki/task"
)

// Factory builds a fresh WorkSet for one tick of a Job. A new task.Set
// is required each tick because a Set's completion counter is
// one-shot: it never returns to a reusable state after reaching zero.
type Factory func() task.Set

// Job is a single cron-scheduled resubmission.
type Job struct {
	id       string
	schedule cron.Schedule
	factory  Factory

	mu      sync.Mutex
	timer   *time.Timer
	nextRun time.Time
	stopped bool
}

// NextRun returns the time this job is next due to fire.
func (j *Job) NextRun() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.nextRun
}

// Runner owns a set of Jobs against a single scheduler.
type Runner struct {
	sched  *scheduler.Scheduler
	parser cron.Parser

	mu   sync.Mutex
	jobs map[string]*Job
}

// NewRunner returns a Runner that resubmits onto sched.
func NewRunner(sched *scheduler.Scheduler) *Runner {
	return &Runner{
		sched:  sched,
		parser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		jobs:   make(map[string]*Job),
	}
}

// Schedule parses cronExpr and registers a job under id that calls
// factory and submits its result on each tick. It replaces any existing
// job registered under the same id.
func (r *Runner) Schedule(id, cronExpr string, factory Factory) error {
	if err := validation.ValidateNotEmpty("id", id, enkierrors.ErrEmptyID); err != nil {
		return fmt.Errorf("periodic: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("periodic: factory must not be nil")
	}

	schedule, err := r.parser.Parse(cronExpr)
	if err != nil {
		return fmt.Errorf("periodic: invalid cron expression %q: %w", cronExpr, err)
	}

	r.Cancel(id)

	job := &Job{id: id, schedule: schedule, factory: factory}
	job.nextRun = schedule.Next(time.Now())

	r.mu.Lock()
	r.jobs[id] = job
	r.mu.Unlock()

	r.arm(job)
	return nil
}

// arm sets job's timer to fire at its current nextRun.
func (r *Runner) arm(job *Job) {
	delay := time.Until(job.nextRun)
	if delay < 0 {
		delay = 0
	}

	job.mu.Lock()
	if job.stopped {
		job.mu.Unlock()
		return
	}
	job.timer = time.AfterFunc(delay, func() { r.fire(job) })
	job.mu.Unlock()
}

// fire submits one tick's WorkSet and reschedules the job for its next
// run, unless the job has since been cancelled.
func (r *Runner) fire(job *Job) {
	job.mu.Lock()
	stopped := job.stopped
	job.mu.Unlock()
	if stopped {
		return
	}

	r.sched.AddTaskSetToPipe(job.factory())

	job.mu.Lock()
	job.nextRun = job.schedule.Next(time.Now())
	job.mu.Unlock()

	r.arm(job)
}

// Cancel stops and removes the job registered under id, returning
// whether one was found.
func (r *Runner) Cancel(id string) bool {
	r.mu.Lock()
	job, ok := r.jobs[id]
	if ok {
		delete(r.jobs, id)
	}
	r.mu.Unlock()
	if !ok {
		return false
	}

	job.mu.Lock()
	job.stopped = true
	if job.timer != nil {
		job.timer.Stop()
	}
	job.mu.Unlock()
	return true
}

// Next returns the next scheduled run time for id.
func (r *Runner) Next(id string) (time.Time, bool) {
	r.mu.Lock()
	job, ok := r.jobs[id]
	r.mu.Unlock()
	if !ok {
		return time.Time{}, false
	}
	return job.NextRun(), true
}

// Stop cancels every registered job.
func (r *Runner) Stop() {
	r.mu.Lock()
	ids := make([]string, 0, len(r.jobs))
	for id := range r.jobs {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.Cancel(id)
	}
}
