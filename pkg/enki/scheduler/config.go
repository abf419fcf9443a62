package scheduler

import "runtime"

// SpinThreshold bounds the consecutive failed TryRunOne attempts a
// dispatcher makes: it blocks on the wake event once its count of
// failures exceeds this value. Short idle
// gaps, common in bursty frame work, are absorbed without blocking;
// prolonged idleness yields the goroutine.
const SpinThreshold = 100

// Config holds configuration options for creating a Scheduler.
type Config struct {
	// NumWorkers is the total worker count, including the calling
	// goroutine (worker 0). If <= 0, runtime.NumCPU() is used.
	NumWorkers int
}

func (c Config) resolvedWorkers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}
