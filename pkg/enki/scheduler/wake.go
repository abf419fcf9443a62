package scheduler

import "sync"

// wakeEvent is the idiomatic Go substitute for the scheduler's OS
// auto-reset "new task" event (spec §6's event primitive: create,
// signal, wait(infinite), close). It is the recreate-and-close channel
// idiom goflow itself uses to broadcast shutdown to blocked workers
// (workerpool.go's close(p.shutdownCh)), generalized so it can be
// signalled repeatedly rather than only once.
//
// A dispatcher captures the current channel with arm before checking
// for work, and only blocks on the captured channel if it found none.
// Because signal always closes whatever channel was current at the
// time work became available, a dispatcher that captured the channel
// before that work was published is guaranteed to see the close — no
// wakeup is ever lost, regardless of how the spin-then-wait race lands.
type wakeEvent struct {
	mu sync.Mutex
	ch chan struct{}
}

func newWakeEvent() *wakeEvent {
	return &wakeEvent{ch: make(chan struct{})}
}

// arm returns the channel to wait on. Call it before checking for work,
// not after: that ordering is what makes signal race-free.
func (w *wakeEvent) arm() chan struct{} {
	w.mu.Lock()
	ch := w.ch
	w.mu.Unlock()
	return ch
}

// signal wakes every dispatcher currently blocked on an armed channel
// and arms a fresh one for subsequent waiters.
func (w *wakeEvent) signal() {
	w.mu.Lock()
	old := w.ch
	w.ch = make(chan struct{})
	w.mu.Unlock()
	close(old)
}
