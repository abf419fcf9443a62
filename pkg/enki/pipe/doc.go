// Package pipe implements the scheduler's lock-less, per-worker ring
// buffer: a fixed-capacity queue with a single privileged writer that
// also pops from the front (LIFO for itself, keeping it on cache-hot
// recently-pushed items) and any number of thieves that pop from the
// back (FIFO for peers, exposing older items to stealing).
//
// No slot is ever handed to two callers at once: every slot carries a
// state word (empty, writing, full, reading) transitioned with
// compare-and-swap, so the owner's front-pop and a peer's back-pop race
// fairly for the same slot and exactly one of them wins.
//
// Capacity is fixed at 256 entries. There is no dynamic resize: callers
// that overflow the pipe are expected to run the item inline instead
// (see pkg/enki/scheduler), which keeps this package allocation-free on
// every operation after construction.
package pipe
