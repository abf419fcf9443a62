package pipe

import (
	"sync/atomic"

	"github.com/ssghost/enkiTS/pkg/enki/task"
)

// capacityLog2 matches the original scheduler's PIPESIZE_LOG2: 256 slots
// per worker gives ample headroom for a typical frame; overflow is a
// performance, not correctness, event handled by the caller.
const (
	capacityLog2 = 8
	Capacity     = 1 << capacityLog2
	indexMask    = Capacity - 1
)

// slot state words. Transitions: empty -> writing -> full -> reading -> empty.
const (
	stateEmpty uint32 = iota
	stateWriting
	stateFull
	stateReading
)

// cacheLinePad separates hot, independently-updated cursors so the
// owning writer and stealing readers don't ping-pong the same cache
// line; grounded on the cache-line-isolation padding used by the
// retrieved lock-free ring and stack implementations in the pack.
type cacheLinePad [64]byte

type slot struct {
	state   atomic.Uint32
	payload task.Item
}

// Bounded is a fixed-capacity, single-writer/multi-reader ring buffer of
// task.Item. The owning worker is the only caller permitted to call
// TryPushFront and TryPopFront; any worker, including the owner, may
// call TryPopBack.
type Bounded struct {
	_ cacheLinePad

	// write is the owner-private cursor: the next slot index to push
	// into. Only the owner goroutine ever advances it, but it is read
	// by IsEmpty from other goroutines, hence atomic.
	write atomic.Uint32

	_ cacheLinePad

	// read is the shared cursor thieves CAS forward as they claim the
	// oldest outstanding slot. A thief only advances it after observing
	// the target slot full, and rolls it back if it then loses that
	// slot, so it can sit ahead of write only transiently.
	read atomic.Uint32

	_ cacheLinePad

	slots [Capacity]slot
}

// New returns an empty Bounded pipe.
func New() *Bounded {
	return &Bounded{}
}

// TryPushFront is called by the pipe's owner only. It pushes item onto
// the front of the pipe, returning false if the pipe is full.
func (p *Bounded) TryPushFront(item task.Item) bool {
	w := p.write.Load()
	s := &p.slots[w&indexMask]
	if !s.state.CompareAndSwap(stateEmpty, stateWriting) {
		// Slot not yet recycled by its last reader: transient or real full.
		return false
	}
	s.payload = item
	s.state.Store(stateFull) // release: payload write happens-before full
	p.write.Store(w + 1)
	return true
}

// TryPopFront is called by the pipe's owner only. It pops the most
// recently pushed item that is not currently being read by a thief.
func (p *Bounded) TryPopFront(out *task.Item) bool {
	w := p.write.Load()
	if w == 0 {
		return false
	}
	idx := (w - 1) & indexMask
	s := &p.slots[idx]
	if !s.state.CompareAndSwap(stateFull, stateReading) {
		// Empty, or a thief already claimed it.
		return false
	}
	*out = s.payload
	s.state.Store(stateEmpty)
	p.write.Store(w - 1)
	return true
}

// TryPopBack may be called by any worker, including the owner. It pops
// the oldest available item, returning false if none is available to
// this caller right now (the pipe may still be non-empty from another
// caller's perspective).
func (p *Bounded) TryPopBack(out *task.Item) bool {
	r := p.read.Load()
	idx := r & indexMask
	s := &p.slots[idx]

	if s.state.Load() != stateFull {
		// Nothing ready at the current back position.
		return false
	}
	if !p.read.CompareAndSwap(r, r+1) {
		// Lost the race to claim this cursor position to another thief.
		return false
	}
	if !s.state.CompareAndSwap(stateFull, stateReading) {
		// Lost the race for the slot itself, most likely to the owner's
		// TryPopFront. We are the only caller that could have moved
		// read from r to r+1, so nothing else can be contending on
		// position r while it sits there: roll it back rather than
		// leaving read permanently ahead of write, which would wedge
		// IsEmpty (and anything looping on it, like WaitForAll) on a
		// pipe that has already genuinely drained.
		p.read.Store(r)
		return false
	}
	*out = s.payload
	s.state.Store(stateEmpty)
	return true
}

// IsEmpty is a best-effort observation for the wait protocol: a reader
// contending on the last slot may cause a transient non-empty result
// that clears on the next observation.
func (p *Bounded) IsEmpty() bool {
	return p.write.Load() == p.read.Load()
}

// Depth is a best-effort occupancy count, for metrics sampling only. A
// thief losing the slot race in TryPopBack can leave read transiently
// ahead of write; clamp that window to 0 instead of reporting a
// uint32-wraparound depth.
func (p *Bounded) Depth() int {
	d := int32(p.write.Load() - p.read.Load())
	if d < 0 {
		return 0
	}
	return int(d)
}
