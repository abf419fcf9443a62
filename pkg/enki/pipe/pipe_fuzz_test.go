package pipe

import (
	"testing"

	"github.com/ssghost/enkiTS/pkg/enki/task"
)

// FuzzPushPopSequence exercises TryPushFront/TryPopFront/TryPopBack
// interleavings driven by fuzz-generated bytes, checking only the
// invariant that every popped item was actually pushed and that no
// item is ever returned twice.
func FuzzPushPopSequence(f *testing.F) {
	f.Add([]byte{0, 1, 2, 1, 0, 2, 1})
	f.Add([]byte{2, 2, 2, 0, 0, 0, 1, 1, 1})

	f.Fuzz(func(t *testing.T, ops []byte) {
		p := New()
		pushed := uint32(0)
		seen := make(map[uint32]bool)

		for _, op := range ops {
			switch op % 3 {
			case 0:
				if p.TryPushFront(item(pushed)) {
					pushed++
				}
			case 1:
				var out task.Item
				if p.TryPopFront(&out) {
					if out.Range.Start >= pushed {
						t.Fatalf("item %d popped from front but never pushed", out.Range.Start)
					}
					if seen[out.Range.Start] {
						t.Fatalf("item %d popped from front twice", out.Range.Start)
					}
					seen[out.Range.Start] = true
				}
			case 2:
				var out task.Item
				if p.TryPopBack(&out) {
					if out.Range.Start >= pushed {
						t.Fatalf("item %d popped from back but never pushed", out.Range.Start)
					}
					if seen[out.Range.Start] {
						t.Fatalf("item %d popped from back twice", out.Range.Start)
					}
					seen[out.Range.Start] = true
				}
			}
		}
	})
}
