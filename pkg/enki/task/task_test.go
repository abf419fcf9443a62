package task

import (
	"testing"

	"github.com/ssghost/enkiTS/internal/testutil"
)

func TestRangeLen(t *testing.T) {
	r := Range{Start: 10, End: 25}
	testutil.AssertEqual(t, r.Len(), uint32(15))
}

func TestFuncExecuteRange(t *testing.T) {
	var got []Range
	fn := NewFunc(100, func(r Range, workerID uint32) {
		got = append(got, r)
	})

	testutil.AssertEqual(t, fn.Len(), uint32(100))

	fn.ExecuteRange(Range{Start: 0, End: 50}, 0)
	fn.ExecuteRange(Range{Start: 50, End: 100}, 1)

	if len(got) != 2 {
		t.Fatalf("ExecuteRange calls = %d, want 2", len(got))
	}
}

func TestHolderCompletionLifecycle(t *testing.T) {
	fn := NewFunc(10, func(Range, uint32) {})

	c, ok := Holder(fn)
	if !ok {
		t.Fatal("Holder should find a completion counter on *Func")
	}

	c.Add(3)
	testutil.AssertEqual(t, fn.Completion(), int32(3))

	c.Add(-3)
	testutil.AssertEqual(t, fn.Completion(), int32(0))
}

func TestHolderUnsupportedSet(t *testing.T) {
	var s Set = bareSet{}
	if _, ok := Holder(s); ok {
		t.Fatal("Holder should report false for a Set that doesn't embed Base")
	}
}

func TestItemRunDecrementsCompletion(t *testing.T) {
	ran := false
	fn := NewFunc(5, func(r Range, workerID uint32) {
		ran = true
		testutil.AssertEqual(t, workerID, uint32(2))
	})

	c, _ := Holder(fn)
	c.Add(1)

	it := Item{Set: fn, Range: Range{Start: 0, End: 5}}
	it.Run(2)

	if !ran {
		t.Fatal("Run should invoke ExecuteRange")
	}
	testutil.AssertEqual(t, fn.Completion(), int32(0))
}

// bareSet is a Set that does not embed Base, used to exercise Holder's
// negative case.
type bareSet struct{}

func (bareSet) Len() uint32                        { return 0 }
func (bareSet) ExecuteRange(Range, uint32) {}
