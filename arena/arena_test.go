// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

import "testing"

func TestAppendChildRingOrder(t *testing.T) {
	a := New([]byte(`[1,2,3]`))

	arr, err := a.NewCollection(KindArray)
	if err != nil {
		t.Fatalf("NewCollection failed: %v", err)
	}

	var children []int32
	for i, b := range []byte{'1', '2', '3'} {
		idx, err := a.NewScalar(KindInt, int32(i), int32(i)+1)
		if err != nil {
			t.Fatalf("NewScalar failed: %v", err)
		}
		a.AppendChild(arr, idx, ParentArray, "", int32(i+1))
		children = append(children, idx)
		_ = b
	}

	var seen []int32
	a.EachChild(arr, func(idx int32, _ *Node) bool {
		seen = append(seen, idx)
		return true
	})

	if len(seen) != len(children) {
		t.Fatalf("expected %d children, got %d", len(children), len(seen))
	}
	for i := range children {
		if seen[i] != children[i] {
			t.Fatalf("ring order mismatch at %d: expected %d, got %d", i, children[i], seen[i])
		}
	}
}

func TestChildByKeyLastWriteWins(t *testing.T) {
	a := New([]byte(`{"a":1,"a":2}`))
	obj, _ := a.NewCollection(KindObject)

	first, _ := a.NewScalar(KindInt, 0, 1)
	a.AppendChild(obj, first, ParentObject, "a", 0)
	second, _ := a.NewScalar(KindInt, 0, 1)
	a.AppendChild(obj, second, ParentObject, "a", 0)

	got, ok := a.ChildByKey(obj, "a")
	if !ok {
		t.Fatal("expected key \"a\" to resolve")
	}
	if got != second {
		t.Fatalf("expected last-write-wins node %d, got %d", second, got)
	}
}

func TestChildAtOutOfRange(t *testing.T) {
	a := New([]byte(`[1]`))
	arr, _ := a.NewCollection(KindArray)
	idx, _ := a.NewScalar(KindInt, 0, 1)
	a.AppendChild(arr, idx, ParentArray, "", 1)

	if _, ok := a.ChildAt(arr, 5); ok {
		t.Fatal("expected out-of-range index to fail")
	}
	if got, ok := a.ChildAt(arr, 0); !ok || got != idx {
		t.Fatalf("expected index 0 to resolve to %d, got %d (ok=%v)", idx, got, ok)
	}
}

func TestNodeIndexStableAcrossGrowth(t *testing.T) {
	a := New(make([]byte, 0))

	var first int32
	for i := 0; i < SegmentSize+10; i++ {
		idx, err := a.NewScalar(KindInt, 0, 0)
		if err != nil {
			t.Fatalf("alloc %d failed: %v", i, err)
		}
		if i == 0 {
			first = idx
		}
	}

	// The first node's index must still resolve to the same node after
	// the arena has grown past one segment.
	n := a.Get(first)
	if n.Kind() != KindInt {
		t.Fatalf("expected node %d to remain KindInt after growth", first)
	}
	if a.Len() != SegmentSize+10 {
		t.Fatalf("expected %d nodes, got %d", SegmentSize+10, a.Len())
	}
}
