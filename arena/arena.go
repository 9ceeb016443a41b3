// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package arena implements the bump-allocated node storage backing one
// parsed JSON document. Nodes are addressed by int32 index rather than
// pointer, allocated in fixed-size segments, and never individually
// freed: the whole arena is released at once when its owning document
// closes.
package arena

const (
	// SegmentSize is the number of nodes per allocated segment.
	SegmentSize = 512

	// MaxSegments bounds how many segments an Arena may grow to before
	// NewScalar and NewCollection start returning an error, guarding against runaway
	// documents exhausting memory.
	MaxSegments = 4096
)

// Arena owns the node storage and the raw source buffer for one parsed
// document. The buffer is mutated in place by the scanner: node byte
// ranges alias it directly, so the Arena and its buffer share a single
// lifetime.
type Arena struct {
	segments [][]Node
	count    int32
	buf      []byte
}

// New creates an Arena whose nodes' raw payloads alias buf. buf is
// expected to be mutated in place by the scanner as it parses.
func New(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// Buffer returns the arena's shared source buffer.
func (a *Arena) Buffer() []byte { return a.buf }

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int32 { return a.count }

// Get returns the node at idx. idx must have been returned by a prior
// Alloc call on this Arena.
func (a *Arena) Get(idx int32) *Node {
	seg := idx / SegmentSize
	off := idx % SegmentSize
	return &a.segments[seg][off]
}

// alloc reserves the next node slot, growing the segment list if
// needed, and returns its index together with a pointer to it.
func (a *Arena) alloc() (int32, *Node, error) {
	idx := a.count
	seg := int(idx / SegmentSize)
	if seg >= len(a.segments) {
		if seg >= MaxSegments {
			return 0, nil, errArenaExhausted
		}
		a.segments = append(a.segments, make([]Node, SegmentSize))
	}
	a.count++
	n := a.Get(idx)
	n.reset()
	return idx, n, nil
}

// NewScalar allocates a new scalar node of the given kind, backed by the
// byte range [start,end) in the Arena's buffer.
func (a *Arena) NewScalar(kind Kind, start, end int32) (int32, error) {
	idx, n, err := a.alloc()
	if err != nil {
		return 0, err
	}
	n.initScalar(kind, start, end)
	return idx, nil
}

// NewCollection allocates a new empty array or object node.
func (a *Arena) NewCollection(kind Kind) (int32, error) {
	idx, n, err := a.alloc()
	if err != nil {
		return 0, err
	}
	n.initCollection(kind)
	return idx, nil
}

// AppendChild links child as the new tail of parent's sibling ring and
// sets child's parentKind/locator fields. nextArrayIndex is the 1-based
// position to assign when parentKind is ParentArray; it is ignored for
// ParentObject.
func (a *Arena) AppendChild(parentIdx, childIdx int32, parentKind ParentKind, key string, nextArrayIndex int32) {
	parent := a.Get(parentIdx)
	child := a.Get(childIdx)

	child.parentKind = parentKind
	switch parentKind {
	case ParentObject:
		child.key = InternString(key)
	case ParentArray:
		child.arrayIndex = nextArrayIndex
	}

	if parent.tail == -1 {
		child.next = childIdx
	} else {
		tail := a.Get(parent.tail)
		child.next = tail.next
		tail.next = childIdx
	}
	parent.tail = childIdx
}

// FirstChild returns the index of the first child in node's sibling
// ring, and false if node has no children.
func (a *Arena) FirstChild(nodeIdx int32) (int32, bool) {
	n := a.Get(nodeIdx)
	if n.tail == -1 {
		return 0, false
	}
	return a.Get(n.tail).next, true
}

// EachChild invokes fn for every child of node in ring order, stopping
// early if fn returns false.
func (a *Arena) EachChild(nodeIdx int32, fn func(idx int32, n *Node) bool) {
	n := a.Get(nodeIdx)
	if n.tail == -1 {
		return
	}
	head := a.Get(n.tail).next
	cur := head
	for {
		child := a.Get(cur)
		if !fn(cur, child) {
			return
		}
		if cur == n.tail {
			return
		}
		cur = child.next
	}
}

// ChildCount counts node's children by walking the sibling ring.
func (a *Arena) ChildCount(nodeIdx int32) int {
	count := 0
	a.EachChild(nodeIdx, func(int32, *Node) bool {
		count++
		return true
	})
	return count
}

// ChildAt returns the index of the array element at the given 0-based
// position, and false if out of range. Only meaningful for array nodes.
func (a *Arena) ChildAt(nodeIdx int32, pos int) (int32, bool) {
	found := int32(-1)
	i := 0
	a.EachChild(nodeIdx, func(idx int32, _ *Node) bool {
		if i == pos {
			found = idx
			return false
		}
		i++
		return true
	})
	if found == -1 {
		return 0, false
	}
	return found, true
}

// ChildByKey returns the index of the object member with the given key,
// and false if not present. When multiple members share a key (a
// duplicate key in the source text) the last one appended wins, matching
// ordinary last-write-wins insertion semantics.
func (a *Arena) ChildByKey(nodeIdx int32, key string) (int32, bool) {
	found := int32(-1)
	a.EachChild(nodeIdx, func(idx int32, n *Node) bool {
		if n.Key() == key {
			found = idx
		}
		return true
	})
	if found == -1 {
		return 0, false
	}
	return found, true
}
