// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

// Kind identifies the JSON type held by a Node.
type Kind uint8

const (
	KindNull Kind = iota
	KindTrue
	KindFalse
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// ParentKind records what kind of container, if any, holds a Node. It
// disambiguates how a Node's locator (key vs. array position) should be
// read.
type ParentKind uint8

const (
	// ParentNone marks the document root: it has no locator.
	ParentNone ParentKind = iota
	ParentArray
	ParentObject
)

// ValueState tracks whether a Node's payload is still raw source bytes,
// an unmaterialized collection, or a cached host value.
type ValueState uint8

const (
	// StateRawBytes: payload is a [start,end) byte range into the
	// Arena's shared buffer; nothing has been converted yet.
	StateRawBytes ValueState = iota
	// StateCollection: payload is the index of the tail child in the
	// sibling ring; arrays and objects always stay in this state.
	StateCollection
	// StateMaterialized: payload is a cached host value produced by
	// the materializer on first fetch of a scalar.
	StateMaterialized
)

// Node is one parsed JSON value. Nodes are allocated from an Arena in
// fixed-size segments and addressed by index, never by pointer into the
// segment, so the backing array can grow without invalidating existing
// references.
//
// Children of an array or object are held in a circular singly-linked
// ring: the parent stores the index of the ring's tail, and the head is
// always tail.Next. Appending a new child is then a pointer swap with no
// need for a separate head field.
type Node struct {
	kind       Kind
	parentKind ParentKind
	state      ValueState

	// key is the interned object-member key; zero value for array
	// elements and the root.
	key StringHandle

	// arrayIndex is the 1-based position of this node among its array
	// siblings; zero for object members and the root.
	arrayIndex int32

	// start, end bound this node's raw source bytes in the Arena's
	// buffer. Only meaningful while state == StateRawBytes.
	start, end int32

	// tail is the index of this node's last child in the sibling
	// ring, or -1 if the array/object has no children yet. Only
	// meaningful for KindArray/KindObject.
	tail int32

	// next is this node's successor in its parent's sibling ring.
	next int32

	// cached holds the materialized host value once state has flipped
	// to StateMaterialized. Left nil otherwise.
	cached any
}

// Kind reports the node's JSON type.
func (n *Node) Kind() Kind { return n.kind }

// ParentKind reports how this node is addressed within its parent.
func (n *Node) ParentKind() ParentKind { return n.parentKind }

// State reports the node's current value state.
func (n *Node) State() ValueState { return n.state }

// Key returns the object-member key for this node. Empty for array
// elements and the root.
func (n *Node) Key() string { return GetString(n.key) }

// ArrayIndex returns the node's 1-based position among its array
// siblings, or 0 if it is not an array element.
func (n *Node) ArrayIndex() int32 { return n.arrayIndex }

// ByteRange returns the [start,end) byte offsets of this node's raw
// source text. Only valid while State() == StateRawBytes.
func (n *Node) ByteRange() (int32, int32) { return n.start, n.end }

// Tail returns the index of the last-appended child, or -1 for an empty
// or non-container node.
func (n *Node) Tail() int32 { return n.tail }

// Next returns this node's successor in its parent's sibling ring.
func (n *Node) Next() int32 { return n.next }

// Cached returns the materialized value cached on this node, if any.
func (n *Node) Cached() (any, bool) {
	if n.state != StateMaterialized {
		return nil, false
	}
	return n.cached, true
}

// SetCached flips the node into StateMaterialized and stores v, used by
// the materializer to cache scalar conversions idempotently. Collections
// must never call this: they are always rebuilt.
func (n *Node) SetCached(v any) {
	n.cached = v
	n.state = StateMaterialized
}

func (n *Node) reset() {
	n.kind = KindNull
	n.parentKind = ParentNone
	n.state = StateRawBytes
	n.key = EmptyHandle()
	n.arrayIndex = 0
	n.start, n.end = 0, 0
	n.tail = -1
	n.next = -1
	n.cached = nil
}

func (n *Node) initScalar(kind Kind, start, end int32) {
	n.reset()
	n.kind = kind
	n.start, n.end = start, end
}

func (n *Node) initCollection(kind Kind) {
	n.reset()
	n.kind = kind
	n.state = StateCollection
	n.tail = -1
}
