// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package document implements the navigable view over one parsed JSON
// document: a cursor stack bounded at MaxStack entries, path resolution
// (destructive-with-restore for Move/EachLeaf/EachChild, non-destructive
// scratch resolution for Fetch/TypeAt/Dump/EachValue), and the Session
// facade that guarantees the underlying arena is released on every exit
// path.
package document

import (
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"
	"github.com/sirupsen/logrus"

	"github.com/lazytree/jsonnav/arena"
	"github.com/lazytree/jsonnav/navpath"
)

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}()

// MaxStack bounds the depth of the cursor's root-to-current path, same
// bound the reference reader enforces on its own where_path array.
const MaxStack = 100

// Document is one parsed JSON value tree together with the cursor used
// to navigate it.
type Document struct {
	arena *arena.Arena
	root  int32

	stack [MaxStack]int32
	depth int // index of the current node within stack; stack[0] is always root

	id     uuid.UUID
	digest digest.Digest
	log    *logrus.Entry
}

// newDocument wraps an already-scanned arena/root pair into a navigable
// Document.
func newDocument(a *arena.Arena, root int32) *Document {
	d := &Document{
		arena:  a,
		root:   root,
		id:     uuid.New(),
		digest: digest.FromBytes(a.Buffer()),
		log:    logrus.NewEntry(discardLogger),
	}
	d.stack[0] = root
	return d
}

// ID returns the correlation id assigned to this Document for the
// duration of its session, suitable for tying together log lines.
func (d *Document) ID() uuid.UUID { return d.id }

// Digest returns the content digest of the document's original source
// text, usable as a cache key by callers holding several documents.
func (d *Document) Digest() digest.Digest { return d.digest }

// WithLogger attaches a structured logger to the document, replacing the
// default no-op entry.
func (d *Document) WithLogger(log *logrus.Entry) {
	d.log = log.WithField("document", d.id.String())
}

func (d *Document) current() int32 { return d.stack[d.depth] }

func (d *Document) node(idx int32) *arena.Node { return d.arena.Get(idx) }

// currentLabel returns the path segment that addresses the node at
// stack position i from its parent, or "" for the root at i == 0.
func (d *Document) currentLabel(i int) string {
	n := d.node(d.stack[i])
	switch n.ParentKind() {
	case arena.ParentObject:
		return n.Key()
	case arena.ParentArray:
		return strconv.Itoa(int(n.ArrayIndex()))
	default:
		return ""
	}
}

// Where returns the absolute path string from the root to the current
// cursor position.
func (d *Document) Where() string {
	if d.depth == 0 {
		return "/"
	}
	segs := make([]string, d.depth)
	for i := 1; i <= d.depth; i++ {
		segs[i-1] = d.currentLabel(i)
	}
	return navpath.StepsToPath(segs)
}

// Home resets the cursor to the document root.
func (d *Document) Home() { d.depth = 0 }

// LocalKey returns the current node's locator as a host value: the
// object-member key (string) when the parent is an object, the 1-based
// array position (int) when the parent is an array, and false when the
// current node is the root (which has no locator).
func (d *Document) LocalKey() (any, bool) {
	if d.depth == 0 {
		return nil, false
	}
	n := d.node(d.current())
	switch n.ParentKind() {
	case arena.ParentObject:
		return n.Key(), true
	case arena.ParentArray:
		return int(n.ArrayIndex()), true
	default:
		return nil, false
	}
}

// Type returns the JSON kind of the current node.
func (d *Document) Type() arena.Kind { return d.node(d.current()).Kind() }

// Size returns the total number of token nodes the scanner recorded for
// the whole document — every scalar and every container, not just the
// nodes under the current cursor. For `[1,2,3]` this is 4 (the array
// plus its three ints); it does not vary with cursor position.
func (d *Document) Size() int { return int(d.arena.Len()) }

// ChildCount returns the current node's immediate child count for an
// array or object, and 0 for a scalar. Unlike Size, this is scoped to
// the current cursor position.
func (d *Document) ChildCount() int {
	n := d.node(d.current())
	if n.Kind() != arena.KindArray && n.Kind() != arena.KindObject {
		return 0
	}
	return d.arena.ChildCount(d.current())
}
