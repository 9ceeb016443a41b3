// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package scanner

import (
	"testing"

	"github.com/lazytree/jsonnav/arena"
)

func scan(t *testing.T, src string) (*arena.Arena, int32) {
	t.Helper()
	a := arena.New([]byte(src))
	root, err := Scan(a)
	if err != nil {
		t.Fatalf("Scan(%q) failed: %v", src, err)
	}
	return a, root
}

func TestScanScalars(t *testing.T) {
	cases := []struct {
		src  string
		kind arena.Kind
	}{
		{"null", arena.KindNull},
		{"true", arena.KindTrue},
		{"false", arena.KindFalse},
		{"42", arena.KindInt},
		{"-42", arena.KindInt},
		{"+42", arena.KindInt}, // leading '+' tolerated, inherited quirk
		{"3.14", arena.KindFloat},
		{"1.", arena.KindFloat}, // trailing '.', inherited quirk
		{"1e10", arena.KindFloat},
		{`"hello"`, arena.KindString},
	}
	for _, c := range cases {
		a, root := scan(t, c.src)
		if got := a.Get(root).Kind(); got != c.kind {
			t.Errorf("Scan(%q): expected kind %v, got %v", c.src, c.kind, got)
		}
	}
}

func TestScanObjectAndArray(t *testing.T) {
	a, root := scan(t, `{"users":[{"name":"alice"},{"name":"bob"}],"count":2}`)

	n := a.Get(root)
	if n.Kind() != arena.KindObject {
		t.Fatalf("expected root to be an object, got %v", n.Kind())
	}
	if a.ChildCount(root) != 2 {
		t.Fatalf("expected 2 top-level members, got %d", a.ChildCount(root))
	}

	usersIdx, ok := a.ChildByKey(root, "users")
	if !ok {
		t.Fatal("expected \"users\" member")
	}
	if a.Get(usersIdx).Kind() != arena.KindArray {
		t.Fatalf("expected \"users\" to be an array, got %v", a.Get(usersIdx).Kind())
	}
	if a.ChildCount(usersIdx) != 2 {
		t.Fatalf("expected 2 users, got %d", a.ChildCount(usersIdx))
	}

	first, ok := a.ChildAt(usersIdx, 0)
	if !ok {
		t.Fatal("expected users[0]")
	}
	nameIdx, ok := a.ChildByKey(first, "name")
	if !ok {
		t.Fatal("expected users[0].name")
	}
	start, end := a.Get(nameIdx).ByteRange()
	if got := string(a.Buffer()[start:end]); got != "alice" {
		t.Fatalf("expected \"alice\", got %q", got)
	}
}

func TestScanStringEscapes(t *testing.T) {
	a, root := scan(t, `"a\n\t\"b\\c\/d"`)
	start, end := a.Get(root).ByteRange()
	got := string(a.Buffer()[start:end])
	want := "a\n\t\"b\\c/d"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// TestScanUnicodeEscapeProducesTwoRawBytes documents and locks in the
// inherited reference-reader behavior: a \uXXXX escape always yields
// exactly the two raw bytes of its code unit, never a UTF-8 re-encoding
// of the code point and never a combined surrogate pair.
func TestScanUnicodeEscapeProducesTwoRawBytes(t *testing.T) {
	a, root := scan(t, "\"\\u00e9\"")
	start, end := a.Get(root).ByteRange()
	got := a.Buffer()[start:end]

	if len(got) != 2 {
		t.Fatalf("expected exactly 2 raw bytes for \\u00e9, got %d: %v", len(got), got)
	}
	if got[0] != 0x00 || got[1] != 0xe9 {
		t.Fatalf("expected raw bytes [0x00, 0xe9], got %v", got)
	}
}

func TestScanWriteCursorNeverOutrunsReadCursor(t *testing.T) {
	// A string dense with multi-character escapes compacts heavily;
	// this exercises the in-place write<=read invariant without
	// corrupting neighboring buffer content.
	a, root := scan(t, `{"a":"\n\n\n\n","b":"tail"}`)
	bIdx, ok := a.ChildByKey(root, "b")
	if !ok {
		t.Fatal("expected \"b\" member to survive compaction of \"a\"")
	}
	start, end := a.Get(bIdx).ByteRange()
	if got := string(a.Buffer()[start:end]); got != "tail" {
		t.Fatalf("expected \"tail\", got %q", got)
	}
}

func TestScanRejectsMalformed(t *testing.T) {
	cases := []string{
		``,
		`{`,
		`[1,2`,
		`{"a":}`,
		`"unterminated`,
		`tru`,
	}
	for _, src := range cases {
		a := arena.New([]byte(src))
		if _, err := Scan(a); err == nil {
			t.Errorf("Scan(%q): expected error, got none", src)
		}
	}
}

// TestScanIgnoresTrailingContent documents the inherited behavior: the
// scanner stops as soon as it has read one complete top-level value and
// never looks at, or complains about, what follows.
func TestScanIgnoresTrailingContent(t *testing.T) {
	a, root := scan(t, `{"a":1} garbage that is not JSON at all {{{`)
	if a.Get(root).Kind() != arena.KindObject {
		t.Fatalf("expected the leading object to parse despite trailing garbage, got %v", a.Get(root).Kind())
	}
}

func TestScanSkipsFormFeedWhitespace(t *testing.T) {
	a, root := scan(t, "[\f1,\f2\f]")
	if a.Get(root).Kind() != arena.KindArray {
		t.Fatalf("expected array, got %v", a.Get(root).Kind())
	}
	if a.ChildCount(root) != 2 {
		t.Fatalf("expected 2 elements, got %d", a.ChildCount(root))
	}
}

func TestScanArrayIndicesAreOneBased(t *testing.T) {
	a, root := scan(t, `["a","b","c"]`)
	first, _ := a.ChildAt(root, 0)
	if idx := a.Get(first).ArrayIndex(); idx != 1 {
		t.Fatalf("expected first element's ArrayIndex to be 1, got %d", idx)
	}
	last, _ := a.ChildAt(root, 2)
	if idx := a.Get(last).ArrayIndex(); idx != 3 {
		t.Fatalf("expected third element's ArrayIndex to be 3, got %d", idx)
	}
}
