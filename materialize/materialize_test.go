// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package materialize

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lazytree/jsonnav/arena"
	"github.com/lazytree/jsonnav/scanner"
)

func mustScan(t *testing.T, src string) (*arena.Arena, int32) {
	t.Helper()
	a := arena.New([]byte(src))
	root, err := scanner.Scan(a)
	if err != nil {
		t.Fatalf("scan(%q) failed: %v", src, err)
	}
	return a, root
}

func TestMaterializeTree(t *testing.T) {
	a, root := mustScan(t, `{"name":"alice","age":30,"active":true,"tags":["a","b"],"meta":null}`)

	v, err := Value(a, root)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	want := map[string]any{
		"name":   "alice",
		"age":    int64(30),
		"active": true,
		"tags":   []any{"a", "b"},
		"meta":   nil,
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("materialized value mismatch (-want +got):\n%s", diff)
	}
}

func TestScalarCacheIdentity(t *testing.T) {
	a, root := mustScan(t, `{"n":42}`)
	nIdx, ok := a.ChildByKey(root, "n")
	if !ok {
		t.Fatal("expected member \"n\"")
	}

	v1, err := Value(a, nIdx)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := Value(a, nIdx)
	if err != nil {
		t.Fatal(err)
	}
	if v1 != v2 {
		t.Fatalf("expected identical cached value across calls, got %v and %v", v1, v2)
	}
}

func TestCollectionNeverCached(t *testing.T) {
	a, root := mustScan(t, `[1,2,3]`)

	v1, err := Value(a, root)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := Value(a, root)
	if err != nil {
		t.Fatal(err)
	}

	s1, s2 := v1.([]any), v2.([]any)
	if len(s1) != 3 || len(s2) != 3 {
		t.Fatalf("expected both materializations to have 3 elements, got %d and %d", len(s1), len(s2))
	}
	// Equal in value, but rebuilt slices: distinct backing arrays.
	s1[0] = "mutated"
	if s2[0] == "mutated" {
		t.Fatal("expected array materialization to rebuild rather than share backing storage")
	}
}

func TestBigIntEscalation(t *testing.T) {
	a, root := mustScan(t, `99999999999999999999999999999`)

	v, err := Value(a, root)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	bi, ok := v.(*big.Int)
	if !ok {
		t.Fatalf("expected *big.Int for an int64-overflowing literal, got %T", v)
	}
	want, _ := new(big.Int).SetString("99999999999999999999999999999", 10)
	if bi.Cmp(want) != 0 {
		t.Fatalf("expected %s, got %s", want, bi)
	}
}

func TestDuplicateKeyLastWriteWins(t *testing.T) {
	a, root := mustScan(t, `{"a":1,"a":2}`)
	v, err := Value(a, root)
	if err != nil {
		t.Fatal(err)
	}
	m := v.(map[string]any)
	if m["a"] != int64(2) {
		t.Fatalf("expected last-write-wins value 2, got %v", m["a"])
	}
}
