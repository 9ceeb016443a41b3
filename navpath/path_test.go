// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package navpath

import "testing"

func TestParseAbsoluteAndRelative(t *testing.T) {
	p := Parse("/users/0/name")
	if !p.Absolute {
		t.Fatal("expected leading '/' to mark the path absolute")
	}
	if len(p.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(p.Steps))
	}
	if p.Steps[0].Kind != StepKey || p.Steps[0].Key != "users" {
		t.Fatalf("unexpected step 0: %+v", p.Steps[0])
	}
	if p.Steps[1].Kind != StepIndex || p.Steps[1].Index != 0 {
		t.Fatalf("unexpected step 1: %+v", p.Steps[1])
	}

	rel := Parse("config/timeout")
	if rel.Absolute {
		t.Fatal("expected path without leading '/' to be relative")
	}
	if len(rel.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(rel.Steps))
	}
}

func TestParseAscend(t *testing.T) {
	p := Parse("../sibling")
	if p.Steps[0].Kind != StepAscend {
		t.Fatalf("expected first step to be an ascend, got %+v", p.Steps[0])
	}
}

func TestStepsToPathRoundTrip(t *testing.T) {
	segs := []string{"users", "0", "name"}
	got := StepsToPath(segs)
	want := "/users/0/name"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRootPathString(t *testing.T) {
	if got := (Path{}).String(); got != "/" {
		t.Fatalf("expected root path to render as \"/\", got %q", got)
	}
	if got := StepsToPath(nil); got != "/" {
		t.Fatalf("expected empty segment list to render as \"/\", got %q", got)
	}
}
