// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package navpath parses and renders the XPath-like path syntax used to
// address nodes within a document: a leading "/" resets to the root, a
// ".." step ascends to the parent, a step made entirely of digits
// addresses a 1-based array position, and any other step addresses an
// object member by that literal key.
package navpath

import (
	"strconv"
	"strings"

	"github.com/lazytree/jsonnav/internal/pool"
)

// StepKind discriminates the three path step forms.
type StepKind uint8

const (
	StepKey StepKind = iota
	StepIndex
	StepAscend
)

// Step is one parsed path segment.
type Step struct {
	Kind  StepKind
	Key   string // valid when Kind == StepKey
	Index int    // 1-based; valid when Kind == StepIndex
}

// Path is a parsed sequence of steps, plus whether the original string
// began with "/" (an absolute reset to the document root rather than a
// move relative to the current cursor).
type Path struct {
	Absolute bool
	Steps    []Step
}

// Parse splits s on "/" into a Path. A leading "/" marks the path
// absolute and is otherwise not itself a step. Object keys may contain
// any byte except "/", which makes a key containing a literal "/"
// impossible to address unambiguously — this is inherited, documented
// behavior, not a bug to fix.
func Parse(s string) Path {
	if s == "" {
		return Path{}
	}

	absolute := s[0] == '/'
	if absolute {
		s = s[1:]
	}
	if s == "" {
		return Path{Absolute: absolute}
	}

	raw := strings.Split(s, "/")
	steps := make([]Step, 0, len(raw))
	for _, seg := range raw {
		steps = append(steps, parseStep(seg))
	}
	return Path{Absolute: absolute, Steps: steps}
}

func parseStep(seg string) Step {
	if seg == ".." {
		return Step{Kind: StepAscend}
	}
	digits := seg != ""
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			digits = false
			break
		}
	}
	if digits {
		if n, err := strconv.Atoi(seg); err == nil {
			return Step{Kind: StepIndex, Index: n}
		}
	}
	return Step{Kind: StepKey, Key: seg}
}

// String renders the path back into its textual form, matching the
// convention the cursor stack uses when reporting where().
func (p Path) String() string {
	if len(p.Steps) == 0 {
		return "/"
	}

	sb := pool.GetBuilder()
	defer pool.PutBuilder(sb)

	for _, step := range p.Steps {
		sb.WriteByte('/')
		switch step.Kind {
		case StepAscend:
			sb.WriteString("..")
		case StepIndex:
			sb.WriteString(strconv.Itoa(step.Index))
		case StepKey:
			sb.WriteString(step.Key)
		}
	}
	return sb.String()
}

// StepsToPath renders a raw stack of step strings (as produced by a
// cursor walk) into a single "/"-joined where() string.
func StepsToPath(segs []string) string {
	if len(segs) == 0 {
		return "/"
	}
	sb := pool.GetBuilder()
	defer pool.PutBuilder(sb)
	for _, s := range segs {
		sb.WriteByte('/')
		sb.WriteString(s)
	}
	return sb.String()
}
