// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Code identifies one of the navigator's error kinds.
type Code int

const (
	_ Code = iota
	SyntaxErr
	InvalidPathErr
	TypeErr
	StackOverflowErr
	IoErr
	ArgumentErr
)

func (c Code) String() string {
	switch c {
	case SyntaxErr:
		return "syntax_error"
	case InvalidPathErr:
		return "invalid_path"
	case TypeErr:
		return "type_error"
	case StackOverflowErr:
		return "stack_overflow"
	case IoErr:
		return "io_error"
	case ArgumentErr:
		return "argument_error"
	default:
		return "unknown"
	}
}

// Error is the error type this package builds for its own failures,
// mirroring the {code, message} shape the storage engine this module's
// arena was adapted from uses for its own Error type. Errors returned by
// a caller's visitor, and *materialize.ParseError from Fetch and the
// operations built on it, are passed through unwrapped.
type Error struct {
	Code    Code
	Message string
	// Step is set by InvalidPathErr to report which 1-based step in the
	// path failed to resolve. For SyntaxErr it holds the byte offset of
	// the scanner error.
	Step int
	// Suggestion is set by InvalidPathErr when a sibling key was found
	// within edit-distance 2 of the failed step, to help a caller spot
	// typos.
	Suggestion string

	cause error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: cause}
}

// newInvalidPath builds an InvalidPathErr for a failed step, attaching a
// "did you mean" suggestion when one of candidates is close enough by
// Levenshtein distance to plausibly be a typo of key.
func newInvalidPath(step int, key string, candidates []string) *Error {
	e := &Error{
		Code:    InvalidPathErr,
		Message: fmt.Sprintf("no such path step %d: %q", step, key),
		Step:    step,
	}

	best := -1
	bestKey := ""
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(key, c)
		if d <= 2 && (best == -1 || d < best) {
			best = d
			bestKey = c
		}
	}
	if bestKey != "" {
		e.Suggestion = bestKey
	}
	return e
}

// Is lets errors.Is match any *Error with the same Code, e.g.
// errors.Is(err, &document.Error{Code: document.InvalidPathErr}).
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}
