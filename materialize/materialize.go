// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package materialize converts arena nodes into ordinary Go values on
// demand. Scalars cache their materialized value on first conversion and
// return the identical cached value on every subsequent call; arrays and
// objects are never cached and are rebuilt fresh from their children
// every time, since a collection's materialized shape is cheap to
// recompute and holding onto it would pin memory for the whole subtree.
package materialize

import (
	"math/big"
	"strconv"

	"github.com/lazytree/jsonnav/arena"
)

// Value materializes the node at idx into a host value: nil, bool,
// int64, *big.Int (only when int64 would overflow), float64, string,
// map[string]any, or []any.
func Value(a *arena.Arena, idx int32) (any, error) {
	n := a.Get(idx)

	if cached, ok := n.Cached(); ok {
		return cached, nil
	}

	switch n.Kind() {
	case arena.KindNull:
		return nil, nil
	case arena.KindTrue:
		n.SetCached(true)
		return true, nil
	case arena.KindFalse:
		n.SetCached(false)
		return false, nil
	case arena.KindString:
		start, end := n.ByteRange()
		s := string(a.Buffer()[start:end])
		n.SetCached(s)
		return s, nil
	case arena.KindInt:
		v, err := materializeInt(a, n)
		if err != nil {
			return nil, err
		}
		n.SetCached(v)
		return v, nil
	case arena.KindFloat:
		v, err := materializeFloat(a, n)
		if err != nil {
			return nil, err
		}
		n.SetCached(v)
		return v, nil
	case arena.KindArray:
		return materializeArray(a, idx)
	case arena.KindObject:
		return materializeObject(a, idx)
	default:
		return nil, nil
	}
}

func materializeInt(a *arena.Arena, n *arena.Node) (any, error) {
	start, end := n.ByteRange()
	text := string(a.Buffer()[start:end])

	// Tolerate a leading '+', matching the reference reader's grammar.
	normalized := text
	if len(normalized) > 0 && normalized[0] == '+' {
		normalized = normalized[1:]
	}

	if v, err := strconv.ParseInt(normalized, 10, 64); err == nil {
		return v, nil
	}

	bi, ok := new(big.Int).SetString(normalized, 10)
	if !ok {
		return nil, &ParseError{Text: text, Reason: "malformed integer literal"}
	}
	return bi, nil
}

func materializeFloat(a *arena.Arena, n *arena.Node) (any, error) {
	start, end := n.ByteRange()
	text := string(a.Buffer()[start:end])

	// "1." (no digits after the decimal point) is a malformed-but-
	// tolerated literal inherited from the reference reader; extend it
	// with a trailing zero so strconv accepts it.
	normalized := text
	if len(normalized) > 0 && normalized[len(normalized)-1] == '.' {
		normalized += "0"
	}
	if len(normalized) > 0 && normalized[0] == '+' {
		normalized = normalized[1:]
	}

	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil, &ParseError{Text: text, Reason: "malformed float literal"}
	}
	return v, nil
}

func materializeArray(a *arena.Arena, idx int32) (any, error) {
	result := make([]any, 0, a.ChildCount(idx))
	var firstErr error
	a.EachChild(idx, func(childIdx int32, _ *arena.Node) bool {
		v, err := Value(a, childIdx)
		if err != nil {
			firstErr = err
			return false
		}
		result = append(result, v)
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

func materializeObject(a *arena.Arena, idx int32) (any, error) {
	result := make(map[string]any, a.ChildCount(idx))
	var firstErr error
	a.EachChild(idx, func(childIdx int32, child *arena.Node) bool {
		v, err := Value(a, childIdx)
		if err != nil {
			firstErr = err
			return false
		}
		// Last write wins on duplicate keys, same as ordinary map
		// insertion and the same as the reference reader's hash
		// insertion behavior.
		result[child.Key()] = v
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// ParseError reports a scalar literal that the scanner accepted
// structurally but that could not be converted to a host numeric value.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return "materialize: " + e.Reason + ": " + e.Text
}
