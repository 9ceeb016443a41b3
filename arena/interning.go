// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

//go:build go1.23

package arena

import "unique"

// StringHandle is an interned string handle. Object keys repeat heavily
// across sibling elements of the same array (think: a JSON array of
// records sharing field names), so interning keeps one copy of each
// distinct key string per process.
type StringHandle = unique.Handle[string]

// InternString interns s.
func InternString(s string) StringHandle {
	return unique.Make(s)
}

// GetString retrieves the string value held by h.
func GetString(h StringHandle) string {
	return h.Value()
}

// EmptyHandle returns the zero handle, used for nodes with no key.
func EmptyHandle() StringHandle {
	return unique.Handle[string]{}
}
