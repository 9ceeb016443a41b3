// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

//go:build !go1.23

package arena

import "sync"

// StringHandle is an interned string handle. On pre-1.23 toolchains
// without unique.Handle, interning falls back to a mutex-guarded map
// keyed by string value.
type StringHandle struct {
	s string
}

var (
	internMu sync.Mutex
	interned = map[string]string{}
)

// InternString interns s.
func InternString(s string) StringHandle {
	internMu.Lock()
	defer internMu.Unlock()
	if v, ok := interned[s]; ok {
		return StringHandle{s: v}
	}
	interned[s] = s
	return StringHandle{s: s}
}

// GetString retrieves the string value held by h.
func GetString(h StringHandle) string {
	return h.s
}

// EmptyHandle returns the zero handle, used for nodes with no key.
func EmptyHandle() StringHandle {
	return StringHandle{}
}
