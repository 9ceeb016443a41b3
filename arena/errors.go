// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

import "errors"

// errArenaExhausted is returned by alloc once an Arena has grown past
// MaxSegments. It is wrapped into a document.Error by callers so it
// reaches the library's public error taxonomy.
var errArenaExhausted = errors.New("arena: maximum segment count exceeded")

// ErrArenaExhausted reports whether err is the arena-exhaustion error.
func ErrArenaExhausted(err error) bool {
	return errors.Is(err, errArenaExhausted)
}
