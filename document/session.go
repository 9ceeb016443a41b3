// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import (
	"errors"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/lazytree/jsonnav/arena"
	"github.com/lazytree/jsonnav/scanner"
)

// Visitor is invoked with a freshly parsed Document. The Document and
// everything reachable from it (its arena, its cursor) is only valid for
// the duration of the call: Open and OpenFile release the underlying
// arena as soon as the visitor returns, panics included.
type Visitor func(*Document) error

// Open parses text and invokes visit with the resulting Document. The
// arena backing the Document is released once visit returns, whether it
// returns normally, returns an error, or panics — mirroring the
// reference reader's parse_json, which always runs doc_free via
// rb_protect regardless of how its block exits.
func Open(text string, visit Visitor) error {
	if visit == nil {
		return newError(ArgumentErr, "Open requires a non-nil visitor")
	}

	// The scanner mutates its buffer in place, so it must never alias
	// the caller's string data.
	buf := []byte(text)
	a := arena.New(buf)

	root, err := scanner.Scan(a)
	if err != nil {
		return translateScanError(err)
	}

	doc := newDocument(a, root)
	defer doc.release()
	return visit(doc)
}

// Parse is an alias of Open, matching the reference reader's
// Doc.parse/Doc.open pair — the two names exist there for call-site
// readability, not because the implementations differ.
var Parse = Open

// OpenFile reads path, optionally transcoding it from enc to UTF-8
// first (enc may be nil to assume the file is already UTF-8), and
// invokes visit the same way Open does.
func OpenFile(path string, enc encoding.Encoding, visit Visitor) error {
	if visit == nil {
		return newError(ArgumentErr, "OpenFile requires a non-nil visitor")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return wrapError(IoErr, err, "could not read %q", path)
	}

	if enc != nil && enc != unicode.UTF8 {
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return wrapError(IoErr, err, "could not decode %q as the given encoding", path)
		}
		raw = decoded
	}

	a := arena.New(raw)
	root, err := scanner.Scan(a)
	if err != nil {
		return translateScanError(err)
	}

	doc := newDocument(a, root)
	defer doc.release()
	return visit(doc)
}

func translateScanError(err error) error {
	var se *scanner.SyntaxError
	if errors.As(err, &se) {
		return &Error{Code: SyntaxErr, Message: se.Message, Step: se.Offset, cause: err}
	}
	if arena.ErrArenaExhausted(err) {
		return wrapError(StackOverflowErr, err, "document too large for the arena")
	}
	return wrapError(SyntaxErr, err, "parse failed")
}

// release drops the Document's reference to its arena so the backing
// segments and source buffer become eligible for garbage collection as
// soon as the visitor returns, rather than staying pinned by whatever
// goroutine-local state a longer-lived caller might otherwise retain.
func (d *Document) release() {
	d.arena = nil
}
