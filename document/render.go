// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import (
	"encoding/json"
	"strings"

	"github.com/lazytree/jsonnav/internal/pool"
)

// Renderer turns a materialized value back into text. dump() treats
// serialization as an external black box the same way the reference
// reader does (it calls out to a separate writer rather than building
// JSON text itself): callers may supply their own Renderer to, for
// example, pretty-print or re-encode with different numeric formatting.
type Renderer interface {
	Render(value any) (string, error)
}

// jsonRenderer is the default Renderer, backed by encoding/json. No
// third-party JSON-writing library in this module's dependency pack is
// a drop-in composable replacement (the one candidate, valyala/fastjson,
// is a complete alternate parser/writer, not a component), so the
// default renderer is the one place this module falls back to the
// standard library on purpose.
type jsonRenderer struct {
	indent string
}

func (r jsonRenderer) Render(value any) (string, error) {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	enc := json.NewEncoder(buf)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(value); err != nil {
		return "", wrapError(TypeErr, err, "value could not be rendered")
	}
	// Encoder.Encode always appends a trailing newline; dump() returns
	// exactly the serialized value text.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// DefaultRenderer returns the library's built-in encoding/json Renderer,
// indenting nested output with indent (pass "" for compact output).
func DefaultRenderer(indent string) Renderer {
	return jsonRenderer{indent: indent}
}

// Dump resolves path and renders the target node's materialized value
// using renderer (DefaultRenderer("") if renderer is nil).
func (d *Document) Dump(path string, renderer Renderer) (string, error) {
	if renderer == nil {
		renderer = DefaultRenderer("")
	}
	v, err := d.Fetch(path)
	if err != nil {
		return "", err
	}
	return renderer.Render(v)
}
