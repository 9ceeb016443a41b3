// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package scanner implements the single-pass recursive-descent reader
// that turns a JSON source buffer into an arena tree. It is ported from
// the reference Oj::Doc C reader (read_next/read_obj/read_array/
// read_str/read_num), not from encoding/json: the Go standard decoder
// copies string content into a new allocation on every string value,
// which defeats the point of a lazy, zero-copy navigator. This scanner
// instead unescapes strings in place, using the source buffer both as
// input and as backing storage for every string node's payload.
package scanner

import (
	"strconv"

	"github.com/lazytree/jsonnav/arena"
)

// Scan parses the arena's entire source buffer and returns the index of
// the root node.
func Scan(a *arena.Arena) (int32, error) {
	buf := a.Buffer()
	pos := skipWhitespace(buf, 0)
	if pos >= len(buf) {
		return 0, syntaxErrorf(pos, "empty document")
	}
	// Bytes after the first complete value are ignored rather than
	// rejected, matching the reference reader: parse_json stops reading
	// as soon as read_next returns, regardless of what (if anything)
	// follows in the buffer.
	idx, _, err := scanValue(buf, pos, a)
	if err != nil {
		return 0, err
	}
	return idx, nil
}

func skipWhitespace(buf []byte, pos int) int {
	for pos < len(buf) {
		switch buf[pos] {
		case ' ', '\t', '\f', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func scanValue(buf []byte, pos int, a *arena.Arena) (int32, int, error) {
	if pos >= len(buf) {
		return 0, pos, syntaxErrorf(pos, "unexpected end of input")
	}

	switch c := buf[pos]; {
	case c == '"':
		start, end, next, err := scanString(buf, pos)
		if err != nil {
			return 0, pos, err
		}
		idx, err := a.NewScalar(arena.KindString, int32(start), int32(end))
		return idx, next, err
	case c == '{':
		return scanObject(buf, pos, a)
	case c == '[':
		return scanArray(buf, pos, a)
	case c == 't':
		return scanLiteral(buf, pos, a, "true", arena.KindTrue)
	case c == 'f':
		return scanLiteral(buf, pos, a, "false", arena.KindFalse)
	case c == 'n':
		return scanLiteral(buf, pos, a, "null", arena.KindNull)
	case c == '-' || c == '+' || (c >= '0' && c <= '9'):
		return scanNumber(buf, pos, a)
	default:
		return 0, pos, syntaxErrorf(pos, "unexpected character %q", c)
	}
}

func scanLiteral(buf []byte, pos int, a *arena.Arena, lit string, kind arena.Kind) (int32, int, error) {
	end := pos + len(lit)
	if end > len(buf) || string(buf[pos:end]) != lit {
		return 0, pos, syntaxErrorf(pos, "invalid literal, expected %q", lit)
	}
	idx, err := a.NewScalar(kind, int32(pos), int32(end))
	return idx, end, err
}

// scanNumber accepts the oj-compatible, not strictly RFC 8259, number
// grammar: a leading '+' is tolerated alongside '-', and a trailing '.'
// with no following digits (e.g. "1.") is accepted as a float rather
// than rejected. Both are inherited quirks of the reference reader, kept
// intentionally rather than "fixed".
func scanNumber(buf []byte, pos int, a *arena.Arena) (int32, int, error) {
	start := pos
	if buf[pos] == '+' || buf[pos] == '-' {
		pos++
	}

	digitsBefore := pos
	for pos < len(buf) && isDigit(buf[pos]) {
		pos++
	}
	if pos == digitsBefore {
		return 0, pos, syntaxErrorf(pos, "invalid number: no digits")
	}

	isFloat := false
	if pos < len(buf) && buf[pos] == '.' {
		isFloat = true
		pos++
		for pos < len(buf) && isDigit(buf[pos]) {
			pos++
		}
	}

	if pos < len(buf) && (buf[pos] == 'e' || buf[pos] == 'E') {
		isFloat = true
		pos++
		if pos < len(buf) && (buf[pos] == '+' || buf[pos] == '-') {
			pos++
		}
		expDigits := pos
		for pos < len(buf) && isDigit(buf[pos]) {
			pos++
		}
		if pos == expDigits {
			return 0, pos, syntaxErrorf(pos, "invalid number: malformed exponent")
		}
	}

	kind := arena.KindInt
	if isFloat {
		kind = arena.KindFloat
	}
	idx, err := a.NewScalar(kind, int32(start), int32(pos))
	return idx, pos, err
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// scanString reads a quoted string literal starting at pos (which must
// point at the opening '"'), unescaping its contents in place. The
// unescaped bytes are written starting at the same offset the escaped
// bytes began at, so the write cursor never runs ahead of the read
// cursor and no byte outside [pos, next) is ever touched.
func scanString(buf []byte, pos int) (start, end, next int, err error) {
	read := pos + 1
	write := read
	start = read

	for {
		if read >= len(buf) {
			return 0, 0, 0, syntaxErrorf(read, "unterminated string")
		}
		c := buf[read]
		switch {
		case c == '"':
			return start, write, read + 1, nil
		case c == '\\':
			read++
			if read >= len(buf) {
				return 0, 0, 0, syntaxErrorf(read, "unterminated escape")
			}
			switch e := buf[read]; e {
			case '"', '\\', '/':
				buf[write] = e
				write++
				read++
			case 'b':
				buf[write] = '\b'
				write++
				read++
			case 'f':
				buf[write] = '\f'
				write++
				read++
			case 'n':
				buf[write] = '\n'
				write++
				read++
			case 'r':
				buf[write] = '\r'
				write++
				read++
			case 't':
				buf[write] = '\t'
				write++
				read++
			case 'u':
				read++
				hi, n, uerr := readHex4(buf, read)
				if uerr != nil {
					return 0, 0, 0, uerr
				}
				read = n
				// Matches the reference reader exactly: a \uXXXX
				// escape always produces the two raw bytes of its
				// code unit, never a UTF-8 re-encoding and never a
				// combined surrogate pair.
				buf[write] = byte(hi >> 8)
				write++
				buf[write] = byte(hi & 0xFF)
				write++
			default:
				return 0, 0, 0, syntaxErrorf(read, "invalid escape character %q", e)
			}
		default:
			buf[write] = c
			write++
			read++
		}
	}
}

func readHex4(buf []byte, pos int) (int, int, error) {
	if pos+4 > len(buf) {
		return 0, pos, syntaxErrorf(pos, "truncated \\u escape")
	}
	v, err := strconv.ParseUint(string(buf[pos:pos+4]), 16, 32)
	if err != nil {
		return 0, pos, syntaxErrorf(pos, "invalid \\u escape")
	}
	return int(v), pos + 4, nil
}

func scanObject(buf []byte, pos int, a *arena.Arena) (int32, int, error) {
	idx, err := a.NewCollection(arena.KindObject)
	if err != nil {
		return 0, pos, err
	}
	pos++ // consume '{'
	pos = skipWhitespace(buf, pos)
	if pos < len(buf) && buf[pos] == '}' {
		return idx, pos + 1, nil
	}

	for {
		pos = skipWhitespace(buf, pos)
		if pos >= len(buf) || buf[pos] != '"' {
			return 0, pos, syntaxErrorf(pos, "expected object key string")
		}
		keyStart, keyEnd, next, err := scanString(buf, pos)
		if err != nil {
			return 0, pos, err
		}
		key := string(buf[keyStart:keyEnd])
		pos = skipWhitespace(buf, next)
		if pos >= len(buf) || buf[pos] != ':' {
			return 0, pos, syntaxErrorf(pos, "expected ':' after object key")
		}
		pos = skipWhitespace(buf, pos+1)

		childIdx, next2, err := scanValue(buf, pos, a)
		if err != nil {
			return 0, pos, err
		}
		pos = next2
		a.AppendChild(idx, childIdx, arena.ParentObject, key, 0)

		pos = skipWhitespace(buf, pos)
		if pos >= len(buf) {
			return 0, pos, syntaxErrorf(pos, "unterminated object")
		}
		switch buf[pos] {
		case ',':
			pos++
			continue
		case '}':
			return idx, pos + 1, nil
		default:
			return 0, pos, syntaxErrorf(pos, "expected ',' or '}'")
		}
	}
}

func scanArray(buf []byte, pos int, a *arena.Arena) (int32, int, error) {
	idx, err := a.NewCollection(arena.KindArray)
	if err != nil {
		return 0, pos, err
	}
	pos++ // consume '['
	pos = skipWhitespace(buf, pos)
	if pos < len(buf) && buf[pos] == ']' {
		return idx, pos + 1, nil
	}

	arrIdx := int32(1)
	for {
		pos = skipWhitespace(buf, pos)
		childIdx, next, err := scanValue(buf, pos, a)
		if err != nil {
			return 0, pos, err
		}
		pos = next
		a.AppendChild(idx, childIdx, arena.ParentArray, "", arrIdx)
		arrIdx++

		pos = skipWhitespace(buf, pos)
		if pos >= len(buf) {
			return 0, pos, syntaxErrorf(pos, "unterminated array")
		}
		switch buf[pos] {
		case ',':
			pos++
			continue
		case ']':
			return idx, pos + 1, nil
		default:
			return 0, pos, syntaxErrorf(pos, "expected ',' or ']'")
		}
	}
}
