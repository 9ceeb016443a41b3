// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package pool holds the typed sync.Pool wrappers shared by navpath and
// document for building path strings and rendering dump output without
// repeated allocation on hot paths.
package pool

import (
	"bytes"
	"strings"
	"sync"
)

var builders = &stringBuilderPool{
	pool: sync.Pool{
		New: func() any { return &strings.Builder{} },
	},
}

type stringBuilderPool struct{ pool sync.Pool }

func (p *stringBuilderPool) Get() *strings.Builder {
	return p.pool.Get().(*strings.Builder)
}

func (p *stringBuilderPool) Put(sb *strings.Builder) {
	sb.Reset()
	p.pool.Put(sb)
}

// GetBuilder returns a reset *strings.Builder from the shared pool.
func GetBuilder() *strings.Builder { return builders.Get() }

// PutBuilder returns sb to the shared pool.
func PutBuilder(sb *strings.Builder) { builders.Put(sb) }

var buffers = &bytesBufferPool{
	pool: sync.Pool{
		New: func() any { return bytes.NewBuffer(make([]byte, 0, 4096)) },
	},
}

type bytesBufferPool struct{ pool sync.Pool }

func (p *bytesBufferPool) Get() *bytes.Buffer {
	return p.pool.Get().(*bytes.Buffer)
}

func (p *bytesBufferPool) Put(b *bytes.Buffer) {
	b.Reset()
	p.pool.Put(b)
}

// GetBuffer returns a reset *bytes.Buffer from the shared pool.
func GetBuffer() *bytes.Buffer { return buffers.Get() }

// PutBuffer returns b to the shared pool.
func PutBuffer(b *bytes.Buffer) { buffers.Put(b) }
