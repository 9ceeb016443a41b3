// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/opencontainers/go-digest"
)

// dumpCache memoizes a file's last dump output keyed by the content
// digest of its bytes, so repeated requests for an unchanged file under
// `serve` skip reparsing entirely.
type dumpCache struct {
	cache *lru.Cache[digest.Digest, string]
}

func newDumpCache(size int) (*dumpCache, error) {
	c, err := lru.New[digest.Digest, string](size)
	if err != nil {
		return nil, err
	}
	return &dumpCache{cache: c}, nil
}

func (c *dumpCache) get(path string) (digest.Digest, string, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", false, err
	}
	d := digest.FromBytes(raw)
	v, ok := c.cache.Get(d)
	return d, v, ok, nil
}

func (c *dumpCache) put(d digest.Digest, value string) {
	c.cache.Add(d, value)
}
