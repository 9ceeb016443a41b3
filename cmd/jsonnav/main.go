// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Command jsonnav drives a lazy JSON document navigator from the shell:
// dump a path, inspect a node's children, hold an interactive session
// against one file, watch a file and re-dump on every change, or serve
// Prometheus metrics for a long-running navigator process.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
