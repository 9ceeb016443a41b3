// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := newConfig()
	log := logrus.New()

	root := &cobra.Command{
		Use:           "jsonnav",
		Short:         "Navigate large JSON documents lazily, without materializing the whole tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg.bindFlags(cmd)
			log.SetLevel(cfg.logLevel())
		},
	}

	root.PersistentFlags().String("indent", "  ", "indent string used when rendering dumped values")
	root.PersistentFlags().Bool("color", true, "colorize type tags and paths when attached to a terminal")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().String("encoding", "", "source text encoding (utf-8, utf-16le, utf-16be); defaults to utf-8")

	root.AddCommand(
		newDumpCmd(cfg, log),
		newInspectCmd(cfg, log),
		newReplCmd(cfg, log),
		newWatchCmd(cfg, log),
		newServeCmd(cfg, log),
	)
	return root
}
