// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lazytree/jsonnav/document"
)

func newDumpCmd(cfg *config, log *logrus.Logger) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "dump FILE [FILE...]",
		Short: "Print the JSON value at --path for one or more files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := resolveEncoding(cmd.Flag("encoding").Value.String())
			if err != nil {
				return err
			}

			// Each file gets its own independent Document, so fanning
			// the batch out across goroutines is safe: Documents are
			// never shared across threads.
			g := new(errgroup.Group)
			for _, file := range args {
				file := file
				g.Go(func() error {
					return document.OpenFile(file, enc, func(d *document.Document) error {
						out, err := d.Dump(path, document.DefaultRenderer(cfg.indent()))
						if err != nil {
							log.WithField("file", file).WithError(err).Error("dump failed")
							return err
						}
						label := file
						if cfg.colorEnabled() {
							label = color.CyanString(file)
						}
						fmt.Printf("%s: %s\n", label, out)
						return nil
					})
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&path, "path", "/", "path to dump, e.g. /users/1/name")
	return cmd
}
