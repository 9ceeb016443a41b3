// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lazytree/jsonnav/document"
)

func newInspectCmd(cfg *config, log *logrus.Logger) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Tabulate the immediate children of the node at --path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := resolveEncoding(cmd.Flag("encoding").Value.String())
			if err != nil {
				return err
			}

			return document.OpenFile(args[0], enc, func(d *document.Document) error {
				if err := d.Move(path); err != nil {
					log.WithError(err).Error("inspect: could not move to path")
					return err
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Label", "Type", "Size")

				err := d.EachChild(func(child *document.Document) error {
					locator, ok := child.LocalKey()
					label := child.Where()
					if ok {
						label = fmt.Sprint(locator)
					}
					row := []string{label, child.Type().String(), humanize.Comma(int64(child.ChildCount()))}
					return table.Append(row)
				})
				if err != nil {
					return err
				}
				return table.Render()
			})
		},
	}

	cmd.Flags().StringVar(&path, "path", "/", "node whose children to inspect")
	return cmd
}
