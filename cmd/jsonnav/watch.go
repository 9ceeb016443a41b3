// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/lazytree/jsonnav/document"
)

func newWatchCmd(cfg *config, log *logrus.Logger) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-dump --path every time FILE changes on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := resolveEncoding(cmd.Flag("encoding").Value.String())
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			defer watcher.Close()

			if err := watcher.Add(args[0]); err != nil {
				return fmt.Errorf("watch: %w", err)
			}

			redump := func() {
				err := document.OpenFile(args[0], enc, func(d *document.Document) error {
					out, err := d.Dump(path, document.DefaultRenderer(cfg.indent()))
					if err != nil {
						return err
					}
					fmt.Println(out)
					return nil
				})
				if err != nil {
					log.WithError(err).Error("watch: redump failed")
				}
			}

			// A file being rewritten line-by-line can fire many write
			// events per second; the limiter spaces reparses at least
			// 200ms apart. Every write or create event still triggers
			// its own reparse once the limiter lets it through.
			limiter := rate.NewLimiter(rate.Every(200*time.Millisecond), 1)
			ctx := context.Background()

			redump()
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					if err := limiter.Wait(ctx); err != nil {
						return err
					}
					redump()
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.WithError(err).Error("watch: fsnotify error")
				}
			}
		},
	}

	cmd.Flags().StringVar(&path, "path", "/", "path to re-dump on every change")
	return cmd
}
