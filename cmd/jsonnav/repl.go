// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lazytree/jsonnav/document"
)

// newReplCmd drives an interactive session against one open Document,
// the CLI analogue of the reference reader's Doc.open(json) { |doc| ... }
// visitor block: each line is one navigator command applied to the same
// Document until the user quits.
func newReplCmd(cfg *config, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "repl FILE",
		Short: "Open FILE and drive move/fetch/type/dump/where interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := resolveEncoding(cmd.Flag("encoding").Value.String())
			if err != nil {
				return err
			}

			return document.OpenFile(args[0], enc, func(d *document.Document) error {
				return runRepl(d, cfg)
			})
		},
	}
}

func runRepl(d *document.Document, cfg *config) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt(fmt.Sprintf("%s> ", d.Where()))
		if err != nil { // io.EOF on ^D, liner.ErrPromptAborted on ^C
			return nil
		}
		line.AppendHistory(input)

		cmdName, arg, _ := strings.Cut(strings.TrimSpace(input), " ")
		switch cmdName {
		case "", "help":
			fmt.Println("commands: move PATH | fetch PATH | type PATH | dump PATH | where | home | quit")
		case "quit", "exit":
			return nil
		case "home":
			d.Home()
		case "where":
			fmt.Println(d.Where())
		case "move":
			if err := d.Move(arg); err != nil {
				fmt.Println("error:", err)
			}
		case "fetch":
			v, err := d.Fetch(arg)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("%v\n", v)
		case "type":
			t, err := d.TypeAt(arg)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(t)
		case "dump":
			out, err := d.Dump(arg, document.DefaultRenderer(cfg.indent()))
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(out)
		default:
			fmt.Printf("unknown command %q\n", cmdName)
		}
	}
}
