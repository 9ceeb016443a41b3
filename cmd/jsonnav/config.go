// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds the CLI's layered configuration: flags override
// environment variables, which override a jsonnav.yaml/.json/.toml file
// discovered by viper, which override the defaults set here.
type config struct {
	v *viper.Viper
}

func newConfig() *config {
	v := viper.New()
	v.SetConfigName("jsonnav")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/jsonnav")
	v.SetEnvPrefix("JSONNAV")
	v.AutomaticEnv()

	v.SetDefault("indent", "  ")
	v.SetDefault("color", true)
	v.SetDefault("log-level", "info")

	_ = v.ReadInConfig() // absence of a config file is not an error

	return &config{v: v}
}

func (c *config) bindFlags(cmd *cobra.Command) {
	_ = c.v.BindPFlags(cmd.Flags())
}

func (c *config) indent() string { return c.v.GetString("indent") }
func (c *config) colorEnabled() bool { return c.v.GetBool("color") }

func (c *config) logLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(c.v.GetString("log-level")))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
