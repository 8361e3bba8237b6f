// Copyright 2026 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd implements the yamlcore command.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flagName string

const (
	flagConfig  flagName = "config"
	flagParser  flagName = "parser"
	flagVerbose flagName = "verbose"
	flagJSON    flagName = "json"
	flagExact   flagName = "exact"
	flagStyle   flagName = "style"
)

func (f flagName) ensureAdded(fs *pflag.FlagSet) {
	if fs.Lookup(string(f)) == nil {
		panic(fmt.Sprintf("flag %q not added", f))
	}
}

func (f flagName) Bool(cmd *Command) bool {
	f.ensureAdded(cmd.Flags())
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	f.ensureAdded(cmd.Flags())
	v, _ := cmd.Flags().GetString(string(f))
	return v
}

// Command is the yamlcore command or one of its subcommands, together
// with the settings resolved when it started running.
type Command struct {
	// The currently active command.
	*cobra.Command

	root *cobra.Command

	cfg    config
	logger *slog.Logger
}

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		return f(c, args)
	}
}

// New creates the top-level command for the given arguments.
func New(args []string) *Command {
	root := &cobra.Command{
		Use:   "yamlcore",
		Short: "yamlcore constructs YAML documents with the core schema",

		SilenceErrors: true,
		SilenceUsage:  true,
	}
	c := &Command{
		Command: root,
		root:    root,
		cfg:     defaultConfig(),
		logger:  slog.New(slog.DiscardHandler),
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		c.Command = cmd
		return c.setup()
	}

	pf := root.PersistentFlags()
	pf.String(string(flagConfig), "", "read settings from the given TOML `file` (default $"+configEnv+")")
	pf.String(string(flagParser), "", "YAML parser to use: yamlv3 or goccy")
	pf.BoolP(string(flagVerbose), "v", false, "log debug information to stderr")

	root.AddCommand(newConstructCmd(c))
	root.AddCommand(newClassifyCmd(c))

	root.SetArgs(args)
	return c
}

// setup resolves the configuration, applying flags last.
func (c *Command) setup() error {
	cfg, err := loadConfig(flagConfig.String(c))
	if err != nil {
		return err
	}
	if c.Flags().Changed(string(flagParser)) {
		cfg.Parser = flagParser.String(c)
	}
	if flagVerbose.Bool(c) {
		cfg.Log = "debug"
	}
	// Error output uses the color mode even when the config is invalid.
	c.cfg.Color = cfg.Color
	if err := cfg.validate(); err != nil {
		return err
	}
	c.cfg = cfg
	level, _ := cfg.logLevel()
	c.logger = newLogger(c.ErrOrStderr(), level)
	c.logger.Debug("configured", "parser", cfg.Parser, "color", cfg.Color, "log", cfg.Log)
	return nil
}

// Run executes the command.
func (c *Command) Run(ctx context.Context) error {
	return c.root.ExecuteContext(ctx)
}

// SetOutput redirects the standard output and error of the command.
func (c *Command) SetOutput(stdout, stderr io.Writer) {
	c.root.SetOut(stdout)
	c.root.SetErr(stderr)
}

// SetInput sets the standard input of the command.
func (c *Command) SetInput(r io.Reader) {
	c.root.SetIn(r)
}

// Main runs the yamlcore tool and returns its exit code.
func Main() int {
	c := New(os.Args[1:])
	if err := c.Run(context.Background()); err != nil {
		fmt.Fprintln(c.root.ErrOrStderr(), c.cfg.errorPrefix(c.root.ErrOrStderr()), err)
		return 1
	}
	return 0
}
