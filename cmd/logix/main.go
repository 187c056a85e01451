// Copyright 2024 The Logix Authors
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

// Command logix is a thin CLI over the loader/parser core, out of the
// core's scope per spec.md but wired the way the teacher's cmd/cue wires
// its own core library: cobra for subcommands and flags, this module's
// diag package for terminal rendering.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var root string
	var color string
	var verbose bool

	cmd := &cobra.Command{
		Use:           "logix",
		Short:         "Inspect and validate logix configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&root, "root", ".", "directory a relative <file> argument is resolved against")
	cmd.PersistentFlags().StringVar(&color, "color", "auto", "color mode: auto, always, never")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log file opens and @include resolution to stderr")

	cmd.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Tokenize a file to completion, reporting the first error if any",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, color, verbose, args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "tokens <file>",
		Short: "Print every token in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, root, color, verbose, args[0])
		},
	})
	return cmd
}
