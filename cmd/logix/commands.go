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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/logix-lang/logix/diag"
	"github.com/logix-lang/logix/errors"
	"github.com/logix-lang/logix/filesystem"
	"github.com/logix-lang/logix/loader"
	"github.com/logix-lang/logix/token"
)

// newLoader builds a Loader rooted at root, wiring its diagnostics to the
// standard library's log package when verbose is set — the same
// log.Printf-to-stderr style the teacher uses in its own cmd-level tools,
// left off by default so check/tokens output stays exactly the parsed
// result.
func newLoader(root string, verbose bool) *loader.Loader {
	l := loader.New(&filesystem.OSFS{CWD: root})
	if verbose {
		l.SetLogger(log.Printf)
	}
	return l
}

func newDiagWriter(cmd *cobra.Command, color string) *diag.Writer {
	f, _ := cmd.OutOrStdout().(*os.File)
	dw := diag.NewWriter(cmd.OutOrStdout(), f)
	switch color {
	case "always":
		dw.SetColor(true)
	case "never":
		dw.SetColor(false)
	}
	return dw
}

// runCheck tokenizes file to completion via the parser driver, reporting
// the first error (if any) in the §6 diagnostic format. It exercises the
// full loader->parser wiring without requiring a caller-supplied schema.
func runCheck(cmd *cobra.Command, root, color string, verbose bool, file string) error {
	l := newLoader(root, verbose)
	p, err := l.Parser(file)
	if err != nil {
		return renderOrReturn(cmd, color, err)
	}
	for !p.AtEnd() {
		if _, _, err := p.NextToken(); err != nil {
			return renderOrReturn(cmd, color, err)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

// runTokens prints every token's kind, text, and span.
func runTokens(cmd *cobra.Command, root, color string, verbose bool, file string) error {
	l := newLoader(root, verbose)
	p, err := l.Parser(file)
	if err != nil {
		return renderOrReturn(cmd, color, err)
	}
	for {
		tok, sp, err := p.NextToken()
		if err != nil {
			return renderOrReturn(cmd, color, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-12s %s\n", sp, tok.Kind, tok.Text)
		if tok.Kind == token.Newline && tok.EOF {
			return nil
		}
	}
}

func renderOrReturn(cmd *cobra.Command, color string, err error) error {
	var pe errors.ParseError
	if errors.As(err, &pe) {
		newDiagWriter(cmd, color).Render(pe)
		return fmt.Errorf("%s", pe.Error())
	}
	return err
}
