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

// Package diag renders a ParseError against its originating file as a
// terminal diagnostic: a headline, a `---> path:line:col` pointer, one line
// of surrounding context, and carets under the offending span. The
// teacher's own errors.Print (cue/errors) renders only a flat
// "path:line:col" list with no gutter or carets, so the gutter/caret layout
// here follows spec.md §6 directly; fatih/color supplies the headline/caret
// coloring the teacher's own packages don't need.
package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/logix-lang/logix/errors"
)

// Writer renders diagnostics to an underlying io.Writer, with color forced
// on or off depending on whether that writer looks like a terminal.
type Writer struct {
	w     io.Writer
	color bool
}

// NewWriter wraps w, auto-detecting color support via go-isatty when f is
// an *os.File; color is forced off for anything else (pipes, buffers).
func NewWriter(w io.Writer, f fileDescriptor) *Writer {
	useColor := f != nil && isatty.IsTerminal(f.Fd())
	return &Writer{w: w, color: useColor}
}

// fileDescriptor is the part of *os.File diag needs, so tests can supply a
// fake without opening a real terminal.
type fileDescriptor interface {
	Fd() uintptr
}

// SetColor overrides the auto-detected color setting, for callers honoring
// an explicit --color=always/never flag.
func (dw *Writer) SetColor(on bool) { dw.color = on }

// Render prints err against its span's source file in the §6 format:
//
//	error: <headline>
//	   ---> <path>:<line>:<col>
//	    |
//	  N | <source line>
//	    | ...^^^ <detail>
func (dw *Writer) Render(err errors.ParseError) {
	sp := err.Span()
	headline := err.Error()

	red := color.New(color.FgRed, color.Bold)
	blue := color.New(color.FgBlue, color.Bold)
	if !dw.color {
		red.DisableColor()
		blue.DisableColor()
	}

	fmt.Fprintf(dw.w, "%s %s\n", red.Sprint("error:"), headline)

	if !sp.IsValid() {
		return
	}
	f := sp.File()
	line, col := f.LineCol(sp.Start())
	path := f.Path()
	fmt.Fprintf(dw.w, "   %s %s:%d:%d\n", blue.Sprint("--->"), path, line, col)

	gutterWidth := len(strconv.Itoa(line + 1))
	pad := strings.Repeat(" ", gutterWidth)
	fmt.Fprintf(dw.w, "%s %s\n", pad, blue.Sprint("|"))

	if prev := f.Line(line - 1); prev != nil {
		dw.contextLine(blue, gutterWidth, line-1, prev)
	}
	dw.contextLine(blue, gutterWidth, line, f.Line(line))

	caretLen := sp.EndCol() - col
	if sp.Multiline() || caretLen <= 0 {
		caretLen = 1
	}
	fmt.Fprintf(dw.w, "%s %s %s%s %s\n", pad, blue.Sprint("|"),
		strings.Repeat(" ", col), red.Sprint(strings.Repeat("^", caretLen)), red.Sprint(headline))

	if next := f.Line(line + 1); next != nil {
		dw.contextLine(blue, gutterWidth, line+1, next)
	}
}

func (dw *Writer) contextLine(blue *color.Color, gutterWidth, n int, body []byte) {
	num := strconv.Itoa(n)
	pad := strings.Repeat(" ", gutterWidth-len(num))
	fmt.Fprintf(dw.w, "%s%s %s %s\n", pad, num, blue.Sprint("|"), body)
}
