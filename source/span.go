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

package source

import "fmt"

// Span identifies a contiguous byte range in one File. The range may be
// entirely on one line (EndLine == StartLine) or may cross several lines,
// in which case EndLine/End describe where it finishes.
//
// The zero Span is invalid; use [File.Span] to build one.
type Span struct {
	file  *File
	start int // byte offset, inclusive
	end   int // byte offset, exclusive

	startLine int
	startCol  uint16
	endLine   int
	endCol    uint16
}

// Span returns the span covering [start, end) on file f. end must be >=
// start; end == start gives a zero-width span.
func (f *File) Span(start, end int) Span {
	if end < start {
		panic(fmt.Sprintf("source: span end %d before start %d", end, start))
	}
	sl, sc := f.LineCol(start)
	el, ec := f.LineCol(end)
	return Span{
		file: f, start: start, end: end,
		startLine: sl, startCol: clampCol(sc),
		endLine: el, endCol: clampCol(ec),
	}
}

func clampCol(c int) uint16 {
	if c < 0 {
		return 0
	}
	if c > MaxColumn {
		return MaxColumn
	}
	return uint16(c)
}

// File returns the file this span belongs to.
func (s Span) File() *File { return s.file }

// Start returns the inclusive starting byte offset.
func (s Span) Start() int { return s.start }

// End returns the exclusive ending byte offset.
func (s Span) End() int { return s.end }

// Line returns the 1-based starting line number.
func (s Span) Line() int { return s.startLine }

// EndLine returns the 1-based ending line number. Equal to Line for
// single-line spans.
func (s Span) EndLine() int { return s.endLine }

// Col returns the 0-based starting column.
func (s Span) Col() int { return int(s.startCol) }

// EndCol returns the 0-based ending column.
func (s Span) EndCol() int { return int(s.endCol) }

// Multiline reports whether the span covers more than one source line.
func (s Span) Multiline() bool { return s.startLine != s.endLine }

// Bytes returns the raw bytes covered by the span.
func (s Span) Bytes() []byte {
	if s.file == nil {
		return nil
	}
	return s.file.body[s.start:s.end]
}

// Shift returns a copy of s with its range moved forward by n bytes; n may
// be negative.
func (s Span) Shift(n int) Span {
	return s.file.Span(s.start+n, s.end+n)
}

// Sub returns the span covering [s.Start()+from, s.Start()+to), useful for
// pointing at a byte range inside a token's span (e.g. a bad escape
// sequence inside a string literal).
func (s Span) Sub(from, to int) Span {
	return s.file.Span(s.start+from, s.start+to)
}

// Join returns the smallest span covering both s and other. Both spans
// must belong to the same file.
func (s Span) Join(other Span) Span {
	if s.file != other.file {
		panic("source: Join across different files")
	}
	start, end := s.start, s.end
	if other.start < start {
		start = other.start
	}
	if other.end > end {
		end = other.end
	}
	return s.file.Span(start, end)
}

// IsValid reports whether the span references a file.
func (s Span) IsValid() bool { return s.file != nil }

// String renders "path:line:col" for error messages and test output.
func (s Span) String() string {
	if s.file == nil {
		return "-"
	}
	return fmt.Sprintf("%s:%d:%d", s.file.Path(), s.startLine, s.startCol)
}
