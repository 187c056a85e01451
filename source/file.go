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

// Package source identifies byte ranges within cached files and lets
// callers recover the surrounding lines for diagnostics.
package source

import (
	"fmt"
	"sort"
	"sync"
)

// MaxColumn is the largest column value a [Span] can address. Files
// containing a line longer than this are rejected by [NewFile].
const MaxColumn = 1<<16 - 1

// File is an immutable bundle of a logical path and its byte buffer. It is
// cheap to share: callers pass around the *File pointer, never a copy of
// the buffer. A File is created once by a loader and lives for as long as
// the loader that produced it.
type File struct {
	path string
	body []byte

	mu    sync.Mutex
	lines []int // byte offset of the first byte of each line; lines[0] == 0
}

// NewFile wraps body as the content of path, computing its line-offset
// table eagerly. It returns an error if any line exceeds MaxColumn bytes,
// since [Span] columns are stored in 16 bits.
func NewFile(path string, body []byte) (*File, error) {
	f := &File{path: path, body: body, lines: []int{0}}
	lineStart := 0
	for i, b := range body {
		if b == '\n' {
			if i-lineStart > MaxColumn {
				return nil, fmt.Errorf("source: %s:%d: line exceeds %d columns", path, len(f.lines), MaxColumn)
			}
			f.lines = append(f.lines, i+1)
			lineStart = i + 1
		}
	}
	if len(body)-lineStart > MaxColumn {
		return nil, fmt.Errorf("source: %s:%d: line exceeds %d columns", path, len(f.lines), MaxColumn)
	}
	return f, nil
}

// Path returns the logical path this file was loaded from.
func (f *File) Path() string { return f.path }

// Body returns the full byte buffer. Callers must not mutate it.
func (f *File) Body() []byte { return f.body }

// Size returns the length of the byte buffer.
func (f *File) Size() int { return len(f.body) }

// LineCount reports the number of lines recorded for this file.
func (f *File) LineCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.lines)
}

// lineOf returns the 1-based line number containing offset.
func (f *File) lineOf(offset int) int {
	f.mu.Lock()
	lines := f.lines
	f.mu.Unlock()
	// lines[i] is the start offset of line i+1; find the last line whose
	// start is <= offset.
	i := sort.Search(len(lines), func(i int) bool { return lines[i] > offset })
	return i // i is already 1-based since lines[0]==0 corresponds to line 1
}

// lineStart returns the byte offset of the first byte of the given
// 1-based line.
func (f *File) lineStart(line int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// lineEnd returns the byte offset just past the last byte of the given
// 1-based line, excluding its trailing newline.
func (f *File) lineEnd(line int) int {
	start := f.lineStart(line)
	if start < 0 {
		return -1
	}
	f.mu.Lock()
	next := len(f.body)
	if line < len(f.lines) {
		next = f.lines[line]
	}
	f.mu.Unlock()
	end := next
	if end > start && end <= len(f.body) && end-1 >= 0 && end-1 < len(f.body) && f.body[end-1] == '\n' {
		end--
	}
	return end
}

// Line returns the raw bytes of the given 1-based line, without its
// trailing newline. It returns nil if line is out of range.
func (f *File) Line(line int) []byte {
	start := f.lineStart(line)
	end := f.lineEnd(line)
	if start < 0 || end < start {
		return nil
	}
	return f.body[start:end]
}

// LineCol converts a byte offset into a 1-based line and 0-based column
// on that line.
func (f *File) LineCol(offset int) (line, col int) {
	line = f.lineOf(offset)
	if line == 0 {
		line = 1
	}
	start := f.lineStart(line)
	return line, offset - start
}
