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

// Package loader is the top-level driver spec.md treats as an external
// collaborator: it opens files through filesystem.FS, caches them as
// source.File (so repeated @include of the same path shares one buffer),
// and drives a schema.Type[T]'s Parse to completion, requiring the trailing
// content to be nothing but blank lines/comments and a final EOF.
package loader

import (
	"io"
	"path"
	"sync"
	"unicode/utf8"

	"github.com/logix-lang/logix/errors"
	"github.com/logix-lang/logix/filesystem"
	"github.com/logix-lang/logix/parser"
	"github.com/logix-lang/logix/schema"
	"github.com/logix-lang/logix/source"
	"github.com/logix-lang/logix/token"
	"github.com/logix-lang/logix/value"
)

// Loader opens files through fs, caching each by its canonical path. It is
// not itself thread-safe: its cache is mutated lazily on first open, same
// as the teacher's loader.
type Loader struct {
	fs    filesystem.FS
	mu    sync.Mutex
	files map[string]*source.File
	logf  func(format string, args ...any)
}

// New returns a Loader backed by fs. Operational diagnostics (file opens,
// include resolution) are silent until a logger is installed with
// [Loader.SetLogger].
func New(fs filesystem.FS) *Loader {
	return &Loader{fs: fs, files: map[string]*source.File{}}
}

// SetLogger installs logf to receive one line per file actually read from
// disk (cache misses) and per @include resolved, in the style of the
// standard library's log.Printf — cmd/logix wires this to log.Printf
// itself under --verbose. A nil logf (the default) silences these
// diagnostics, matching the core packages' own light touch on logging.
func (l *Loader) SetLogger(logf func(format string, args ...any)) {
	l.logf = logf
}

func (l *Loader) logOpen(format string, args ...any) {
	if l.logf != nil {
		l.logf(format, args...)
	}
}

// open resolves, reads, and caches the file at path, returning the shared
// *source.File if it was already loaded.
func (l *Loader) open(logicalPath string) (*source.File, error) {
	canon, err := l.fs.Canonicalize(logicalPath)
	if err != nil {
		return nil, &errors.FsError{Err: err}
	}

	l.mu.Lock()
	if f, ok := l.files[canon]; ok {
		l.mu.Unlock()
		return f, nil
	}
	l.mu.Unlock()

	l.logOpen("logix: opening %s", canon)
	fh, err := l.fs.Open(logicalPath)
	if err != nil {
		return nil, &errors.FsError{Err: err}
	}
	defer fh.Close()
	body, err := io.ReadAll(fh)
	if err != nil {
		return nil, &errors.FsError{Err: err}
	}

	f, err := source.NewFile(canon, body)
	if err != nil {
		return nil, &errors.FsError{Err: err}
	}

	l.mu.Lock()
	if existing, ok := l.files[canon]; ok {
		l.mu.Unlock()
		return existing, nil
	}
	l.files[canon] = f
	l.mu.Unlock()
	return f, nil
}

// Include implements parser.Includer: path is resolved relative to the
// directory of fromPath (the file containing the @include action).
func (l *Loader) Include(fromPath string, includePath string) (*source.File, error) {
	resolved := includePath
	if !path.IsAbs(includePath) {
		resolved = path.Join(path.Dir(fromPath), includePath)
	}
	l.logOpen("logix: resolving @include(%s) from %s", includePath, fromPath)
	f, err := l.open(resolved)
	if err != nil {
		var fsErr *errors.FsError
		if errors.As(err, &fsErr) {
			return nil, &errors.IncludeFault{Kind: errors.IncludeOpenFailed, Err: fsErr.Err}
		}
		return nil, err
	}
	if !utf8.Valid(f.Body()) {
		return nil, &errors.IncludeFault{Kind: errors.IncludeNotUTF8}
	}
	return f, nil
}

var _ parser.Includer = (*Loader)(nil)

// Parser opens logicalPath and returns a driver positioned at its start,
// for callers (e.g. cmd/logix's token-dumping mode) that walk the token
// stream directly instead of parsing a schema.Type[T].
func (l *Loader) Parser(logicalPath string) (*parser.Parser, error) {
	f, err := l.open(logicalPath)
	if err != nil {
		return nil, err
	}
	return parser.New(f, l), nil
}

// Load opens logicalPath, parses it with t, and requires that nothing but
// blank lines/comments and EOF follow the parsed value — matching the
// teacher's load_file, which re-requires a newline then an EOF token after
// the top-level parse completes.
func Load[T any](l *Loader, logicalPath string, t schema.Type[T]) (value.Value[T], error) {
	f, err := l.open(logicalPath)
	if err != nil {
		return value.Value[T]{}, err
	}
	p := parser.New(f, l)

	v, err := t.Parse(p)
	if err != nil {
		return value.Value[T]{}, err
	}

	name := t.Descriptor().Name
	if _, err := p.ReqNewline(name); err != nil {
		return value.Value[T]{}, err
	}
	if _, _, err := p.ReqToken(name, token.Token{Kind: token.Newline, EOF: true}); err != nil {
		return value.Value[T]{}, err
	}
	return v, nil
}
