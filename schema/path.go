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

package schema

import (
	"path"
	"strings"

	"github.com/logix-lang/logix/errors"
	"github.com/logix-lang/logix/parser"
	"github.com/logix-lang/logix/value"
)

// PathClass selects which character-class rule a path-like string must
// satisfy, per §4.4.
type PathClass int

const (
	FullPath PathClass = iota
	RelPath
	NameOnlyPath
	ExecutablePath
)

func (c PathClass) name() string {
	switch c {
	case FullPath:
		return "absolute path"
	case RelPath:
		return "relative path"
	case NameOnlyPath:
		return "path name"
	case ExecutablePath:
		return "executable path"
	default:
		return "path"
	}
}

// Path is the Type[string] for a path-like string, validated against
// Class after decoding.
type Path struct {
	noDefault[string]
	Class PathClass
}

func (p Path) Descriptor() Descriptor {
	return Descriptor{Name: p.Class.name(), Value: ValueDescriptor{Kind: Native, Native: p.Class.name()}}
}

func (pt Path) Parse(p *parser.Parser) (value.Value[string], error) {
	var str Str
	v, err := str.Parse(p)
	if err != nil {
		return value.Value[string]{}, err
	}
	if err := validatePath(v.V, pt.Class); err != nil {
		return value.Value[string]{}, &errors.InvalidPath{Pos: v.Span, Err: err}
	}
	return v, nil
}

// validatePath checks the character-class and structural rules of §4.4.
// All classes reject '\n', '|', '"', '\'' and the empty string regardless
// of platform.
func validatePath(s string, class PathClass) *errors.PathError {
	if s == "" {
		return &errors.PathError{Kind: errors.EmptyPath}
	}
	if i := strings.IndexAny(s, "\n|\"'"); i >= 0 {
		return &errors.PathError{Kind: errors.InvalidChar, Char: rune(s[i])}
	}
	isAbs := path.IsAbs(s)
	switch class {
	case FullPath:
		if !isAbs {
			return &errors.PathError{Kind: errors.NotAbsolute}
		}
	case RelPath:
		if isAbs {
			return &errors.PathError{Kind: errors.NotRelative}
		}
	case NameOnlyPath:
		if isAbs || strings.ContainsRune(s, '/') {
			return &errors.PathError{Kind: errors.NotName}
		}
	case ExecutablePath:
		if !isAbs && strings.ContainsRune(s, '/') {
			return &errors.PathError{Kind: errors.NotFullOrNameOnly}
		}
	}
	return nil
}
