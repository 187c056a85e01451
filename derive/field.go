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

// Package derive is the Go stand-in for the source language's derive
// macro (§4.6): Go has neither macros nor a Self-keyed trait object, so
// instead of generating code from a type declaration, a caller builds a
// [Struct], [Tuple], [Unit], or [Enum] value by hand, wiring one
// [FieldSpec] per member via [Field]. The resulting value itself
// implements schema.Type[T], exactly like a built-in parser.
package derive

import (
	"github.com/logix-lang/logix/parser"
	"github.com/logix-lang/logix/schema"
	"github.com/logix-lang/logix/value"
)

// FieldSpec is one member of a struct or tuple, type-erased to `any` so
// that heterogeneous members can share a single []FieldSpec slice. Field
// constructs one from a concrete schema.Type[V].
type FieldSpec struct {
	Name    string
	Doc     string
	Parse   func(p *parser.Parser) (value.Value[any], error)
	Default func() (any, bool)
}

// Field adapts a schema.Type[V] into a type-erased FieldSpec named name.
func Field[V any](name, doc string, t schema.Type[V]) FieldSpec {
	return FieldSpec{
		Name: name,
		Doc:  doc,
		Parse: func(p *parser.Parser) (value.Value[any], error) {
			v, err := t.Parse(p)
			if err != nil {
				return value.Value[any]{}, err
			}
			return value.Value[any]{V: v.V, Span: v.Span}, nil
		},
		Default: func() (any, bool) { return t.Default() },
	}
}

func (f FieldSpec) descriptor() schema.Descriptor {
	return schema.Descriptor{Name: f.Name, Doc: f.Doc}
}
