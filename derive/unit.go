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

package derive

import (
	"github.com/logix-lang/logix/parser"
	"github.com/logix-lang/logix/schema"
	"github.com/logix-lang/logix/source"
	"github.com/logix-lang/logix/token"
	"github.com/logix-lang/logix/value"
)

// Unit is a derived Type[T] for a unit struct: bare identifier, no body
// (§4.6). Value is the single constant the identifier parses to.
type Unit[T any] struct {
	Name  string
	Doc   string
	Value T
}

func (u Unit[T]) Descriptor() schema.Descriptor {
	return schema.Descriptor{Name: u.Name, Doc: u.Doc, Value: schema.ValueDescriptor{Kind: schema.Native, Native: u.Name}}
}

func (u Unit[T]) Default() (T, bool) {
	var zero T
	return zero, false
}

func (u Unit[T]) Parse(p *parser.Parser) (value.Value[T], error) {
	_, sp, err := p.ReqToken(u.Name, token.Token{Kind: token.Ident, Text: u.Name})
	if err != nil {
		return value.Value[T]{}, err
	}
	return u.ParseAfterIdent(sp)
}

// ParseAfterIdent returns u's constant value spanned at identSpan, for
// enum variants that carry no payload.
func (u Unit[T]) ParseAfterIdent(identSpan source.Span) (value.Value[T], error) {
	return value.Value[T]{V: u.Value, Span: identSpan}, nil
}
