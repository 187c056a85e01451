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

// Tuple is a derived Type[T] for a tuple struct: an identifier followed
// by comma-separated positional fields in parentheses (§4.6). Set
// assigns the i-th parsed field.
type Tuple[T any] struct {
	Name   string
	Doc    string
	Fields []FieldSpec
	New    func() T
	Set    func(target *T, index int, v any)
}

func (t Tuple[T]) Descriptor() schema.Descriptor {
	fields := make([]schema.Descriptor, len(t.Fields))
	for i, f := range t.Fields {
		fields[i] = f.descriptor()
	}
	return schema.Descriptor{Name: t.Name, Doc: t.Doc, Value: schema.ValueDescriptor{Kind: schema.Tuple, Fields: fields}}
}

func (t Tuple[T]) Default() (T, bool) {
	var zero T
	return zero, false
}

func (t Tuple[T]) Parse(p *parser.Parser) (value.Value[T], error) {
	return t.parse(p, source.Span{})
}

// ParseAfterIdent is [Tuple]'s analogue of [Struct.ParseAfterIdent], for
// enum variants shaped as a tuple.
func (t Tuple[T]) ParseAfterIdent(p *parser.Parser, identSpan source.Span) (value.Value[T], error) {
	return t.parse(p, identSpan)
}

func (t Tuple[T]) parse(p *parser.Parser, identSpan source.Span) (value.Value[T], error) {
	if !identSpan.IsValid() {
		_, sp, err := p.ReqToken(t.Name, token.Token{Kind: token.Ident, Text: t.Name})
		if err != nil {
			return value.Value[T]{}, err
		}
		identSpan = sp
	}
	if _, err := p.ReqBrace(t.Name, true, token.Paren); err != nil {
		return value.Value[T]{}, err
	}

	target := t.New()
	for i, f := range t.Fields {
		if i > 0 {
			if _, _, err := p.ReqToken(t.Name, token.Token{Kind: token.Comma}); err != nil {
				return value.Value[T]{}, err
			}
		}
		v, err := f.Parse(p)
		if err != nil {
			return value.Value[T]{}, err
		}
		t.Set(&target, i, v.V)
	}
	// A trailing comma before ')' is permitted by the grammar's
	// `(',' value)* ','?`.
	if tok, _, _ := p.PeekToken(); tok.Kind == token.Comma {
		p.NextToken()
	}
	closeSpan, err := p.ReqBrace(t.Name, false, token.Paren)
	if err != nil {
		return value.Value[T]{}, err
	}
	return value.Value[T]{V: target, Span: identSpan.Join(closeSpan)}, nil
}
