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
	"github.com/logix-lang/logix/errors"
	"github.com/logix-lang/logix/parser"
	"github.com/logix-lang/logix/schema"
	"github.com/logix-lang/logix/source"
	"github.com/logix-lang/logix/token"
	"github.com/logix-lang/logix/value"
)

// Variant is one arm of an [Enum]: Name is matched against the leading
// identifier, and ParseAfterIdent continues from there with the
// identifier already consumed — wire it to a [Struct.ParseAfterIdent],
// [Tuple.ParseAfterIdent], or [Unit.ParseAfterIdent] depending on the
// variant's shape.
type Variant[T any] struct {
	Name           string
	Doc            string
	ParseAfterIdent func(p *parser.Parser, identSpan source.Span) (value.Value[T], error)
}

// Enum is a derived Type[T] for a closed set of variants dispatched by
// leading identifier (§4.6). Union types (payload chosen by something
// other than a leading name) are explicitly out of scope for derive, per
// spec; only name-tagged variants are supported.
type Enum[T any] struct {
	Name     string
	Doc      string
	Variants []Variant[T]
}

func (e Enum[T]) Descriptor() schema.Descriptor {
	variants := make([]schema.Descriptor, len(e.Variants))
	for i, v := range e.Variants {
		variants[i] = schema.Descriptor{Name: v.Name, Doc: v.Doc}
	}
	return schema.Descriptor{Name: e.Name, Doc: e.Doc, Value: schema.ValueDescriptor{Kind: schema.Enum, Variants: variants}}
}

func (e Enum[T]) Default() (T, bool) {
	var zero T
	return zero, false
}

func (e Enum[T]) Parse(p *parser.Parser) (value.Value[T], error) {
	tok, sp, err := p.PeekToken()
	if err != nil {
		return value.Value[T]{}, err
	}
	if tok.Kind == token.Ident {
		for _, v := range e.Variants {
			if v.Name == tok.Text {
				p.NextToken()
				return v.ParseAfterIdent(p, sp)
			}
		}
	}
	return value.Value[T]{}, e.noMatchError(sp, tok)
}

func (e Enum[T]) noMatchError(sp source.Span, got token.Token) error {
	wanted := make([]token.Token, len(e.Variants))
	for i, v := range e.Variants {
		wanted[i] = token.Token{Kind: token.Ident, Text: v.Name}
	}
	return &errors.UnexpectedToken{
		Pos: sp, WhileParsing: e.Name, Got: got.Name(),
		Wanted: errors.Wanted{Kind: errors.WantTokens, Tokens: wanted},
	}
}
