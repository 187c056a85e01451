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

// Struct is a derived Type[T] for a named-field struct (§4.6). New
// builds a fresh zero target; Set assigns one parsed field's (now
// type-erased) value onto it by name. Both are the hand-written
// equivalent of what a derive macro would generate.
type Struct[T any] struct {
	Name   string
	Doc    string
	Fields []FieldSpec
	New    func() T
	Set    func(target *T, field string, v any)
}

func (s Struct[T]) Descriptor() schema.Descriptor {
	fields := make([]schema.Descriptor, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = f.descriptor()
	}
	return schema.Descriptor{Name: s.Name, Doc: s.Doc, Value: schema.ValueDescriptor{Kind: schema.Struct, Fields: fields}}
}

func (s Struct[T]) Default() (T, bool) {
	var zero T
	return zero, false
}

// Parse implements schema.Type[T]; it always requires the struct's own
// leading identifier.
func (s Struct[T]) Parse(p *parser.Parser) (value.Value[T], error) {
	return s.parse(p, source.Span{})
}

// ParseAfterIdent parses the struct body when identSpan (the span of an
// already-consumed and matched identifier) is supplied by a caller —
// used by [Enum] dispatch, which peeks and consumes the variant name
// itself before delegating here, per §4.6's "leading-ident flag".
func (s Struct[T]) ParseAfterIdent(p *parser.Parser, identSpan source.Span) (value.Value[T], error) {
	return s.parse(p, identSpan)
}

func (s Struct[T]) field(name string) *FieldSpec {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}

func (s Struct[T]) unknownMemberError(sp source.Span, got string, seen map[string]bool) error {
	wanted := []token.Token{{Kind: token.BraceClose, Brace: token.Curly}}
	for _, f := range s.Fields {
		if !seen[f.Name] {
			wanted = append(wanted, token.Token{Kind: token.Ident, Text: f.Name})
		}
	}
	return &errors.UnexpectedToken{
		Pos: sp, WhileParsing: s.Name, Got: got,
		Wanted: errors.Wanted{Kind: errors.WantTokens, Tokens: wanted},
	}
}

func (s Struct[T]) parse(p *parser.Parser, identSpan source.Span) (value.Value[T], error) {
	if !identSpan.IsValid() {
		_, sp, err := p.ReqToken(s.Name, token.Token{Kind: token.Ident, Text: s.Name})
		if err != nil {
			return value.Value[T]{}, err
		}
		identSpan = sp
	}
	if _, err := p.ReqBrace(s.Name, true, token.Curly); err != nil {
		return value.Value[T]{}, err
	}
	if _, err := p.ReqNewline(s.Name); err != nil {
		return value.Value[T]{}, err
	}

	target := s.New()
	seen := map[string]bool{}
	var closeSpan source.Span
	for {
		tok, sp, err := p.PeekToken()
		if err != nil {
			return value.Value[T]{}, err
		}
		if tok.Kind == token.BraceClose && tok.Brace == token.Curly {
			p.NextToken()
			closeSpan = sp
			break
		}

		key, keySpan, err := p.ReqIdent(s.Name)
		if err != nil {
			return value.Value[T]{}, err
		}
		field := s.field(key)
		if field == nil {
			return value.Value[T]{}, s.unknownMemberError(keySpan, tokIdentName(key), seen)
		}
		if seen[key] {
			return value.Value[T]{}, &errors.DuplicateStructMember{Pos: keySpan, Type: s.Name, Member: key}
		}
		if _, _, err := p.ReqToken(s.Name, token.Token{Kind: token.Colon}); err != nil {
			return value.Value[T]{}, err
		}
		v, err := field.Parse(p)
		if err != nil {
			return value.Value[T]{}, err
		}
		if _, err := p.ReqNewline(s.Name); err != nil {
			return value.Value[T]{}, err
		}
		s.Set(&target, key, v.V)
		seen[key] = true
	}

	for _, f := range s.Fields {
		if seen[f.Name] {
			continue
		}
		if d, ok := f.Default(); ok {
			s.Set(&target, f.Name, d)
			continue
		}
		return value.Value[T]{}, &errors.MissingStructMember{Pos: closeSpan, Type: s.Name, Member: f.Name}
	}
	return value.Value[T]{V: target, Span: identSpan.Join(closeSpan)}, nil
}

func tokIdentName(text string) string {
	return token.Token{Kind: token.Ident, Text: text}.Name()
}
