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

// Package parser implements the stateful driver that sits between the
// tokenizer (package scanner) and schema-driven value parsers (package
// schema): it collapses blank-line runs, skips comments, recognizes the
// final EOF newline, and offers look-ahead via state forking, per §4.3.
package parser

import (
	"github.com/logix-lang/logix/errors"
	"github.com/logix-lang/logix/scanner"
	"github.com/logix-lang/logix/source"
	"github.com/logix-lang/logix/token"
	"github.com/logix-lang/logix/value"
)

// Includer resolves an @include(path) action to a cached file. The loader
// package provides the concrete implementation backed by a filesystem.FS;
// package parser only depends on this narrow interface.
type Includer interface {
	Include(fromDir string, path string) (*source.File, error)
}

// state is the parser driver's running position. It is small and
// plain-old-data so that look-ahead (Forked, PeekToken) is just a struct copy.
type state struct {
	offset      int
	prevNewline bool
	eofLatched  bool
}

// Parser is the stateful driver over one cached file.
type Parser struct {
	file     *source.File
	st       state
	includer Includer
}

// New returns a driver positioned at the start of file. includer may be
// nil if the caller never parses a Data[T] value.
func New(file *source.File, includer Includer) *Parser {
	// Start as if just after a newline, so blank and comment-only lines
	// at the top of the file are skipped like any other blank-line run.
	return &Parser{file: file, includer: includer, st: state{prevNewline: true}}
}

// File returns the file this parser is driving.
func (p *Parser) File() *source.File { return p.file }

// Includer returns the configured include resolver, or nil.
func (p *Parser) Includer() Includer { return p.includer }

// Offset returns the current byte offset, mostly useful for tests.
func (p *Parser) Offset() int { return p.st.offset }

// State is an opaque snapshot of the driver's position, usable for
// look-ahead together with Restore.
type State struct{ s state }

// Save returns the current position.
func (p *Parser) Save() State { return State{p.st} }

// Restore rewinds the driver to a previously saved position.
func (p *Parser) Restore(s State) { p.st = s.s }

// Forked clones the driver's state, runs f against the (still-shared)
// driver, and commits f's side effects only if it reports success;
// otherwise the driver's position is rewound so that it is bit-for-bit
// unchanged. This is the package-level equivalent of a generic method,
// since Go methods cannot carry their own type parameters.
func Forked[T any](p *Parser, f func(p *Parser) (T, bool)) (T, bool) {
	saved := p.Save()
	v, ok := f(p)
	if !ok {
		p.Restore(saved)
	}
	return v, ok
}

// next implements the state machine of §4.3: pull a token, skip comments,
// collapse runs of blank-line newlines, and latch onto the EOF sentinel
// once seen so repeated calls are idempotent.
func (p *Parser) next() (token.Token, source.Span, error) {
	if p.st.eofLatched {
		sp := p.file.Span(p.st.offset, p.st.offset)
		return token.Token{Kind: token.Newline, EOF: true}, sp, nil
	}
	for {
		body := p.file.Body()
		rest := body[p.st.offset:]
		r := scanner.Scan(rest)
		absStart := p.st.offset + r.Start
		absEnd := p.st.offset + r.End
		sp := p.file.Span(absStart, absEnd)
		p.st.offset += r.Len

		if r.Err != nil {
			return token.Token{}, sp, &errors.TokenError{Pos: sp, Err: r.Err}
		}
		tok := r.Token
		switch {
		case tok.Kind == token.Comment:
			continue
		case tok.Kind == token.Newline && !tok.EOF:
			if p.st.prevNewline {
				continue
			}
			p.st.prevNewline = true
			return tok, sp, nil
		case tok.Kind == token.Newline && tok.EOF:
			p.st.eofLatched = true
			p.st.prevNewline = true
			return tok, sp, nil
		default:
			p.st.prevNewline = false
			return tok, sp, nil
		}
	}
}

// NextToken advances past and returns the next meaningful token. Most
// callers should prefer the Req* primitives below; NextToken is exposed
// for schema parsers that need to branch on arbitrary lookahead.
func (p *Parser) NextToken() (token.Token, source.Span, error) { return p.next() }

// PeekToken returns the next token without consuming it.
func (p *Parser) PeekToken() (token.Token, source.Span, error) {
	saved := p.Save()
	tok, sp, err := p.next()
	p.Restore(saved)
	return tok, sp, err
}

func matchToken(got, want token.Token) bool {
	if got.Kind != want.Kind {
		return false
	}
	switch want.Kind {
	case token.Ident:
		return want.Text == "" || got.Text == want.Text
	case token.BraceOpen, token.BraceClose:
		return got.Brace == want.Brace
	default:
		return true
	}
}

// ReqToken consumes the next token, failing with UnexpectedToken if it
// doesn't structurally match want (per-Kind: brace kind must match;
// identifier text must match when want.Text is non-empty).
func (p *Parser) ReqToken(whileParsing string, want token.Token) (token.Token, source.Span, error) {
	tok, sp, err := p.next()
	if err != nil {
		return tok, sp, err
	}
	if !matchToken(tok, want) {
		return tok, sp, &errors.UnexpectedToken{
			Pos: sp, WhileParsing: whileParsing, Got: tok.Name(),
			Wanted: errors.Wanted{Kind: errors.WantToken, Token: want},
		}
	}
	return tok, sp, nil
}

// ReqNewline accepts either a non-EOF or the EOF-sentinel newline.
func (p *Parser) ReqNewline(whileParsing string) (source.Span, error) {
	tok, sp, err := p.next()
	if err != nil {
		return sp, err
	}
	if tok.Kind != token.Newline {
		return sp, &errors.UnexpectedToken{
			Pos: sp, WhileParsing: whileParsing, Got: tok.Name(),
			Wanted: errors.Wanted{Kind: errors.WantToken, Token: token.Token{Kind: token.Newline}},
		}
	}
	return sp, nil
}

// ReqIdent requires an identifier, returning its text.
func (p *Parser) ReqIdent(whileParsing string) (string, source.Span, error) {
	tok, sp, err := p.ReqToken(whileParsing, token.Token{Kind: token.Ident})
	return tok.Text, sp, err
}

// ReqBrace requires a specific open or close brace of kind.
func (p *Parser) ReqBrace(whileParsing string, open bool, kind token.BraceKind) (source.Span, error) {
	k := token.BraceClose
	if open {
		k = token.BraceOpen
	}
	_, sp, err := p.ReqToken(whileParsing, token.Token{Kind: k, Brace: kind})
	return sp, err
}

// AtEnd reports whether the driver has reached the EOF sentinel. Per §8
// Testable Property 7, any remaining non-comment token at this point
// should have already surfaced as UnexpectedToken from a ReqNewline call;
// AtEnd lets a top-level caller confirm completeness explicitly.
func (p *Parser) AtEnd() bool { return p.st.eofLatched }

// ReqWrapped requires brace-open, runs f, then requires brace-close,
// returning a Value whose span covers both braces (§4.3 req_wrapped).
func ReqWrapped[T any](p *Parser, whileParsing string, brace token.BraceKind, f func(p *Parser) (T, error)) (value.Value[T], error) {
	openSpan, err := p.ReqBrace(whileParsing, true, brace)
	if err != nil {
		return value.Value[T]{}, err
	}
	v, err := f(p)
	if err != nil {
		return value.Value[T]{}, err
	}
	closeSpan, err := p.ReqBrace(whileParsing, false, brace)
	if err != nil {
		return value.Value[T]{}, err
	}
	return value.Value[T]{V: v, Span: openSpan.Join(closeSpan)}, nil
}

// ReadKeyValue implements read_key_value<T> (§4.3): either an identifier
// key, ':', a value of T and a newline, or the end-brace terminator. The
// returned bool is false once the terminator has been consumed.
func ReadKeyValue[T any](p *Parser, whileParsing string, endBrace token.BraceKind, parseValue func(p *Parser) (value.Value[T], error)) (key string, keySpan source.Span, v value.Value[T], more bool, err error) {
	tok, sp, err := p.PeekToken()
	if err != nil {
		return "", sp, v, false, err
	}
	if tok.Kind == token.BraceClose && tok.Brace == endBrace {
		p.next()
		return "", sp, v, false, nil
	}

	key, keySpan, err = p.ReqIdent(whileParsing)
	if err != nil {
		return "", keySpan, v, false, err
	}
	if _, _, err = p.ReqToken(whileParsing, token.Token{Kind: token.Colon}); err != nil {
		return key, keySpan, v, false, err
	}
	v, err = parseValue(p)
	if err != nil {
		return key, keySpan, v, false, err
	}
	if _, err = p.ReqNewline(whileParsing); err != nil {
		return key, keySpan, v, false, err
	}
	return key, keySpan, v, true, nil
}

func isValueStart(tok token.Token) bool {
	switch tok.Kind {
	case token.Ident, token.Action, token.Number, token.String, token.BraceOpen:
		return true
	default:
		return false
	}
}

// ParseDelimited implements the delimited-list iterator of §4.5: items
// separated by comma, newline, or both, with an optional trailing comma,
// stopping (without consuming) at the first close-brace.
func ParseDelimited[T any](p *Parser, whileParsing string, parseItem func(p *Parser) (value.Value[T], error)) ([]value.Value[T], error) {
	return ParseDelimitedMax(p, whileParsing, -1, parseItem)
}

// ParseDelimitedMax is ParseDelimited with an item cap: once max items
// (max < 0 meaning unlimited) have been parsed, the iterator stops
// without consuming the next token even if it starts a value, so that a
// caller's subsequent close-brace requirement reports the extra token as
// unexpected (used by FixedArray to report "too many items" at the first
// excess element rather than as a separate count-mismatch error kind).
func ParseDelimitedMax[T any](p *Parser, whileParsing string, max int, parseItem func(p *Parser) (value.Value[T], error)) ([]value.Value[T], error) {
	const (
		stInit = iota
		stValueParsed
		stGotDelim
	)
	st := stInit
	gotComma := false

	var items []value.Value[T]
	for {
		tok, sp, err := p.PeekToken()
		if err != nil {
			return items, err
		}
		switch {
		case tok.Kind == token.BraceClose:
			return items, nil

		case max >= 0 && len(items) >= max && isValueStart(tok) && st != stValueParsed:
			return items, nil

		case tok.Kind == token.Comma:
			p.next()
			switch st {
			case stInit:
				return items, delimError(whileParsing, sp, tok, errors.WantItemOrEnd)
			case stValueParsed:
				st, gotComma = stGotDelim, true
			case stGotDelim:
				if gotComma {
					return items, delimError(whileParsing, sp, tok, errors.WantItemOrEnd)
				}
				gotComma = true
			}

		case tok.Kind == token.Newline && !tok.EOF:
			switch st {
			case stInit:
				p.next()
			case stValueParsed:
				p.next()
				st, gotComma = stGotDelim, false
			case stGotDelim:
				p.next()
			}

		case tok.Kind == token.Newline && tok.EOF:
			return items, delimError(whileParsing, sp, tok, errors.WantItemOrEnd)

		case isValueStart(tok):
			if st == stValueParsed {
				return items, delimError(whileParsing, sp, tok, errors.WantItemDelim)
			}
			item, err := parseItem(p)
			if err != nil {
				return items, err
			}
			items = append(items, item)
			st, gotComma = stValueParsed, gotComma

		default:
			if st == stValueParsed {
				return items, delimError(whileParsing, sp, tok, errors.WantItemDelim)
			}
			return items, delimError(whileParsing, sp, tok, errors.WantItemOrEnd)
		}
	}
}

func delimError(whileParsing string, sp source.Span, tok token.Token, kind errors.WantedKind) error {
	return &errors.UnexpectedToken{
		Pos: sp, WhileParsing: whileParsing, Got: tok.Name(),
		Wanted: errors.Wanted{Kind: kind},
	}
}

// ResolveInclude resolves an @include(path) action to a cached file,
// delegating to the configured Includer and wrapping any failure as an
// IncludeError spanning the whole '@include(...)' action. It is called by
// schema's Str parser (Data[T] defers resolution instead, see DESIGN.md).
func (p *Parser) ResolveInclude(whileParsing string, actionSpan source.Span, path string) (*source.File, error) {
	f, err := p.includer.Include(p.file.Path(), path)
	if err != nil {
		var fault *errors.IncludeFault
		if errors.As(err, &fault) {
			return nil, &errors.IncludeError{Pos: actionSpan, WhileParsing: whileParsing, Err: fault}
		}
		return nil, err
	}
	return f, nil
}
