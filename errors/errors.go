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

// Package errors defines the closed taxonomy of errors the tokenizer,
// parser driver, and schema parsers can raise, plus a small List type for
// callers that want to accumulate more than one.
//
// Every variant is a plain struct, so that two errors are equal under
// reflect.DeepEqual iff all their fields are, which the test suite relies
// on. (UnexpectedToken's Wanted holds a slice, so == does not apply.)
package errors

import (
	"errors"
	"fmt"

	"github.com/logix-lang/logix/source"
	"github.com/logix-lang/logix/token"
)

// ParseError is the closed set of errors this module's core can produce.
// Every concrete type below implements it.
type ParseError interface {
	error
	Span() source.Span
}

// ---------------------------------------------------------------------
// Token-level errors (produced by the scanner, §4.1)

type ScanErrorKind int

const (
	UnexpectedChar ScanErrorKind = iota
	MissingCommentTerminator
	LitStrNotUtf8
	MissingStringTerminator
	UnknownStrTag
	MissingTaggedStringTerminator
)

// ScanError is a malformed-bytes error raised while classifying the next
// token: bad UTF-8, an unrecognized character, or an unterminated
// literal/comment.
type ScanError struct {
	Kind ScanErrorKind
	Char rune   // UnexpectedChar
	Tag  string // MissingTaggedStringTerminator, UnknownStrTag
	Want string // MissingTaggedStringTerminator: the terminator text expected, e.g. `"##`
}

func (e *ScanError) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("unexpected character %q", e.Char)
	case MissingCommentTerminator:
		return "comment not terminated before end of file"
	case LitStrNotUtf8:
		return "string literal is not valid UTF-8"
	case MissingStringTerminator:
		return "string literal not terminated before end of line"
	case UnknownStrTag:
		return fmt.Sprintf("unknown string tag %q", e.Tag)
	case MissingTaggedStringTerminator:
		return fmt.Sprintf("tagged string literal %q not terminated, expected %s before end of file", e.Tag, e.Want)
	default:
		return "token error"
	}
}

// ---------------------------------------------------------------------
// Escape-decoding errors (§4.2)

type EscErrorKind int

const (
	TruncatedHex EscErrorKind = iota
	InvalidHex
	InvalidUnicodeMissingStartBrace
	InvalidUnicodeMissingEndBrace
	InvalidUnicodeHex
	InvalidUnicodePoint
	InvalidEscapeChar
)

// EscStrError reports a malformed backslash escape inside an Esc-tagged
// string literal. Offset/Len are relative to the string literal's body and
// are turned into an absolute span by the caller via [source.Span.Sub].
type EscStrError struct {
	Kind   EscErrorKind
	Offset int
	Len    int
	Point  uint32 // InvalidUnicodePoint
	Char   rune   // InvalidEscapeChar
}

func (e *EscStrError) Error() string {
	switch e.Kind {
	case TruncatedHex:
		return "truncated \\x escape: need two hex digits"
	case InvalidHex:
		return "invalid hex digit in \\x escape"
	case InvalidUnicodeMissingStartBrace:
		return `\u escape must be followed by '{'`
	case InvalidUnicodeMissingEndBrace:
		return `\u{...} escape missing closing '}'`
	case InvalidUnicodeHex:
		return `\u{...} escape must contain 1-8 hex digits`
	case InvalidUnicodePoint:
		return fmt.Sprintf("U+%04X is not a valid Unicode scalar value", e.Point)
	case InvalidEscapeChar:
		return fmt.Sprintf("unknown escape character %q", e.Char)
	default:
		return "escape error"
	}
}

// ---------------------------------------------------------------------
// Path validation errors (§4.4)

type PathErrorKind int

const (
	NotAbsolute PathErrorKind = iota
	NotRelative
	NotName
	NotFullOrNameOnly
	EmptyPath
	InvalidChar
)

// PathError reports why a decoded string did not meet the character class
// required by a path-like schema type (FullPath, RelPath, NameOnlyPath,
// ExecutablePath).
type PathError struct {
	Kind PathErrorKind
	Char rune // InvalidChar
}

func (e *PathError) Error() string {
	switch e.Kind {
	case NotAbsolute:
		return "path must be absolute"
	case NotRelative:
		return "path must be relative and non-empty"
	case NotName:
		return "path must be a single path component"
	case NotFullOrNameOnly:
		return "path must be an absolute path or a single name"
	case EmptyPath:
		return "path must not be empty"
	case InvalidChar:
		return fmt.Sprintf("path contains invalid character %q", e.Char)
	default:
		return "path error"
	}
}

// ---------------------------------------------------------------------
// Include-resolution errors (§4.4 Data<T>, §6)

type IncludeErrorKind int

const (
	IncludeNotUTF8 IncludeErrorKind = iota
	IncludeOpenFailed
)

// IncludeFault is the nested error carried by the IncludeError variant.
type IncludeFault struct {
	Kind IncludeErrorKind
	Err  error // IncludeOpenFailed: the underlying filesystem error
}

func (e *IncludeFault) Error() string {
	switch e.Kind {
	case IncludeNotUTF8:
		return "included file is not valid UTF-8"
	case IncludeOpenFailed:
		return fmt.Sprintf("opening included file: %v", e.Err)
	default:
		return "include error"
	}
}

func (e *IncludeFault) Unwrap() error { return e.Err }

// ---------------------------------------------------------------------
// Warnings (currently promoted to errors, §7)

type WarnKind int

const (
	DuplicateMapEntry WarnKind = iota
)

// Warn is the closed set of warnings the parser can raise. It remains its
// own type, distinct from a hard ParseError, so that a future
// configurability switch can downgrade warnings without changing the
// error surface; today [Warning] always surfaces it as an error.
type Warn struct {
	Kind WarnKind
	Key  string
}

func (w Warn) Error() string {
	switch w.Kind {
	case DuplicateMapEntry:
		return fmt.Sprintf("duplicate map entry %q", w.Key)
	default:
		return "warning"
	}
}

// ---------------------------------------------------------------------
// Wanted describes what a structural error expected instead of what it got.

type WantedKind int

const (
	WantToken WantedKind = iota
	WantTokens
	WantLitStr
	WantLitNum
	WantIdent
	WantItem
	WantItemDelim
	WantItemOrEnd
	WantPathClass
)

// Wanted is a small closed union describing the acceptable continuations
// at the point an UnexpectedToken error was raised.
type Wanted struct {
	Kind   WantedKind
	Token  token.Token   // WantToken
	Tokens []token.Token // WantTokens
	Name   string        // WantLitNum ("signed integer"|"unsigned integer"), WantPathClass
}

func (w Wanted) String() string {
	switch w.Kind {
	case WantToken:
		return w.Token.Name()
	case WantTokens:
		if len(w.Tokens) == 0 {
			return "nothing"
		}
		s := w.Tokens[0].Name()
		for _, t := range w.Tokens[1:] {
			s += " or " + t.Name()
		}
		return s
	case WantLitStr:
		return "string literal"
	case WantLitNum:
		return w.Name + " literal"
	case WantIdent:
		return "identifier"
	case WantItem:
		return "value"
	case WantItemDelim:
		return "`,` or end of line"
	case WantItemOrEnd:
		return "value or end of list"
	case WantPathClass:
		return w.Name
	default:
		return "?"
	}
}

// ---------------------------------------------------------------------
// Top-level variants

// FsError wraps an opaque error returned by the filesystem abstraction.
type FsError struct {
	Pos source.Span
	Err error
}

func (e *FsError) Error() string       { return fmt.Sprintf("filesystem error: %v", e.Err) }
func (e *FsError) Span() source.Span   { return e.Pos }
func (e *FsError) Unwrap() error       { return e.Err }

// Warning wraps a Warn as a hard error (warnings are currently promoted).
type Warning struct {
	Pos  source.Span
	Warn Warn
}

func (e *Warning) Error() string     { return e.Warn.Error() }
func (e *Warning) Span() source.Span { return e.Pos }

// MissingStructMember reports a required struct field absent from the
// input with no default available.
type MissingStructMember struct {
	Pos    source.Span
	Type   string
	Member string
}

func (e *MissingStructMember) Error() string {
	return fmt.Sprintf("missing member %q of %s", e.Member, e.Type)
}
func (e *MissingStructMember) Span() source.Span { return e.Pos }

// DuplicateStructMember reports a struct field assigned twice; Pos covers
// the second assignment's key.
type DuplicateStructMember struct {
	Pos    source.Span
	Type   string
	Member string
}

func (e *DuplicateStructMember) Error() string {
	return fmt.Sprintf("duplicate member %q of %s", e.Member, e.Type)
}
func (e *DuplicateStructMember) Span() source.Span { return e.Pos }

// UnexpectedToken is raised by req_token-style primitives and by
// struct/tuple/enum parsing whenever the token stream doesn't match what
// the production needs next.
type UnexpectedToken struct {
	Pos          source.Span
	WhileParsing string
	Got          string
	Wanted       Wanted
}

func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("while parsing %s: unexpected %s, wanted %s", e.WhileParsing, e.Got, e.Wanted.String())
}
func (e *UnexpectedToken) Span() source.Span { return e.Pos }

// StrEscError wraps an [EscStrError] with the absolute span it occurred at.
type StrEscError struct {
	Pos source.Span
	Err *EscStrError
}

func (e *StrEscError) Error() string     { return e.Err.Error() }
func (e *StrEscError) Span() source.Span { return e.Pos }
func (e *StrEscError) Unwrap() error     { return e.Err }

// TokenError wraps a [ScanError] with the absolute span it occurred at.
type TokenError struct {
	Pos source.Span
	Err *ScanError
}

func (e *TokenError) Error() string     { return e.Err.Error() }
func (e *TokenError) Span() source.Span { return e.Pos }
func (e *TokenError) Unwrap() error     { return e.Err }

// IncludeError reports a failure resolving an @include(path) action.
type IncludeError struct {
	Pos          source.Span
	WhileParsing string
	Err          *IncludeFault
}

func (e *IncludeError) Error() string {
	return fmt.Sprintf("while parsing %s: %v", e.WhileParsing, e.Err)
}
func (e *IncludeError) Span() source.Span { return e.Pos }
func (e *IncludeError) Unwrap() error     { return e.Err }

// InvalidPath wraps a [PathError] with the span of the offending string
// literal. (Named InvalidPath rather than PathError to avoid colliding
// with the nested PathError type it wraps.)
type InvalidPath struct {
	Pos source.Span
	Err *PathError
}

func (e *InvalidPath) Error() string     { return e.Err.Error() }
func (e *InvalidPath) Span() source.Span { return e.Pos }
func (e *InvalidPath) Unwrap() error     { return e.Err }

// ---------------------------------------------------------------------
// List aggregates more than one ParseError. The fail-fast path mandated
// by §7 never needs more than one, but a loader mode that wants to report
// every error in a file instead of the first can accumulate into a List.
type List []ParseError

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more error(s))", l[0].Error(), len(l)-1)
	}
}

func (l List) Span() source.Span {
	if len(l) == 0 {
		return source.Span{}
	}
	return l[0].Span()
}

// Add appends err to the list, flattening if err is itself a List.
func (l *List) Add(err ParseError) {
	if sub, ok := err.(List); ok {
		*l = append(*l, sub...)
		return
	}
	*l = append(*l, err)
}

// As is a thin re-export of the standard library's errors.As for callers
// that only import this package.
func As(err error, target interface{}) bool { return errors.As(err, target) }
