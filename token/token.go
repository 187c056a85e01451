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

// Package token defines the lexical tokens produced by the scanner and
// consumed by the parser driver.
package token

import "fmt"

// Kind classifies a Token. Only the fields documented for a given Kind are
// meaningful on that Token; the rest are zero.
type Kind int

const (
	// Invalid marks the zero Token.
	Invalid Kind = iota
	// Ident is an identifier: Text holds its bytes.
	Ident
	// Action is an action marker such as @include: ActionKind holds which one.
	Action
	// Number is a numeric literal, uninterpreted: Text holds its digits.
	Number
	// String is a string literal: StrTag and Text (the undecoded body) are set.
	String
	// BraceOpen is one of '{', '(', '[', '<': Brace holds which kind.
	BraceOpen
	// BraceClose is one of '}', ')', ']', '>': Brace holds which kind.
	BraceClose
	// Colon is ':'.
	Colon
	// Comma is ','.
	Comma
	// Comment is a line or block comment, trimmed: Text holds its body.
	Comment
	// Newline is a newline separator. EOF is true when this newline also
	// marks the end of the file.
	Newline
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Ident:
		return "identifier"
	case Action:
		return "action"
	case Number:
		return "number"
	case String:
		return "string"
	case BraceOpen:
		return "`{`"
	case BraceClose:
		return "`}`"
	case Colon:
		return "`:`"
	case Comma:
		return "`,`"
	case Comment:
		return "comment"
	case Newline:
		return "end of line"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// BraceKind distinguishes which bracketing character a Brace token uses.
type BraceKind int

const (
	Curly  BraceKind = iota // { }
	Paren                   // ( )
	Square                  // [ ]
	Angle                   // < >
)

func (b BraceKind) String() string {
	switch b {
	case Curly:
		return "curly brace"
	case Paren:
		return "parenthesis"
	case Square:
		return "square bracket"
	case Angle:
		return "angle bracket"
	default:
		return "brace"
	}
}

// Open returns the opening rune for this brace kind.
func (b BraceKind) Open() rune {
	return [...]rune{'{', '(', '[', '<'}[b]
}

// Close returns the closing rune for this brace kind.
func (b BraceKind) Close() rune {
	return [...]rune{'}', ')', ']', '>'}[b]
}

// ActionKind enumerates the action markers the tokenizer recognizes. It is
// currently closed to Include; the type exists so new markers can be added
// without changing Token's shape.
type ActionKind int

const (
	Include ActionKind = iota
)

func (a ActionKind) String() string {
	switch a {
	case Include:
		return "@include"
	default:
		return "@?"
	}
}

// StrTag identifies how a string literal's body must be decoded.
type StrTag int

const (
	// Raw bodies (#raw"...") are returned verbatim.
	Raw StrTag = iota
	// Esc bodies ("..." or #esc"...") are basic-escaped.
	Esc
	// Txt bodies (#txt"...") are wrapped prose, re-indented.
	Txt
)

func (t StrTag) String() string {
	switch t {
	case Raw:
		return "raw"
	case Esc:
		return "esc"
	case Txt:
		return "txt"
	default:
		return "?"
	}
}

// HashCount is the number of leading '#' characters that introduce a
// tagged string literal (#raw, #esc or #txt); plain "..." strings have none.
type HashCount = int

// Token is the tagged union emitted by the scanner. Which fields are
// populated depends on Kind; see the Kind constants' doc comments.
type Token struct {
	Kind Kind

	Text   string // Ident, Number, String (undecoded body), Comment
	Brace  BraceKind
	Action ActionKind
	StrTag StrTag
	Hashes int  // number of '#'s that opened a tagged string literal
	EOF    bool // Newline only: true if this newline is the EOF sentinel
}

// Name returns a short human-readable description of the token, suitable
// for "got_token" fields in diagnostics (e.g. "identifier \"foo\"",
// "`}`", "end of file").
func (t Token) Name() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("identifier %q", t.Text)
	case Number:
		return fmt.Sprintf("number %q", t.Text)
	case String:
		return "string"
	case BraceOpen:
		return fmt.Sprintf("`%c`", t.Brace.Open())
	case BraceClose:
		return fmt.Sprintf("`%c`", t.Brace.Close())
	case Newline:
		if t.EOF {
			return "end of file"
		}
		return "end of line"
	case Action:
		return t.Action.String()
	default:
		return t.Kind.String()
	}
}
