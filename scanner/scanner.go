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

// Package scanner implements a hand-written, stateless tokenizer for the
// config language. Scan is a pure function of its input slice: it has no
// notion of a "current file" or running position, so the parser driver
// (package parser) is solely responsible for carrying state between
// calls.
package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/logix-lang/logix/errors"
	"github.com/logix-lang/logix/token"
)

// Result is the outcome of scanning the next lexical unit from the start
// of src. Callers advance their cursor by Len bytes and their line/column
// bookkeeping by Lines embedded newlines. [Start, End) is the meaningful
// region of src the token actually occupies, excluding any leading
// whitespace that was skipped to find it.
type Result struct {
	Len   int
	Start int
	End   int
	Lines int
	Token token.Token
	Err   *errors.ScanError
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9' || c == '-'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNumCont(c byte) bool {
	return isDigit(c) || c == '_' || c == '.' || c == '-'
}

func isTagChar(c byte) bool {
	return c >= 'a' && c <= 'z' || isDigit(c) || c == '_' || c == '-'
}

// Scan classifies the next token at the start of src, per §4.1.
func Scan(src []byte) Result {
	i := 0
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	skipped := i
	if i >= len(src) {
		return Result{Len: len(src), Start: skipped, End: skipped, Token: token.Token{Kind: token.Newline, EOF: true}}
	}
	start := i
	c := src[i]

	switch {
	case isIdentStart(c):
		return scanIdent(src, skipped, start)
	case c == '-' || isDigit(c):
		return scanNumber(src, skipped, start)
	case c == '/':
		return scanSlash(src, skipped, start)
	case c == '{':
		return oneByteResult(skipped, start, token.Token{Kind: token.BraceOpen, Brace: token.Curly})
	case c == '}':
		return oneByteResult(skipped, start, token.Token{Kind: token.BraceClose, Brace: token.Curly})
	case c == '(':
		return oneByteResult(skipped, start, token.Token{Kind: token.BraceOpen, Brace: token.Paren})
	case c == ')':
		return oneByteResult(skipped, start, token.Token{Kind: token.BraceClose, Brace: token.Paren})
	case c == '[':
		return oneByteResult(skipped, start, token.Token{Kind: token.BraceOpen, Brace: token.Square})
	case c == ']':
		return oneByteResult(skipped, start, token.Token{Kind: token.BraceClose, Brace: token.Square})
	case c == '<':
		return oneByteResult(skipped, start, token.Token{Kind: token.BraceOpen, Brace: token.Angle})
	case c == '>':
		return oneByteResult(skipped, start, token.Token{Kind: token.BraceClose, Brace: token.Angle})
	case c == ':':
		return oneByteResult(skipped, start, token.Token{Kind: token.Colon})
	case c == ',':
		return oneByteResult(skipped, start, token.Token{Kind: token.Comma})
	case c == '\n':
		return scanNewline(src, skipped, start)
	case c == '"':
		return scanBasicString(src, skipped, start)
	case c == '#':
		return scanTaggedString(src, skipped, start)
	case c == '@':
		return scanAction(src, skipped, start)
	default:
		r, w := utf8.DecodeRune(src[i:])
		return Result{
			Len: skipped + w, Start: start, End: start + w,
			Err: &errors.ScanError{Kind: errors.UnexpectedChar, Char: r},
		}
	}
}

func oneByteResult(skipped, start int, tok token.Token) Result {
	return Result{Len: skipped + 1, Start: start, End: start + 1, Token: tok}
}

func scanIdent(src []byte, skipped, start int) Result {
	i := start + 1
	for i < len(src) && isIdentCont(src[i]) {
		i++
	}
	return Result{
		Len: skipped + (i - start), Start: start, End: i,
		Token: token.Token{Kind: token.Ident, Text: string(src[start:i])},
	}
}

func scanAction(src []byte, skipped, start int) Result {
	i := start + 1
	for i < len(src) && isIdentStart(src[i]) {
		i++
	}
	name := string(src[start+1 : i])
	if name == "include" {
		return Result{
			Len: skipped + (i - start), Start: start, End: i,
			Token: token.Token{Kind: token.Action, Action: token.Include},
		}
	}
	// Only @include is a recognized action; anything else is reported at
	// the '@' itself since the marker isn't a standalone token otherwise.
	return Result{
		Len: skipped + 1, Start: start, End: start + 1,
		Err: &errors.ScanError{Kind: errors.UnexpectedChar, Char: '@'},
	}
}

func scanNumber(src []byte, skipped, start int) Result {
	i := start + 1
	for i < len(src) && isNumCont(src[i]) {
		i++
	}
	return Result{
		Len: skipped + (i - start), Start: start, End: i,
		Token: token.Token{Kind: token.Number, Text: string(src[start:i])},
	}
}

func scanSlash(src []byte, skipped, start int) Result {
	if start+1 >= len(src) {
		return Result{
			Len: skipped + 1, Start: start, End: start + 1,
			Err: &errors.ScanError{Kind: errors.UnexpectedChar, Char: '/'},
		}
	}
	switch src[start+1] {
	case '/':
		i := start + 2
		for i < len(src) && src[i] != '\n' {
			i++
		}
		body := strings.TrimSpace(string(src[start+2 : i]))
		return Result{
			Len: skipped + (i - start), Start: start, End: i,
			Token: token.Token{Kind: token.Comment, Text: body},
		}
	case '*':
		i := start + 2
		level := 1
		lines := 0
		for i < len(src) && level > 0 {
			switch {
			case i+1 < len(src) && src[i] == '/' && src[i+1] == '*':
				level++
				i += 2
			case i+1 < len(src) && src[i] == '*' && src[i+1] == '/':
				level--
				i += 2
			default:
				if src[i] == '\n' {
					lines++
				}
				i++
			}
		}
		if level > 0 {
			return Result{
				Len: skipped + (i - start), Start: start, End: i, Lines: lines,
				Err: &errors.ScanError{Kind: errors.MissingCommentTerminator},
			}
		}
		body := strings.TrimSpace(string(src[start+2 : i-2]))
		return Result{
			Len: skipped + (i - start), Start: start, End: i, Lines: lines,
			Token: token.Token{Kind: token.Comment, Text: body},
		}
	default:
		return Result{
			Len: skipped + 1, Start: start, End: start + 1,
			Err: &errors.ScanError{Kind: errors.UnexpectedChar, Char: '/'},
		}
	}
}

func scanNewline(src []byte, skipped, start int) Result {
	i := start + 1
	lines := 1
	for i < len(src) {
		switch src[i] {
		case '\n':
			lines++
			i++
		case '\r', ' ', '\t':
			i++
		default:
			goto done
		}
	}
done:
	eof := i >= len(src)
	return Result{
		Len: skipped + (i - start), Start: start, End: i, Lines: lines,
		Token: token.Token{Kind: token.Newline, EOF: eof},
	}
}

func scanBasicString(src []byte, skipped, start int) Result {
	i := start + 1
	lines := 0
	for {
		if i >= len(src) {
			return Result{
				Len: skipped + (i - start), Start: start, End: i, Lines: lines,
				Err: &errors.ScanError{Kind: errors.MissingStringTerminator},
			}
		}
		switch src[i] {
		case '\\':
			i++
			if i < len(src) {
				i++ // escape introducer byte; decoding happens later
			}
		case '\n':
			return Result{
				Len: skipped + (i - start), Start: start, End: i, Lines: lines,
				Err: &errors.ScanError{Kind: errors.MissingStringTerminator},
			}
		case '"':
			body := src[start+1 : i]
			if !utf8.Valid(body) {
				bad := start + 1 + firstInvalidUTF8(body)
				return Result{
					Len: skipped + (i + 1 - start), Start: bad, End: bad + 1, Lines: lines,
					Err: &errors.ScanError{Kind: errors.LitStrNotUtf8},
				}
			}
			return Result{
				Len: skipped + (i + 1 - start), Start: start, End: i + 1, Lines: lines,
				Token: token.Token{Kind: token.String, StrTag: token.Esc, Text: string(body)},
			}
		default:
			i++
		}
	}
}

func firstInvalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, w := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && w == 1 {
			return i
		}
		i += w
	}
	return 0
}

var tagNames = [...]struct {
	name string
	tag  token.StrTag
}{
	{"raw", token.Raw},
	{"esc", token.Esc},
	{"txt", token.Txt},
}

func scanTaggedString(src []byte, skipped, start int) Result {
	i := start
	for i < len(src) && src[i] == '#' {
		i++
	}
	hashes := i - start
	tagStart := i
	for i < len(src) && isTagChar(src[i]) {
		i++
	}
	name := string(src[tagStart:i])

	if name == "" {
		return Result{
			Len: skipped + hashes, Start: start, End: tagStart,
			Err: &errors.ScanError{Kind: errors.UnexpectedChar, Char: '#'},
		}
	}
	var tag token.StrTag
	matched := false
	for _, tn := range tagNames {
		if tn.name == name {
			tag, matched = tn.tag, true
			break
		}
	}
	if !matched || i >= len(src) || src[i] != '"' {
		return Result{
			Len: skipped + (i - start), Start: start, End: i,
			Err: &errors.ScanError{Kind: errors.UnknownStrTag, Tag: name},
		}
	}
	bodyStart := i + 1
	suffix := "\"" + strings.Repeat("#", hashes)

	j := bodyStart
	lines := 0
	for {
		if j >= len(src) {
			return Result{
				Len: skipped + (j - start), Start: start, End: j, Lines: lines,
				Err: &errors.ScanError{Kind: errors.MissingTaggedStringTerminator, Tag: name, Want: suffix},
			}
		}
		if src[j] == '\n' {
			lines++
		}
		if src[j] == '"' && hasSuffixAt(src, j, hashes) {
			body := src[bodyStart:j]
			end := j + 1 + hashes
			return Result{
				Len: skipped + (end - start), Start: start, End: end, Lines: lines,
				Token: token.Token{Kind: token.String, StrTag: tag, Text: string(body), Hashes: hashes},
			}
		}
		j++
	}
}

func hasSuffixAt(src []byte, quotePos, hashes int) bool {
	if quotePos+1+hashes > len(src) {
		return false
	}
	for k := 0; k < hashes; k++ {
		if src[quotePos+1+k] != '#' {
			return false
		}
	}
	return true
}
