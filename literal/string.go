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

// Package literal decodes the bodies of the three string-literal flavors
// the tokenizer recognizes (raw, basic-escaped, text-wrapped) into owned
// Go strings, per §4.2.
package literal

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/logix-lang/logix/errors"
)

// DecodeRaw returns a raw-tagged string body verbatim; it cannot fail.
func DecodeRaw(body string) string { return body }

// DecodeEsc expands the backslash escapes in an Esc-tagged string body.
// On error, the returned *errors.EscStrError's Offset/Len are relative to
// body; the caller turns them into an absolute span with [source.Span.Sub].
func DecodeEsc(body string) (string, *errors.EscStrError) {
	var b strings.Builder
	b.Grow(len(body))

	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		start := i
		i++ // consume '\'
		if i >= len(body) {
			return "", &errors.EscStrError{Kind: errors.InvalidEscapeChar, Offset: start, Len: i - start, Char: 0}
		}
		switch body[i] {
		case 'r':
			b.WriteByte('\r')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case '"':
			b.WriteByte('"')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case 'x':
			i++
			hexStart := i
			for i < len(body) && i < hexStart+2 && isHex(body[i]) {
				i++
			}
			if i-hexStart < 2 {
				return "", &errors.EscStrError{Kind: errors.TruncatedHex, Offset: start, Len: i - start}
			}
			v, err := strconv.ParseUint(body[hexStart:i], 16, 8)
			if err != nil {
				return "", &errors.EscStrError{Kind: errors.InvalidHex, Offset: start, Len: i - start}
			}
			// The two hex digits name a Unicode scalar value, not a raw
			// output byte: \xff is U+00FF, encoded as the two UTF-8 bytes
			// 0xC3 0xBF, not the lone invalid byte 0xFF.
			b.WriteRune(rune(v))
		case 'u':
			i++
			if i >= len(body) || body[i] != '{' {
				return "", &errors.EscStrError{Kind: errors.InvalidUnicodeMissingStartBrace, Offset: start, Len: i - start}
			}
			i++
			hexStart := i
			for i < len(body) && isHex(body[i]) {
				i++
			}
			digits := body[hexStart:i]
			if i >= len(body) || body[i] != '}' {
				return "", &errors.EscStrError{Kind: errors.InvalidUnicodeMissingEndBrace, Offset: start, Len: i - start}
			}
			end := i + 1
			if len(digits) == 0 || len(digits) > 8 {
				return "", &errors.EscStrError{Kind: errors.InvalidUnicodeHex, Offset: start, Len: end - start}
			}
			v, err := strconv.ParseUint(digits, 16, 32)
			if err != nil {
				return "", &errors.EscStrError{Kind: errors.InvalidUnicodeHex, Offset: start, Len: end - start}
			}
			if !utf8.ValidRune(rune(v)) {
				return "", &errors.EscStrError{Kind: errors.InvalidUnicodePoint, Offset: start, Len: end - start, Point: uint32(v)}
			}
			b.WriteRune(rune(v))
			i = end
		default:
			r, w := utf8.DecodeRuneInString(body[i:])
			return "", &errors.EscStrError{Kind: errors.InvalidEscapeChar, Offset: start, Len: i + w - start, Char: r}
		}
	}
	return b.String(), nil
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// DecodeTxt normalizes a Txt-tagged string body: a leading empty line and a
// trailing empty line are dropped, then the minimum leading-whitespace
// prefix shared by all non-blank lines is stripped from every line.
//
// Leading whitespace is measured in bytes of ' ' or '\t', matching the
// original implementation's byte-oriented trim; this module does not
// attempt to special-case tab-only indentation beyond treating tabs and
// spaces identically when computing the shared prefix (see DESIGN.md).
func DecodeTxt(body string) string {
	lines := splitKeepingEmpty(body)

	// Drop a leading empty line and a trailing empty line, as in the
	// original "nicely wrapped" algorithm.
	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	prefixLen := -1
	for _, l := range lines {
		trimmed := strings.TrimRight(l, " \t")
		if trimmed == "" {
			continue
		}
		n := leadingWhitespace(l)
		if prefixLen == -1 || n < prefixLen {
			prefixLen = n
		}
	}
	if prefixLen < 0 {
		prefixLen = 0
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		trimmed := strings.TrimRight(l, " \t")
		if trimmed == "" {
			continue
		}
		if prefixLen <= len(l) {
			b.WriteString(l[prefixLen:])
		} else {
			b.WriteString(strings.TrimLeft(l, " \t"))
		}
	}
	return b.String()
}

func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

// splitKeepingEmpty splits on '\n', trimming a trailing '\r' from each
// line, the way the scanner's own newline handling treats CRLF.
func splitKeepingEmpty(s string) []string {
	raw := strings.Split(s, "\n")
	for i, l := range raw {
		raw[i] = strings.TrimSuffix(l, "\r")
	}
	return raw
}
