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

package errors

import (
	"reflect"
	"testing"

	"github.com/logix-lang/logix/source"
	"github.com/logix-lang/logix/token"
)

func testFile(t *testing.T) *source.File {
	t.Helper()
	f, err := source.NewFile("test.logix", []byte("Struct {\n  aaa: 10\n}"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return f
}

// Two errors of the same variant must compare equal iff every field does,
// per spec.md §7 ("The error equality should be total").
func TestUnexpectedTokenEquality(t *testing.T) {
	f := testFile(t)
	sp := f.Span(0, 1)
	a := &UnexpectedToken{Pos: sp, WhileParsing: "Struct", Got: "end of file", Wanted: Wanted{Kind: WantIdent}}
	b := &UnexpectedToken{Pos: sp, WhileParsing: "Struct", Got: "end of file", Wanted: Wanted{Kind: WantIdent}}
	c := &UnexpectedToken{Pos: sp, WhileParsing: "Struct", Got: "end of file", Wanted: Wanted{Kind: WantLitStr}}

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected equal errors to compare equal: %+v vs %+v", a, b)
	}
	if reflect.DeepEqual(a, c) {
		t.Fatalf("expected differing Wanted to break equality: %+v vs %+v", a, c)
	}
}

func TestMissingStructMemberSpanCoversClosingBrace(t *testing.T) {
	f := testFile(t)
	closeBrace := f.Span(19, 20)
	err := &MissingStructMember{Pos: closeBrace, Type: "Struct", Member: "bbbb"}
	if err.Span() != closeBrace {
		t.Fatalf("Span() = %v, want %v", err.Span(), closeBrace)
	}
	if got, want := err.Error(), `missing member "bbbb" of Struct`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestWantedString(t *testing.T) {
	cases := []struct {
		w    Wanted
		want string
	}{
		{Wanted{Kind: WantToken, Token: token.Token{Kind: token.Ident, Text: "Struct"}}, `identifier "Struct"`},
		{Wanted{Kind: WantLitStr}, "string literal"},
		{Wanted{Kind: WantLitNum, Name: "unsigned integer"}, "unsigned integer literal"},
		{Wanted{Kind: WantItemOrEnd}, "value or end of list"},
		{
			Wanted{Kind: WantTokens, Tokens: []token.Token{
				{Kind: token.BraceClose, Brace: token.Curly},
				{Kind: token.Ident, Text: "aaa"},
			}},
			"`}` or identifier \"aaa\"",
		},
	}
	for _, c := range cases {
		if got := c.w.String(); got != c.want {
			t.Errorf("Wanted(%+v).String() = %q, want %q", c.w, got, c.want)
		}
	}
}

func TestListAddFlattensNestedLists(t *testing.T) {
	f := testFile(t)
	sp := f.Span(0, 1)
	var l List
	l.Add(&TokenError{Pos: sp, Err: &ScanError{Kind: UnexpectedChar, Char: '@'}})

	var inner List
	inner.Add(&MissingStructMember{Pos: sp, Type: "Struct", Member: "aaa"})
	inner.Add(&DuplicateStructMember{Pos: sp, Type: "Struct", Member: "bbb"})
	l.Add(inner)

	if len(l) != 3 {
		t.Fatalf("len(l) = %d, want 3 (flattened)", len(l))
	}
	if got, want := l.Error(), l[0].Error()+" (and 2 more error(s))"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestListSpanIsFirstErrors(t *testing.T) {
	var l List
	if l.Span().IsValid() {
		t.Fatalf("empty list should have an invalid span")
	}
	f := testFile(t)
	first := f.Span(0, 1)
	second := f.Span(5, 6)
	l.Add(&MissingStructMember{Pos: first, Type: "Struct", Member: "aaa"})
	l.Add(&MissingStructMember{Pos: second, Type: "Struct", Member: "bbb"})
	if l.Span() != first {
		t.Fatalf("Span() = %v, want %v", l.Span(), first)
	}
}

func TestAsUnwrapsToConcreteVariant(t *testing.T) {
	f := testFile(t)
	sp := f.Span(0, 1)
	var err error = &TokenError{Pos: sp, Err: &ScanError{Kind: LitStrNotUtf8}}

	var te *TokenError
	if !As(err, &te) {
		t.Fatalf("As failed to match *TokenError")
	}
	if te.Err.Kind != LitStrNotUtf8 {
		t.Fatalf("got %v", te.Err.Kind)
	}

	var ut *UnexpectedToken
	if As(err, &ut) {
		t.Fatalf("As should not match unrelated variant *UnexpectedToken")
	}
}
