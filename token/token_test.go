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

package token

import "testing"

func TestTokenName(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Ident, Text: "Struct"}, `identifier "Struct"`},
		{Token{Kind: Number, Text: "42"}, `number "42"`},
		{Token{Kind: String}, "string"},
		{Token{Kind: BraceOpen, Brace: Curly}, "`{`"},
		{Token{Kind: BraceClose, Brace: Square}, "`]`"},
		{Token{Kind: Newline}, "end of line"},
		{Token{Kind: Newline, EOF: true}, "end of file"},
		{Token{Kind: Action, Action: Include}, "@include"},
		{Token{Kind: Colon}, "`:`"},
	}
	for _, c := range cases {
		if got := c.tok.Name(); got != c.want {
			t.Errorf("Token{%+v}.Name() = %q, want %q", c.tok, got, c.want)
		}
	}
}

func TestBraceKindOpenClose(t *testing.T) {
	cases := []struct {
		kind        BraceKind
		open, close rune
	}{
		{Curly, '{', '}'},
		{Paren, '(', ')'},
		{Square, '[', ']'},
		{Angle, '<', '>'},
	}
	for _, c := range cases {
		if got := c.kind.Open(); got != c.open {
			t.Errorf("%v.Open() = %q, want %q", c.kind, got, c.open)
		}
		if got := c.kind.Close(); got != c.close {
			t.Errorf("%v.Close() = %q, want %q", c.kind, got, c.close)
		}
	}
}

func TestKindString(t *testing.T) {
	if Kind(99).String() != "Kind(99)" {
		t.Errorf("unknown Kind should render its numeric value")
	}
}
