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

package source

import "testing"

func TestFileLineCol(t *testing.T) {
	f, err := NewFile("t.logix", []byte("aaa\nbbbb\nc"))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		offset   int
		line, col int
	}{
		{0, 1, 0},
		{2, 1, 2},
		{4, 2, 0},
		{8, 2, 4}, // the newline itself
		{9, 3, 0},
	}
	for _, c := range cases {
		line, col := f.LineCol(c.offset)
		if line != c.line || col != c.col {
			t.Errorf("LineCol(%d) = %d:%d, want %d:%d", c.offset, line, col, c.line, c.col)
		}
	}
}

func TestSpanJoin(t *testing.T) {
	f, err := NewFile("t.logix", []byte("aaa bbb ccc"))
	if err != nil {
		t.Fatal(err)
	}
	a := f.Span(0, 3)
	b := f.Span(8, 11)
	j := a.Join(b)
	if j.Start() != 0 || j.End() != 11 {
		t.Errorf("Join = [%d,%d), want [0,11)", j.Start(), j.End())
	}
}

func TestSpanShiftAndSub(t *testing.T) {
	f, err := NewFile("t.logix", []byte(`"a\x41b"`))
	if err != nil {
		t.Fatal(err)
	}
	lit := f.Span(0, 8)
	sub := lit.Sub(2, 6)
	if string(sub.Bytes()) != `\x41` {
		t.Errorf("Sub(2,6) = %q, want %q", sub.Bytes(), `\x41`)
	}
}

func TestNewFileRejectsLongLine(t *testing.T) {
	long := make([]byte, MaxColumn+10)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := NewFile("t.logix", long); err == nil {
		t.Fatal("expected error for overlong line")
	}
}
