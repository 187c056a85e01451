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

package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/logix-lang/logix/errors"
	"github.com/logix-lang/logix/source"
)

func TestRenderPlainNoColorShowsGutterAndCaret(t *testing.T) {
	f, err := source.NewFile("demo.logix", []byte("Struct {\n  aaa: \"aa\"\n}"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	sp := f.Span(16, 20) // "\"aa\"" on line 2

	pe := &errors.UnexpectedToken{
		Pos: sp, WhileParsing: "Struct", Got: `string`,
		Wanted: errors.Wanted{Kind: errors.WantLitNum, Name: "unsigned integer"},
	}

	var buf bytes.Buffer
	dw := NewWriter(&buf, nil)
	dw.Render(pe)

	out := buf.String()
	if !strings.Contains(out, "error: ") {
		t.Fatalf("missing headline: %q", out)
	}
	if !strings.Contains(out, "demo.logix:2:") {
		t.Fatalf("missing pointer line: %q", out)
	}
	if !strings.Contains(out, "aaa: \"aa\"") {
		t.Fatalf("missing context line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing caret: %q", out)
	}
}

func TestRenderInvalidSpanPrintsHeadlineOnly(t *testing.T) {
	pe := &errors.FsError{}
	var buf bytes.Buffer
	NewWriter(&buf, nil).Render(pe)
	if got := buf.String(); !strings.HasPrefix(got, "error: ") || strings.Contains(got, "--->") {
		t.Fatalf("got %q", got)
	}
}
