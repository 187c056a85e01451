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

package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/logix-lang/logix/errors"
	"github.com/logix-lang/logix/filesystem"
	"github.com/logix-lang/logix/schema"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
}

func TestLoadParsesTopLevelValue(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.logix", "42")

	l := New(&filesystem.OSFS{CWD: dir})
	v, err := Load(l, "main.logix", schema.SignedInt[int32]{Bits: 32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.V != 42 {
		t.Fatalf("got %d, want 42", v.V)
	}
}

func TestLoadRejectsTrailingGarbage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.logix", "42 99")

	l := New(&filesystem.OSFS{CWD: dir})
	_, err := Load(l, "main.logix", schema.SignedInt[int32]{Bits: 32})
	var ut *errors.UnexpectedToken
	if !errors.As(err, &ut) {
		t.Fatalf("got %v, want *errors.UnexpectedToken", err)
	}
}

func TestLoadSurfacesFsError(t *testing.T) {
	dir := t.TempDir()
	l := New(&filesystem.OSFS{CWD: dir})
	_, err := Load(l, "missing.logix", schema.SignedInt[int32]{Bits: 32})
	var fe *errors.FsError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want *errors.FsError", err)
	}
}

func TestIncludeResolvesRelativeToIncludingFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "sub/main.logix", `@include("data.txt")`)
	writeFile(t, dir, "sub/data.txt", "included body")

	l := New(&filesystem.OSFS{CWD: dir})
	v, err := Load(l, "sub/main.logix", schema.Str{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.V != "included body" {
		t.Fatalf("got %q", v.V)
	}
}

func TestIncludeSharesCachedFileAcrossIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shared.txt", "shared body")

	l := New(&filesystem.OSFS{CWD: dir})
	f1, err := l.open("shared.txt")
	if err != nil {
		t.Fatal(err)
	}
	f2, err := l.Include(dir+"/anything.logix", "shared.txt")
	if err != nil {
		t.Fatal(err)
	}
	if f1 != f2 {
		t.Fatalf("expected the same cached *source.File, got distinct instances")
	}
}

func TestSetLoggerReceivesOpenAndIncludeDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.logix", `@include("data.txt")`)
	writeFile(t, dir, "data.txt", "included body")

	l := New(&filesystem.OSFS{CWD: dir})
	var lines []string
	l.SetLogger(func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	})
	if _, err := Load(l, "main.logix", schema.Str{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("expected at least one diagnostic line from SetLogger")
	}
	var sawOpen, sawInclude bool
	for _, line := range lines {
		if strings.Contains(line, "opening") {
			sawOpen = true
		}
		if strings.Contains(line, "@include") {
			sawInclude = true
		}
	}
	if !sawOpen || !sawInclude {
		t.Fatalf("got %v, want lines for both opening and @include resolution", lines)
	}
}

func TestNoLoggerIsSilentByDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.logix", "42")

	l := New(&filesystem.OSFS{CWD: dir})
	if _, err := Load(l, "main.logix", schema.SignedInt[int32]{Bits: 32}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIncludeRejectsNonUTF8(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.bin"), []byte{0xff, 0xfe}, 0o644); err != nil {
		t.Fatal(err)
	}
	l := New(&filesystem.OSFS{CWD: dir})
	_, err := l.Include(dir+"/main.logix", "bad.bin")
	var fault *errors.IncludeFault
	if !errors.As(err, &fault) || fault.Kind != errors.IncludeNotUTF8 {
		t.Fatalf("got %v, want IncludeNotUTF8 fault", err)
	}
}
