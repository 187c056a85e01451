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

package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFSOpenReadsRelativeToWorkingDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.logix"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	fsys := &OSFS{CWD: dir}

	f, err := fsys.Open("a.logix")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(body) != "hello" {
		t.Fatalf("got %q", body)
	}
}

func TestOSFSOpenAcceptsAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "b.logix")
	if err := os.WriteFile(abs, []byte("abs"), 0o644); err != nil {
		t.Fatal(err)
	}
	fsys := &OSFS{CWD: "/does/not/matter"}
	f, err := fsys.Open(abs)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
}

func TestOSFSCanonicalizeIsStableForEquivalentSpellings(t *testing.T) {
	dir := t.TempDir()
	fsys := &OSFS{CWD: dir}

	a, err := fsys.Canonicalize("./sub/../a.logix")
	if err != nil {
		t.Fatal(err)
	}
	b, err := fsys.Canonicalize("a.logix")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("Canonicalize gave different results for equivalent paths: %q vs %q", a, b)
	}
}

func TestOSFSStatMissingFile(t *testing.T) {
	fsys := &OSFS{CWD: t.TempDir()}
	if _, err := fsys.Stat("nope.logix"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
