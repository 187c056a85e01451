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
	"io/fs"
	"os"
	"path/filepath"
)

// OSFS resolves paths against the host filesystem, relative to CWD.
type OSFS struct {
	CWD string
}

func (fsys *OSFS) getAbsPath(path string) string {
	path = filepath.Clean(path)
	if !filepath.IsAbs(path) {
		path = filepath.Clean(filepath.Join(fsys.CWD, path))
	}
	return filepath.ToSlash(path)
}

func (fsys *OSFS) Open(name string) (fs.File, error) {
	f, err := os.Open(fsys.getAbsPath(name))
	if err != nil {
		return nil, err // nil fs.File
	}
	return f, nil
}

func (fsys *OSFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(fsys.getAbsPath(name))
}

// Canonicalize returns the absolute, slash-normalized path used as the
// loader's cache key, so that two relative spellings of the same file share
// one cached entry.
func (fsys *OSFS) Canonicalize(name string) (string, error) {
	return fsys.getAbsPath(name), nil
}
