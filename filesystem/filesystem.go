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

// Package filesystem is the virtual filesystem abstraction the loader opens
// files through — specified only by the interface it exposes, per spec; the
// concrete OSFS below is the one real collaborator provided.
package filesystem

import "io/fs"

// FS opens and stats files by logical path, and turns a path into the
// canonical form used as a cache key.
type FS interface {
	Open(name string) (fs.File, error)
	Stat(name string) (fs.FileInfo, error)
	Canonicalize(name string) (string, error)
}
