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

// Package value holds the generic Value[T] wrapper shared by package
// parser and package schema. It is split out from schema so that parser
// can return spanned values without importing schema, which itself
// depends on parser.
package value

import "github.com/logix-lang/logix/source"

// Value pairs a decoded T with the span of input it was parsed from, so
// that later stages (such as diagnostics) can point back at the source.
type Value[T any] struct {
	V    T
	Span source.Span
}
