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

package schema

import (
	"github.com/logix-lang/logix/parser"
	"github.com/logix-lang/logix/value"
)

// Type is the contract every target Go type's schema implements, per
// §4.4: a static descriptor, an optional default for when the value is
// absent from input, and a parse operation driven by a *parser.Parser.
//
// Implementations are typically stateless values (the built-ins in this
// package) or built with package derive.
type Type[T any] interface {
	Descriptor() Descriptor
	Default() (T, bool)
	Parse(p *parser.Parser) (value.Value[T], error)
}

// noDefault is embeddable by Type[T] implementations that never admit a
// default value.
type noDefault[T any] struct{}

func (noDefault[T]) Default() (T, bool) {
	var zero T
	return zero, false
}
