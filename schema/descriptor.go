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

// Package schema defines the Type[T] contract every target Go type
// implements to be parseable from the config language, the built-in
// parsers for the language's primitive value kinds, and the static
// descriptor tree used for documentation (§4.4).
package schema

// DescriptorKind classifies a ValueDescriptor.
type DescriptorKind int

const (
	// Native describes a value with no further structure from the
	// descriptor tree's point of view: an integer, a string, a path.
	Native DescriptorKind = iota
	// Tuple describes a tuple struct's positional fields.
	Tuple
	// Struct describes a named-field struct's members.
	Struct
	// Enum describes a closed set of variant descriptors.
	Enum
)

// ValueDescriptor is the static shape of a Type[T], used for
// documentation and for pre-building lookup tables (e.g. an enum's
// variant-name set).
type ValueDescriptor struct {
	Kind     DescriptorKind
	Native   string       // Native: a human name such as "signed 32-bit integer"
	Fields   []Descriptor // Tuple, Struct
	Variants []Descriptor // Enum
}

// Descriptor is a named, documented value description. The derive
// facility (package derive) builds these recursively from field specs;
// built-in types construct them directly.
type Descriptor struct {
	Name  string
	Doc   string
	Value ValueDescriptor
}
