/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uniregexp

import "errors"

// All errors returned by this package wrap one of these sentinels; callers
// classify them with errors.Is. Every error is an input error: no call has
// side effects, and no partial pattern is ever returned alongside one.
var (
	// ErrOutOfRange means a numeric code point was negative or above U+10FFFF.
	ErrOutOfRange = errors.New("code point out of range")

	// ErrInvalidSurrogatePair means a two-code-unit text endpoint was not a
	// high surrogate followed by a low surrogate.
	ErrInvalidSurrogatePair = errors.New("invalid surrogate pair")

	// ErrInvalidLength means a text endpoint was neither one nor two UTF-16
	// code units long.
	ErrInvalidLength = errors.New("text endpoint must be one or two UTF-16 code units")

	// ErrMalformedRange means a textual range did not resolve to exactly two
	// endpoints.
	ErrMalformedRange = errors.New("range must have exactly two endpoints")

	// ErrUnsupportedMode means an encoding mode outside auto/utf16/utf32 was
	// requested.
	ErrUnsupportedMode = errors.New("unsupported encoding mode")
)
