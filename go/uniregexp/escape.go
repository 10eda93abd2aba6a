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

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// writeCodePoint renders one code point into the pattern. Surrogate values
// are not representable in a UTF-8 string, so they are written as \uXXXX
// escapes, the form shared by UTF-16 engines (.NET, ECMAScript). Everything
// else is written as its literal character.
func writeCodePoint(b *strings.Builder, c rune) {
	if utf16.IsSurrogate(c) {
		fmt.Fprintf(b, `\u%04X`, c)
		return
	}
	b.WriteRune(c)
}

// writeClassEscaped renders a code point for use inside a bracketed
// character class. Only backslash, the closing bracket, the range dash and
// the caret carry meaning there.
func writeClassEscaped(b *strings.Builder, c rune) {
	switch c {
	case '\\', ']', '-', '^':
		b.WriteByte('\\')
	}
	writeCodePoint(b, c)
}

// writeLiteralEscaped renders a code point emitted as a bare literal,
// outside any class, where the full metacharacter set applies.
func writeLiteralEscaped(b *strings.Builder, c rune) {
	switch c {
	case '\\', '.', '+', '*', '?', '(', ')', '|', '[', ']', '{', '}', '^', '$':
		b.WriteByte('\\')
	}
	writeCodePoint(b, c)
}
