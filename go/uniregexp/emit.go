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
	"strings"

	"vitess.io/uniregexp/go/uniregexp/codeset"
)

// emitDirect renders a canonical set as a pattern over full code points.
//
// A lone single-point interval becomes a bare escaped literal. Anything
// else becomes one character class: intervals narrower than four code
// points are written out character by character (so U+0061..U+0062 is "ab",
// not "a-b"), wider ones as "lo-hi".
//
// The empty set becomes the empty string; see the package doc for why that
// is a trap and not a never-matching pattern.
func emitDirect(set codeset.Set) string {
	if len(set) == 0 {
		return ""
	}
	var b strings.Builder
	if len(set) == 1 && set[0].Single() {
		writeLiteralEscaped(&b, set[0].Lo)
		return b.String()
	}

	b.WriteByte('[')
	for _, in := range set {
		if in.Hi-in.Lo >= 3 {
			writeClassEscaped(&b, in.Lo)
			b.WriteByte('-')
			writeClassEscaped(&b, in.Hi)
			continue
		}
		for c := in.Lo; c <= in.Hi; c++ {
			writeClassEscaped(&b, c)
		}
	}
	b.WriteByte(']')
	return b.String()
}
