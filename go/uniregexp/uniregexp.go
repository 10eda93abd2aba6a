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

// Package uniregexp generates regular-expression patterns that match
// exactly a given set of Unicode code points.
//
// Inputs are single code points or inclusive ranges (Build), or a boolean
// membership sequence where index n stands for code point n
// (BuildMembership). In UTF-16 mode, supplementary-plane code points are
// expressed as surrogate-pair sub-patterns for engines that see text as
// 16-bit code units.
//
// Caveat: an empty input set produces the empty string, which as a pattern
// matches the empty string at every position rather than matching nothing.
// Callers must treat "empty set" as a special case before compiling the
// result. This mirrors the behavior of the system this package descends
// from and is kept deliberately.
//
// Surrogate code points (U+D800 through U+DFFF) are always rendered as
// \uXXXX escapes, because Go string literals cannot hold them. In UTF-16
// mode that is exactly what the target engines expect. In full-code-point
// mode a set containing a surrogate therefore yields a pattern that only
// dialects with \u escapes (PCRE, ECMAScript, regexp2) can compile; Go's
// regexp rejects it, the same way it would reject the code point itself.
package uniregexp

import (
	"fmt"

	"vitess.io/uniregexp/go/uniregexp/codeset"
)

// Build generates a pattern matching exactly the code points covered by
// items. It either returns a complete pattern or an error wrapping one of
// this package's sentinel errors; never both.
func Build(items []Item, mode Mode) (string, error) {
	set, err := Normalize(items)
	if err != nil {
		return "", err
	}
	return Generate(set, mode)
}

// BuildMembership generates a pattern from a membership sequence: the flag
// at index n decides whether code point n is matched.
func BuildMembership(included []bool, mode Mode) (string, error) {
	return Generate(codeset.FromMembership(included), mode)
}

// Normalize resolves items into the canonical interval set that Build would
// generate from. Out-of-order Span endpoints are swapped here.
func Normalize(items []Item) (codeset.Set, error) {
	intervals := make([]codeset.Interval, 0, len(items))
	for _, it := range items {
		in, err := it.normalize()
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, in)
	}
	return codeset.Merge(intervals), nil
}

// Generate renders a canonical interval set as a pattern. The set must be
// canonical (as produced by Normalize, codeset.Merge or
// codeset.FromMembership); feeding it anything else is a caller bug.
func Generate(set codeset.Set, mode Mode) (string, error) {
	switch mode {
	case ModeAuto, ModeUTF32:
		return emitDirect(set), nil
	case ModeUTF16:
		return emitUTF16(set), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
}
