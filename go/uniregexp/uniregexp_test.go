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
	"regexp"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitess.io/uniregexp/go/uniregexp/codeset"
)

func TestBuild(t *testing.T) {
	testcases := []struct {
		name  string
		items []Item
		mode  Mode
		want  string
	}{{
		name:  "single code point",
		items: []Item{Point(Rune(0x61))},
		want:  "a",
	}, {
		name:  "single range",
		items: []Item{RuneSpan(0x61, 0x7A)},
		want:  "[a-z]",
	}, {
		name:  "two disjoint ranges ordered ascending",
		items: []Item{RuneSpan(0x61, 0x7A), RuneSpan(0x41, 0x5A)},
		want:  "[A-Za-z]",
	}, {
		name:  "adjacent ranges collapse",
		items: []Item{RuneSpan(0x61, 0x6F), RuneSpan(0x70, 0x7A)},
		want:  "[a-z]",
	}, {
		name:  "boundary straddle in utf16",
		items: []Item{RuneSpan(0xFFFF, 0x10000)},
		mode:  ModeUTF16,
		want:  "(?:￿|" + `\uD800\uDC00)`,
	}, {
		name:  "entire supplementary plane in utf16",
		items: []Item{RuneSpan(0x10000, 0x10FFFF)},
		mode:  ModeUTF16,
		want:  `(?:[\uD800-\uDBFF][\uDC00-\uDFFF])`,
	}, {
		name:  "no items",
		items: nil,
		want:  "",
	}, {
		name:  "text endpoints like the originals",
		items: []Item{Span(Text("a"), Text("z")), RuneSpan(0x41, 0x5A)},
		want:  "[A-Za-z]",
	}, {
		name:  "supplementary point in utf32 stays literal",
		items: []Item{Point(Rune(0x1F600))},
		want:  "\U0001F600",
	}}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Build(tc.items, tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildMembership(t *testing.T) {
	got, err := BuildMembership([]bool{false, false, true}, ModeAuto)
	require.NoError(t, err)
	assert.Equal(t, "\x02", got)

	got, err = BuildMembership([]bool{true, true, true, true}, ModeAuto)
	require.NoError(t, err)
	assert.Equal(t, "[\x00-\x03]", got)

	got, err = BuildMembership(nil, ModeAuto)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

// Membership input and the equivalent explicit ranges must produce the same
// pattern in every mode.
func TestMembershipMatchesExplicitRanges(t *testing.T) {
	included := make([]bool, 0x80)
	for c := 0x30; c <= 0x39; c++ {
		included[c] = true
	}
	for c := 0x41; c <= 0x5A; c++ {
		included[c] = true
	}
	included[0x5F] = true
	items := []Item{RuneSpan(0x30, 0x39), RuneSpan(0x41, 0x5A), Point(Rune(0x5F))}

	for _, mode := range []Mode{ModeAuto, ModeUTF16, ModeUTF32} {
		fromBits, err := BuildMembership(included, mode)
		require.NoError(t, err)
		fromRanges, err := Build(items, mode)
		require.NoError(t, err)
		assert.Equal(t, fromRanges, fromBits, "mode %s", mode)
	}
}

// probes returns the interesting code points for a set: every interval edge
// and its neighbors, the encoding boundaries, and a coarse sweep of the
// whole range.
func probes(set codeset.Set) []rune {
	candidates := []rune{0, 1, 0x7F, 0xFFFE, 0xFFFF, 0x10000, 0x10001, 0x10FFFE, 0x10FFFF}
	for _, in := range set {
		candidates = append(candidates, in.Lo-1, in.Lo, in.Lo+1, in.Hi-1, in.Hi, in.Hi+1)
	}
	for c := rune(0); c <= codeset.MaxCodePoint; c += 0x101 {
		candidates = append(candidates, c)
	}
	return candidates
}

func assertRoundTripUTF32(t *testing.T, set codeset.Set) {
	t.Helper()
	pattern, err := Generate(set, ModeUTF32)
	require.NoError(t, err)
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	require.NoError(t, err, "pattern %q does not compile", pattern)

	for _, c := range probes(set) {
		if c < 0 || c > codeset.MaxCodePoint || utf16.IsSurrogate(c) {
			continue
		}
		require.Equal(t, set.Contains(c), re.MatchString(string(c)),
			"pattern %q vs U+%04X", pattern, c)
	}
}

// utf16Matcher checks generated UTF-16 patterns against code unit
// sequences. regexp2 never tries a later top-level alternative when every
// branch opens with a different lone-high-surrogate literal, so the
// pattern's branches are compiled and tried one by one.
type utf16Matcher []*regexp2.Regexp

func compileUTF16(t *testing.T, pattern string) utf16Matcher {
	t.Helper()
	_, err := regexp2.Compile(pattern, regexp2.None)
	require.NoError(t, err, "pattern %q does not compile", pattern)

	var m utf16Matcher
	for _, branch := range topLevelBranches(pattern) {
		re, err := regexp2.Compile(`\A(?:`+branch+`)\z`, regexp2.None)
		require.NoError(t, err, "branch %q does not compile", branch)
		m = append(m, re)
	}
	return m
}

func (m utf16Matcher) match(t *testing.T, units []rune) bool {
	t.Helper()
	for _, re := range m {
		ok, err := re.MatchRunes(units)
		require.NoError(t, err)
		if ok {
			return true
		}
	}
	return false
}

// topLevelBranches splits a generated pattern into its top-level
// alternatives. Generated patterns carry at most one enclosing group and no
// nested alternation, so scanning for bars outside character classes is
// enough.
func topLevelBranches(pattern string) []string {
	body, ok := strings.CutPrefix(pattern, "(?:")
	if !ok {
		return []string{pattern}
	}
	body = strings.TrimSuffix(body, ")")

	var branches []string
	start, inClass := 0, false
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '|':
			if !inClass {
				branches = append(branches, body[start:i])
				start = i + 1
			}
		}
	}
	return append(branches, body[start:])
}

func assertRoundTripUTF16(t *testing.T, set codeset.Set) {
	t.Helper()
	pattern, err := Generate(set, ModeUTF16)
	require.NoError(t, err)
	m := compileUTF16(t, pattern)

	for _, c := range probes(set) {
		if c < 0 || c > codeset.MaxCodePoint {
			continue
		}
		units := []rune{c}
		if c > 0xFFFF {
			hi, lo := utf16.EncodeRune(c)
			units = []rune{hi, lo}
		}
		require.Equal(t, set.Contains(c), m.match(t, units), "pattern %q vs U+%04X", pattern, c)
	}
}

func TestRoundTrip(t *testing.T) {
	sets := []codeset.Set{
		{{Lo: 0x61, Hi: 0x61}},
		{{Lo: 0x61, Hi: 0x7A}},
		{{Lo: 0x41, Hi: 0x5A}, {Lo: 0x61, Hi: 0x7A}},
		{{Lo: 0x30, Hi: 0x39}, {Lo: 0x2603, Hi: 0x2603}},
		{{Lo: 0xFFF0, Hi: 0x10010}},
		{{Lo: 0xFFFF, Hi: 0x10000}},
		{{Lo: 0x10000, Hi: 0x10000}},
		{{Lo: 0x10300, Hi: 0x104FF}},
		{{Lo: 0x10300, Hi: 0x10CFF}},
		{{Lo: 0x10000, Hi: 0x10FFFF}},
		{{Lo: 0x61, Hi: 0x61}, {Lo: 0x1F600, Hi: 0x1F64F}},
		{{Lo: 0, Hi: codeset.MaxCodePoint}},
	}

	for _, set := range sets {
		assertRoundTripUTF16(t, set)
	}

	for _, set := range sets {
		assertRoundTripUTF32(t, set)
	}
}

// The escaped single-character patterns must compile and match only their
// own character.
func TestEscapedLiteralsRoundTrip(t *testing.T) {
	for _, c := range `\.+*?()|[]{}^$-` {
		assertRoundTripUTF32(t, codeset.Set{{Lo: c, Hi: c}})
		assertRoundTripUTF16(t, codeset.Set{{Lo: c, Hi: c}})
	}
}

// A supplementary literal must be written as \uXXXX escapes: regexp2
// compares pattern runes against input code units, so the raw character 𐀀
// (one rune, U+10000) never equals either unit of its own surrogate pair.
func TestSurrogateEscapesMatchUnitSequences(t *testing.T) {
	pattern, err := Generate(codeset.Set{{Lo: 0x10000, Hi: 0x10000}}, ModeUTF16)
	require.NoError(t, err)
	require.Equal(t, `(?:\uD800\uDC00)`, pattern)

	units := []rune{0xD800, 0xDC00}
	ok, err := regexp2.MustCompile(`\A`+pattern+`\z`, regexp2.None).MatchRunes(units)
	require.NoError(t, err)
	assert.True(t, ok)

	literal, err := regexp2.Compile("\\A\U00010000\\z", regexp2.None)
	require.NoError(t, err)
	ok, err = literal.MatchRunes(units)
	require.NoError(t, err)
	assert.False(t, ok, "a raw supplementary literal does not match its code unit sequence")
}

// U+104FE sits in the second branch of this pattern; a whole-pattern
// regexp2 match misses it because the scan stops at the first branch's
// lone-high-surrogate literal, which is why utf16Matcher goes branch by
// branch.
func TestUTF16SecondBranchMatches(t *testing.T) {
	pattern, err := Generate(codeset.Set{{Lo: 0x10300, Hi: 0x104FF}}, ModeUTF16)
	require.NoError(t, err)
	require.Equal(t, `(?:\uD800[\uDF00-\uDFFF]|\uD801[\uDC00-\uDCFF])`, pattern)

	m := compileUTF16(t, pattern)
	for _, tc := range []struct {
		c    rune
		want bool
	}{
		{0x102FF, false},
		{0x10300, true},
		{0x103FF, true},
		{0x10400, true},
		{0x104FE, true},
		{0x104FF, true},
		{0x10500, false},
	} {
		hi, lo := utf16.EncodeRune(tc.c)
		assert.Equal(t, tc.want, m.match(t, []rune{hi, lo}), "U+%04X", tc.c)
	}
}

func TestTopLevelBranches(t *testing.T) {
	assert.Equal(t, []string{"[a-z]"}, topLevelBranches("[a-z]"))
	assert.Equal(t, []string{`\uD800\uDC00`}, topLevelBranches(`(?:\uD800\uDC00)`))
	assert.Equal(t,
		[]string{"[a-z]", `\uD800[\uDC00-\uDC10]`},
		topLevelBranches(`(?:[a-z]|\uD800[\uDC00-\uDC10])`))
	// a bar inside a class or behind a backslash does not split
	assert.Equal(t, []string{`[$|]`, `\|a`}, topLevelBranches(`(?:[$|]|\|a)`))
}

// In full-code-point mode a surrogate code point still renders as \uXXXX,
// which Go's regexp dialect has no escape for. The pattern is only
// compilable by dialects with \u escapes; see the package doc.
func TestSurrogateInFullCodePointMode(t *testing.T) {
	pattern, err := Build([]Item{Point(Rune(0xD800))}, ModeUTF32)
	require.NoError(t, err)
	assert.Equal(t, `\uD800`, pattern)

	_, err = regexp.Compile(pattern)
	assert.Error(t, err, "stdlib regexp has no \\u escape")
}

// The empty set degenerates to the empty pattern, which matches the empty
// string rather than nothing. The behavior is kept for compatibility; this
// test documents the trap.
func TestEmptySetDegenerates(t *testing.T) {
	for _, mode := range []Mode{ModeAuto, ModeUTF16, ModeUTF32} {
		pattern, err := Build(nil, mode)
		require.NoError(t, err)
		require.Equal(t, "", pattern)
	}

	re := regexp.MustCompile(`\A(?:)\z`)
	assert.True(t, re.MatchString(""))
	assert.False(t, re.MatchString("a"))
}
