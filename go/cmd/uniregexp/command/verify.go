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

package command

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/dlclark/regexp2"

	"vitess.io/uniregexp/go/uniregexp"
	"vitess.io/uniregexp/go/uniregexp/codeset"
)

// verify compiles the generated pattern and checks, for every code point,
// that the pattern matches it iff the input set contains it. UTF-16-mode
// patterns need an engine with 16-bit-unit semantics, so they are checked
// with regexp2 against code unit sequences; everything else goes through
// the standard library engine.
func verify(set codeset.Set, pattern string, mode uniregexp.Mode) error {
	if set.IsEmpty() {
		// The empty pattern matches everywhere; nothing meaningful to check.
		return nil
	}
	anchored := `\A(?:` + pattern + `)\z`

	if mode == uniregexp.ModeUTF16 {
		if _, err := regexp2.Compile(anchored, regexp2.None); err != nil {
			return fmt.Errorf("generated pattern does not compile: %v", err)
		}
		// regexp2's scan never retries a later top-level alternative once a
		// branch starting with a lone high surrogate literal fails, so the
		// whole alternation misses code points only the second or later
		// branch covers. Anchored branches are independent under \A(?:A|B)\z,
		// so check them one by one instead.
		var branches []*regexp2.Regexp
		for _, branch := range topLevelBranches(pattern) {
			re, err := regexp2.Compile(`\A(?:`+branch+`)\z`, regexp2.None)
			if err != nil {
				return fmt.Errorf("generated pattern does not compile: %v", err)
			}
			branches = append(branches, re)
		}
		for c := rune(0); c <= codeset.MaxCodePoint; c++ {
			units := []rune{c}
			if c > 0xFFFF {
				hi, lo := utf16.EncodeRune(c)
				units = []rune{hi, lo}
			}
			var matched bool
			for _, re := range branches {
				ok, err := re.MatchRunes(units)
				if err != nil {
					return err
				}
				if ok {
					matched = true
					break
				}
			}
			if matched != set.Contains(c) {
				return mismatch(c, matched)
			}
		}
		return nil
	}

	re, err := regexp.Compile(anchored)
	if err != nil {
		return fmt.Errorf("generated pattern does not compile: %v", err)
	}
	for c := rune(0); c <= codeset.MaxCodePoint; c++ {
		if utf16.IsSurrogate(c) {
			// Not expressible in UTF-8 input; a full-code-point set should
			// never contain one.
			if set.Contains(c) {
				return fmt.Errorf("cannot verify surrogate code point U+%04X against a full-code-point engine", c)
			}
			continue
		}
		if ok := re.MatchString(string(c)); ok != set.Contains(c) {
			return mismatch(c, ok)
		}
	}
	return nil
}

// topLevelBranches splits a generated pattern at its top-level alternation.
// Generated patterns have at most one outer (?:...) group; inside it, | only
// separates alternatives except within a class or behind a backslash.
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

func mismatch(c rune, matched bool) error {
	if matched {
		return fmt.Errorf("verification failed: pattern matches U+%04X, which is not in the input set", c)
	}
	return fmt.Errorf("verification failed: pattern does not match U+%04X, which is in the input set", c)
}
