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

// Package codeset represents sets of Unicode code points as ordered lists
// of inclusive intervals.
package codeset

import (
	"cmp"
	"slices"
)

// MaxCodePoint is the largest valid Unicode code point.
const MaxCodePoint rune = 0x10FFFF

// Interval is an inclusive range of code points. A single code point c is
// the interval {c, c}.
type Interval struct {
	Lo, Hi rune
}

// Single reports whether the interval covers exactly one code point.
func (in Interval) Single() bool {
	return in.Lo == in.Hi
}

// Len returns the number of code points in the interval.
func (in Interval) Len() int {
	return int(in.Hi) - int(in.Lo) + 1
}

// Contains reports whether c falls inside the interval.
func (in Interval) Contains(c rune) bool {
	return in.Lo <= c && c <= in.Hi
}

// Set is an ordered list of intervals. A Set built by Merge or
// FromMembership is canonical: intervals are sorted by Lo, and consecutive
// intervals neither overlap nor touch (prev.Hi+1 < next.Lo).
type Set []Interval

// Merge turns an arbitrary collection of intervals into a canonical Set
// covering the same code points. Overlapping and exactly-adjacent intervals
// collapse into one. Merging an already-canonical Set returns an equal Set.
func Merge(intervals []Interval) Set {
	if len(intervals) == 0 {
		return nil
	}

	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, func(a, b Interval) int {
		return cmp.Compare(a.Lo, b.Lo)
	})

	out := make(Set, 0, len(sorted))
	cur := sorted[0]
	for _, in := range sorted[1:] {
		if in.Lo <= cur.Hi+1 {
			if in.Hi > cur.Hi {
				cur.Hi = in.Hi
			}
			continue
		}
		out = append(out, cur)
		cur = in
	}
	return append(out, cur)
}

// FromMembership builds a canonical Set from a membership sequence: the flag
// at index n decides whether code point n is in the set. The scan closes a
// run on every true→false transition, so the result is sorted and merged by
// construction. An empty or all-false sequence yields an empty Set.
func FromMembership(included []bool) Set {
	var out Set
	start := -1
	for i, ok := range included {
		switch {
		case ok && start < 0:
			start = i
		case !ok && start >= 0:
			out = append(out, Interval{Lo: rune(start), Hi: rune(i - 1)})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, Interval{Lo: rune(start), Hi: rune(len(included) - 1)})
	}
	return out
}

// IsEmpty reports whether the set covers no code points.
func (s Set) IsEmpty() bool {
	return len(s) == 0
}

// Len returns the total number of code points covered.
func (s Set) Len() (n int) {
	for _, in := range s {
		n += in.Len()
	}
	return n
}

// Contains reports whether c is covered by the set. It assumes canonical
// form and binary-searches the interval starts.
func (s Set) Contains(c rune) bool {
	i, found := slices.BinarySearchFunc(s, c, func(in Interval, c rune) int {
		return cmp.Compare(in.Lo, c)
	})
	if found {
		return true
	}
	return i > 0 && c <= s[i-1].Hi
}

// Equal reports whether two sets list the same intervals.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s, other)
}
