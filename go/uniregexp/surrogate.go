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
	"unicode/utf16"

	"vitess.io/uniregexp/go/uniregexp/codeset"
)

const maxBMP rune = 0xFFFF

// emitUTF16 renders a canonical set for an engine that sees text as 16-bit
// code units. BMP intervals go through the direct emitter unchanged;
// supplementary intervals are decomposed into surrogate-pair sub-patterns.
// An interval straddling the BMP boundary is split at it.
//
// The result is wrapped in a non-capturing group whenever it alternates or
// any supplementary interval contributed, so that callers can concatenate
// it with neighboring fragments without the alternation leaking.
func emitUTF16(set codeset.Set) string {
	var bmp, supp []codeset.Interval
	for _, in := range set {
		switch {
		case in.Hi <= maxBMP:
			bmp = append(bmp, in)
		case in.Lo <= maxBMP:
			bmp = append(bmp, codeset.Interval{Lo: in.Lo, Hi: maxBMP})
			supp = append(supp, codeset.Interval{Lo: maxBMP + 1, Hi: in.Hi})
		default:
			supp = append(supp, in)
		}
	}

	var segments []string
	if len(bmp) > 0 {
		segments = append(segments, emitDirect(bmp))
	}
	for _, in := range supp {
		segments = append(segments, splitSupplementary(in)...)
	}

	switch {
	case len(segments) == 0:
		return ""
	case len(segments) == 1 && len(supp) == 0:
		return segments[0]
	}
	return "(?:" + strings.Join(segments, "|") + ")"
}

// splitSupplementary renders one supplementary-plane interval as up to
// three segments of highSurrogate+lowRange patterns.
//
// The low surrogate of the interval's first code point rarely sits at the
// start of the low range, and symmetrically for the last, so those boundary
// high surrogates get their own partial-low-range segments. All interior
// high surrogates share the full low range and collapse into one segment
// with a [\uDC00-\uDFFF] suffix.
func splitSupplementary(in codeset.Interval) []string {
	hiStart, loStart := utf16.EncodeRune(in.Lo)
	hiEnd, loEnd := utf16.EncodeRune(in.Hi)

	midStart, midEnd := hiStart, hiEnd
	if loStart != surrLowMin {
		midStart = hiStart + 1
	}
	if loEnd != surrLowMax {
		midEnd = hiEnd - 1
	}

	if hiStart == hiEnd {
		return []string{highPrefixed(hiStart, loStart, loEnd)}
	}

	var segs []string
	if hiStart != midStart {
		segs = append(segs, highPrefixed(hiStart, loStart, surrLowMax))
	}
	if midStart <= midEnd {
		seg := emitDirect(codeset.Set{{Lo: midStart, Hi: midEnd}}) +
			emitDirect(codeset.Set{{Lo: surrLowMin, Hi: surrLowMax}})
		segs = append(segs, seg)
	}
	if hiEnd != midEnd {
		segs = append(segs, highPrefixed(hiEnd, surrLowMin, loEnd))
	}
	return segs
}

// highPrefixed renders one high surrogate followed by a range of low
// surrogates.
func highPrefixed(high, lo, hi rune) string {
	var b strings.Builder
	writeLiteralEscaped(&b, high)
	b.WriteString(emitDirect(codeset.Set{{Lo: lo, Hi: hi}}))
	return b.String()
}
