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
	"unicode/utf16"

	"vitess.io/uniregexp/go/uniregexp/codeset"
)

const (
	surrHighMin rune = 0xD800
	surrHighMax rune = 0xDBFF
	surrLowMin  rune = 0xDC00
	surrLowMax  rune = 0xDFFF
)

// An Endpoint designates one code point, given either numerically or as
// text. Construct one with Rune or Text.
type Endpoint struct {
	r      rune
	text   string
	isText bool
}

// Rune makes an Endpoint from a numeric code point. Values outside
// 0..U+10FFFF fail at Build time with ErrOutOfRange. Surrogate values are
// accepted: in UTF-16 mode they are ordinary code units.
func Rune(r rune) Endpoint {
	return Endpoint{r: r}
}

// Text makes an Endpoint from text. The string must be one UTF-16 code unit
// ("a") or two forming a surrogate pair (a single supplementary-plane
// character such as "𐀀" is its own pair). Two units that are not a valid
// high/low pair fail with ErrInvalidSurrogatePair; any other unit count
// fails with ErrInvalidLength.
func Text(s string) Endpoint {
	return Endpoint{text: s, isText: true}
}

func (e Endpoint) resolve() (rune, error) {
	if !e.isText {
		if e.r < 0 || e.r > codeset.MaxCodePoint {
			return 0, fmt.Errorf("%w: %X", ErrOutOfRange, e.r)
		}
		return e.r, nil
	}

	units := utf16.Encode([]rune(e.text))
	switch len(units) {
	case 1:
		return rune(units[0]), nil
	case 2:
		hi, lo := rune(units[0]), rune(units[1])
		if hi < surrHighMin || hi > surrHighMax || lo < surrLowMin || lo > surrLowMax {
			return 0, fmt.Errorf("%w: %04X %04X", ErrInvalidSurrogatePair, hi, lo)
		}
		return utf16.DecodeRune(hi, lo), nil
	}
	return 0, fmt.Errorf("%w: %q is %d units", ErrInvalidLength, e.text, len(units))
}

// An Item is one element of the input to Build: either a single code point
// or an inclusive range between two endpoints.
type Item struct {
	lo, hi Endpoint
	span   bool
}

// Point makes an Item covering a single code point.
func Point(e Endpoint) Item {
	return Item{lo: e}
}

// Span makes an Item covering the inclusive range between two endpoints.
// Endpoints given out of order are swapped rather than rejected.
func Span(lo, hi Endpoint) Item {
	return Item{lo: lo, hi: hi, span: true}
}

// RuneSpan is shorthand for Span(Rune(lo), Rune(hi)).
func RuneSpan(lo, hi rune) Item {
	return Span(Rune(lo), Rune(hi))
}

func (it Item) normalize() (codeset.Interval, error) {
	lo, err := it.lo.resolve()
	if err != nil {
		return codeset.Interval{}, err
	}
	if !it.span {
		return codeset.Interval{Lo: lo, Hi: lo}, nil
	}
	hi, err := it.hi.resolve()
	if err != nil {
		return codeset.Interval{}, err
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return codeset.Interval{Lo: lo, Hi: hi}, nil
}
