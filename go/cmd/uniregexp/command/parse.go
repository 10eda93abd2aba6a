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
	"strconv"
	"strings"

	"vitess.io/uniregexp/go/uniregexp"
)

// parseItem turns one command-line argument into a library Item. A bare "-"
// is the dash character itself; any other dash splits a range in two.
func parseItem(arg string) (uniregexp.Item, error) {
	if arg == "-" {
		return uniregexp.Point(uniregexp.Text(arg)), nil
	}
	parts := strings.Split(arg, "-")
	switch len(parts) {
	case 1:
		ep, err := parseEndpoint(parts[0])
		if err != nil {
			return uniregexp.Item{}, err
		}
		return uniregexp.Point(ep), nil
	case 2:
		lo, err := parseEndpoint(parts[0])
		if err != nil {
			return uniregexp.Item{}, err
		}
		hi, err := parseEndpoint(parts[1])
		if err != nil {
			return uniregexp.Item{}, err
		}
		return uniregexp.Span(lo, hi), nil
	}
	return uniregexp.Item{}, fmt.Errorf("%w: %q", uniregexp.ErrMalformedRange, arg)
}

// parseEndpoint accepts U+XXXX, 0xXX, decimal, or literal text. Text is
// resolved by the library, so a supplementary-plane character works too.
func parseEndpoint(tok string) (uniregexp.Endpoint, error) {
	var (
		v   uint64
		err error
	)
	switch {
	case strings.HasPrefix(tok, "U+") || strings.HasPrefix(tok, "u+"):
		v, err = strconv.ParseUint(tok[2:], 16, 32)
	case strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X"):
		v, err = strconv.ParseUint(tok[2:], 16, 32)
	case isDigits(tok):
		v, err = strconv.ParseUint(tok, 10, 32)
	default:
		return uniregexp.Text(tok), nil
	}
	if err != nil {
		return uniregexp.Endpoint{}, fmt.Errorf("cannot parse code point %q: %v", tok, err)
	}
	return uniregexp.Rune(rune(v)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseMembership reads a bit string like "0111001" into a flag sequence.
func parseMembership(bits string) ([]bool, error) {
	included := make([]bool, len(bits))
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
		case '1':
			included[i] = true
		default:
			return nil, fmt.Errorf("membership must be a string of 0s and 1s, got %q at offset %d", bits[i], i)
		}
	}
	return included, nil
}
