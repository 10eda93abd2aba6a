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

import "fmt"

// Mode selects how the generated pattern represents text: as full code
// points (UTF-32) or as 16-bit code units with surrogate pairs (UTF-16).
type Mode int

const (
	// ModeAuto matches the host engine's text representation. Go's regexp
	// operates on code points, so auto resolves to UTF-32.
	ModeAuto Mode = iota

	// ModeUTF16 emits surrogate-pair sub-patterns for supplementary-plane
	// code points, for engines that see text as 16-bit code units.
	ModeUTF16

	// ModeUTF32 emits every code point directly.
	ModeUTF32
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeUTF16:
		return "utf16"
	case ModeUTF32:
		return "utf32"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name to a Mode. The empty string means auto.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "utf16":
		return ModeUTF16, nil
	case "utf32":
		return ModeUTF32, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}
