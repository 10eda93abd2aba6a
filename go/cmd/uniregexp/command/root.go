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
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"vitess.io/uniregexp/go/log"
	"vitess.io/uniregexp/go/uniregexp"
	"vitess.io/uniregexp/go/uniregexp/codeset"
)

var (
	options = struct {
		Mode       string
		Membership string
		Verify     bool
	}{}

	Root = &cobra.Command{
		Use:   "uniregexp [code point or range]...",
		Short: "uniregexp generates a regular expression matching exactly a set of Unicode code points.",
		Long: "`uniregexp` turns code points and code point ranges into a regular expression " +
			"that matches exactly those code points and no others.\n\n" +
			"Code points are given as `U+0061`, `0x61`, `97` or a literal character; ranges as " +
			"`a-z` or `U+10000-U+10FFFF` (spell a literal dash as `U+002D` inside a range). " +
			"All-digit tokens are decimal code point numbers, so `0-9` means U+0000 through " +
			"U+0009; the digit characters are `U+0030-U+0039`. " +
			"Alternatively, --membership takes a bit string whose nth bit decides code point n.\n\n" +
			"In utf16 mode, supplementary-plane code points are emitted as surrogate pairs for " +
			"regex engines that see text as 16-bit code units.",
		Example: "  uniregexp a-z A-Z 0x5F\n  uniregexp --mode utf16 U+10000-U+10FFFF\n  uniregexp --membership 0111001",
		Args:    cobra.ArbitraryArgs,
		RunE:    run,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}
)

func init() {
	registerFlags(Root.Flags())
}

func registerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&options.Mode, "mode", "auto", "pattern encoding: auto, utf16 or utf32")
	fs.StringVar(&options.Membership, "membership", "", "bit string; the nth bit decides whether code point n is matched")
	fs.BoolVar(&options.Verify, "verify", false, "compile the generated pattern and check it against the input set over all code points")
}

func run(cmd *cobra.Command, args []string) error {
	mode, err := uniregexp.ParseMode(options.Mode)
	if err != nil {
		return err
	}

	var set codeset.Set
	switch {
	case options.Membership != "":
		if len(args) > 0 {
			return errors.New("--membership cannot be combined with positional code points")
		}
		included, err := parseMembership(options.Membership)
		if err != nil {
			return err
		}
		set = codeset.FromMembership(included)
	default:
		items := make([]uniregexp.Item, 0, len(args))
		for _, arg := range args {
			it, err := parseItem(arg)
			if err != nil {
				return err
			}
			items = append(items, it)
		}
		set, err = uniregexp.Normalize(items)
		if err != nil {
			return err
		}
	}

	if set.IsEmpty() {
		log.Warningf("input set is empty: the generated pattern is the empty string, which matches everywhere, not nowhere")
	}

	pattern, err := uniregexp.Generate(set, mode)
	if err != nil {
		return err
	}
	if options.Verify {
		if err := verify(set, pattern, mode); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), pattern)
	return nil
}
