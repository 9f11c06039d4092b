// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package preview reproduces the text preparation the transform service
// applies before digraph substitution, so the user can see exactly which
// letter pairs will be encrypted.
package preview

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MergedLetter is folded into MergeTarget: the 5x5 grid has 25 cells.
	MergedLetter = 'J'
	MergeTarget  = 'I'

	// Filler pads odd tails and splits doubled letters.
	Filler = 'X'
)

var upper = cases.Upper(language.Und)

// Normalize uppercases text, drops everything outside A–Z and then merges
// J into I. The order of the three steps is fixed.
func Normalize(text string) string {
	up := upper.String(text)

	var b strings.Builder
	b.Grow(len(up))
	for _, r := range up {
		if r < 'A' || r > 'Z' {
			continue
		}
		if r == MergedLetter {
			r = MergeTarget
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Pair splits normalized text into two-letter tokens. A doubled letter is
// split by the filler and its second occurrence starts the next token; a
// trailing single letter is padded with the filler.
func Pair(cleaned string) []string {
	pairs := make([]string, 0, len(cleaned)/2+1)

	for i := 0; i < len(cleaned); {
		a := cleaned[i]
		switch {
		case i+1 >= len(cleaned):
			pairs = append(pairs, string([]byte{a, Filler}))
			i++
		case cleaned[i+1] == a:
			pairs = append(pairs, string([]byte{a, Filler}))
			i++
		default:
			pairs = append(pairs, cleaned[i:i+2])
			i += 2
		}
	}

	return pairs
}
