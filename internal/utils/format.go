// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst returns word with its first rune upper-cased and the rest
// left untouched. An empty word is returned unchanged.
//
// Example usage:
//
//	utils.CapitalizeFirst("mrs")    // "Mrs"
//	utils.CapitalizeFirst("london") // "London"
func CapitalizeFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || r == utf8.RuneError {
		return word
	}

	upper := unicode.ToUpper(r)
	if upper == r {
		return word
	}

	return string(upper) + word[size:]
}
