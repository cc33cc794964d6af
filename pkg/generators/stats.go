/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: stats.go
Description: Per-value text statistics for the Akaylee feature engine.
Implements the character, word, case, digit, and symbol scans used by the
text special generator. All ratio statistics operate on the value with plain
spaces removed and fall back to 0 on an empty stripped value.
*/

package generators

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CharCount returns the number of characters in the value
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// WordCount returns the number of whitespace-separated tokens in the value
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CapitalRatio returns the fraction of upper-case characters in the
// space-stripped value, 0 when the stripped value is empty
func CapitalRatio(s string) float64 {
	return classRatio(s, unicode.IsUpper)
}

// LowerRatio returns the fraction of lower-case characters in the
// space-stripped value, 0 when the stripped value is empty
func LowerRatio(s string) float64 {
	return classRatio(s, unicode.IsLower)
}

// DigitRatio returns the fraction of digit characters in the space-stripped
// value, 0 when the stripped value is empty
func DigitRatio(s string) float64 {
	return classRatio(s, unicode.IsDigit)
}

// SpecialRatio returns the fraction of characters that are neither letters,
// digits, nor underscore in the space-stripped value, 0 when the stripped
// value is empty
func SpecialRatio(s string) float64 {
	return classRatio(s, func(r rune) bool {
		return !isWordRune(r)
	})
}

// SymbolCount returns the number of characters in the raw, unstripped value
// that exactly match the symbol, 0 for an empty value. Symbols longer than
// one character never match.
func SymbolCount(s string, symbol string) int {
	if s == "" {
		return 0
	}
	count := 0
	for _, r := range s {
		if string(r) == symbol {
			count++
		}
	}
	return count
}

// classRatio counts runes matching the predicate in the space-stripped value
func classRatio(s string, match func(rune) bool) float64 {
	stripped := strings.ReplaceAll(s, " ", "")
	if stripped == "" {
		return 0
	}
	total := 0
	matched := 0
	for _, r := range stripped {
		total++
		if match(r) {
			matched++
		}
	}
	return float64(matched) / float64(total)
}

// isWordRune reports whether the rune is a word character: a letter, a
// digit, or underscore
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
