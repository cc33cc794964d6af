/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: stats_test.go
Description: Tests for the per-value text statistics. Covers character and
word counting, case, digit, and special ratios with space stripping, the
empty-value zero fallbacks, and symbol counting on unstripped values.
*/

package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCharCount tests character counting over code points
func TestCharCount(t *testing.T) {
	assert.Equal(t, 0, CharCount(""))
	assert.Equal(t, 12, CharCount("Hello World!"))
	// Code points, not bytes
	assert.Equal(t, 5, CharCount("héllo"))
}

// TestWordCount tests whitespace-delimited token counting
func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 2, WordCount("Hello World!"))
	assert.Equal(t, 3, WordCount("  a\tb \n c  "))
}

// TestCapitalRatio tests the upper-case ratio with space stripping
func TestCapitalRatio(t *testing.T) {
	assert.Equal(t, 0.0, CapitalRatio(""))
	assert.Equal(t, 0.0, CapitalRatio("   "))
	// Stripped "HelloWorld!" has 11 characters, 2 upper case
	assert.InDelta(t, 2.0/11.0, CapitalRatio("Hello World!"), 1e-12)
	assert.Equal(t, 1.0, CapitalRatio("ABC"))
}

// TestLowerRatio tests the lower-case ratio with space stripping
func TestLowerRatio(t *testing.T) {
	assert.Equal(t, 0.0, LowerRatio(""))
	assert.InDelta(t, 8.0/11.0, LowerRatio("Hello World!"), 1e-12)
	assert.Equal(t, 0.5, LowerRatio("abc123"))
}

// TestCapitalPlusLowerBounded tests that case ratios never exceed one in sum
func TestCapitalPlusLowerBounded(t *testing.T) {
	for _, value := range []string{"Hello World!", "ABC def", "a1B2", "....", "MiXeD CaSe"} {
		sum := CapitalRatio(value) + LowerRatio(value)
		assert.LessOrEqual(t, sum, 1.0, "value %q", value)
	}
	// Equality when the whole stripped string is alphabetic
	assert.InDelta(t, 1.0, CapitalRatio("Go Lang")+LowerRatio("Go Lang"), 1e-12)
}

// TestDigitRatio tests the digit ratio with space stripping
func TestDigitRatio(t *testing.T) {
	assert.Equal(t, 0.0, DigitRatio(""))
	assert.Equal(t, 0.5, DigitRatio("abc123"))
	assert.Equal(t, 1.0, DigitRatio("1 2 3"))
}

// TestSpecialRatio tests the non-word character ratio
func TestSpecialRatio(t *testing.T) {
	assert.Equal(t, 0.0, SpecialRatio(""))
	assert.Equal(t, 0.0, SpecialRatio("abc123"))
	// Underscore counts as a word character
	assert.Equal(t, 0.0, SpecialRatio("snake_case"))
	assert.InDelta(t, 1.0/11.0, SpecialRatio("Hello World!"), 1e-12)
	assert.Equal(t, 1.0, SpecialRatio("!?!?"))
}

// TestSymbolCount tests exact character matching on the unstripped value
func TestSymbolCount(t *testing.T) {
	assert.Equal(t, 0, SymbolCount("", "!"))
	assert.Equal(t, 1, SymbolCount("Hello World!", "!"))
	assert.Equal(t, 1, SymbolCount("Hello World!", " "))
	assert.Equal(t, 2, SymbolCount("a.b.c", "."))
	// Multi-character symbols never match single characters
	assert.Equal(t, 0, SymbolCount("abab", "ab"))
}
