// Package textcase provides German case folding and Unicode composition for
// the parsers.
//
// German needs no special-casing beyond full Unicode lowering (ß stays ß,
// Ä/Ö/Ü lower to ä/ö/ü), but speech-to-text engines frequently emit
// decomposed umlauts ("u" + U+0308). Every parser composes to NFC before
// lowering so that "für" and "für" match the same lexicon entry.
//
// All functions are safe for concurrent use; a fresh cases.Caser is built per
// call because Casers carry state.
package textcase

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower returns s lowercased with German rules.
func Lower(s string) string {
	if isLowerASCII(s) {
		return s
	}
	return cases.Lower(language.German).String(s)
}

// Fold composes s to NFC and lowercases it. This is the canonical form that
// every lexicon lookup in the module expects.
func Fold(s string) string {
	return Lower(ComposeNFC(s))
}

// Fields splits folded s on whitespace.
func Fields(s string) []string {
	return strings.Fields(Fold(s))
}

// IsApostrophe reports whether r is an ASCII or typographic apostrophe.
func IsApostrophe(r rune) bool {
	switch r {
	case '\'', '’', 'ʼ', '`', '´':
		return true
	}
	return false
}

// NormalizeApostrophes replaces typographic apostrophes with the ASCII one.
func NormalizeApostrophes(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r != '\'' && IsApostrophe(r) }) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if IsApostrophe(r) {
			return '\''
		}
		return r
	}, s)
}

// isLowerASCII reports whether s is pure ASCII with no uppercase letters.
func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || ('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}
