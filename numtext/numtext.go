// Package numtext converts between numbers and German text.
//
// Generation:
//
//   - PronounceNumber spells out a number below 100 ("vierzig zwei punkt fünf").
//   - NiceNumber renders a value as a mixed fraction for display ("4 1/2") or
//     speech ("4 und ein halbe").
//
// Parsing:
//
//   - ExtractNumber finds the first number in a phrase, written as digits,
//     number words, fraction words ("zwei drittel"), slash fractions ("2/3")
//     or an "X und Y" sum.
//   - IsFractional classifies a single fraction word ("viertel" -> 0.25).
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - PronounceNumber returns the plain numeral for |n| >= 100.
//   - Tens and ones are read tens-first ("vierzig zwei"), not in the
//     German ones-und-tens order ("zweiundvierzig").
//   - NiceNumber speech appends an English-style plural "s" to the
//     denominator word when the numerator is greater than one
//     ("2 drittes"). This is kept for compatibility with existing
//     dialogue skills and is not correct German.
package numtext

import "slices"

// DefaultPlaces is the number of decimal digits PronounceNumber reads when
// callers have no preference.
const DefaultPlaces = 2

// PronounceNumber returns the spoken German form of n, reading at most
// places decimal digits. Trailing zero digits are not read.
// Values with an absolute value of 100 or more are returned as numerals.
func PronounceNumber(n float64, places int) string {
	return pronounce(n, places)
}

// NiceNumber formats n as a whole number plus a fraction whose denominator
// is taken from denominators (1..20 when empty). speech selects the spoken
// form. Values that fit no denominator are rounded to three decimals.
func NiceNumber(n float64, speech bool, denominators []int) string {
	return niceNumber(n, speech, denominators)
}

// ExtractNumber returns the first number expressed in text.
// ok is false when text contains no recognizable number.
func ExtractNumber(text string) (value float64, ok bool) {
	if text == "" || len(text) > maxInputBytes {
		return 0, false
	}
	return extractNumber(text)
}

// IsFractional returns the value 1/n denoted by a fraction word such as
// "drittel" or "viertel". One trailing "s" is ignored ("halbes").
// ok is false when word is not a fraction word.
func IsFractional(word string) (value float64, ok bool) {
	return isFractional(word)
}

// FractionWords returns every word IsFractional accepts, sorted.
func FractionWords() []string {
	words := make([]string, 0, len(fractionDenominators)+1)
	for w := range fractionDenominators {
		words = append(words, w)
	}
	words = append(words, wordQuarter)
	slices.Sort(words)
	return words
}
