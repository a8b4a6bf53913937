// Text-to-number extraction for German phrases.
package numtext

import (
	"strings"

	"github.com/az-ai-labs/de-lang-nlp/internal/fraction"
	"github.com/az-ai-labs/de-lang-nlp/internal/textcase"
)

// maxInputBytes bounds the phrase length ExtractNumber will scan.
const maxInputBytes = 1 << 16 // 64 KiB

// extractNumber scans the folded words of text left to right and returns the
// first value found. A conjunction ("und") directly after the value, or one
// word after it, defers the result until the next value, which is added.
func extractNumber(text string) (float64, bool) {
	fields := textcase.Fields(text)
	words := fields[:0]
	for _, w := range fields {
		if !definiteArticles[w] {
			words = append(words, w)
		}
	}

	var (
		andPending bool
		valPreAnd  float64
	)

	for i := 0; i < len(words); {
		val, span, ok := matchNumber(words, i)
		if !ok {
			val, ok = fraction.ParseSlash(words[i])
			span = 1
		}
		if !ok {
			if andPending {
				return valPreAnd, true
			}
			i++
			continue
		}

		if andPending {
			return valPreAnd + val, true
		}

		next := i + span
		switch {
		case next < len(words) && words[next] == wordAnd:
			andPending, valPreAnd = true, val
			i = next + 1
		case next+1 < len(words) && words[next+1] == wordAnd:
			andPending, valPreAnd = true, val
			i = next + 2
		default:
			return val, true
		}
	}

	if andPending {
		return valPreAnd, true
	}
	return 0, false
}

// matchNumber tries the word at i as a numeral, a known ordinal, a fraction
// word, or a cardinal word optionally followed by a fraction word
// ("zwei drittel"). "ein"/"eine" count only in front of a fraction word. span is the number of words the match covers.
func matchNumber(words []string, i int) (val float64, span int, ok bool) {
	word := words[i]

	if v, ok := fraction.ParseNumber(word); ok {
		return v, 1, true
	}
	if v, ok := ordinalValues[word]; ok {
		return v, 1, true
	}
	if v, ok := isFractional(word); ok {
		return v, 1, true
	}

	v, ok := cardinalValues[word]
	if !ok && !indefiniteOne[word] {
		return 0, 0, false
	}
	if i+1 < len(words) {
		if f, ok := isFractional(words[i+1]); ok {
			return max(v, 1) * f, 2, true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return v, 1, true
}

// isFractional implements IsFractional.
func isFractional(word string) (float64, bool) {
	w := textcase.Fold(strings.TrimSpace(word))
	w = strings.TrimSuffix(w, "s")
	if w == "" {
		return 0, false
	}
	if w == wordQuarter {
		return 1.0 / 4, true
	}
	if d, ok := fractionDenominators[w]; ok {
		return 1.0 / float64(d), true
	}
	return 0, false
}
