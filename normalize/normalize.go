// Package normalize rewrites German utterances into a canonical form before
// they reach the number and date parsers.
//
// Normalize splits on whitespace, optionally drops articles, expands
// colloquial contractions from an embedded phrase table and turns the number
// words null through zwanzig into digits. Output tokens are joined with a
// single space.
//
// Normalize is idempotent: normalizing its own output changes nothing.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Number words above zwanzig are left as words; use numtext.ExtractNumber.
//   - "ein" and "eine" are treated as articles, never as the number one.
//   - Contractions are matched as whole tokens only; "gibt's?" keeps its
//     trailing punctuation and is not expanded.
package normalize

import (
	"strings"

	"github.com/az-ai-labs/de-lang-nlp/internal/textcase"
)

// maxInputBytes is the maximum input size for Normalize.
// Inputs exceeding this are returned unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// Normalize returns text in canonical form. Articles are dropped when
// removeArticles is set. Returns the input unchanged for empty or oversized
// (>1 MiB) input.
func Normalize(text string, removeArticles bool) string {
	if text == "" || len(text) > maxInputBytes {
		return text
	}
	words := strings.Fields(textcase.ComposeNFC(text))
	if removeArticles {
		words = dropArticles(words)
	}
	if len(words) == 0 {
		return ""
	}

	out := make([]string, 0, len(words))
	for i := 0; i < len(words); {
		if c, n := matchContraction(words[i:]); n > 0 {
			if c.identity {
				out = append(out, words[i:i+n]...)
			} else {
				out = append(out, c.Expansion)
			}
			i += n
			continue
		}
		out = append(out, numberDigits(words[i]))
		i++
	}
	return strings.Join(out, " ")
}

func dropArticles(words []string) []string {
	kept := words[:0]
	for _, w := range words {
		if _, ok := articles[key(w)]; !ok {
			kept = append(kept, w)
		}
	}
	return kept
}

func numberDigits(w string) string {
	if d, ok := numberWords[key(w)]; ok {
		return d
	}
	return w
}

// key is the lookup form of a single word.
func key(w string) string {
	return textcase.NormalizeApostrophes(textcase.Fold(w))
}
