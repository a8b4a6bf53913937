package main

import (
	"github.com/sahilm/fuzzy"

	"github.com/az-ai-labs/de-lang-nlp/internal/textcase"
)

// maxSuggestions caps "did you mean" hints.
const maxSuggestions = 3

// suggest returns the best fuzzy matches for word among targets.
func suggest(word string, targets []string) []string {
	matches := fuzzy.Find(textcase.Fold(word), targets)
	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
