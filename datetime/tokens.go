package datetime

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/de-lang-nlp/internal/textcase"
)

// token is one word of the cleaned utterance. consumed marks words that a
// rule has claimed; they are invisible to later rules and to the remainder.
type token struct {
	text     string
	consumed bool
}

type tokens []token

var punctuation = strings.NewReplacer("?", "", ".", "", ",", "")

// clean folds s and splits it into tokens. Punctuation is removed, "ein",
// "die" and "das" are dropped unless they open or close the utterance,
// possessive "'s" is removed, and ordinal suffixes are stripped from tokens
// that start with a digit ("3ter" -> "3").
func clean(s string) tokens {
	s = textcase.NormalizeApostrophes(textcase.Fold(s))
	fields := strings.Fields(punctuation.Replace(s))

	ts := make(tokens, 0, len(fields))
	for i, w := range fields {
		if droppedInner[w] && i > 0 && i < len(fields)-1 {
			continue
		}
		w = strings.ReplaceAll(w, "'s", "")
		if startsWithDigit(w) {
			for _, suffix := range ordinalSuffixes {
				w = strings.ReplaceAll(w, suffix, "")
			}
		}
		if w == "" {
			continue
		}
		ts = append(ts, token{text: w})
	}
	return ts
}

// at returns the text of the live token at i, or "" when i is out of range
// or the token has been consumed.
func (ts tokens) at(i int) string {
	if i < 0 || i >= len(ts) || ts[i].consumed {
		return ""
	}
	return ts[i].text
}

// raw returns the text at i whether or not it has been consumed.
func (ts tokens) raw(i int) string {
	if i < 0 || i >= len(ts) {
		return ""
	}
	return ts[i].text
}

// consume marks n tokens starting at from.
func (ts tokens) consume(from, n int) {
	for i := max(from, 0); i < from+n && i < len(ts); i++ {
		ts[i].consumed = true
	}
}

// dropLoneConjunctions consumes an "und" whose neighbours have both been
// consumed ("morgen und übermorgen" leaves nothing behind).
func (ts tokens) dropLoneConjunctions() {
	for i := 1; i < len(ts)-1; i++ {
		if ts[i].text == wordAnd && !ts[i].consumed && ts[i-1].consumed && ts[i+1].consumed {
			ts[i].consumed = true
		}
	}
}

// remainder joins the live tokens with single spaces.
func (ts tokens) remainder() string {
	var b strings.Builder
	for _, t := range ts {
		if t.consumed {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.text)
	}
	return b.String()
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// number parses s as a non-negative decimal integer.
func number(s string) (int, bool) {
	if !startsWithDigit(s) || len(s) > 9 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
