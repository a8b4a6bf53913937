package normalize

import (
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/az-ai-labs/de-lang-nlp/data"
	"github.com/az-ai-labs/de-lang-nlp/internal/errors"
)

// contraction is one row of data/contractions.toml.
type contraction struct {
	Phrase    string `toml:"phrase"`
	Expansion string `toml:"expansion"`

	words    []string // folded phrase tokens
	identity bool     // expansion equals phrase; input words are kept as written
}

type contractionFile struct {
	Contraction []contraction `toml:"contraction"`
}

// contractions is ordered longest phrase first; ties keep file order.
var contractions []contraction

func init() {
	table, err := parseContractions(data.Contractions)
	if err != nil {
		panic(err)
	}
	contractions = table
}

func parseContractions(raw []byte) ([]contraction, error) {
	var f contractionFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "decode contraction table")
	}
	table := f.Contraction
	for i := range table {
		c := &table[i]
		c.words = strings.Fields(key(c.Phrase))
		if len(c.words) == 0 || strings.TrimSpace(c.Expansion) == "" {
			return nil, errors.Newf("contraction %d: empty phrase or expansion", i+1)
		}
		c.identity = slices.Equal(c.words, strings.Fields(key(c.Expansion)))
	}
	slices.SortStableFunc(table, func(a, b contraction) int {
		return len(b.words) - len(a.words)
	})
	return table, nil
}

// matchContraction returns the first table entry whose phrase prefixes words,
// and the number of words it covers. n is 0 when nothing matches.
func matchContraction(words []string) (contraction, int) {
	for _, c := range contractions {
		if len(c.words) > len(words) {
			continue
		}
		matched := true
		for j, w := range c.words {
			if key(words[j]) != w {
				matched = false
				break
			}
		}
		if matched {
			return c, len(c.words)
		}
	}
	return contraction{}, 0
}
