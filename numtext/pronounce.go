// Number-to-text generation: PronounceNumber and NiceNumber.
package numtext

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/az-ai-labs/de-lang-nlp/internal/fraction"
)

const growPronounce = 48 // estimated bytes for a spoken number

// pronounce implements PronounceNumber.
func pronounce(n float64, places int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) || math.Abs(n) >= maxSpoken {
		return literal(n)
	}
	places = min(max(places, 0), maxPlaces)

	negative := n < 0
	n = math.Abs(n)
	whole := int(n)

	var digits string
	if places > 0 && n != float64(whole) {
		scale := math.Pow10(places)
		f := math.Round((n - float64(whole)) * scale)
		if f >= scale {
			// Rounding carried into the whole part (9.999 at two places).
			whole++
			f = 0
		}
		digits = strings.TrimRight(fmt.Sprintf("%0*d", places, int64(f)), "0")
	}
	if whole >= maxSpoken {
		return literal(n)
	}

	var b strings.Builder
	b.Grow(growPronounce)

	if negative && (whole > 0 || digits != "") {
		b.WriteString(wordNegative)
		b.WriteByte(' ')
	}
	writeWhole(&b, whole)

	if digits != "" {
		b.WriteByte(' ')
		b.WriteString(wordPoint)
		for i := 0; i < len(digits); i++ {
			b.WriteByte(' ')
			b.WriteString(numberWords[int(digits[i]-'0')])
		}
	}
	return b.String()
}

// writeWhole writes n in [0, 99] as tens word followed by ones word.
func writeWhole(b *strings.Builder, n int) {
	if n <= 20 {
		b.WriteString(numberWords[n])
		return
	}
	ones := n % 10
	b.WriteString(numberWords[n-ones])
	if ones != 0 {
		b.WriteByte(' ')
		b.WriteString(numberWords[ones])
	}
}

// literal formats n as the shortest plain numeral ("150", "150.5").
func literal(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// round3 rounds n to three decimals. Values beyond 2^52 are already whole.
func round3(n float64) float64 {
	if math.Abs(n) >= 1<<52 {
		return n
	}
	return math.Round(n*1000) / 1000
}

// niceNumber implements NiceNumber.
func niceNumber(n float64, speech bool, denominators []int) string {
	whole, num, den, ok := fraction.MixedFraction(n, denominators)
	if !ok {
		return literal(round3(n))
	}

	if num == 0 {
		return strconv.Itoa(whole)
	}

	denWord, named := fractionNames[den]
	if !speech || !named {
		return fmt.Sprintf("%d %d/%d", whole, num, den)
	}

	var s string
	switch {
	case whole == 0 && num == 1:
		s = wordOne + " " + denWord
	case whole == 0:
		s = fmt.Sprintf("%d %s", num, denWord)
	case num == 1:
		s = fmt.Sprintf("%d %s %s %s", whole, wordAnd, wordOne, denWord)
	default:
		s = fmt.Sprintf("%d %s %d %s", whole, wordAnd, num, denWord)
	}
	if num > 1 {
		s += "s"
	}
	return s
}
