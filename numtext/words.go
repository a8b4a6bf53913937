// Word tables for German number-to-text conversion and number extraction.
package numtext

const (
	// maxSpoken is the first magnitude PronounceNumber no longer spells out.
	maxSpoken = 100

	wordNegative = "minus"
	wordPoint    = "punkt"
	wordAnd      = "und"
	wordOne      = "ein"
	wordQuarter  = "quartal"

	// maxPlaces caps the decimal digits PronounceNumber will read.
	maxPlaces = 15
)

// numberWords maps 0–20 and the multiples of ten up to 90 to cardinal words.
var numberWords = map[int]string{
	0:  "null",
	1:  "eins",
	2:  "zwei",
	3:  "drei",
	4:  "vier",
	5:  "fünf",
	6:  "sechs",
	7:  "sieben",
	8:  "acht",
	9:  "neun",
	10: "zehn",
	11: "elf",
	12: "zwölf",
	13: "dreizehn",
	14: "vierzehn",
	15: "fünfzehn",
	16: "sechzehn",
	17: "siebzehn",
	18: "achtzehn",
	19: "neunzehn",
	20: "zwanzig",
	30: "dreißig",
	40: "vierzig",
	50: "fünfzig",
	60: "sechzig",
	70: "siebzig",
	80: "achtzig",
	90: "neunzig",
}

// fractionNames maps a denominator (2–20) to the word NiceNumber speaks.
var fractionNames = map[int]string{
	2:  "halbe",
	3:  "dritte",
	4:  "vierte",
	5:  "fünfte",
	6:  "sechste",
	7:  "siebte",
	8:  "achte",
	9:  "neunte",
	10: "zehnte",
	11: "elfte",
	12: "zwölfte",
	13: "dreizehnte",
	14: "vierzehnte",
	15: "fünfzehnte",
	16: "sechzehnte",
	17: "siebzehnte",
	18: "achtzehnte",
	19: "neunzehnte",
	20: "zwanzigste",
}

// fractionLexicon lists the fraction words IsFractional recognizes.
// The position in the table plus one is the denominator.
var fractionLexicon = [...][]string{
	{"ganz", "ganze"},
	{"halb", "halbe", "halben", "hälfte"},
	{"dritte", "drittel"},
	{"vierte", "viertel"},
	{"fünft", "fünfte", "fünftel"},
	{"sechste", "sechstel"},
	{"siebte", "siebtel"},
	{"achte", "achtel"},
	{"neunte", "neuntel"},
	{"zehnte", "zehntel"},
	{"elfte", "elftel"},
	{"zwölfte", "zwölftel"},
}

// fractionDenominators is fractionLexicon inverted for lookup.
var fractionDenominators = func() map[string]int {
	m := make(map[string]int, len(fractionLexicon)*3)
	for i, forms := range fractionLexicon {
		for _, w := range forms {
			m[w] = i + 1
		}
	}
	return m
}()

// cardinalValues are the number words ExtractNumber reads directly.
var cardinalValues = map[string]float64{
	"eins":   1,
	"zwei":   2,
	"drei":   3,
	"vier":   4,
	"fünf":   5,
	"sechs":  6,
	"sieben": 7,
	"acht":   8,
	"neun":   9,
	"zehn":   10,
}

// indefiniteOne holds the article forms that count as one, but only in front
// of a fraction word ("ein halb", "eine hälfte").
var indefiniteOne = map[string]bool{
	"ein":  true,
	"eine": true,
}

// ordinalValues is the hand-picked subset of ordinals ExtractNumber accepts.
var ordinalValues = map[string]float64{
	"erster":  1,
	"dritter": 3,
	"achter":  8,
}

// definiteArticles are dropped before number extraction.
var definiteArticles = map[string]bool{
	"des": true,
	"dem": true,
	"das": true,
	"der": true,
	"den": true,
	"die": true,
}
