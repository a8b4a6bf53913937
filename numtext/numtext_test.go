// Tests for the numtext package: PronounceNumber, NiceNumber, ExtractNumber, IsFractional.
package numtext

import (
	"fmt"
	"math"
	"slices"
	"testing"
)

const epsilon = 1e-9

func TestPronounceNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  float64
		places int
		want   string
	}{
		{"zero", 0, 2, "null"},
		{"five", 5, 2, "fünf"},
		{"twelve", 12, 2, "zwölf"},
		{"seventeen", 17, 2, "siebzehn"},
		{"twenty", 20, 2, "zwanzig"},
		{"twenty-one", 21, 2, "zwanzig eins"},
		{"thirty", 30, 2, "dreißig"},
		{"ninety-nine", 99, 2, "neunzig neun"},
		{"decimal half", 42.5, 2, "vierzig zwei punkt fünf"},
		{"negative decimal", -3.14, 2, "minus drei punkt eins vier"},
		{"leading zero digit", 0.05, 2, "null punkt null fünf"},
		{"rounded up", 9.999, 2, "zehn"},
		{"zero places", 1.5, 0, "eins"},
		{"negative places", 1.5, -3, "eins"},
		{"negative tiny rounds to zero", -0.001, 2, "null"},
		{"negative whole", -7, 2, "minus sieben"},
		{"hundred literal", 100, 2, "100"},
		{"large literal", 150, 2, "150"},
		{"large fraction literal", 100.5, 2, "100.5"},
		{"negative literal", -150, 2, "-150"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := PronounceNumber(tt.input, tt.places)
			if got != tt.want {
				t.Errorf("PronounceNumber(%v, %d) = %q, want %q", tt.input, tt.places, got, tt.want)
			}
		})
	}
}

func TestNiceNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		input        float64
		speech       bool
		denominators []int
		want         string
	}{
		{"half display", 4.5, false, nil, "4 1/2"},
		{"half speech", 4.5, true, nil, "4 und ein halbe"},
		{"bare half display", 0.5, false, nil, "0 1/2"},
		{"bare half speech", 0.5, true, nil, "ein halbe"},
		{"two thirds speech", 2.0 / 3, true, nil, "2 drittes"},
		{"two thirds display", 2.0 / 3, false, nil, "0 2/3"},
		{"three quarters speech", 1.75, true, nil, "1 und 3 viertes"},
		{"whole", 3, true, nil, "3"},
		{"whole display", 3, false, nil, "3"},
		{"pi sevenths", 3.14159, false, nil, "3 1/7"},
		{"no fit", 0.123, true, nil, "0.123"},
		{"restricted denominators", 1.23456, false, []int{2}, "1.235"},
		{"beyond int range display", 1e20, false, nil, "100000000000000000000"},
		{"beyond int range speech", 9.3e18, true, nil, "9300000000000000000"},
		{"beyond int range negative", -1e20, false, nil, "-100000000000000000000"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NiceNumber(tt.input, tt.speech, tt.denominators)
			if got != tt.want {
				t.Errorf("NiceNumber(%v, %v, %v) = %q, want %q", tt.input, tt.speech, tt.denominators, got, tt.want)
			}
		})
	}
}

func TestExtractNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"cardinal", "drei", 3, true},
		{"digits in sentence", "ich habe 5 äpfel", 5, true},
		{"decimal comma", "1,5 liter", 1.5, true},
		{"decimal point", "es sind 2.25 meter", 2.25, true},
		{"cardinal times fraction", "zwei drittel", 2.0 / 3, true},
		{"one half", "ein halb", 0.5, true},
		{"sum with fraction", "eins und ein halb", 1.5, true},
		{"sum of cardinals", "zehn und zwei", 12, true},
		{"sum one word apart", "fünf äpfel und zwei birnen", 7, true},
		{"dangling conjunction", "drei und", 3, true},
		{"ordinal after article", "der dritter", 3, true},
		{"slash fraction", "2/3", 2.0 / 3, true},
		{"fraction word", "viertel", 0.25, true},
		{"article before fraction", "die hälfte", 0.5, true},
		{"capitalized", "Zwei Drittel", 2.0 / 3, true},
		{"zero is a number", "0", 0, true},
		{"no number", "kein zahl hier", 0, false},
		{"article is not one", "ich habe ein auto", 0, false},
		{"article before real number", "stelle eine erinnerung für zehn minuten", 10, true},
		{"indefinite before fraction", "eine hälfte", 0.5, true},
		{"zero denominator", "1/0", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractNumber(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ExtractNumber(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("ExtractNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsFractional(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"halb", 0.5, true},
		{"halbes", 0.5, true},
		{"Viertel", 0.25, true},
		{"quartal", 0.25, true},
		{"drittels", 1.0 / 3, true},
		{"fünftel", 0.2, true},
		{"zwölftel", 1.0 / 12, true},
		{"ganz", 1, true},
		{"apfel", 0, false},
		{"eins", 0, false},
		{"s", 0, false},
		{"", 0, false},
	}

	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := IsFractional(tt.input)
			if ok != tt.wantOK || math.Abs(got-tt.want) > epsilon {
				t.Errorf("IsFractional(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// TestFractionLexiconCoversNames checks that each spoken denominator up to
// twelve is itself recognized as a fraction word.
func TestFractionLexiconCoversNames(t *testing.T) {
	t.Parallel()

	for den := 2; den <= len(fractionLexicon); den++ {
		v, ok := IsFractional(fractionNames[den])
		if !ok || math.Abs(v-1/float64(den)) > epsilon {
			t.Errorf("IsFractional(%q) = (%v, %v), want 1/%d", fractionNames[den], v, ok, den)
		}
	}
}

func ExamplePronounceNumber() {
	fmt.Println(PronounceNumber(42.5, DefaultPlaces))
	// Output: vierzig zwei punkt fünf
}

func ExampleNiceNumber() {
	fmt.Println(NiceNumber(4.5, false, nil))
	fmt.Println(NiceNumber(4.5, true, nil))
	// Output:
	// 4 1/2
	// 4 und ein halbe
}

func ExampleExtractNumber() {
	v, ok := ExtractNumber("eins und ein halb")
	fmt.Println(v, ok)
	// Output: 1.5 true
}

func ExampleIsFractional() {
	v, _ := IsFractional("viertel")
	fmt.Println(v)
	// Output: 0.25
}

func BenchmarkPronounceNumber(b *testing.B) {
	for b.Loop() {
		PronounceNumber(-42.57, DefaultPlaces)
	}
}

func BenchmarkNiceNumber(b *testing.B) {
	for b.Loop() {
		NiceNumber(3.14159, true, nil)
	}
}

func BenchmarkExtractNumber(b *testing.B) {
	for b.Loop() {
		ExtractNumber("ich hätte gern fünf äpfel und zwei drittel kuchen")
	}
}

func TestFractionWords(t *testing.T) {
	t.Parallel()

	words := FractionWords()
	if !slices.IsSorted(words) {
		t.Errorf("FractionWords() not sorted: %v", words)
	}
	for _, w := range words {
		if _, ok := IsFractional(w); !ok {
			t.Errorf("IsFractional(%q) = false for listed word", w)
		}
	}
	if !slices.Contains(words, "viertel") || !slices.Contains(words, "quartal") {
		t.Errorf("FractionWords() missing entries: %v", words)
	}
}
