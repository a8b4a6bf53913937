package normalize

import (
	"testing"
	"unicode/utf8"
)

func FuzzNormalize(f *testing.F) {
	f.Add("ich bin müde", true)
	f.Add("Gibt's noch Kaffee", false)
	f.Add("der die das", true)
	f.Add("zwei drei zwanzig", false)
	f.Add("ich hab ich habe", false)
	f.Add("", true)
	f.Add("   ", false)
	f.Add("fu\u0308nf", false)
	f.Add("\xff\xfe", true)
	f.Add("\x00", false)

	f.Fuzz(func(t *testing.T, s string, removeArticles bool) {
		result := Normalize(s, removeArticles)

		if second := Normalize(result, removeArticles); second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, result, second)
		}
		if utf8.ValidString(s) && !utf8.ValidString(result) {
			t.Errorf("Normalize(%q) produced invalid UTF-8: %q", s, result)
		}
	})
}
