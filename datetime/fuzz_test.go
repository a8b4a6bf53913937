package datetime

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

var fuzzRef = time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)

func FuzzExtract(f *testing.F) {
	seeds := []string{
		// Day words and offsets
		"heute",
		"morgen",
		"übermorgen",
		"der tag nach morgen",
		"in 3 tagen",
		"nächste woche",
		"in 2 monaten",
		"letztes jahr",
		// Weekdays and months
		"nächsten freitag",
		"am 3 märz 2024",
		"3 im märz",
		"märz 5",
		// Clock values
		"um 14:30",
		"um 3 uhr 30",
		"3:30 pm",
		"um 5 am abend",
		"oh 800",
		"um 14 30",
		"um 10:00 zur nacht",
		// Relative time
		"in einer halben stunde",
		"in 10 minuten",
		// Malformed
		":",
		"::",
		"1:",
		":1",
		"99999999999:99999999999",
		"stunde",
		"in",
		"am",
		"und",
		"'s",
		"\xff\xfe",
		"\x00",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		r, ok := Extract(s, fuzzRef)
		if !ok {
			return
		}
		if r.Time.IsZero() {
			t.Errorf("Extract(%q) returned a zero time", s)
		}
		if r.Time.Location() != fuzzRef.Location() {
			t.Errorf("Extract(%q) location = %v, want %v", s, r.Time.Location(), fuzzRef.Location())
		}
		if strings.Contains(r.Remainder, "  ") {
			t.Errorf("Extract(%q) remainder has double spaces: %q", s, r.Remainder)
		}
		if utf8.ValidString(s) && !utf8.ValidString(r.Remainder) {
			t.Errorf("Extract(%q) remainder is invalid UTF-8: %q", s, r.Remainder)
		}
		_, _ = Parse(s, fuzzRef)
	})
}

// TestOversizedInput verifies that inputs exceeding maxInputBytes are rejected.
func TestOversizedInput(t *testing.T) {
	huge := strings.Repeat("a", maxInputBytes-len("heute")) + "heute!"
	if r, ok := Extract(huge, fuzzRef); ok {
		t.Errorf("want not found for oversized input, got %v", r)
	}

	if _, err := Parse(huge, fuzzRef); err == nil {
		t.Error("Parse: want error for oversized input, got nil")
	}
}

// TestExactlyMaxInput verifies that inputs at exactly maxInputBytes are processed.
func TestExactlyMaxInput(t *testing.T) {
	word := "heute"
	padding := strings.Repeat(" ", maxInputBytes-len(word))
	input := word + padding

	if len(input) != maxInputBytes {
		t.Fatalf("test setup: len=%d, want %d", len(input), maxInputBytes)
	}

	r, ok := Extract(input, fuzzRef)
	if !ok || r.Type != TypeDate {
		t.Errorf("want a TypeDate result for max-size input, got %v, %v", r, ok)
	}
}

// TestAdversarialInput verifies that long repetitive input completes quickly.
func TestAdversarialInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"repeated colons", strings.Repeat("12:34:", 5000)},
		{"repeated month words", strings.Repeat("märz ", 5000)},
		{"repeated markers", strings.Repeat("um am in ", 5000)},
		{"repeated hour phrases", strings.Repeat("in einer halben stunde ", 2000)},
		{"long digit sequence", strings.Repeat("1234567890", 5000)},
		{"repeated conjunctions", strings.Repeat("morgen und ", 5000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			_, _ = Extract(tt.input, fuzzRef)
			elapsed := time.Since(start)

			const maxDuration = 2 * time.Second
			if elapsed > maxDuration {
				t.Errorf("took %v, exceeds %v limit", elapsed, maxDuration)
			}
		})
	}
}

// TestConcurrentSafety verifies the package is safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	inputs := []string{
		"morgen um 3 uhr",
		"am 3 märz 2024",
		"um 14:30",
		"in einer halben stunde",
		"nächsten freitag",
	}

	const numGoroutines = 100
	done := make(chan bool, numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("goroutine %d panicked: %v", id, r)
				}
				done <- true
			}()

			for j := range 100 {
				input := inputs[j%len(inputs)]
				_, _ = Extract(input, fuzzRef)
			}
		}(i)
	}

	for range numGoroutines {
		<-done
	}
}

// TestMalformedUTF8 verifies handling of invalid UTF-8 sequences.
func TestMalformedUTF8(t *testing.T) {
	inputs := []string{
		"\xFF\xFE märz 2024",
		"3 \xC0\x80 märz",
		"morgen\xFF",
		"\xC3", // truncated multibyte
	}

	for _, in := range inputs {
		t.Run("", func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Extract(%q) panicked: %v", in, r)
				}
			}()
			_, _ = Extract(in, fuzzRef)
		})
	}
}

// TestNullByteInjection verifies handling of embedded null bytes.
func TestNullByteInjection(t *testing.T) {
	inputs := []string{
		"\x00morgen",
		"morgen\x00",
		"3\x00märz\x002024",
	}

	for _, in := range inputs {
		t.Run("", func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Extract(%q) panicked: %v", in, r)
				}
			}()
			_, _ = Extract(in, fuzzRef)
		})
	}
}
