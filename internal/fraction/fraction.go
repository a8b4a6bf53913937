// Package fraction holds the locale-independent numeric helpers shared by the
// German parsers and formatters: mixed-fraction decomposition, numeric-string
// detection and "a/b" fraction detection.
package fraction

import (
	"math"
	"strconv"
	"strings"
)

// tolerance is how close numerator*den must be to an integer for a
// denominator to be accepted by MixedFraction.
const tolerance = 0.01

// maxWhole is the first magnitude whose whole part no longer fits an int.
const maxWhole = 1 << 63

// DefaultDenominators is the denominator set used when none is given: 1..20.
var DefaultDenominators = func() []int {
	d := make([]int, 20)
	for i := range d {
		d[i] = i + 1
	}
	return d
}()

// MixedFraction decomposes number into whole + num/den using the first
// denominator (in the given order) that represents the fractional part
// within tolerance. An empty denominators slice means DefaultDenominators.
//
// Integral input returns (n, 0, 1, true). ok is false when no denominator
// fits or the whole part would overflow an int. For negative input the sign
// is carried by whole; num is never negative.
func MixedFraction(number float64, denominators []int) (whole, num, den int, ok bool) {
	if math.IsNaN(number) || math.IsInf(number, 0) || math.Abs(number) >= maxWhole {
		return 0, 0, 0, false
	}
	intPart := math.Trunc(number)
	whole = int(intPart)
	if intPart == number {
		return whole, 0, 1, true
	}

	frac := math.Abs(number - intPart)
	if len(denominators) == 0 {
		denominators = DefaultDenominators
	}
	for _, d := range denominators {
		if d <= 0 {
			continue
		}
		n := frac * float64(d)
		if math.Abs(n-math.Round(n)) < tolerance {
			return whole, int(math.Round(n)), d, true
		}
	}
	return 0, 0, 0, false
}

// IsNumeric reports whether s is a finite decimal number. A single decimal
// comma is accepted in place of the point ("2,5").
func IsNumeric(s string) bool {
	_, ok := ParseNumber(s)
	return ok
}

// ParseNumber parses s as a finite decimal number, accepting a decimal comma.
// Exponents are allowed ("1e3"); "inf", "nan" and hex floats are not.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	// Reject Go-only syntaxes: hex floats and digit separators.
	if strings.ContainsAny(s, "xX_pP") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// LookForFractions reports whether parts (the result of splitting a word on
// "/") is a numerator and a non-zero denominator.
func LookForFractions(parts []string) bool {
	if len(parts) != 2 {
		return false
	}
	if !IsNumeric(parts[0]) {
		return false
	}
	d, ok := ParseNumber(parts[1])
	return ok && d != 0
}

// ParseSlash returns the value of an "a/b" word.
func ParseSlash(word string) (float64, bool) {
	parts := strings.Split(word, "/")
	if !LookForFractions(parts) {
		return 0, false
	}
	n, _ := ParseNumber(parts[0])
	d, _ := ParseNumber(parts[1])
	return n / d, true
}
