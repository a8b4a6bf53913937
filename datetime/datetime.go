// Package datetime extracts dates and times from German utterances.
//
// The extractor reads phrases such as "morgen um 3 uhr", "nächsten
// freitag", "am 3 märz 2024 um 14:30", "in einer halben stunde" or
// "übermorgen abends" and resolves them against an anchor time. Words that
// were not part of a date or time expression are returned as the remainder,
// so a dialogue skill can keep parsing what the user asked for:
//
//	r, ok := datetime.Extract("erinnere mich morgen um 8 an den müll", anchor)
//	// r.Time      = anchor's date + 1 day, 08:00
//	// r.Remainder = "erinnere mich an den müll"
//
// Two API layers are provided:
//
//   - Extract reports "nothing found" with a boolean.
//   - Parse returns ErrNotFound (with a hint) for use in command-line tools.
//
// When anchor is the zero value, the current local time is used. Results
// are in the anchor's location.
//
// All functions are safe for concurrent use by multiple goroutines.
package datetime

import (
	"fmt"
	"time"

	"github.com/az-ai-labs/de-lang-nlp/internal/errors"
)

// maxInputBytes bounds the utterance length Extract will scan.
const maxInputBytes = 1 << 16 // 64 KiB

// timeNow is replaced in tests.
var timeNow = time.Now

var (
	// ErrNotFound is returned by Parse when the text holds no date or time.
	ErrNotFound = errors.New("datetime: no date or time found")
	// ErrEmptyInput is returned by Parse for empty text.
	ErrEmptyInput = errors.New("datetime: empty input")
	// ErrInputTooLarge is returned by Parse for text over 64 KiB.
	ErrInputTooLarge = errors.New("datetime: input too large")
)

// Type classifies the kind of expression that was found.
type Type int

const (
	TypeDate     Type = iota // Only date components (year, month, day)
	TypeTime                 // Only time components (hour, minute, second)
	TypeDateTime             // Both date and time components
)

// typeNames maps Type values to their string names.
var typeNames = [...]string{
	TypeDate:     "Date",
	TypeTime:     "Time",
	TypeDateTime: "DateTime",
}

// typeFromName maps string names back to Type values.
var typeFromName = map[string]Type{
	"Date":     TypeDate,
	"Time":     TypeTime,
	"DateTime": TypeDateTime,
}

// String returns the name of the type.
func (t Type) String() string {
	if int(t) >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalText encodes the type as its name (e.g. "Date"). It serves both
// JSON and YAML encoding.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name (e.g. "Date").
func (t *Type) UnmarshalText(data []byte) error {
	s := string(data)
	tt, ok := typeFromName[s]
	if !ok {
		const maxErrLen = 50
		if len(s) > maxErrLen {
			s = s[:maxErrLen] + "..."
		}
		return errors.Newf("datetime: unknown type: %q", s)
	}
	*t = tt
	return nil
}

// Components is a bitmask indicating which date/time fields were named in the
// input (vs. carried over from the anchor).
type Components uint8

const (
	HasYear Components = 1 << iota
	HasMonth
	HasDay
	HasHour
	HasMinute
	HasSecond

	dateComponents = HasYear | HasMonth | HasDay
	timeComponents = HasHour | HasMinute | HasSecond
)

// String returns a debug representation of the components bitmask.
func (c Components) String() string {
	var parts []byte
	for _, f := range [...]struct {
		bit  Components
		code byte
	}{
		{HasYear, 'Y'},
		{HasMonth, 'M'},
		{HasDay, 'D'},
		{HasHour, 'h'},
		{HasMinute, 'm'},
		{HasSecond, 's'},
	} {
		if c&f.bit != 0 {
			parts = append(parts, f.code)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return string(parts)
}

// MarshalText encodes the components as their debug string (e.g. "Dhm").
func (c Components) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Result is a resolved date/time expression.
type Result struct {
	Time      time.Time  `json:"time" yaml:"time"`           // Resolved point in time
	Remainder string     `json:"remainder" yaml:"remainder"` // Words not part of the expression
	Type      Type       `json:"type" yaml:"type"`           // Classification of the expression
	Explicit  Components `json:"explicit" yaml:"explicit"`   // Which fields came from the input
}

// String returns a debug representation, e.g. DateTime(2023-01-16T03:00:00Z, "").
func (r Result) String() string {
	return fmt.Sprintf("%s(%s, %q)", r.Type, r.Time.Format(time.RFC3339), r.Remainder)
}

// Extract finds the date and time expressed in text, resolved against
// anchor. ok is false for empty or oversized input and when text names no
// date or time.
func Extract(text string, anchor time.Time) (Result, bool) {
	if text == "" || len(text) > maxInputBytes {
		return Result{}, false
	}
	if anchor.IsZero() {
		anchor = timeNow()
	}
	return extract(text, anchor)
}

// Parse is Extract with an error for each way extraction can fail.
func Parse(text string, anchor time.Time) (Result, error) {
	if text == "" {
		return Result{}, ErrEmptyInput
	}
	if len(text) > maxInputBytes {
		return Result{}, errors.WithDetailf(ErrInputTooLarge, "limit is %d bytes", maxInputBytes)
	}
	r, ok := Extract(text, anchor)
	if !ok {
		return Result{}, errors.WithHint(ErrNotFound,
			`try a day ("morgen", "nächsten freitag"), a date ("3 märz") or a time ("um 8 uhr")`)
	}
	return r, nil
}
