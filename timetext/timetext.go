// Package timetext renders clock times as German display or speech text.
//
// Display output follows the usual clock notations: "17:30" in 24-hour mode,
// "5:30" or "5:30 PM" in 12-hour mode. Speech output spells the numbers
// out with numtext.PronounceNumber:
//
//	NiceTime(t, true, true, false)  // 13:22 -> "dreizehn zwanzig zwei"
//	NiceTime(t, true, false, false) // 15:00 -> "drei Uhr"
//
// Idiomatic forms such as "viertel nach drei" are not produced.
package timetext

import "time"

// NiceTime formats the wall-clock time of t. speech selects spoken words over
// digits, use24Hour selects the 24-hour clock, and useAmPm appends a
// half-day marker in 12-hour mode.
//
// In 12-hour speech, midnight is spoken as "morgen" and noon as "mittag".
func NiceTime(t time.Time, speech, use24Hour, useAmPm bool) string {
	display := displayTime(t, use24Hour, useAmPm)
	if !speech {
		return display
	}
	if use24Hour {
		return speak24(display)
	}
	return speak12(t, useAmPm)
}
