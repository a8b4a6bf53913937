package timetext

import (
	"strconv"
	"strings"
	"time"

	"github.com/az-ai-labs/de-lang-nlp/numtext"
)

const (
	wordHundred   = "hundert"
	wordOClock    = "Uhr"
	wordOh        = "oh"
	wordMidnight  = "morgen"
	wordNoon      = "mittag"
	wordForenoon  = "Morgens"
	wordAfternoon = "Mittags"
)

// displayTime returns "15:04" for 24-hour output, otherwise "3:04" or
// "3:04 PM" with the leading zero of the hour removed.
func displayTime(t time.Time, use24Hour, useAmPm bool) string {
	if use24Hour {
		return t.Format("15:04")
	}
	layout := "03:04"
	if useAmPm {
		layout = "03:04 PM"
	}
	return strings.TrimPrefix(t.Format(layout), "0")
}

// speak24 reads an "HH:MM" string digit group by digit group. Leading zeros
// are read as "null"; a full hour ends in "hundert".
func speak24(hhmm string) string {
	var b strings.Builder

	if hhmm[0] == '0' {
		b.WriteString(say(0))
		b.WriteByte(' ')
		b.WriteString(say(digit(hhmm[1])))
	} else {
		b.WriteString(say(atoi(hhmm[0:2])))
	}

	b.WriteByte(' ')
	switch {
	case hhmm[3:5] == "00":
		b.WriteString(wordHundred)
	case hhmm[3] == '0':
		b.WriteString(say(0))
		b.WriteByte(' ')
		b.WriteString(say(digit(hhmm[4])))
	default:
		b.WriteString(say(atoi(hhmm[3:5])))
	}
	return b.String()
}

// speak12 reads t on the 12-hour clock.
func speak12(t time.Time, useAmPm bool) string {
	hour, minute := t.Hour(), t.Minute()

	if minute == 0 {
		switch hour {
		case 0:
			return wordMidnight
		case 12:
			return wordNoon
		}
	}

	h := hour
	switch {
	case hour == 0:
		h = 12
	case hour > 12:
		h -= 12
	}
	speak := say(h)

	if minute == 0 {
		if !useAmPm {
			return speak + " " + wordOClock
		}
	} else {
		if minute < 10 {
			speak += " " + wordOh
		}
		speak += " " + say(minute)
	}

	if useAmPm {
		if hour < 12 {
			speak += " " + wordForenoon
		} else {
			speak += " " + wordAfternoon
		}
	}
	return speak
}

func say(n int) string {
	return numtext.PronounceNumber(float64(n), 0)
}

func digit(c byte) int {
	return int(c - '0')
}

// atoi parses a two-digit field produced by time.Format.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
