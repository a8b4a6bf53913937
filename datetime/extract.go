package datetime

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/az-ai-labs/de-lang-nlp/internal/logger"
)

// unset marks an absolute hour or minute that no rule has provided.
const unset = -1

// dateParts is an absolute month/day/year captured from a month name.
// day and year are zero when not given.
type dateParts struct {
	month time.Month
	day   int
	year  int
}

// parser carries the accumulators of one extraction. The date pass fills the
// day/month/year fields; the time pass fills the clock fields.
type parser struct {
	ts     tokens
	anchor time.Time
	log    *zap.SugaredLogger

	found        bool
	daySpecified bool
	fromFlag     bool

	dayOffset   int
	monthOffset int
	yearOffset  int
	date        *dateParts
	qualifier   string
	explicit    Components

	hrAbs     int
	minAbs    int
	hrOffset  int
	minOffset int
	secOffset int
}

// extract is the internal implementation of Extract.
func extract(s string, anchor time.Time) (Result, bool) {
	p := &parser{
		ts:     clean(s),
		anchor: anchor,
		log:    logger.Named("datetime"),
		hrAbs:  unset,
		minAbs: unset,
	}

	p.datePass()
	p.timePass()

	if !p.found {
		return Result{}, false
	}

	p.ts.dropLoneConjunctions()
	return Result{
		Time:      p.resolve(),
		Remainder: p.ts.remainder(),
		Type:      p.resultType(),
		Explicit:  p.explicit,
	}, true
}

// resultType classifies the fields the input named.
func (p *parser) resultType() Type {
	hasDate := p.explicit&dateComponents != 0
	hasTime := p.explicit&timeComponents != 0
	switch {
	case hasDate && hasTime:
		return TypeDateTime
	case hasTime:
		return TypeTime
	}
	return TypeDate
}

// datePass matches day, week, month and year expressions.
func (p *parser) datePass() {
	ts := p.ts
	for i := range ts {
		if ts[i].consumed {
			continue
		}
		raw := ts[i].text
		word := strings.TrimRight(raw, "s")
		prev := ts.at(i - 1)
		next, nextNext := ts.at(i+1), ts.at(i+2)

		start, used := i, 0
		rule := ""

		switch {
		case p.captureQualifier(i, raw, word):
			// Recorded only; the time pass consumes the word.

		case word == wordDay && next == wordAfter && nextNext == wordTomorrow &&
			!p.fromFlag && !startsWithDigit(prev):
			rule = "day after tomorrow"
			p.dayOffset = 2
			used = 3
			if prev == wordThe {
				start--
				used++
			}

		case isDayWord(word) && !p.fromFlag:
			rule = "day word"
			p.dayOffset = dayWords[word]
			used = 1

		case dayUnits[word]:
			if n, ok := number(prev); ok {
				rule = "days"
				p.dayOffset += n
				start--
				used = 2
			}

		case weekUnits[word] && !p.fromFlag:
			if n, ok := number(prev); ok {
				p.dayOffset += n * 7
			} else if nextWords[prev] {
				p.dayOffset = 7
			} else if lastWords[prev] {
				p.dayOffset = -7
			} else {
				break
			}
			rule = "weeks"
			start--
			used = 2

		case monthUnits[word] && !p.fromFlag:
			if n, ok := relativeCount(prev); ok {
				rule = "months"
				p.monthOffset = n
				start--
				used = 2
			}

		case yearUnits[word] && !p.fromFlag:
			if n, ok := relativeCount(prev); ok {
				rule = "years"
				p.yearOffset = n
				start--
				used = 2
			}

		case isWeekday(word) && !p.fromFlag:
			rule = "weekday"
			p.dayOffset = p.daysUntil(weekdays[word])
			used = 1
			switch {
			case nextWords[prev]:
				p.dayOffset += 7
				start--
				used++
			case lastWords[prev]:
				p.dayOffset -= 7
				start--
				used++
			}

		case isMonth(word):
			rule = "month"
			start, used = p.matchMonth(i, months[word])
		}

		if fromWords[word] {
			if n := p.matchFrom(i); n > 0 {
				rule = "from"
				start, used = i, n
			}
		}

		if used == 0 {
			continue
		}

		if thisWords[ts.at(start-1)] {
			start--
			used++
		}
		ts.consume(start, used)
		if markers[ts.at(start-1)] {
			ts.consume(start-1, 1)
		}
		p.found = true
		p.daySpecified = true
		p.explicit |= ruleComponents[rule]

		p.log.Debugw("date rule matched",
			logger.FieldRule, rule,
			logger.FieldToken, raw,
			logger.FieldIndex, i,
			logger.FieldUsed, used,
		)
	}
}

// ruleComponents lists the fields each date rule names. The month rule
// records its own.
var ruleComponents = map[string]Components{
	"day after tomorrow": HasDay,
	"day word":           HasDay,
	"days":               HasDay,
	"weeks":              HasDay,
	"weekday":            HasDay,
	"from":               HasDay,
	"months":             HasMonth,
	"years":              HasYear,
}

// captureQualifier records a period-of-day word such as "abends" or the
// "morgen" of "heute morgen". It reports whether the word is a qualifier.
func (p *parser) captureQualifier(i int, raw, word string) bool {
	if q, ok := qualifierAdverbs[raw]; ok {
		p.qualifier = q
		return true
	}
	if word == wordTomorrow {
		if morgenQualifiedBy[p.ts.raw(i-1)] {
			p.qualifier = wordTomorrow
			return true
		}
		return false
	}
	if _, ok := periodHours[word]; ok && word != wordEarly {
		p.qualifier = word
		return true
	}
	return false
}

// matchMonth captures a month with an optional day before it ("3 märz",
// "3 im märz") or after it ("märz 3"), and an optional four-digit year.
func (p *parser) matchMonth(i int, m time.Month) (start, used int) {
	ts := p.ts
	d := &dateParts{month: m}
	start, used = i, 1

	prev, prevPrev := ts.at(i-1), ts.at(i-2)
	next, nextNext := ts.at(i+1), ts.at(i+2)

	if day, ok := dayOfMonth(prev); ok {
		d.day = day
		start--
		used++
		if y, ok := fourDigitYear(next); ok {
			d.year = y
			used++
		}
	} else if day, ok := dayOfMonth(prevPrev); ok && prev == wordIn {
		d.day = day
		start -= 2
		used += 2
		if y, ok := fourDigitYear(next); ok {
			d.year = y
			used++
		}
	} else if day, ok := dayOfMonth(next); ok {
		d.day = day
		used++
		if y, ok := fourDigitYear(nextNext); ok {
			d.year = y
			used++
		}
	} else if y, ok := fourDigitYear(next); ok {
		d.year = y
		used++
	}

	p.date = d
	p.explicit |= HasMonth
	if d.day != 0 {
		p.explicit |= HasDay
	}
	if d.year != 0 {
		p.explicit |= HasYear
	}
	return start, used
}

// matchFrom handles "von/nach" followed by "heute", "jetzt", "morgen", a
// weekday, or "nächsten/letzten <weekday>". It returns the number of tokens
// used, or zero when the phrase does not match.
func (p *parser) matchFrom(i int) int {
	next, nextNext := p.ts.at(i+1), p.ts.at(i+2)
	nextWord := strings.TrimRight(next, "s")

	switch {
	case next == wordToday || next == wordNow:
		p.fromFlag = true
		return 2
	case next == wordTomorrow:
		p.fromFlag = true
		p.dayOffset++
		return 2
	case isWeekday(nextWord):
		p.fromFlag = true
		p.dayOffset += p.daysUntil(weekdays[nextWord])
		return 2
	case (nextWords[next] || lastWords[next]) && isWeekday(strings.TrimRight(nextNext, "s")):
		off := p.daysUntil(weekdays[strings.TrimRight(nextNext, "s")])
		if nextWords[next] {
			off += 7
		} else {
			off -= 7
		}
		p.fromFlag = true
		p.dayOffset += off
		return 3
	}
	return 0
}

// daysUntil returns the days from the anchor to the next wd, zero when the
// anchor already falls on wd.
func (p *parser) daysUntil(wd time.Weekday) int {
	return (int(wd) - int(p.anchor.Weekday()) + 7) % 7
}

// timePass matches periods of the day, relative hour phrases and clock
// values among the tokens the date pass left.
func (p *parser) timePass() {
	ts := p.ts
	for i := range ts {
		if ts[i].consumed {
			continue
		}
		word := ts[i].text
		prev := ts.at(i - 1)

		var (
			used int
			rule string
		)

		switch {
		case p.isPeriod(i, word):
			rule = "period"
			p.explicit |= HasHour | HasMinute
			if p.hrAbs == unset {
				p.hrAbs = periodHours[strings.TrimSuffix(word, "s")]
				if p.minAbs == unset {
					p.minAbs = 0
				}
			}
			used = 1

		case hourUnits[word] || hourCompounds[word] > 0:
			rule = "relative hour"
			used = p.matchRelativeHour(i, word)

		case startsWithDigit(word):
			rule = "clock"
			used = p.matchClock(i, word)
		}

		if used == 0 {
			continue
		}

		ts.consume(i, used)
		if ohWords[prev] {
			ts.consume(i-1, 1)
		}

		k := i
		switch prev {
		case wordEarly:
			p.hrOffset = -1
			p.explicit |= HasHour
			ts.consume(i-1, 1)
			k--
		case wordLate:
			p.hrOffset = 1
			p.explicit |= HasHour
			ts.consume(i-1, 1)
			k--
		}
		if markers[ts.at(k-1)] {
			ts.consume(k-1, 1)
		}
		if markers[ts.at(k-2)] {
			ts.consume(k-2, 1)
		}
		p.found = true

		p.log.Debugw("time rule matched",
			logger.FieldRule, rule,
			logger.FieldToken, word,
			logger.FieldIndex, i,
			logger.FieldUsed, used,
		)
	}
}

// isPeriod reports whether the word at i names a period of the day. "früh"
// counts only after "morgen" or "heute"; elsewhere it shifts a clock value.
func (p *parser) isPeriod(i int, word string) bool {
	base := strings.TrimSuffix(word, "s")
	if _, ok := periodHours[base]; !ok {
		return false
	}
	if base == wordEarly {
		return earlyQualifiedBy[p.ts.raw(i-1)]
	}
	return true
}

// matchRelativeHour handles "in einer stunde", "in einer halben stunde",
// "in einer viertelstunde" and similar. A marker must precede the phrase,
// optionally followed by an indefinite article and a fraction word.
func (p *parser) matchRelativeHour(i int, word string) int {
	ts := p.ts
	minutes := hourCompounds[word]

	j := i - 1
	for j >= 0 && j >= i-2 {
		w := ts.at(j)
		if m, ok := hourFractions[w]; ok {
			if minutes == 0 {
				minutes = m
			}
		} else if !indefiniteOne[w] {
			break
		}
		j--
	}
	if !markers[ts.at(j)] {
		return 0
	}

	if minutes > 0 {
		p.minOffset = minutes
		p.explicit |= HasMinute
	} else {
		p.hrOffset = 1
		p.explicit |= HasHour
	}
	p.hrAbs, p.minAbs = unset, unset

	ts.consume(j, i-j)
	return 1
}

// matchClock parses a token starting with a digit together with its
// neighbours. It returns the number of tokens used from i, or zero.
func (p *parser) matchClock(i int, word string) int {
	ts := p.ts
	prev := ts.at(i - 1)
	next, nextNext := ts.at(i+1), ts.at(i+2)

	var (
		hh, mm   int
		meridiem string
		used     int
		military bool
		isTime   = true
		ok       bool
	)

	if strings.Contains(word, ":") {
		var suffix string
		hh, mm, suffix, ok = splitClock(word)
		if !ok {
			return 0
		}
		if next == wordOClock {
			used = 1
		}
		meridiem = suffix
		if meridiem == "" {
			var n int
			meridiem, n = p.meridiemAfter(i+used, hh)
			used += n
		}
	} else {
		digits, suffix := splitDigits(word)
		n, ok := number(digits)
		if !ok {
			return 0
		}
		if suffix != "" && !isMeridiem(suffix) {
			return 0
		}
		if suffix == "" {
			suffix = next
		}

		switch {
		case next == meridiemAM && (morningPeriods[nextNext] || laterPeriods[nextNext]):
			hh = n
			meridiem = periodMeridiem(nextNext, n)
			used = 2

		case suffix == meridiemPM || suffix == "p.m.":
			hh, meridiem = n, meridiemPM
			if suffix == next {
				used = 1
			}

		case suffix == meridiemAM || suffix == "a.m.":
			hh, meridiem = n, meridiemAM
			if suffix == next {
				used = 1
			}

		case n > 100 && ohWords[prev]:
			hh, mm = n/100, n%100
			military = true
			if hourUnits[next] {
				used++
			}

		case hourUnits[next] && digits[0] != '0' && n < 100:
			p.hrOffset = n
			p.hrAbs, p.minAbs = unset, unset
			p.explicit |= HasHour
			return 2

		case minuteUnits[next]:
			p.minOffset = n
			p.hrAbs, p.minAbs = unset, unset
			p.explicit |= HasMinute
			return 2

		case secondUnits[next]:
			p.secOffset = n
			p.hrAbs, p.minAbs = unset, unset
			p.explicit |= HasSecond
			return 2

		case n > 100:
			hh, mm = n/100, n%100
			military = true
			if hourUnits[next] {
				used++
			}

		case startsWithDigit(next):
			m, ok := number(next)
			if !ok {
				isTime = false
				break
			}
			hh, mm = n, m
			military = true
			used++
			if hourUnits[nextNext] {
				used++
			}

		case next == "" || next == wordOClock:
			hh = n
			if next == wordOClock {
				used++
				if m, ok := number(nextNext); ok && m < 60 {
					mm = m
					used++
				}
			}

		case clockPrepositions[prev]:
			hh = n

		default:
			isTime = false
		}
	}

	if !isTime {
		return 0
	}

	if meridiem == "" && !military && p.qualifier != "" {
		meridiem = periodMeridiem(p.qualifier, hh)
	}
	switch {
	case meridiem == meridiemPM && hh < 12:
		hh += 12
	case meridiem == meridiemAM && hh >= 12:
		hh -= 12
	}

	if hh > 24 || mm > 59 {
		return 0
	}

	p.hrAbs, p.minAbs = hh, mm
	p.explicit |= HasHour | HasMinute
	return used + 1
}

// meridiemAfter looks at the words after a colon clock value for a half-day
// marker: "am morgen", "heute abend", "zur nacht", or English am/pm.
// It returns the marker and the number of following tokens it covers.
func (p *parser) meridiemAfter(i, hh int) (string, int) {
	next, nextNext := p.ts.at(i+1), p.ts.at(i+2)

	switch {
	case (next == meridiemAM || next == wordToday) && (morningPeriods[nextNext] || laterPeriods[nextNext]):
		return periodMeridiem(nextNext, hh), 2
	case next == wordToward && nextNext == wordNight:
		if hh > 5 && hh != 12 {
			return meridiemPM, 2
		}
		return meridiemAM, 2
	case next == meridiemAM || next == "a.m.":
		return meridiemAM, 1
	case next == meridiemPM || next == "p.m.":
		return meridiemPM, 1
	}
	return "", 0
}

// periodMeridiem maps a period word to a half-day marker for hour hh.
// Night hours after five are evening hours, twelve at night is midnight and
// small night hours stay early.
func periodMeridiem(period string, hh int) string {
	switch {
	case morningPeriods[period]:
		return meridiemAM
	case strings.TrimSuffix(period, "s") == wordNight:
		switch {
		case hh == 12:
			return meridiemAM
		case hh > 5:
			return meridiemPM
		}
		return ""
	case laterPeriods[period]:
		return meridiemPM
	}
	return ""
}

// splitClock splits "HH:MM[suffix]" into its parts.
func splitClock(word string) (hh, mm int, suffix string, ok bool) {
	hhStr, rest, _ := strings.Cut(word, ":")
	mmStr, suffix := splitDigits(rest)
	if hhStr == "" || mmStr == "" {
		return 0, 0, "", false
	}
	if hh, ok = number(hhStr); !ok {
		return 0, 0, "", false
	}
	if mm, ok = number(mmStr); !ok {
		return 0, 0, "", false
	}
	return hh, mm, strings.ReplaceAll(suffix, ".", ""), true
}

func isMeridiem(s string) bool {
	switch s {
	case meridiemAM, meridiemPM, "a.m.", "p.m.":
		return true
	}
	return false
}

// splitDigits splits s into its leading digits and the rest.
func splitDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// relativeCount reads the quantity before a month or year unit.
func relativeCount(prev string) (int, bool) {
	if n, ok := number(prev); ok {
		return n, true
	}
	switch {
	case nextWords[prev]:
		return 1, true
	case lastWords[prev]:
		return -1, true
	}
	return 0, false
}

func isDayWord(w string) bool {
	_, ok := dayWords[w]
	return ok
}

func isWeekday(w string) bool {
	_, ok := weekdays[w]
	return ok
}

func isMonth(w string) bool {
	_, ok := months[w]
	return ok
}

// dayOfMonth parses s as a day number 1..31.
func dayOfMonth(s string) (int, bool) {
	n, ok := number(s)
	if !ok || n < 1 || n > 31 {
		return 0, false
	}
	return n, true
}

// fourDigitYear parses s as a year written with four digits.
func fourDigitYear(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	return number(s)
}
