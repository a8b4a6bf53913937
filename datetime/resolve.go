package datetime

import (
	"math"
	"time"
)

// resolve turns the accumulated offsets into a point in time, in the
// anchor's location.
//
// Date expressions resolve from the anchor's midnight: an absolute month and
// day first, then year and month offsets, then day offsets. An absolute clock
// time follows and rolls over to the next day when it has already passed and
// no day was named. Relative hour, minute and second offsets come last.
// Phrases made only of time offsets ("in 10 minuten") count from the anchor
// itself.
func (p *parser) resolve() time.Time {
	a := p.anchor
	loc := a.Location()

	if p.hrAbs == unset && !p.daySpecified && p.hasTimeOffset() {
		return p.addTimeOffsets(a.Truncate(time.Second))
	}

	t := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, loc)

	if d := p.date; d != nil {
		t = resolveDate(t, d)
	}
	if n := p.yearOffset*12 + p.monthOffset; n != 0 {
		t = addMonths(t, n)
	}
	if p.dayOffset != 0 {
		t = t.AddDate(0, 0, p.dayOffset)
	}

	if p.hrAbs != unset {
		t = time.Date(t.Year(), t.Month(), t.Day(), p.hrAbs, max(p.minAbs, 0), 0, 0, loc)
		if !p.daySpecified && t.Before(a) {
			t = t.AddDate(0, 0, 1)
		}
	}

	return p.addTimeOffsets(t)
}

func (p *parser) hasTimeOffset() bool {
	return p.hrOffset != 0 || p.minOffset != 0 || p.secOffset != 0
}

// maxDurationSeconds is the largest offset time.Duration can hold.
const maxDurationSeconds = int64(math.MaxInt64 / time.Second)

// addTimeOffsets adds the hour, minute and second offsets. Offsets too large
// for a time.Duration are added as whole days plus the remaining seconds.
func (p *parser) addTimeOffsets(t time.Time) time.Time {
	secs := int64(p.hrOffset)*3600 + int64(p.minOffset)*60 + int64(p.secOffset)
	if secs <= maxDurationSeconds && secs >= -maxDurationSeconds {
		return t.Add(time.Duration(secs) * time.Second)
	}
	const day = 24 * 60 * 60
	return t.AddDate(0, 0, int(secs/day)).Add(time.Duration(secs%day) * time.Second)
}

// resolveDate places d relative to today, the anchor's midnight. Without an
// explicit year the date falls in the current year, or the next one when it
// has already passed. A missing day means the first of the month.
func resolveDate(today time.Time, d *dateParts) time.Time {
	loc := today.Location()
	day := max(d.day, 1)

	if d.year != 0 {
		return clampedDate(d.year, d.month, day, loc)
	}
	t := clampedDate(today.Year(), d.month, day, loc)
	if t.Before(today) {
		t = clampedDate(today.Year()+1, d.month, day, loc)
	}
	return t
}

// addMonths adds n calendar months to t, clamping the day to the length of
// the target month (January 31 plus one month is the last day of February).
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	day := min(t.Day(), daysIn(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// clampedDate returns midnight of the given date, with day clamped to the
// month length.
func clampedDate(year int, m time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, m, min(day, daysIn(year, m)), 0, 0, 0, 0, loc)
}

// daysIn returns the number of days in month m of year.
func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
