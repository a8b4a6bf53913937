// Word tables for the German date and time extractor.
package datetime

import (
	"strings"
	"time"

	"github.com/go-playground/locales/de_DE"

	"github.com/az-ai-labs/de-lang-nlp/internal/textcase"
)

// weekdays maps weekday names to time.Weekday: the de_DE wide names plus
// colloquial forms.
var weekdays = func() map[string]time.Weekday {
	m := map[string]time.Weekday{
		"sonnabend": time.Saturday,
	}
	for i, name := range deLocale.WeekdaysWide() {
		m[lexiconKey(name)] = time.Weekday(i)
	}
	return m
}()

// months maps full and abbreviated month names to time.Month: the de_DE wide
// and abbreviated names plus Austrian and short colloquial forms.
var months = func() map[string]time.Month {
	m := map[string]time.Month{
		"jänner": time.January,
		"mär":    time.March,
		"jun":    time.June,
		"jul":    time.July,
		"sept":   time.September,
	}
	for _, names := range [][]string{deLocale.MonthsWide(), deLocale.MonthsAbbreviated()} {
		for i, name := range names {
			m[lexiconKey(name)] = time.Month(i + 1)
		}
	}
	return m
}()

var deLocale = de_DE.New()

// lexiconKey folds a locale name into token form: lowercased, no dots.
func lexiconKey(name string) string {
	return strings.TrimRight(textcase.Fold(name), ".")
}

// dayWords are the single-word day offsets relative to the anchor.
var dayWords = map[string]int{
	"vorgestern": -2,
	"gestern":    -1,
	"heute":      0,
	"morgen":     1,
	"übermorgen": 2,
}

// Unit words, after trailing "s" has been trimmed ("tages" -> "tage").
var (
	dayUnits   = set("tag", "tage", "tagen")
	weekUnits  = set("woche", "wochen")
	monthUnits = set("monat", "monate", "monaten")
	yearUnits  = set("jahr", "jahre", "jahren")

	hourUnits   = set("stunde", "stunden")
	minuteUnits = set("minute", "minuten")
	secondUnits = set("sekunde", "sekunden")
)

// nextWords and lastWords qualify a unit or weekday as the following or
// preceding one ("nächste woche", "letzten montag").
var (
	nextWords = set("nächste", "nächsten", "nächster", "nächstes", "kommende", "kommenden", "kommender")
	lastWords = set("letzte", "letzten", "letzter", "letztes", "vergangene", "vergangenen", "vorige", "vorigen")
)

// thisWords directly before a matched date expression belong to it.
var thisWords = set("diese", "diesen", "dieser", "dieses")

// markers are filler prepositions consumed together with the expression
// that follows them.
var markers = set("an", "in", "on", "by", "this", "around", "for", "of", "um", "am", "gegen")

// clockPrepositions make a following bare number an hour ("um 8").
var clockPrepositions = set("um", "gegen")

// fromWords start a "von/nach <day>" future anchor.
var fromWords = set("von", "nach")

// Time qualifiers are recorded in the date pass and applied to bare clock
// values in the time pass. Each adverbial form maps to its period noun.
var qualifierAdverbs = map[string]string{
	"morgens":     "morgen",
	"vormittags":  "vormittag",
	"mittags":     "mittag",
	"nachmittags": "nachmittag",
	"abends":      "abend",
	"nachts":      "nacht",
}

// periodHours is the default hour for a period of the day.
var periodHours = map[string]int{
	"morgen":      8,
	"früh":        8,
	"vormittag":   10,
	"mittag":      12,
	"nachmittag":  15,
	"abend":       19,
	"nacht":       22,
	"mitternacht": 0,
}

// morgenQualifiedBy lists the words that turn a following "morgen" into
// "morning" rather than "tomorrow" ("heute morgen", "am morgen").
var morgenQualifiedBy = set("am", "heute", "gestern", "diesen", "jeden")

// earlyQualifiedBy lists the words after which "früh" names the morning
// ("morgen früh").
var earlyQualifiedBy = set("morgen", "heute")

// Relative hour phrases: "in einer halben stunde", "in einer viertelstunde".
var (
	hourFractions = map[string]int{
		"halb":        30,
		"halbe":       30,
		"halben":      30,
		"viertel":     15,
		"dreiviertel": 45,
	}
	hourCompounds = map[string]int{
		"viertelstunde":     15,
		"halbestunde":       30,
		"dreiviertelstunde": 45,
	}
	indefiniteOne = set("ein", "eine", "einer", "einem")
)

// Clock words.
const (
	wordOClock   = "uhr"
	wordAnd      = "und"
	wordToday    = "heute"
	wordTomorrow = "morgen"
	wordNow      = "jetzt"
	wordDay      = "tag"
	wordAfter    = "nach"
	wordThe      = "der"
	wordIn       = "im"
	wordToward   = "zur"
	wordNight    = "nacht"
	wordEarly    = "früh"
	wordLate     = "spät"

	meridiemAM = "am"
	meridiemPM = "pm"
)

// ohWords precede a spoken military time ("oh acht hundert").
var ohWords = set("o", "oh")

// droppedInner are removed during cleaning unless they open or close the
// utterance.
var droppedInner = set("ein", "die", "das")

// ordinalSuffixes are stripped from tokens that start with a digit.
var ordinalSuffixes = [...]string{"ter", "tel", "nd", "th"}

// morningPeriods and laterPeriods classify a period word for am/pm.
var (
	morningPeriods = set("morgen", "morgens", "vormittag", "vormittags", "früh")
	laterPeriods   = set("mittag", "mittags", "nachmittag", "nachmittags", "abend", "abends", "nacht", "nachts")
)

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
