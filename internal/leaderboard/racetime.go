package leaderboard

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RaceTime is a race time parsed out of free text.
type RaceTime struct {
	Seconds   float64
	Formatted string
}

// Race is the parsed content of a race cell.
type Race struct {
	Text string
	Link string
	// Time is nil when none of the time formats matched.
	Time *RaceTime
}

type timeMatcher struct {
	name    string
	pattern *regexp.Regexp
	convert func(groups []string) (RaceTime, bool)
}

// raceTimeMatchers are tried in order and the first one whose pattern
// matches decides the result, a failed conversion means no time at all.
// The order is part of the contract: "1:02.345" must never be read as the
// bare seconds "02.345".
var raceTimeMatchers = []timeMatcher{
	{
		name:    "minutes-colon",
		pattern: regexp.MustCompile(`(\d+):(\d+)\.(\d+)`),
		convert: func(groups []string) (RaceTime, bool) {
			return minutesTime(groups[1], groups[2], groups[3], groups[1])
		},
	},
	{
		name:    "minutes-suffix",
		pattern: regexp.MustCompile(`(\d+)m\s*(\d+)\.(\d+)s`),
		convert: func(groups []string) (RaceTime, bool) {
			minutes, err := strconv.Atoi(groups[1])
			if err != nil {
				return RaceTime{}, false
			}
			seconds, err := strconv.Atoi(groups[2])
			if err != nil {
				return RaceTime{}, false
			}
			return minutesTime(groups[1], strconv.Itoa(seconds), groups[3], strconv.Itoa(minutes))
		},
	},
	{
		name:    "seconds",
		pattern: regexp.MustCompile(`(\d+)\.(\d+)`),
		convert: func(groups []string) (RaceTime, bool) {
			total, err := strconv.ParseFloat(groups[1]+"."+groups[2], 64)
			if err != nil || total > maxClockSeconds {
				return RaceTime{}, false
			}
			if total >= 60 {
				return RaceTime{Seconds: total, Formatted: FormatClock(total)}, true
			}
			return RaceTime{
				Seconds:   total,
				Formatted: strconv.FormatFloat(total, 'f', 3, 64) + "s",
			}, true
		},
	},
}

// minutesTime converts the minute, second and fraction digits of a
// "m:ss.fff" style time. The fraction is kept verbatim in the output and
// minutesLabel is what gets printed before the colon.
func minutesTime(minutesText, secondsText, fraction, minutesLabel string) (RaceTime, bool) {
	minutes, err := strconv.Atoi(minutesText)
	if err != nil {
		return RaceTime{}, false
	}
	seconds, err := strconv.Atoi(secondsText)
	if err != nil {
		return RaceTime{}, false
	}
	frac, err := strconv.ParseFloat("0."+fraction, 64)
	if err != nil {
		return RaceTime{}, false
	}

	total := float64(minutes)*60 + float64(seconds) + frac
	if total > maxClockSeconds {
		return RaceTime{}, false
	}

	return RaceTime{
		Seconds:   total,
		Formatted: minutesLabel + ":" + padLeft(secondsText, 2) + "." + fraction,
	}, true
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// maxClockSeconds bounds the times that are accepted, beyond it the
// millisecond count no longer fits an int64.
const maxClockSeconds = 1e15

// FormatClock renders seconds as "m:ss.fff" rounded to milliseconds. Values
// outside [0, maxClockSeconds] and NaN render as "".
func FormatClock(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 || seconds > maxClockSeconds {
		return ""
	}
	millis := int64(math.Round(seconds * 1000))
	minutes := millis / 60_000
	rest := millis % 60_000
	return fmt.Sprintf("%d:%02d.%03d", minutes, rest/1000, rest%1000)
}

// ParseRaceTime extracts a race time from text using the first matching
// format, ok is false when no format matches.
func ParseRaceTime(text string) (RaceTime, bool) {
	for _, m := range raceTimeMatchers {
		groups := m.pattern.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		return m.convert(groups)
	}
	return RaceTime{}, false
}

// ParseRaceCell reads the race text, time and link out of a race cell.
func ParseRaceCell(cell *goquery.Selection) Race {
	race := Race{
		Text: strings.TrimSpace(cell.Text()),
		Link: cell.Find("a").First().AttrOr("href", ""),
	}
	if t, ok := ParseRaceTime(race.Text); ok {
		race.Time = &t
	}
	return race
}
