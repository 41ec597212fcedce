package leaderboard

import (
	"slices"
	"strings"
)

// distinctSorted returns the sorted distinct non-empty values picked from results.
func distinctSorted(results []RaceResult, pick func(RaceResult) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range results {
		value := pick(r)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	slices.Sort(out)
	return out
}

// BuildCountryIndex lists every distinct country name.
func BuildCountryIndex(results []RaceResult) []string {
	return distinctSorted(results, func(r RaceResult) string {
		return r.CountryName
	})
}

// BuildChapterIndex lists every distinct chapter.
func BuildChapterIndex(results []RaceResult) []string {
	return distinctSorted(results, func(r RaceResult) string {
		return r.Chapter
	})
}

// matchesCountry is the exact, case-insensitive match against either the
// display name or the code of a result's country.
func matchesCountry(r RaceResult, country string) bool {
	return strings.EqualFold(r.CountryName, country) ||
		strings.EqualFold(r.CountryCode, country)
}

func matchesChapter(r RaceResult, chapter string) bool {
	return strings.Contains(strings.ToLower(r.Chapter), strings.ToLower(chapter))
}
