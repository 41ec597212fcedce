package leaderboard

import "slices"

// Snapshot is the complete, ranked and indexed result set derived from one
// copy of the leaderboard page. It is never modified after Build returns,
// every accessor hands out copies.
type Snapshot struct {
	results   []RaceResult
	countries []string
	chapters  []string
}

// NewSnapshot ranks and indexes results, which must be in row order. The
// slice is copied.
func NewSnapshot(results []RaceResult) Snapshot {
	owned := slices.Clone(results)
	if owned == nil {
		owned = []RaceResult{}
	}
	AssignNationalRanks(owned)
	return Snapshot{
		results:   owned,
		countries: BuildCountryIndex(owned),
		chapters:  BuildChapterIndex(owned),
	}
}

// Len is the number of results.
func (s Snapshot) Len() int {
	return len(s.results)
}

// Results returns every result in leaderboard order.
func (s Snapshot) Results() []RaceResult {
	out := make([]RaceResult, len(s.results))
	for i, r := range s.results {
		out[i] = r.detached()
	}
	return out
}

// Countries returns the sorted distinct country names.
func (s Snapshot) Countries() []string {
	return clone(s.countries)
}

// Chapters returns the sorted distinct chapters.
func (s Snapshot) Chapters() []string {
	return clone(s.chapters)
}

// ChaptersByCountry returns the sorted distinct chapters of the results from
// country, matched by name or code. An empty country returns every chapter.
func (s Snapshot) ChaptersByCountry(country string) []string {
	if country == "" {
		return s.Chapters()
	}

	var matching []RaceResult
	for _, r := range s.results {
		if matchesCountry(r, country) {
			matching = append(matching, r)
		}
	}
	return BuildChapterIndex(matching)
}

// Filter returns the results, in leaderboard order, whose country equals
// country (name or code, ignoring case) and whose chapter contains chapter
// (ignoring case). Empty filters match everything.
func (s Snapshot) Filter(country, chapter string) []RaceResult {
	out := []RaceResult{}
	for _, r := range s.results {
		if country != "" && !matchesCountry(r, country) {
			continue
		}
		if chapter != "" && !matchesChapter(r, chapter) {
			continue
		}
		out = append(out, r.detached())
	}
	return out
}

// clone never returns nil so empty lists serialize as [].
func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
