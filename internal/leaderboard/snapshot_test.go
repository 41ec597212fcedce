package leaderboard

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func worldRanks(results []RaceResult) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.WorldRank
	}
	return out
}

func TestFilterNoFilters(t *testing.T) {
	snapshot := buildFixture(t)
	require.Equal(t, snapshot.Results(), snapshot.Filter("", ""))
}

func TestFilterCountry(t *testing.T) {
	snapshot := buildFixture(t)

	byCode := snapshot.Filter("US", "")
	require.Equal(t, []int{1, 3}, worldRanks(byCode))

	// code and display name select the same results
	require.Equal(t, byCode, snapshot.Filter("Estados Unidos", ""))
	require.Equal(t, byCode, snapshot.Filter("us", ""))
	require.Equal(t, byCode, snapshot.Filter("ESTADOS UNIDOS", ""))
	require.Equal(t, []int{2}, worldRanks(snapshot.Filter("japón", "")))

	// country matching is exact, not a substring
	require.Empty(t, snapshot.Filter("Estados", ""))
	require.Empty(t, snapshot.Filter("U", ""))
}

func TestFilterCountryResolverPairs(t *testing.T) {
	snapshot := buildFixture(t)
	countries := DefaultCountries()

	for _, code := range []string{"US", "JP", "CO"} {
		name := countries.Name(code)
		require.Equal(t, snapshot.Filter(code, ""), snapshot.Filter(name, ""), code)
	}
}

func TestFilterChapter(t *testing.T) {
	snapshot := buildFixture(t)

	require.Equal(t, []int{1, 5}, worldRanks(snapshot.Filter("", "austin")))
	require.Equal(t, []int{1, 5, 7}, worldRanks(snapshot.Filter("", "FPV")))
	require.Equal(t, []int{1}, worldRanks(snapshot.Filter("US", "fpv")))
	require.Empty(t, snapshot.Filter("JP", "austin"))
	require.Empty(t, snapshot.Filter("", "nowhere"))
}

func TestIndexesSortedAndDistinct(t *testing.T) {
	snapshot := buildFixture(t)

	for _, list := range [][]string{snapshot.Countries(), snapshot.Chapters()} {
		require.True(t, slices.IsSorted(list))
		require.Equal(t, len(list), len(slices.Compact(slices.Clone(list))))
	}
}

func TestChaptersByCountry(t *testing.T) {
	snapshot := buildFixture(t)

	require.Equal(t, snapshot.Chapters(), snapshot.ChaptersByCountry(""))
	require.Equal(t, []string{"Austin FPV", "Denver Rippers"}, snapshot.ChaptersByCountry("us"))
	require.Equal(t, []string{"Austin FPV", "Denver Rippers"}, snapshot.ChaptersByCountry("Estados Unidos"))
	require.Equal(t, []string{"Tokyo Drone Club"}, snapshot.ChaptersByCountry("JP"))
	require.Equal(t, []string{}, snapshot.ChaptersByCountry("Atlantis"))
}

func TestSnapshotIsImmutable(t *testing.T) {
	snapshot := buildFixture(t)

	results := snapshot.Results()
	results[0].PilotName = "changed"
	*results[0].RaceTimeSeconds = 1
	require.Equal(t, "John Smith", snapshot.Results()[0].PilotName)
	require.InDelta(t, 62.345, *snapshot.Results()[0].RaceTimeSeconds, 1e-9)

	countries := snapshot.Countries()
	countries[0] = "changed"
	require.Equal(t, "Colombia", snapshot.Countries()[0])
}

func TestZeroSnapshot(t *testing.T) {
	var snapshot Snapshot
	require.Equal(t, []RaceResult{}, snapshot.Results())
	require.Equal(t, []RaceResult{}, snapshot.Filter("US", ""))
	require.Equal(t, []string{}, snapshot.Countries())
	require.Equal(t, []string{}, snapshot.ChaptersByCountry(""))
}
