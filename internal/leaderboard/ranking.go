package leaderboard

import (
	"cmp"
	"slices"
)

// AssignNationalRanks sets NationalRank on every result in place. The slice
// must be in row order, since a result's index is its row's Seq.
//
// Results are grouped by CountryCode and ordered by WorldRank within a
// group, equal world ranks keep their row order. A result without a
// country code is not ranked against anyone and always gets 1.
func AssignNationalRanks(results []RaceResult) {
	groups := make(map[string][]int)
	for i := range results {
		code := results[i].CountryCode
		if code == "" {
			results[i].NationalRank = 1
			continue
		}
		groups[code] = append(groups[code], i)
	}

	for _, members := range groups {
		slices.SortStableFunc(members, func(a, b int) int {
			return cmp.Compare(results[a].WorldRank, results[b].WorldRank)
		})
		for position, idx := range members {
			results[idx].NationalRank = position + 1
		}
	}
}
