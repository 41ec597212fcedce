package leaderboard

// RaceResult is one row of the leaderboard after parsing and ranking.
type RaceResult struct {
	// WorldRank is the rank printed in the source table.
	WorldRank int `json:"rank"`
	// NationalRank is the 1-based position among results sharing CountryCode.
	NationalRank int `json:"national_rank"`

	PilotName     string `json:"pilot_name"`
	PilotNickname string `json:"pilot_nickname"`
	CountryName   string `json:"country"`
	CountryCode   string `json:"country_code"`

	// RaceRawText is the full text of the race cell, always populated.
	RaceRawText string `json:"race_info"`
	// RaceTimeSeconds is nil when no time could be parsed from RaceRawText.
	RaceTimeSeconds   *float64 `json:"race_time"`
	RaceTimeFormatted string   `json:"race_time_formatted"`
	RaceLink          string   `json:"race_link"`

	Chapter string `json:"chapter"`
}

// HasRaceTime reports whether a time was parsed for the result.
func (r RaceResult) HasRaceTime() bool {
	return r.RaceTimeSeconds != nil
}

// detached returns a copy that shares no memory with r.
func (r RaceResult) detached() RaceResult {
	if r.RaceTimeSeconds != nil {
		seconds := *r.RaceTimeSeconds
		r.RaceTimeSeconds = &seconds
	}
	return r
}
