package commands

import (
	"encoding/json"
	"io"
	"os"

	"mgpresults/internal/leaderboard"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func displayTime(r leaderboard.RaceResult) string {
	if r.RaceTimeFormatted != "" {
		return r.RaceTimeFormatted
	}
	if r.RaceRawText != "" {
		return r.RaceRawText
	}
	return "-"
}

func pilotLabel(r leaderboard.RaceResult) string {
	if r.PilotNickname == "" {
		return r.PilotName
	}
	return r.PilotName + " '" + r.PilotNickname + "'"
}

func renderResults(out io.Writer, results []leaderboard.RaceResult) {
	t := newTable(out)
	t.AppendHeader(table.Row{"World", "National", "Pilot", "Country", "Time", "Chapter"})
	for _, r := range results {
		t.AppendRow(table.Row{
			r.WorldRank,
			r.NationalRank,
			pilotLabel(r),
			r.CountryName,
			displayTime(r),
			r.Chapter,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Pilots", len(results)})
	t.Render()
}

func renderList(out io.Writer, header string, values []string) {
	t := newTable(out)
	t.AppendHeader(table.Row{header})
	for _, v := range values {
		t.AppendRow(table.Row{v})
	}
	t.Render()
}

var stdout io.Writer = os.Stdout
