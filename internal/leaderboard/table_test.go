package leaderboard

import (
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func loadFixture(t testing.TB, name string) *goquery.Document {
	t.Helper()

	f, err := os.Open("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestExtractRows(t *testing.T) {
	doc := loadFixture(t, "leaderboard.html")

	rows, skipped, err := ExtractRows(doc)
	require.NoError(t, err)
	require.Equal(t, 1, skipped)
	require.Len(t, rows, 7)

	ranks := make([]string, len(rows))
	for i, row := range rows {
		require.Equal(t, i, row.Seq)
		ranks[i] = row.RankText
	}
	require.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, ranks)

	require.Equal(t, "Denver Rippers", rows[2].ChapterText)
	require.Equal(t, "", rows[5].ChapterText)
	require.Contains(t, rows[0].Pilot.Text(), "John 'Maverick' Smith")
	require.Contains(t, rows[0].Race.Text(), "1:02.345")
}

func TestExtractRowsTableNotFound(t *testing.T) {
	doc := loadFixture(t, "no_table.html")

	rows, _, err := ExtractRows(doc)
	require.Nil(t, rows)
	require.True(t, errors.Is(err, ErrTableNotFound))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, "extract table", parseErr.Stage)
}

func TestExtractRowsEmptyBody(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<table id="topPilotTable"><thead><tr><th>Rank</th></tr></thead><tbody></tbody></table>`,
	))
	require.NoError(t, err)

	rows, skipped, err := ExtractRows(doc)
	require.NoError(t, err)
	require.Equal(t, 0, skipped)
	require.Len(t, rows, 0)
}

func TestParseRank(t *testing.T) {
	table := []struct {
		input    string
		expected int
	}{
		{input: "1", expected: 1},
		{input: " 42 ", expected: 42},
		{input: "7.", expected: 7},
		{input: "3rd", expected: 3},
		{input: "-", expected: 0},
		{input: "", expected: 0},
		{input: "N/A", expected: 0},
		{input: "-12", expected: -12},
		{input: "99999999999999999999", expected: math.MaxInt},
		{input: "-99999999999999999999", expected: math.MinInt},
	}

	for _, row := range table {
		require.Equal(t, row.expected, parseRank(row.input), row.input)
	}
}
