package leaderboard

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TableSelector identifies the leaderboard table in the source page.
const TableSelector = "table#topPilotTable"

// minCells is the number of cells a row needs to hold a result.
const minCells = 4

// Row holds the raw cells of one leaderboard row.
type Row struct {
	// Seq is the position of the row among the rows that were kept.
	Seq         int
	RankText    string
	Pilot       *goquery.Selection
	Race        *goquery.Selection
	ChapterText string
}

// ExtractRows finds the leaderboard table and returns its body rows in
// document order. The second return value is the number of rows skipped
// for having too few cells.
func ExtractRows(doc *goquery.Document) ([]Row, int, error) {
	table := doc.Find(TableSelector).First()
	if table.Length() == 0 {
		return nil, 0, &ParseError{Stage: "extract table", Err: ErrTableNotFound}
	}

	var rows []Row
	skipped := 0
	table.Find("tbody > tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered("td")
		if cells.Length() < minCells {
			skipped++
			return
		}
		rows = append(rows, Row{
			Seq:         len(rows),
			RankText:    strings.TrimSpace(cells.Eq(0).Text()),
			Pilot:       cells.Eq(1),
			Race:        cells.Eq(2),
			ChapterText: strings.TrimSpace(cells.Eq(3).Text()),
		})
	})

	return rows, skipped, nil
}

// parseRank mirrors how the printed rank is read: leading digits after
// optional whitespace and sign, anything else yields 0. Values that do not
// fit an int saturate.
func parseRank(text string) int {
	text = strings.TrimSpace(text)
	negative := false
	if len(text) > 0 && (text[0] == '-' || text[0] == '+') {
		negative = text[0] == '-'
		text = text[1:]
	}

	n := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			break
		}
		digit := int(c - '0')
		if n > (math.MaxInt-digit)/10 {
			// saturate like intval
			if negative {
				return math.MinInt
			}
			return math.MaxInt
		}
		n = n*10 + digit
	}
	if negative {
		return -n
	}
	return n
}
