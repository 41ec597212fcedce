package leaderboard

import (
	"regexp"
	"strings"

	"mgpresults/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Pilot is the parsed content of a pilot cell.
type Pilot struct {
	Name        string
	Nickname    string
	CountryCode string
	CountryName string
}

// flagCodeRegex matches a two lowercase letter file name right before an
// image extension, ex. ".../flags/us.png".
var flagCodeRegex = regexp.MustCompile(`(?:^|/)([a-z]{2})\.(?:png|gif|jpe?g|svg|webp)(?:$|[?#])`)

// nicknameRegex matches "<given> '<nickname>' <family>", the lazy given
// name makes the first quoted token the nickname.
var nicknameRegex = regexp.MustCompile(`^(.+?)\s+'([^']+)'\s+(.+)$`)

// FlagCountryCode derives the uppercase country code from a flag image.
func FlagCountryCode(src, title string) string {
	groups := flagCodeRegex.FindStringSubmatch(src)
	if len(groups) == 2 {
		return strings.ToUpper(groups[1])
	}
	return strings.ToUpper(strings.TrimSpace(title))
}

// SplitPilotName separates the nickname from a pilot's full name.
func SplitPilotName(text string) (name, nickname string) {
	text = htmlutil.CleanText(text)
	groups := nicknameRegex.FindStringSubmatch(text)
	if len(groups) != 4 {
		return strings.TrimSpace(text), ""
	}
	name = strings.TrimSpace(groups[1] + " " + groups[3])
	nickname = strings.TrimSpace(groups[2])
	return name, nickname
}

// ParsePilotCell reads name, nickname and country out of a pilot cell.
func ParsePilotCell(cell *goquery.Selection, countries Countries) Pilot {
	var pilot Pilot

	flag := cell.Find("img.country-flag").First()
	if flag.Length() > 0 {
		pilot.CountryCode = FlagCountryCode(
			flag.AttrOr("src", ""),
			flag.AttrOr("title", ""),
		)
		pilot.CountryName = countries.Name(pilot.CountryCode)
	}

	pilot.Name, pilot.Nickname = SplitPilotName(cell.Text())
	return pilot
}
