package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoDataLabel is displayed in place of a figure that cannot be computed.
const NoDataLabel = "no data"

// FormatTraffic renders a passenger count rounded to the unit with a space
// between thousands, e.g. 34503097 -> "34 503 097".
func FormatTraffic(v float64) string {
	return humanize.FormatFloat("# ###.", v)
}

// FormatCount renders an integer figure the same way as FormatTraffic.
func FormatCount(n int64) string {
	return humanize.FormatInteger("# ###.", int(n))
}

// TitleStation converts an upper-case station name to title case,
// e.g. "GARE DU NORD" -> "Gare Du Nord". Word breaks follow Unicode rules,
// so letters after an apostrophe stay lower case: "L'OPERA" -> "L'opera".
func TitleStation(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return NoDataLabel
	}
	return cases.Title(language.French).String(name)
}
