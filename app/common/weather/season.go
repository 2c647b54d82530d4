package weather

import (
	"strings"
	"time"
)

const (
	SeasonWinter = "winter"
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
)

// InferSeason maps a date to a meteorological season. Any hemisphere that does
// not start with "n" is treated as southern.
func InferSeason(date time.Time, hemisphere string) string {
	north := strings.HasPrefix(strings.ToLower(strings.TrimSpace(hemisphere)), "n")

	var season string
	switch date.Month() {
	case time.December, time.January, time.February:
		season = SeasonWinter
	case time.March, time.April, time.May:
		season = SeasonSpring
	case time.June, time.July, time.August:
		season = SeasonSummer
	default:
		season = SeasonAutumn
	}

	if north {
		return season
	}
	return opposite[season]
}

var opposite = map[string]string{
	SeasonWinter: SeasonSummer,
	SeasonSummer: SeasonWinter,
	SeasonSpring: SeasonAutumn,
	SeasonAutumn: SeasonSpring,
}
