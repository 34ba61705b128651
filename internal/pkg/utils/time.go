package utils

import (
	"fmt"
	"pidelocal-service/internal/pkg/constvars"
	"regexp"
	"strconv"
	"time"
)

const MinutesPerDay = 24 * 60

var timeHHMMRegex = regexp.MustCompile(constvars.RegexTimeHHMM)

// ParseHHMM converts "HH:MM" into minutes since midnight. "24:00" is accepted
// and maps to 1440 so a period may run until the end of the day.
func ParseHHMM(value string) (int, error) {
	if !timeHHMMRegex.MatchString(value) {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	hours, _ := strconv.Atoi(value[:2])
	minutes, _ := strconv.Atoi(value[3:])
	return hours*60 + minutes, nil
}

func FormatHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseISODate parses a calendar date in loc, returning midnight of that day.
func ParseISODate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	date, err := time.ParseInLocation(constvars.TimeLayoutDate, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return date, nil
}

func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
