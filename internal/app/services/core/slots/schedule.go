package slots

import (
	"fmt"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/utils"
	"sort"
	"strconv"
	"time"
)

// Period is an opening window in minutes since midnight. End may be 1440
// for a business that closes at midnight.
type Period struct {
	Start int
	End   int
}

// WeeklySchedule maps a weekday to its opening periods. Build it with
// NewWeeklySchedule so periods are validated and sorted once at load time.
type WeeklySchedule struct {
	days map[time.Weekday][]Period
}

// NewWeeklySchedule validates every period, sorts each day by start time and
// rejects overlapping periods on the same day.
func NewWeeklySchedule(days map[time.Weekday][]Period) (WeeklySchedule, error) {
	normalized := make(map[time.Weekday][]Period, len(days))
	for weekday, periods := range days {
		if weekday < time.Sunday || weekday > time.Saturday {
			return WeeklySchedule{}, fmt.Errorf("invalid weekday %d", weekday)
		}
		if len(periods) == 0 {
			continue
		}

		sorted := make([]Period, len(periods))
		copy(sorted, periods)
		for _, p := range sorted {
			if p.Start < 0 || p.End > utils.MinutesPerDay || p.Start >= p.End {
				return WeeklySchedule{}, fmt.Errorf("%s: invalid period %s-%s", weekday, utils.FormatHHMM(p.Start), utils.FormatHHMM(p.End))
			}
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
		for i := 1; i < len(sorted); i++ {
			if sorted[i].Start < sorted[i-1].End {
				return WeeklySchedule{}, fmt.Errorf("%s: period %s-%s overlaps %s-%s", weekday,
					utils.FormatHHMM(sorted[i].Start), utils.FormatHHMM(sorted[i].End),
					utils.FormatHHMM(sorted[i-1].Start), utils.FormatHHMM(sorted[i-1].End))
			}
		}
		normalized[weekday] = sorted
	}
	return WeeklySchedule{days: normalized}, nil
}

// ParseWeeklySchedule builds a schedule from the stored form, keyed by
// weekday index "0" (Sunday) to "6" (Saturday) with "HH:MM" bounds.
func ParseWeeklySchedule(openingHours map[string][]models.OpeningPeriod) (WeeklySchedule, error) {
	days := make(map[time.Weekday][]Period, len(openingHours))
	for key, periods := range openingHours {
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || index > 6 {
			return WeeklySchedule{}, fmt.Errorf("invalid weekday key %q", key)
		}
		weekday := time.Weekday(index)
		for _, p := range periods {
			start, err := utils.ParseHHMM(p.Open)
			if err != nil {
				return WeeklySchedule{}, fmt.Errorf("%s: %w", weekday, err)
			}
			end, err := utils.ParseHHMM(p.Close)
			if err != nil {
				return WeeklySchedule{}, fmt.Errorf("%s: %w", weekday, err)
			}
			days[weekday] = append(days[weekday], Period{Start: start, End: end})
		}
	}
	return NewWeeklySchedule(days)
}

func (s WeeklySchedule) Periods(weekday time.Weekday) []Period {
	return s.days[weekday]
}

// OpeningHours converts the schedule back to its stored form.
func (s WeeklySchedule) OpeningHours() map[string][]models.OpeningPeriod {
	openingHours := make(map[string][]models.OpeningPeriod, len(s.days))
	for weekday, periods := range s.days {
		key := strconv.Itoa(int(weekday))
		for _, p := range periods {
			openingHours[key] = append(openingHours[key], models.OpeningPeriod{
				Open:  utils.FormatHHMM(p.Start),
				Close: utils.FormatHHMM(p.End),
			})
		}
	}
	return openingHours
}
