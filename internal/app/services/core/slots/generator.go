package slots

import (
	"fmt"
	"pidelocal-service/internal/pkg/utils"
	"sort"
	"time"
)

const (
	DefaultSlotMinutes        = 5
	DefaultPrepMinutes        = 20
	DefaultCloseBufferMinutes = 10
)

type Options struct {
	SlotMinutes        int
	PrepMinutes        int
	CloseBufferMinutes int
	// Location is the business timezone used to decide whether the date is today.
	Location *time.Location
	Now      time.Time
}

func DefaultOptions(location *time.Location, now time.Time) Options {
	return Options{
		SlotMinutes:        DefaultSlotMinutes,
		PrepMinutes:        DefaultPrepMinutes,
		CloseBufferMinutes: DefaultCloseBufferMinutes,
		Location:           location,
		Now:                now,
	}
}

func (o Options) Validate() error {
	if o.SlotMinutes <= 0 || o.SlotMinutes > utils.MinutesPerDay {
		return fmt.Errorf("slot minutes must be between 1 and %d, got %d", utils.MinutesPerDay, o.SlotMinutes)
	}
	if o.PrepMinutes < 0 || o.PrepMinutes > utils.MinutesPerDay {
		return fmt.Errorf("prep minutes must be between 0 and %d, got %d", utils.MinutesPerDay, o.PrepMinutes)
	}
	if o.CloseBufferMinutes < 0 || o.CloseBufferMinutes > utils.MinutesPerDay {
		return fmt.Errorf("close buffer minutes must be between 0 and %d, got %d", utils.MinutesPerDay, o.CloseBufferMinutes)
	}
	return nil
}

// Config is everything needed to recompute the slot set of a date.
type Config struct {
	Schedule WeeklySchedule
	Options  Options
}

// Generate returns the pickup times offered on date, ascending and without
// duplicates. Options must have been validated by the caller; a non-positive
// SlotMinutes yields no slots.
func Generate(date time.Time, schedule WeeklySchedule, opts Options) []string {
	periods := schedule.Periods(date.Weekday())
	if len(periods) == 0 || opts.SlotMinutes <= 0 {
		return []string{}
	}

	location := opts.Location
	if location == nil {
		location = time.UTC
	}
	now := opts.Now.In(location)
	isToday := sameDay(date, now)
	earliest := 0
	if isToday {
		earliest = roundUp(now.Hour()*60+now.Minute()+opts.PrepMinutes, opts.SlotMinutes)
	}

	seen := make(map[int]struct{})
	for _, p := range periods {
		effectiveStart := p.Start
		if isToday && earliest > effectiveStart {
			effectiveStart = earliest
		}
		effectiveEnd := p.End - opts.CloseBufferMinutes
		if effectiveEnd >= utils.MinutesPerDay {
			effectiveEnd = utils.MinutesPerDay - 1
		}
		if effectiveEnd <= effectiveStart {
			continue
		}

		for minute := roundUp(effectiveStart, opts.SlotMinutes); minute <= effectiveEnd; minute += opts.SlotMinutes {
			seen[minute] = struct{}{}
		}
	}

	minutes := make([]int, 0, len(seen))
	for minute := range seen {
		minutes = append(minutes, minute)
	}
	sort.Ints(minutes)

	slots := make([]string, 0, len(minutes))
	for _, minute := range minutes {
		slots = append(slots, utils.FormatHHMM(minute))
	}
	return slots
}

// IsValidSlot recomputes the slot set for dateISO and reports whether timeHM
// is part of it. Malformed input is never valid.
func IsValidSlot(dateISO, timeHM string, cfg Config) bool {
	if cfg.Options.Validate() != nil {
		return false
	}
	date, err := utils.ParseISODate(dateISO, cfg.Options.Location)
	if err != nil {
		return false
	}
	if _, err := utils.ParseHHMM(timeHM); err != nil {
		return false
	}

	for _, slot := range Generate(date, cfg.Schedule, cfg.Options) {
		if slot == timeHM {
			return true
		}
	}
	return false
}

func roundUp(value, step int) int {
	if step <= 0 {
		return value
	}
	return ((value + step - 1) / step) * step
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
