package slots

import (
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/utils"
	"time"
)

// ConfigForBusiness builds the generator configuration of a business. Slot
// settings that were never saved fall back to the service defaults.
func ConfigForBusiness(business *models.Business, defaults config.Slots, fallbackTimezone string, now time.Time) (Config, error) {
	schedule, err := ParseWeeklySchedule(business.OpeningHours)
	if err != nil {
		return Config{}, err
	}

	timezone := business.Timezone
	if timezone == "" {
		timezone = fallbackTimezone
	}
	location, err := utils.LoadLocation(timezone)
	if err != nil {
		return Config{}, err
	}

	opts := Options{
		SlotMinutes:        business.SlotSettings.SlotMinutes,
		PrepMinutes:        business.SlotSettings.PrepMinutes,
		CloseBufferMinutes: business.SlotSettings.CloseBufferMinutes,
		Location:           location,
		Now:                now,
	}
	if opts.SlotMinutes == 0 {
		opts.SlotMinutes = defaults.DefaultSlotMinutes
		opts.PrepMinutes = defaults.DefaultPrepMinutes
		opts.CloseBufferMinutes = defaults.DefaultCloseBufferMinutes
	}
	if err := opts.Validate(); err != nil {
		return Config{}, err
	}

	return Config{Schedule: schedule, Options: opts}, nil
}

// WithinBookingWindow reports whether date is between today and
// maxAdvanceDays ahead in the business timezone.
func WithinBookingWindow(date time.Time, opts Options, maxAdvanceDays int) bool {
	location := opts.Location
	if location == nil {
		location = time.UTC
	}
	now := opts.Now.In(location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, location)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, location)
	if day.Before(today) {
		return false
	}
	if maxAdvanceDays > 0 && day.After(today.AddDate(0, 0, maxAdvanceDays)) {
		return false
	}
	return true
}
