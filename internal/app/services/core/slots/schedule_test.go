package slots

import (
	"pidelocal-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeeklySchedule(t *testing.T) {
	t.Run("Sorts Periods", func(t *testing.T) {
		schedule, err := NewWeeklySchedule(map[time.Weekday][]Period{
			time.Friday: {{Start: 20 * 60, End: 23 * 60}, {Start: 12 * 60, End: 16 * 60}},
		})
		require.NoError(t, err)
		assert.Equal(t, []Period{{Start: 12 * 60, End: 16 * 60}, {Start: 20 * 60, End: 23 * 60}}, schedule.Periods(time.Friday))
	})

	t.Run("Adjacent Periods Are Allowed", func(t *testing.T) {
		_, err := NewWeeklySchedule(map[time.Weekday][]Period{
			time.Friday: {{Start: 12 * 60, End: 16 * 60}, {Start: 16 * 60, End: 18 * 60}},
		})
		assert.NoError(t, err)
	})

	t.Run("Rejects Overlap", func(t *testing.T) {
		_, err := NewWeeklySchedule(map[time.Weekday][]Period{
			time.Friday: {{Start: 12 * 60, End: 16 * 60}, {Start: 15 * 60, End: 18 * 60}},
		})
		assert.ErrorContains(t, err, "overlaps")
	})

	t.Run("Rejects Inverted Period", func(t *testing.T) {
		_, err := NewWeeklySchedule(map[time.Weekday][]Period{
			time.Friday: {{Start: 16 * 60, End: 12 * 60}},
		})
		assert.Error(t, err)
	})

	t.Run("Rejects Period Past Midnight", func(t *testing.T) {
		_, err := NewWeeklySchedule(map[time.Weekday][]Period{
			time.Friday: {{Start: 23 * 60, End: 25 * 60}},
		})
		assert.Error(t, err)
	})

	t.Run("Does Not Alias Input", func(t *testing.T) {
		input := map[time.Weekday][]Period{
			time.Friday: {{Start: 20 * 60, End: 23 * 60}, {Start: 12 * 60, End: 16 * 60}},
		}
		_, err := NewWeeklySchedule(input)
		require.NoError(t, err)
		assert.Equal(t, 20*60, input[time.Friday][0].Start)
	})
}

func TestParseWeeklySchedule(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		stored := map[string][]models.OpeningPeriod{
			"1": {{Open: "12:00", Close: "16:00"}, {Open: "20:00", Close: "24:00"}},
			"6": {{Open: "09:30", Close: "14:00"}},
		}
		schedule, err := ParseWeeklySchedule(stored)
		require.NoError(t, err)

		assert.Equal(t, []Period{{Start: 720, End: 960}, {Start: 1200, End: 1440}}, schedule.Periods(time.Monday))
		assert.Empty(t, schedule.Periods(time.Sunday))
		assert.Equal(t, stored, schedule.OpeningHours())
	})

	t.Run("Rejects Bad Weekday Key", func(t *testing.T) {
		_, err := ParseWeeklySchedule(map[string][]models.OpeningPeriod{
			"7": {{Open: "12:00", Close: "16:00"}},
		})
		assert.Error(t, err)
	})

	t.Run("Rejects Bad Time", func(t *testing.T) {
		_, err := ParseWeeklySchedule(map[string][]models.OpeningPeriod{
			"1": {{Open: "12h", Close: "16:00"}},
		})
		assert.Error(t, err)
	})
}
