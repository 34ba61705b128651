package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:05", 545, false},
		{"23:59", 1439, false},
		{"24:00", 1440, false},
		{"24:01", 0, true},
		{"9:05", 0, true},
		{"12:60", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHHMM(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.want < MinutesPerDay {
				assert.Equal(t, tt.input, FormatHHMM(got))
			}
		})
	}
}

func TestParseISODate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	date, err := ParseISODate("2025-03-30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, date.Weekday())
	assert.Equal(t, loc, date.Location())

	_, err = ParseISODate("30/03/2025", loc)
	assert.Error(t, err)
}
