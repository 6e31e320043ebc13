package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReminderTime(t *testing.T) {
	loc := time.FixedZone("PKT", 5*3600)
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, loc)

	testCases := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "hours and minutes", value: "18:45", want: time.Date(2026, 3, 14, 18, 45, 0, 0, loc)},
		{name: "with seconds", value: "09:05:30", want: time.Date(2026, 3, 14, 9, 5, 30, 0, loc)},
		{name: "rfc3339", value: "2026-03-15T08:00:00Z", want: time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)},
		{name: "blank", value: "  ", wantErr: true},
		{name: "garbage", value: "tomorrow", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseReminderTime(tc.value, now)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %v got %v", tc.want, got)
		})
	}
}

func TestParseReminderTime_DaylightSavingDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// clocks go forward at 02:00 on 2024-03-10 and back at 02:00 on 2024-11-03
	testCases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{name: "spring forward", now: time.Date(2024, 3, 10, 0, 30, 0, 0, loc), want: time.Date(2024, 3, 10, 9, 0, 0, 0, loc)},
		{name: "fall back", now: time.Date(2024, 11, 3, 0, 30, 0, 0, loc), want: time.Date(2024, 11, 3, 9, 0, 0, 0, loc)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseReminderTime("09:00", tc.now)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %v got %v", tc.want, got)
			assert.Equal(t, 9, got.Hour())
			assert.Equal(t, 0, got.Minute())
		})
	}
}

func TestLoadLocationFallsBackToLocal(t *testing.T) {
	assert.Equal(t, time.Local, LoadLocation("Not/AZone"))
	assert.Equal(t, time.Local, LoadLocation(""))
}
