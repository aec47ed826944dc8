package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calensys/appointment-api/internal/httperr"
	"github.com/calensys/appointment-api/internal/models"
)

func TestValidateBookingTime(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		minute   int
		wantCode string
	}{
		{name: "opening boundary", hour: 9, minute: 0},
		{name: "last bookable slot", hour: 17, minute: 30},
		{name: "half hour", hour: 10, minute: 30},
		{name: "off-grid minute", hour: 10, minute: 15, wantCode: "invalid_interval"},
		{name: "before opening", hour: 8, minute: 30, wantCode: "outside_booking_hours"},
		{name: "closing hour excluded", hour: 18, minute: 0, wantCode: "outside_booking_hours"},
		{name: "late evening", hour: 22, minute: 0, wantCode: "outside_booking_hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookingTime(tt.hour, tt.minute)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestIsWeekend(t *testing.T) {
	monday, err := ParseDate("2024-04-01")
	require.NoError(t, err)
	saturday, err := ParseDate("2024-04-06")
	require.NoError(t, err)
	sunday, err := ParseDate("2024-04-07")
	require.NoError(t, err)

	assert.False(t, IsWeekend(monday))
	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(sunday))
}

func TestInRangeHalfOpen(t *testing.T) {
	start := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 13, 0, 0, 0, time.UTC)

	assert.True(t, InRange(start, start, end), "start boundary is inside")
	assert.True(t, InRange(start.Add(30*time.Minute), start, end))
	assert.False(t, InRange(end, start, end), "end boundary is outside")
	assert.False(t, InRange(start.Add(-time.Minute), start, end))
}

func TestBlockedBy(t *testing.T) {
	ranges := []models.UnavailableHours{
		{Date: "2024-04-01", StartTime: "12:00", EndTime: "13:00"},
		{Date: "2024-04-01", StartTime: "15:00", EndTime: "15:30"},
	}

	at := func(clock string) time.Time {
		instant, err := At("2024-04-01", clock)
		require.NoError(t, err)
		return instant
	}

	assert.True(t, BlockedBy(ranges, at("12:00")))
	assert.True(t, BlockedBy(ranges, at("12:30")))
	assert.True(t, BlockedBy(ranges, at("15:00")))
	assert.False(t, BlockedBy(ranges, at("13:00")))
	assert.False(t, BlockedBy(ranges, at("15:30")))
	assert.False(t, BlockedBy(ranges, at("10:00")))
	assert.False(t, BlockedBy(nil, at("12:00")))
}

func TestBlocksIgnoresMalformedRange(t *testing.T) {
	instant, err := At("2024-04-01", "12:00")
	require.NoError(t, err)

	uh := models.UnavailableHours{Date: "2024-04-01", StartTime: "noon", EndTime: "13:00"}
	assert.False(t, Blocks(uh, instant))
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 30, minute)

	_, _, err = ParseClock("9am")
	assert.Error(t, err)
}
