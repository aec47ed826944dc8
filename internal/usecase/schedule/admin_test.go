package schedule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calensys/appointment-api/internal/httperr"
	"github.com/calensys/appointment-api/internal/usecase/schedule"
)

func TestAddDayOff_DefaultReasonAndConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dayOff, err := env.addDayOff.Execute(ctx, schedule.AddDayOffInput{Date: "2024-12-25"})
	require.NoError(t, err)
	assert.Equal(t, "Public Holiday", dayOff.Reason)
	assert.NotEmpty(t, dayOff.ID)

	_, err = env.addDayOff.Execute(ctx, schedule.AddDayOffInput{
		Date:   "2024-12-25",
		Reason: "Christmas Day",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "day_off_exists"))
	assert.Contains(t, err.Error(), "A public holiday already exists on 2024-12-25")
}

func TestAddUnavailableHours_ConflictOnlyOnIdenticalTriple(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := schedule.AddUnavailableHoursInput{
		Date:      "2024-04-01",
		StartTime: "12:00",
		EndTime:   "13:00",
	}

	_, err := env.addUnavailable.Execute(ctx, in)
	require.NoError(t, err)

	_, err = env.addUnavailable.Execute(ctx, in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "unavailable_hours_exist"))
	assert.Contains(t, err.Error(), "Unavailable hours already set for this time range")

	// Overlapping but different ranges are allowed.
	_, err = env.addUnavailable.Execute(ctx, schedule.AddUnavailableHoursInput{
		Date:      "2024-04-01",
		StartTime: "12:30",
		EndTime:   "13:30",
	})
	assert.NoError(t, err)

	ranges, err := env.repo.ListUnavailableHoursForDate(ctx, "2024-04-01")
	require.NoError(t, err)
	assert.Len(t, ranges, 2)
}

func TestCreateSlot_ConflictOnSameDateTime(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	slot := env.mustCreateSlot(t, "2024-04-01", "10:00", 3)
	assert.Equal(t, 3, slot.RemainingCapacity)

	_, err := env.createSlot.Execute(ctx, schedule.CreateSlotInput{
		Date:     "2024-04-01",
		Time:     "10:00",
		Capacity: 1,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_exists"))
	assert.Contains(t, err.Error(), "A slot already exists for the given date and time")

	// Same time on another date is a different slot.
	_, err = env.createSlot.Execute(ctx, schedule.CreateSlotInput{
		Date:     "2024-04-02",
		Time:     "10:00",
		Capacity: 1,
	})
	assert.NoError(t, err)
}

func TestListDaysOffAndUnavailableHours(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.addDayOff.Execute(ctx, schedule.AddDayOffInput{Date: "2024-12-25"})
	require.NoError(t, err)
	_, err = env.addDayOff.Execute(ctx, schedule.AddDayOffInput{Date: "2024-01-01", Reason: "New Year"})
	require.NoError(t, err)

	daysOff, err := env.repo.ListDaysOff(ctx)
	require.NoError(t, err)
	require.Len(t, daysOff, 2)
	assert.Equal(t, "2024-01-01", daysOff[0].Date)

	_, err = env.addUnavailable.Execute(ctx, schedule.AddUnavailableHoursInput{
		Date:      "2024-04-01",
		StartTime: "12:00",
		EndTime:   "13:00",
	})
	require.NoError(t, err)

	ranges, err := env.repo.ListUnavailableHours(ctx)
	require.NoError(t, err)
	assert.Len(t, ranges, 1)
}
