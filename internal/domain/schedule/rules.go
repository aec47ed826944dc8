package schedule

import (
	"time"

	"github.com/calensys/appointment-api/internal/httperr"
	"github.com/calensys/appointment-api/internal/models"
)

// ===============================
// Booking Rules
// ===============================

const (
	OpeningHour = 9
	ClosingHour = 18

	SlotIntervalMinutes = 30
)

// ValidateBookingTime enforces the booking window: appointments start
// on a half-hour boundary, between 09:00 and 17:30 inclusive.
func ValidateBookingTime(hour, minute int) error {
	if minute%SlotIntervalMinutes != 0 {
		return httperr.ErrBusiness(
			"invalid_interval",
			"Appointments must be scheduled in 30-minute intervals.",
		)
	}

	if hour < OpeningHour || hour >= ClosingHour {
		return httperr.ErrBusiness(
			"outside_booking_hours",
			"Appointments are only available between 9 AM and 6 PM.",
		)
	}

	return nil
}

func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Blocks reports whether the range covers the given instant.
// Malformed ranges never block.
func Blocks(uh models.UnavailableHours, instant time.Time) bool {
	start, err := At(uh.Date, uh.StartTime)
	if err != nil {
		return false
	}

	end, err := At(uh.Date, uh.EndTime)
	if err != nil {
		return false
	}

	return InRange(instant, start, end)
}

// BlockedBy reports whether any of the ranges covers instant.
func BlockedBy(ranges []models.UnavailableHours, instant time.Time) bool {
	for _, uh := range ranges {
		if Blocks(uh, instant) {
			return true
		}
	}
	return false
}
