package schedule

import (
	"context"
	"fmt"

	"github.com/calensys/appointment-api/internal/audit"
	domain "github.com/calensys/appointment-api/internal/domain/schedule"
	"github.com/calensys/appointment-api/internal/httperr"
	"github.com/calensys/appointment-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	Date string
	Time string

	// Slots is accepted for API compatibility and validated to 1..5,
	// but every booking consumes exactly one unit of capacity.
	Slots int
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// 1. Time must decompose into hour/minute on a 30-minute boundary,
	//    inside the 9-18 booking window.
	hour, minute, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(
			"invalid_interval",
			"Appointments must be scheduled in 30-minute intervals.",
		)
	}

	if err := domain.ValidateBookingTime(hour, minute); err != nil {
		return nil, err
	}

	// 2. Weekdays only.
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(
			"invalid_date",
			"Invalid appointment date.",
		)
	}

	if domain.IsWeekend(date) {
		return nil, httperr.ErrBusiness(
			"weekend",
			"Appointments are only available on weekdays.",
		)
	}

	// 3. Full-day exclusions.
	dayOff, err := uc.repo.GetDayOff(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	if dayOff != nil {
		return nil, httperr.ErrBusiness(
			"day_off",
			fmt.Sprintf("Appointments cannot be created on %s due to: %s", in.Date, dayOff.Reason),
		)
	}

	// 4. Sub-day exclusions.
	ranges, err := uc.repo.ListUnavailableHoursForDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	instant, err := domain.At(in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(
			"invalid_date",
			"Invalid appointment date.",
		)
	}

	if domain.BlockedBy(ranges, instant) {
		return nil, httperr.ErrBusiness(
			"unavailable_hours",
			"Appointments cannot be scheduled during unavailable hours.",
		)
	}

	// 5. Consume capacity and record the appointment in one transaction.
	ap, err := uc.repo.BookSlot(ctx, in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
