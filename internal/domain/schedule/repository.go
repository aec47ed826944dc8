package schedule

import (
	"context"

	"github.com/calensys/appointment-api/internal/models"
)

// Repository is the persistence boundary for the scheduling domain.
// Lookups return (nil, nil) when no record exists.
type Repository interface {
	// -------- Slot inventory --------
	GetSlot(
		ctx context.Context,
		date string,
		time string,
	) (*models.Slot, error)

	ListSlotsForDate(
		ctx context.Context,
		date string,
	) ([]models.Slot, error)

	CreateSlot(
		ctx context.Context,
		slot *models.Slot,
	) error

	// -------- Days off --------
	GetDayOff(
		ctx context.Context,
		date string,
	) (*models.DayOff, error)

	ListDaysOff(
		ctx context.Context,
	) ([]models.DayOff, error)

	CreateDayOff(
		ctx context.Context,
		dayOff *models.DayOff,
	) error

	// -------- Unavailable hours --------
	ListUnavailableHoursForDate(
		ctx context.Context,
		date string,
	) ([]models.UnavailableHours, error)

	ListUnavailableHours(
		ctx context.Context,
	) ([]models.UnavailableHours, error)

	HasUnavailableHours(
		ctx context.Context,
		date string,
		startTime string,
		endTime string,
	) (bool, error)

	CreateUnavailableHours(
		ctx context.Context,
		uh *models.UnavailableHours,
	) error

	// -------- Appointments --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// BookSlot atomically consumes one unit of capacity for (date, time)
	// and records the resulting appointment. The two writes share one
	// transaction so capacity is never consumed without a matching record.
	BookSlot(
		ctx context.Context,
		date string,
		time string,
	) (*models.Appointment, error)

	// DeleteAppointment removes the appointment and restores one unit of
	// capacity to the matching slot when that slot still exists.
	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
