package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/calensys/appointment-api/internal/domain/schedule"
	"github.com/calensys/appointment-api/internal/httperr"
	"github.com/calensys/appointment-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Slot inventory
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSlot(
	ctx context.Context,
	date string,
	time string,
) (*models.Slot, error) {

	var slot models.Slot
	err := r.db.WithContext(ctx).
		Where("date = ? AND time = ?", date, time).
		First(&slot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *ScheduleGormRepository) ListSlotsForDate(
	ctx context.Context,
	date string,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *ScheduleGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.Slot,
) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

// --------------------------------------------------
// Days off
// --------------------------------------------------

func (r *ScheduleGormRepository) GetDayOff(
	ctx context.Context,
	date string,
) (*models.DayOff, error) {

	var dayOff models.DayOff
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		First(&dayOff).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &dayOff, nil
}

func (r *ScheduleGormRepository) ListDaysOff(
	ctx context.Context,
) ([]models.DayOff, error) {

	var daysOff []models.DayOff
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&daysOff).Error; err != nil {
		return nil, err
	}

	return daysOff, nil
}

func (r *ScheduleGormRepository) CreateDayOff(
	ctx context.Context,
	dayOff *models.DayOff,
) error {
	return r.db.WithContext(ctx).Create(dayOff).Error
}

// --------------------------------------------------
// Unavailable hours
// --------------------------------------------------

func (r *ScheduleGormRepository) ListUnavailableHoursForDate(
	ctx context.Context,
	date string,
) ([]models.UnavailableHours, error) {

	var ranges []models.UnavailableHours
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&ranges).Error; err != nil {
		return nil, err
	}

	return ranges, nil
}

func (r *ScheduleGormRepository) ListUnavailableHours(
	ctx context.Context,
) ([]models.UnavailableHours, error) {

	var ranges []models.UnavailableHours
	if err := r.db.WithContext(ctx).
		Order("date ASC, start_time ASC").
		Find(&ranges).Error; err != nil {
		return nil, err
	}

	return ranges, nil
}

func (r *ScheduleGormRepository) HasUnavailableHours(
	ctx context.Context,
	date string,
	startTime string,
	endTime string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UnavailableHours{}).
		Where(
			"date = ? AND start_time = ? AND end_time = ?",
			date, startTime, endTime,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ScheduleGormRepository) CreateUnavailableHours(
	ctx context.Context,
	uh *models.UnavailableHours,
) error {
	return r.db.WithContext(ctx).Create(uh).Error
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *ScheduleGormRepository) BookSlot(
	ctx context.Context,
	date string,
	time string,
) (*models.Appointment, error) {

	var created *models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Conditional decrement: the WHERE clause keeps concurrent
		// bookings from driving capacity below zero.
		res := tx.Model(&models.Slot{}).
			Where(
				"date = ? AND time = ? AND remaining_capacity > 0",
				date, time,
			).
			Update("remaining_capacity", gorm.Expr("remaining_capacity - 1"))

		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return httperr.ErrBusiness(
				"no_available_slots",
				"No available slots for the given date and time.",
			)
		}

		ap := &models.Appointment{
			AppointmentDate: date,
			AppointmentTime: time,
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *ScheduleGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Capacity restoration is best-effort: when the slot is gone
		// the appointment is still deleted.
		res := tx.Model(&models.Slot{}).
			Where(
				"date = ? AND time = ?",
				ap.AppointmentDate, ap.AppointmentTime,
			).
			Update("remaining_capacity", gorm.Expr("remaining_capacity + 1"))

		if res.Error != nil {
			return res.Error
		}

		return tx.Delete(&models.Appointment{}, "id = ?", ap.ID).Error
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
