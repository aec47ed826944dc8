package schedule

import (
	"context"

	"github.com/calensys/appointment-api/internal/audit"
	domain "github.com/calensys/appointment-api/internal/domain/schedule"
	"github.com/calensys/appointment-api/internal/httperr"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id string,
) error {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return err
	}
	if ap == nil {
		return httperr.ErrNotFound(
			"appointment_not_found",
			"Appointment not found",
		)
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{
			"date": ap.AppointmentDate,
			"time": ap.AppointmentTime,
		},
	})

	return nil
}
