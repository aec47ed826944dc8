package schedule

import (
	"context"

	"github.com/calensys/appointment-api/internal/audit"
	domain "github.com/calensys/appointment-api/internal/domain/schedule"
	"github.com/calensys/appointment-api/internal/httperr"
	"github.com/calensys/appointment-api/internal/models"
)

type CreateSlotInput struct {
	Date     string
	Time     string
	Capacity int
}

type CreateSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSlot {
	return &CreateSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateSlot) Execute(
	ctx context.Context,
	in CreateSlotInput,
) (*models.Slot, error) {

	existing, err := uc.repo.GetSlot(ctx, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness(
			"slot_exists",
			"A slot already exists for the given date and time",
		)
	}

	slot := &models.Slot{
		Date:              in.Date,
		Time:              in.Time,
		RemainingCapacity: in.Capacity,
	}

	if err := uc.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "slot_created",
		Entity:   "slot",
		EntityID: slot.ID,
		Metadata: map[string]any{
			"date":     slot.Date,
			"time":     slot.Time,
			"capacity": slot.RemainingCapacity,
		},
	})

	return slot, nil
}
