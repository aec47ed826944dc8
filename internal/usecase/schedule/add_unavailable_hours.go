package schedule

import (
	"context"

	"github.com/calensys/appointment-api/internal/audit"
	domain "github.com/calensys/appointment-api/internal/domain/schedule"
	"github.com/calensys/appointment-api/internal/httperr"
	"github.com/calensys/appointment-api/internal/models"
)

type AddUnavailableHoursInput struct {
	Date      string
	StartTime string
	EndTime   string
}

type AddUnavailableHours struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddUnavailableHours(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddUnavailableHours {
	return &AddUnavailableHours{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddUnavailableHours) Execute(
	ctx context.Context,
	in AddUnavailableHoursInput,
) (*models.UnavailableHours, error) {

	// Only an identical (date, start, end) triple conflicts. Different
	// ranges on the same date may overlap freely.
	exists, err := uc.repo.HasUnavailableHours(
		ctx,
		in.Date,
		in.StartTime,
		in.EndTime,
	)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness(
			"unavailable_hours_exist",
			"Unavailable hours already set for this time range",
		)
	}

	uh := &models.UnavailableHours{
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}

	if err := uc.repo.CreateUnavailableHours(ctx, uh); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "unavailable_hours_added",
		Entity:   "unavailable_hours",
		EntityID: uh.ID,
		Metadata: map[string]string{
			"date":  uh.Date,
			"start": uh.StartTime,
			"end":   uh.EndTime,
		},
	})

	return uh, nil
}
