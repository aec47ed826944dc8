package schedule

import (
	"context"
	"fmt"

	"github.com/calensys/appointment-api/internal/audit"
	domain "github.com/calensys/appointment-api/internal/domain/schedule"
	"github.com/calensys/appointment-api/internal/httperr"
	"github.com/calensys/appointment-api/internal/models"
)

const defaultDayOffReason = "Public Holiday"

type AddDayOffInput struct {
	Date   string
	Reason string
}

type AddDayOff struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddDayOff(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddDayOff {
	return &AddDayOff{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddDayOff) Execute(
	ctx context.Context,
	in AddDayOffInput,
) (*models.DayOff, error) {

	existing, err := uc.repo.GetDayOff(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness(
			"day_off_exists",
			fmt.Sprintf("A public holiday already exists on %s", in.Date),
		)
	}

	reason := in.Reason
	if reason == "" {
		reason = defaultDayOffReason
	}

	dayOff := &models.DayOff{
		Date:   in.Date,
		Reason: reason,
	}

	if err := uc.repo.CreateDayOff(ctx, dayOff); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "day_off_added",
		Entity:   "day_off",
		EntityID: dayOff.ID,
		Metadata: map[string]string{"date": dayOff.Date},
	})

	return dayOff, nil
}
