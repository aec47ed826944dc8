package schedule

import (
	"context"
	"fmt"

	domain "github.com/calensys/appointment-api/internal/domain/schedule"
	"github.com/calensys/appointment-api/internal/httperr"
	"github.com/calensys/appointment-api/internal/models"
)

type FindAvailableSlots struct {
	repo domain.Repository
}

func NewFindAvailableSlots(repo domain.Repository) *FindAvailableSlots {
	return &FindAvailableSlots{repo: repo}
}

func (uc *FindAvailableSlots) Execute(
	ctx context.Context,
	date string,
) ([]models.Slot, error) {

	dayOff, err := uc.repo.GetDayOff(ctx, date)
	if err != nil {
		return nil, err
	}

	// A day off blocks the whole date, not just its slots.
	if dayOff != nil {
		return nil, httperr.ErrNotFound(
			"no_availability",
			fmt.Sprintf("No slots available on %s (Reason: %s)", date, dayOff.Reason),
		)
	}

	ranges, err := uc.repo.ListUnavailableHoursForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	slots, err := uc.repo.ListSlotsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	available := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		instant, err := domain.At(slot.Date, slot.Time)
		if err == nil && domain.BlockedBy(ranges, instant) {
			continue
		}

		// Capacity is deliberately not part of this filter: the result
		// is the day's slot listing, and slots at zero remain visible.
		available = append(available, slot)
	}

	return available, nil
}
