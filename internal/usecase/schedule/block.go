package schedule

import (
	"context"

	"github.com/fadeapp/fadeapp-api/internal/audit"
	domain "github.com/fadeapp/fadeapp-api/internal/domain/schedule"
	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

// SetScheduleAvailability flips a single slot's availability flag.
// Blocking an already-blocked slot is a no-op, not an error.
type SetScheduleAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetScheduleAvailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetScheduleAvailability {
	return &SetScheduleAvailability{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetScheduleAvailability) Execute(
	ctx context.Context,
	barberID uint,
	scheduleID uint,
	available bool,
) (*models.Schedule, error) {

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found")
	}

	sched, err := uc.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, httperr.ErrNotFound("schedule_not_found")
	}

	if sched.BarberID != barber.ID {
		return nil, httperr.ErrOwnership("schedule_not_owned")
	}

	sched.Available = available

	if err := uc.repo.UpdateSchedule(ctx, sched); err != nil {
		return nil, err
	}

	action := "schedule_blocked"
	if available {
		action = "schedule_unblocked"
	}
	uc.audit.Dispatch(audit.Event{
		ActorID:  &barber.ID,
		Action:   action,
		Entity:   "schedule",
		EntityID: &sched.ID,
	})

	return sched, nil
}

// BlockDay marks every slot the barber has on the given day unavailable.
// A day with no slots is reported as not found rather than silently done.
type BlockDay struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBlockDay(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BlockDay {
	return &BlockDay{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BlockDay) Execute(
	ctx context.Context,
	barberID uint,
	day string,
) error {

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return httperr.ErrNotFound("barber_not_found")
	}

	return uc.repo.WithTx(ctx, func(r domain.Repository) error {
		schedules, err := r.ListByBarberAndDay(ctx, barber.ID, day)
		if err != nil {
			return err
		}
		if len(schedules) == 0 {
			return httperr.ErrNotFound("no_schedules_for_day")
		}

		for i := range schedules {
			schedules[i].Available = false
		}

		if err := r.SaveSchedules(ctx, schedules); err != nil {
			return err
		}

		uc.audit.Dispatch(audit.Event{
			ActorID:  &barber.ID,
			Action:   "schedule_day_blocked",
			Entity:   "schedule",
			Metadata: map[string]any{"day": day, "slots": len(schedules)},
		})

		return nil
	})
}
