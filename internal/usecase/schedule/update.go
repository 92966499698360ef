package schedule

import (
	"context"

	"github.com/fadeapp/fadeapp-api/internal/audit"
	domain "github.com/fadeapp/fadeapp-api/internal/domain/schedule"
	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

type UpdateScheduleInput struct {
	Day       string
	StartTime string
	EndTime   string
	Available bool
}

type UpdateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSchedule {
	return &UpdateSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the slot's day, window and availability wholesale.
func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	scheduleID uint,
	in UpdateScheduleInput,
) (*models.Schedule, error) {

	sched, err := uc.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, httperr.ErrNotFound("schedule_not_found")
	}

	sched.Day = in.Day
	sched.StartTime = in.StartTime
	sched.EndTime = in.EndTime
	sched.Available = in.Available

	if err := uc.repo.UpdateSchedule(ctx, sched); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &sched.BarberID,
		Action:   "schedule_updated",
		Entity:   "schedule",
		EntityID: &sched.ID,
	})

	return sched, nil
}
