package schedule

import (
	"context"

	"github.com/fadeapp/fadeapp-api/internal/audit"
	domain "github.com/fadeapp/fadeapp-api/internal/domain/schedule"
	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

type CreateScheduleInput struct {
	BarberID  uint
	Day       string
	StartTime string
	EndTime   string
}

type CreateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSchedule {
	return &CreateSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute adds a slot to the barber's timetable. The slot may not overlap
// any existing slot on the same day; new slots always start out available.
func (uc *CreateSchedule) Execute(
	ctx context.Context,
	in CreateScheduleInput,
) (*models.Schedule, error) {

	if in.BarberID == 0 {
		return nil, httperr.ErrValidation("barber_required")
	}

	var created *models.Schedule

	err := uc.repo.WithTx(ctx, func(r domain.Repository) error {

		barber, err := r.GetBarber(ctx, in.BarberID)
		if err != nil {
			return httperr.ErrNotFound("barber_not_found")
		}

		candidate := &models.Schedule{
			BarberID:  barber.ID,
			Barber:    *barber,
			Day:       in.Day,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Available: true,
		}

		existing, err := r.ListByBarber(ctx, barber.ID)
		if err != nil {
			return err
		}

		for i := range existing {
			conflicts, err := domain.ConflictsWith(candidate, &existing[i])
			if err != nil {
				return err
			}
			if conflicts {
				return httperr.ErrConflict("schedule_overlap")
			}
		}

		if err := r.CreateSchedule(ctx, candidate); err != nil {
			return err
		}

		created = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &created.BarberID,
		Action:   "schedule_created",
		Entity:   "schedule",
		EntityID: &created.ID,
	})

	return created, nil
}
