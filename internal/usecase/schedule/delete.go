package schedule

import (
	"context"

	"github.com/fadeapp/fadeapp-api/internal/audit"
	appointmentdomain "github.com/fadeapp/fadeapp-api/internal/domain/appointment"
	domain "github.com/fadeapp/fadeapp-api/internal/domain/schedule"
	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

type DeleteSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteSchedule {
	return &DeleteSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes a slot unless its barber holds ANY active appointment.
// The guard is deliberately barber-wide, not scoped to the slot's time
// window; see DESIGN.md before narrowing it. The removed slot is returned
// so callers can invalidate derived state.
func (uc *DeleteSchedule) Execute(
	ctx context.Context,
	scheduleID uint,
) (*models.Schedule, error) {

	sched, err := uc.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, httperr.ErrNotFound("schedule_not_found")
	}

	err = uc.repo.WithTx(ctx, func(r domain.Repository) error {
		appointments, err := r.ListAppointmentsByBarber(ctx, sched.BarberID)
		if err != nil {
			return err
		}

		for _, ap := range appointments {
			if appointmentdomain.IsActive(ap.Status) {
				return httperr.ErrInvalidState("schedule_has_active_appointments")
			}
		}

		if err := r.DeleteSchedule(ctx, sched); err != nil {
			return err
		}

		uc.audit.Dispatch(audit.Event{
			ActorID:  &sched.BarberID,
			Action:   "schedule_deleted",
			Entity:   "schedule",
			EntityID: &sched.ID,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sched, nil
}
