package appointment

import (
	"context"

	"github.com/fadeapp/fadeapp-api/internal/audit"
	domain "github.com/fadeapp/fadeapp-api/internal/domain/appointment"
	"github.com/fadeapp/fadeapp-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the appointment permanently. Completed appointments are
// part of the shop's history and cannot be deleted.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return httperr.ErrNotFound("appointment_not_found")
	}

	if err := domain.CanDelete(ap.Status); err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
