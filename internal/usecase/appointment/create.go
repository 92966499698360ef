package appointment

import (
	"context"
	"time"

	"github.com/fadeapp/fadeapp-api/internal/audit"
	domain "github.com/fadeapp/fadeapp-api/internal/domain/appointment"
	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID     uint
	BarberID     uint
	BarbershopID uint
	ServiceID    uint

	ScheduledAt time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Required references
	// --------------------------------------------------
	if in.ClientID == 0 {
		return nil, httperr.ErrValidation("client_required")
	}
	if in.BarberID == 0 || in.BarbershopID == 0 || in.ServiceID == 0 {
		return nil, httperr.ErrValidation("missing_entity_ids")
	}

	var created *models.Appointment

	err := uc.repo.WithTx(ctx, func(r domain.Repository) error {

		// ----------------------------------------------
		// 2. Each reference must resolve
		// ----------------------------------------------
		client, err := r.GetClient(ctx, in.ClientID)
		if err != nil {
			return httperr.ErrNotFound("client_not_found")
		}

		barber, err := r.GetBarber(ctx, in.BarberID)
		if err != nil {
			return httperr.ErrNotFound("barber_not_found")
		}

		shop, err := r.GetBarbershop(ctx, in.BarbershopID)
		if err != nil {
			return httperr.ErrNotFound("barbershop_not_found")
		}

		service, err := r.GetService(ctx, in.ServiceID)
		if err != nil {
			return httperr.ErrNotFound("service_not_found")
		}

		// ----------------------------------------------
		// 3. Double-booking check (row-locked in the repo)
		// ----------------------------------------------
		busy, err := r.HasActiveAppointmentAt(ctx, barber.ID, in.ScheduledAt)
		if err != nil {
			return err
		}
		if busy {
			return httperr.ErrConflict("time_conflict")
		}

		// ----------------------------------------------
		// 4. Shop operating window (boundary-inclusive)
		// ----------------------------------------------
		if !domain.WithinShopHours(shop, in.ScheduledAt) {
			return httperr.ErrValidation("outside_business_hours")
		}

		// ----------------------------------------------
		// 5. Persist with the loaded entities and a forced
		//    initial status, ignoring whatever came in
		// ----------------------------------------------
		ap := &models.Appointment{
			ClientID:     client.ID,
			Client:       *client,
			BarberID:     barber.ID,
			Barber:       *barber,
			BarbershopID: shop.ID,
			Barbershop:   *shop,
			ServiceID:    service.ID,
			Service:      *service,
			ScheduledAt:  in.ScheduledAt,
			Status:       string(domain.InitialStatus()),
		}

		if err := r.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &created.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}
