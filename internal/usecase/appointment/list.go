package appointment

import (
	"context"

	domain "github.com/fadeapp/fadeapp-api/internal/domain/appointment"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

// Plain projections over the appointment store, insertion-ordered.

type ListAppointmentsByClient struct {
	repo domain.Repository
}

func NewListAppointmentsByClient(repo domain.Repository) *ListAppointmentsByClient {
	return &ListAppointmentsByClient{repo: repo}
}

func (uc *ListAppointmentsByClient) Execute(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsByClient(ctx, clientID)
}

type ListAppointmentsByBarber struct {
	repo domain.Repository
}

func NewListAppointmentsByBarber(repo domain.Repository) *ListAppointmentsByBarber {
	return &ListAppointmentsByBarber{repo: repo}
}

func (uc *ListAppointmentsByBarber) Execute(
	ctx context.Context,
	barberID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsByBarber(ctx, barberID)
}

type ListAppointmentsByBarbershop struct {
	repo domain.Repository
}

func NewListAppointmentsByBarbershop(repo domain.Repository) *ListAppointmentsByBarbershop {
	return &ListAppointmentsByBarbershop{repo: repo}
}

func (uc *ListAppointmentsByBarbershop) Execute(
	ctx context.Context,
	barbershopID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsByBarbershop(ctx, barbershopID)
}
