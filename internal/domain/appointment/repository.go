package appointment

import (
	"context"
	"time"

	"github.com/fadeapp/fadeapp-api/internal/models"
)

type Repository interface {
	// -------- Referenced entities --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetBarbershop(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	HasActiveAppointmentAt(
		ctx context.Context,
		barberID uint,
		at time.Time,
	) (bool, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Queries --------
	ListAppointmentsByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsByBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	ListAppointmentsByBarbershop(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Appointment, error)

	// WithTx runs fn against a repository bound to a single transaction,
	// so existence checks, the conflict probe and the insert commit or
	// roll back as one unit.
	WithTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
