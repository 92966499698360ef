package schedule

import (
	"context"

	"github.com/fadeapp/fadeapp-api/internal/models"
)

type Repository interface {
	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	BarberExists(
		ctx context.Context,
		id uint,
	) (bool, error)

	// -------- Schedule --------
	GetSchedule(
		ctx context.Context,
		id uint,
	) (*models.Schedule, error)

	ListByBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Schedule, error)

	ListByBarberAndDay(
		ctx context.Context,
		barberID uint,
		day string,
	) ([]models.Schedule, error)

	CreateSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error

	UpdateSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error

	SaveSchedules(
		ctx context.Context,
		schedules []models.Schedule,
	) error

	DeleteSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error

	// -------- Appointments (delete guard) --------
	ListAppointmentsByBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	WithTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
