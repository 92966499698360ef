package schedule

import (
	"context"

	domain "github.com/fadeapp/fadeapp-api/internal/domain/schedule"
	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

type ListSchedulesByBarber struct {
	repo domain.Repository
}

func NewListSchedulesByBarber(repo domain.Repository) *ListSchedulesByBarber {
	return &ListSchedulesByBarber{repo: repo}
}

func (uc *ListSchedulesByBarber) Execute(
	ctx context.Context,
	barberID uint,
) ([]models.Schedule, error) {

	exists, err := uc.repo.BarberExists(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrNotFound("barber_not_found")
	}

	return uc.repo.ListByBarber(ctx, barberID)
}
