package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadeapp/fadeapp-api/internal/audit"
	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

func newCreateUC(repo *fakeRepo) *CreateSchedule {
	return NewCreateSchedule(repo, audit.NewDispatcher(nil))
}

func TestCreateSchedule_HappyPath(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1}

	sched, err := newCreateUC(repo).Execute(context.Background(), CreateScheduleInput{
		BarberID:  1,
		Day:       "MONDAY",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err)

	assert.True(t, sched.Available, "new slots start out available")
	assert.Equal(t, uint(1), sched.BarberID)
	assert.Len(t, repo.schedules, 1)
}

func TestCreateSchedule_BarberRequired(t *testing.T) {
	_, err := newCreateUC(newFakeRepo()).Execute(context.Background(), CreateScheduleInput{
		Day: "MONDAY", StartTime: "10:00", EndTime: "11:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "barber_required"))
}

func TestCreateSchedule_BarberNotFound(t *testing.T) {
	_, err := newCreateUC(newFakeRepo()).Execute(context.Background(), CreateScheduleInput{
		BarberID: 9, Day: "MONDAY", StartTime: "10:00", EndTime: "11:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestCreateSchedule_Overlap(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1}
	repo.addSlot(1, "MONDAY", "10:00", "11:00")

	uc := newCreateUC(repo)

	// Back-to-back slots share an endpoint and are rejected.
	_, err := uc.Execute(context.Background(), CreateScheduleInput{
		BarberID: 1, Day: "monday", StartTime: "11:00", EndTime: "12:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "schedule_overlap"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))

	_, err = uc.Execute(context.Background(), CreateScheduleInput{
		BarberID: 1, Day: "MONDAY", StartTime: "11:01", EndTime: "12:00",
	})
	assert.NoError(t, err)

	// Same window on another day is fine.
	_, err = uc.Execute(context.Background(), CreateScheduleInput{
		BarberID: 1, Day: "TUESDAY", StartTime: "10:00", EndTime: "11:00",
	})
	assert.NoError(t, err)
}

func TestCreateSchedule_InvalidTime(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1}
	repo.addSlot(1, "MONDAY", "10:00", "11:00")

	_, err := newCreateUC(repo).Execute(context.Background(), CreateScheduleInput{
		BarberID: 1, Day: "MONDAY", StartTime: "ten", EndTime: "11:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}
