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

func TestUpdateSchedule(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1}
	slot := repo.addSlot(1, "MONDAY", "10:00", "11:00")

	uc := NewUpdateSchedule(repo, audit.NewDispatcher(nil))

	sched, err := uc.Execute(context.Background(), slot.ID, UpdateScheduleInput{
		Day:       "FRIDAY",
		StartTime: "14:00",
		EndTime:   "16:00",
		Available: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "FRIDAY", sched.Day)
	assert.Equal(t, "14:00", sched.StartTime)
	assert.Equal(t, "16:00", sched.EndTime)
	assert.False(t, sched.Available)
}

func TestUpdateSchedule_NoOverlapRecheck(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1}
	repo.addSlot(1, "MONDAY", "10:00", "11:00")
	other := repo.addSlot(1, "TUESDAY", "10:00", "11:00")

	uc := NewUpdateSchedule(repo, audit.NewDispatcher(nil))

	// Updates replace the slot wholesale and do not re-run the creation-time
	// overlap check.
	_, err := uc.Execute(context.Background(), other.ID, UpdateScheduleInput{
		Day: "MONDAY", StartTime: "10:30", EndTime: "11:30", Available: true,
	})
	assert.NoError(t, err)
}

func TestUpdateSchedule_NotFound(t *testing.T) {
	uc := NewUpdateSchedule(newFakeRepo(), audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), 42, UpdateScheduleInput{
		Day: "MONDAY", StartTime: "10:00", EndTime: "11:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "schedule_not_found"))
}

func TestListSchedulesByBarber(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1}
	repo.addSlot(1, "MONDAY", "10:00", "11:00")
	repo.addSlot(1, "TUESDAY", "10:00", "11:00")
	repo.barbers[2] = &models.Barber{ID: 2}
	repo.addSlot(2, "MONDAY", "10:00", "11:00")

	uc := NewListSchedulesByBarber(repo)

	schedules, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, schedules, 2)
}

func TestListSchedulesByBarber_UnknownBarber(t *testing.T) {
	uc := NewListSchedulesByBarber(newFakeRepo())

	_, err := uc.Execute(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}
