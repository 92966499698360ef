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

func TestSetScheduleAvailability(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1}
	slot := repo.addSlot(1, "MONDAY", "10:00", "11:00")

	uc := NewSetScheduleAvailability(repo, audit.NewDispatcher(nil))

	sched, err := uc.Execute(context.Background(), 1, slot.ID, false)
	require.NoError(t, err)
	assert.False(t, sched.Available)

	// Blocking an already-blocked slot is a no-op, not an error.
	sched, err = uc.Execute(context.Background(), 1, slot.ID, false)
	require.NoError(t, err)
	assert.False(t, sched.Available)

	sched, err = uc.Execute(context.Background(), 1, slot.ID, true)
	require.NoError(t, err)
	assert.True(t, sched.Available)
}

func TestSetScheduleAvailability_Ownership(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1}
	repo.barbers[2] = &models.Barber{ID: 2}
	slot := repo.addSlot(2, "MONDAY", "10:00", "11:00")

	uc := NewSetScheduleAvailability(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), 1, slot.ID, false)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "schedule_not_owned"))
	assert.True(t, httperr.IsKind(err, httperr.KindOwnership))
	assert.True(t, repo.schedules[slot.ID].Available, "slot untouched")
}

func TestSetScheduleAvailability_NotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1}

	uc := NewSetScheduleAvailability(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), 9, 1, false)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))

	_, err = uc.Execute(context.Background(), 1, 9, false)
	assert.True(t, httperr.IsBusiness(err, "schedule_not_found"))
}

func TestBlockDay(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1}
	a := repo.addSlot(1, "MONDAY", "09:00", "10:00")
	b := repo.addSlot(1, "monday", "14:00", "15:00")
	other := repo.addSlot(1, "TUESDAY", "09:00", "10:00")

	uc := NewBlockDay(repo, audit.NewDispatcher(nil))

	require.NoError(t, uc.Execute(context.Background(), 1, "Monday"))

	assert.False(t, repo.schedules[a.ID].Available)
	assert.False(t, repo.schedules[b.ID].Available)
	assert.True(t, repo.schedules[other.ID].Available, "other days untouched")
}

func TestBlockDay_NoSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1}

	uc := NewBlockDay(repo, audit.NewDispatcher(nil))

	err := uc.Execute(context.Background(), 1, "SUNDAY")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "no_schedules_for_day"))
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
