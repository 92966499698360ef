package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadeapp/fadeapp-api/internal/audit"
	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

func TestDeleteAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{ID: 1, Status: "PENDING"}
	repo.nextID = 1

	uc := NewDeleteAppointment(repo, audit.NewDispatcher(nil))

	require.NoError(t, uc.Execute(context.Background(), 1))
	assert.Empty(t, repo.appointments)
}

func TestDeleteAppointment_CompletedIsKept(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{ID: 1, Status: "COMPLETED"}
	repo.nextID = 1

	uc := NewDeleteAppointment(repo, audit.NewDispatcher(nil))

	err := uc.Execute(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment_completed"))
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))
	assert.Len(t, repo.appointments, 1)
}

func TestDeleteAppointment_NotFound(t *testing.T) {
	uc := NewDeleteAppointment(newFakeRepo(), audit.NewDispatcher(nil))

	err := uc.Execute(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
