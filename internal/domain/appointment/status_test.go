package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadeapp/fadeapp-api/internal/httperr"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"confirmed", "CONFIRMED"},
		{"Cancelled", "CANCELLED"},
		{"PENDING", "PENDING"},
		{"no_show", "NO_SHOW"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive("PENDING"))
	assert.True(t, IsActive("CONFIRMED"))
	assert.True(t, IsActive("pending"))
	assert.True(t, IsActive("Confirmed"))

	assert.False(t, IsActive("COMPLETED"))
	assert.False(t, IsActive("CANCELLED"))
	assert.False(t, IsActive(""))
}

func TestCanDelete(t *testing.T) {
	err := CanDelete("COMPLETED")
	assert.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))

	// Only the exact upper-case form blocks deletion.
	assert.NoError(t, CanDelete("completed"))
	assert.NoError(t, CanDelete("Completed"))
	assert.NoError(t, CanDelete("PENDING"))
	assert.NoError(t, CanDelete("CANCELLED"))
}
