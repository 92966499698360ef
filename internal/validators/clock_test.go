package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClockTime(t *testing.T) {
	assert.True(t, IsClockTime("00:00"))
	assert.True(t, IsClockTime("09:00"))
	assert.True(t, IsClockTime("23:59"))

	assert.False(t, IsClockTime("9am"))
	assert.False(t, IsClockTime("9:00"))
	assert.False(t, IsClockTime("24:00"))
	assert.False(t, IsClockTime("18:60"))
	assert.False(t, IsClockTime(""))
}
