package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fadeapp/fadeapp-api/internal/models"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestWithinShopHours(t *testing.T) {
	shop := &models.Barbershop{OpeningTime: "09:00", ClosingTime: "18:00"}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before opening", at(8, 59), false},
		{"exactly at opening", at(9, 0), true},
		{"mid day", at(13, 30), true},
		{"exactly at closing", at(18, 0), true},
		{"after closing", at(18, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinShopHours(shop, tt.at))
		})
	}
}

func TestWithinShopHours_UnsetBounds(t *testing.T) {
	// A shop without a configured window accepts any time.
	assert.True(t, WithinShopHours(&models.Barbershop{}, at(3, 0)))
	assert.True(t, WithinShopHours(&models.Barbershop{OpeningTime: "09:00"}, at(3, 0)))
	assert.True(t, WithinShopHours(&models.Barbershop{ClosingTime: "18:00"}, at(3, 0)))
}

func TestWithinShopHours_UnparseableBounds(t *testing.T) {
	shop := &models.Barbershop{OpeningTime: "9am", ClosingTime: "6pm"}
	assert.True(t, WithinShopHours(shop, at(3, 0)))
}
