package appointment

import (
	"time"

	"github.com/fadeapp/fadeapp-api/internal/models"
)

// WithinShopHours checks the appointment's time of day against the shop's
// operating window. The window only applies when both bounds are set, and
// booking exactly at opening or closing time is allowed.
func WithinShopHours(shop *models.Barbershop, at time.Time) bool {
	if shop.OpeningTime == "" || shop.ClosingTime == "" {
		return true
	}

	opening, err := clockMinutes(shop.OpeningTime)
	if err != nil {
		return true
	}
	closing, err := clockMinutes(shop.ClosingTime)
	if err != nil {
		return true
	}

	minute := at.Hour()*60 + at.Minute()
	return minute >= opening && minute <= closing
}

func clockMinutes(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
