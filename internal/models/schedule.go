package models

import "time"

// Schedule is one availability slot in a barber's timetable. Day is free
// text (a weekday name or a literal date) and is compared case-insensitively.
// StartTime/EndTime are "15:04" clock strings.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	Day       string `gorm:"size:50;not null" json:"day"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Available bool `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
