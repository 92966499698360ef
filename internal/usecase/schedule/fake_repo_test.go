package schedule

import (
	"context"
	"errors"

	domain "github.com/fadeapp/fadeapp-api/internal/domain/schedule"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

var errNoRow = errors.New("record not found")

type fakeRepo struct {
	barbers      map[uint]*models.Barber
	schedules    map[uint]*models.Schedule
	appointments []models.Appointment

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:   map[uint]*models.Barber{},
		schedules: map[uint]*models.Schedule{},
	}
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, errNoRow
}

func (f *fakeRepo) BarberExists(_ context.Context, id uint) (bool, error) {
	_, ok := f.barbers[id]
	return ok, nil
}

func (f *fakeRepo) GetSchedule(_ context.Context, id uint) (*models.Schedule, error) {
	if s, ok := f.schedules[id]; ok {
		return s, nil
	}
	return nil, errNoRow
}

func (f *fakeRepo) ListByBarber(_ context.Context, barberID uint) ([]models.Schedule, error) {
	var out []models.Schedule
	for id := uint(1); id <= f.nextID; id++ {
		if s, ok := f.schedules[id]; ok && s.BarberID == barberID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByBarberAndDay(_ context.Context, barberID uint, day string) ([]models.Schedule, error) {
	var out []models.Schedule
	for id := uint(1); id <= f.nextID; id++ {
		if s, ok := f.schedules[id]; ok && s.BarberID == barberID && domain.SameDay(s.Day, day) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateSchedule(_ context.Context, s *models.Schedule) error {
	f.nextID++
	s.ID = f.nextID
	f.schedules[s.ID] = s
	return nil
}

func (f *fakeRepo) UpdateSchedule(_ context.Context, s *models.Schedule) error {
	f.schedules[s.ID] = s
	return nil
}

func (f *fakeRepo) SaveSchedules(_ context.Context, schedules []models.Schedule) error {
	for i := range schedules {
		s := schedules[i]
		f.schedules[s.ID] = &s
	}
	return nil
}

func (f *fakeRepo) DeleteSchedule(_ context.Context, s *models.Schedule) error {
	delete(f.schedules, s.ID)
	return nil
}

func (f *fakeRepo) ListAppointmentsByBarber(_ context.Context, barberID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) WithTx(_ context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) addSlot(barberID uint, day, start, end string) *models.Schedule {
	s := &models.Schedule{BarberID: barberID, Day: day, StartTime: start, EndTime: end, Available: true}
	f.CreateSchedule(context.Background(), s)
	return s
}
