package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/fadeapp/fadeapp-api/internal/domain/appointment"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

var errNoRow = errors.New("record not found")

// fakeRepo is an in-memory stand-in for the gorm repository.
type fakeRepo struct {
	clients      map[uint]*models.Client
	barbers      map[uint]*models.Barber
	shops        map[uint]*models.Barbershop
	services     map[uint]*models.Service
	appointments map[uint]*models.Appointment

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:      map[uint]*models.Client{},
		barbers:      map[uint]*models.Barber{},
		shops:        map[uint]*models.Barbershop{},
		services:     map[uint]*models.Service{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, errNoRow
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, errNoRow
}

func (f *fakeRepo) GetBarbershop(_ context.Context, id uint) (*models.Barbershop, error) {
	if s, ok := f.shops[id]; ok {
		return s, nil
	}
	return nil, errNoRow
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, errNoRow
}

func (f *fakeRepo) HasActiveAppointmentAt(_ context.Context, barberID uint, at time.Time) (bool, error) {
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.ScheduledAt.Equal(at) && ap.Status != string(domain.StatusCancelled) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := f.appointments[id]; ok {
		return ap, nil
	}
	return nil, errNoRow
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	delete(f.appointments, ap.ID)
	return nil
}

func (f *fakeRepo) ListAppointmentsByClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for id := uint(1); id <= f.nextID; id++ {
		if ap, ok := f.appointments[id]; ok && ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByBarber(_ context.Context, barberID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for id := uint(1); id <= f.nextID; id++ {
		if ap, ok := f.appointments[id]; ok && ap.BarberID == barberID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByBarbershop(_ context.Context, barbershopID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for id := uint(1); id <= f.nextID; id++ {
		if ap, ok := f.appointments[id]; ok && ap.BarbershopID == barbershopID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) WithTx(_ context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

var _ domain.Repository = (*fakeRepo)(nil)

// seed fills the repo with one of each referenced entity, all id 1.
func (f *fakeRepo) seed() {
	f.clients[1] = &models.Client{ID: 1, FirstName: "Ana"}
	f.barbers[1] = &models.Barber{ID: 1, BarbershopID: 1, Name: "Marcos"}
	f.shops[1] = &models.Barbershop{ID: 1, Name: "Fade Factory", OpeningTime: "09:00", ClosingTime: "18:00"}
	f.services[1] = &models.Service{ID: 1, BarbershopID: 1, Name: "Corte", DurationMin: 30}
}
