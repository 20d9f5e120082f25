package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mmhcare/frontdesk-api/internal/model"
	apperrors "github.com/mmhcare/frontdesk-api/pkg/errors"
)

type AppointmentRepository struct {
	mu           sync.RWMutex
	appointments []*model.Appointment
	byID         map[uuid.UUID]*model.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		byID: make(map[uuid.UUID]*model.Appointment),
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[appointment.ID]; exists {
		return apperrors.BadRequest("appointment already exists", nil)
	}

	r.appointments = append(r.appointments, appointment)
	r.byID[appointment.ID] = appointment
	return nil
}

func (r *AppointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointment, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	copied := *appointment
	return &copied, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[appointment.ID]
	if !ok {
		return apperrors.NotFound("appointment", nil)
	}
	*stored = *appointment
	return nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]*model.Appointment, len(r.appointments))
	for i, a := range r.appointments {
		copied := *a
		appointments[i] = &copied
	}
	return appointments, nil
}
