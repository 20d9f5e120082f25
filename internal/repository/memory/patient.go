// Package memory implements the repository interfaces over process
// memory. All entity state is volatile by contract: nothing survives a
// restart.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mmhcare/frontdesk-api/internal/model"
	apperrors "github.com/mmhcare/frontdesk-api/pkg/errors"
)

type PatientRepository struct {
	mu       sync.RWMutex
	patients []*model.Patient
	byID     map[uuid.UUID]*model.Patient
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{
		byID: make(map[uuid.UUID]*model.Patient),
	}
}

func (r *PatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[patient.ID]; exists {
		return apperrors.BadRequest("patient already registered", nil)
	}

	stored := clonePatient(patient)
	r.patients = append(r.patients, stored)
	r.byID[stored.ID] = stored
	return nil
}

func (r *PatientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	return clonePatient(patient), nil
}

// List returns patients in insertion order.
func (r *PatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patients := make([]*model.Patient, len(r.patients))
	for i, p := range r.patients {
		patients[i] = clonePatient(p)
	}
	return patients, nil
}

func (r *PatientRepository) AddVisit(ctx context.Context, patientID uuid.UUID, visit *model.Visit) (*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	patient, ok := r.byID[patientID]
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}

	patient.Visits = append(patient.Visits, *visit)
	return clonePatient(patient), nil
}

// clonePatient copies the record and its visit history so readers never
// share the visit slice with a concurrent append.
func clonePatient(p *model.Patient) *model.Patient {
	copied := *p
	copied.Visits = make([]model.Visit, len(p.Visits))
	copy(copied.Visits, p.Visits)
	return &copied
}
