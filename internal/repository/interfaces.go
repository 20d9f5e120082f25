package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mmhcare/frontdesk-api/internal/model"
)

// All repository interfaces in one file
type (
	// PatientRepository holds the insertion-ordered patient registry.
	// Patients are appended and extended with visits, never edited or
	// removed.
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		List(ctx context.Context) ([]*model.Patient, error)
		AddVisit(ctx context.Context, patientID uuid.UUID, visit *model.Visit) (*model.Patient, error)
	}

	// AppointmentRepository holds the appointment board. Appointments are
	// created and transitioned, never deleted.
	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		List(ctx context.Context) ([]*model.Appointment, error)
	}
)
