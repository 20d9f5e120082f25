package appointment

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmhcare/frontdesk-api/internal/model"
	"github.com/mmhcare/frontdesk-api/internal/repository"
	apperrors "github.com/mmhcare/frontdesk-api/pkg/errors"
)

// transitions is the appointment status lifecycle. Completed and
// Cancelled are terminal.
var transitions = map[model.AppointmentStatus][]model.AppointmentStatus{
	model.AppointmentStatusScheduled: {model.AppointmentStatusConfirmed, model.AppointmentStatusCancelled},
	model.AppointmentStatusConfirmed: {model.AppointmentStatusCompleted, model.AppointmentStatusCancelled},
}

type Service struct {
	repo    repository.AppointmentRepository
	doctors map[string]model.Doctor
	slots   map[string]bool
	now     func() time.Time
}

func NewService(repo repository.AppointmentRepository, doctors []model.Doctor, timeSlots []string) *Service {
	byName := make(map[string]model.Doctor, len(doctors))
	for _, d := range doctors {
		byName[d.Name] = d
	}
	slots := make(map[string]bool, len(timeSlots))
	for _, s := range timeSlots {
		slots[s] = true
	}
	return &Service{
		repo:    repo,
		doctors: byName,
		slots:   slots,
		now:     time.Now,
	}
}

// WithClock overrides the service clock. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Schedule creates a walk-in appointment in Scheduled state. The doctor
// and time slot must exist in the clinic's reference data.
func (s *Service) Schedule(ctx context.Context, req *model.ScheduleAppointmentRequest) (*model.Appointment, error) {
	if err := s.validateSchedule(req); err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		ID:          uuid.New(),
		PatientName: req.PatientName,
		Phone:       req.Phone,
		Age:         req.Age,
		Doctor:      req.Doctor,
		TimeSlot:    req.TimeSlot,
		Type:        model.AppointmentTypeWalkIn,
		Status:      model.AppointmentStatusScheduled,
		Date:        s.now(),
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

// List returns the board ordered by time slot. The comparison is lexical
// over the slot text with the AM/PM suffix stripped, matching the order
// on printed schedules from the existing front desk.
func (s *Service) List(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		return slotKey(appointments[i].TimeSlot) < slotKey(appointments[j].TimeSlot)
	})
	return appointments, nil
}

// SetStatus transitions an appointment, enforcing the lifecycle.
// Illegal transitions fail; terminal states accept none.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(appointment.Status, status) {
		return nil, apperrors.InvalidTransition(string(appointment.Status), string(status))
	}

	appointment.Status = status
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return appointment, nil
}

// Seed loads appointment fixtures into the board. Fixture entries may
// carry any lifecycle state.
func (s *Service) Seed(ctx context.Context, fixtures []*model.Appointment) error {
	for _, f := range fixtures {
		if f.ID == uuid.Nil {
			f.ID = uuid.New()
		}
		if f.Date.IsZero() {
			f.Date = s.now()
		}
		if err := s.repo.Create(ctx, f); err != nil {
			return fmt.Errorf("failed to seed appointment for %s: %w", f.PatientName, err)
		}
	}
	return nil
}

func (s *Service) validateSchedule(req *model.ScheduleAppointmentRequest) error {
	if strings.TrimSpace(req.PatientName) == "" {
		return apperrors.Validation("patient_name", "patient name is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return apperrors.Validation("phone", "phone number is required")
	}
	if req.Age <= 0 {
		return apperrors.Validation("age", "age must be a positive number")
	}
	if _, ok := s.doctors[req.Doctor]; !ok {
		return apperrors.Validation("doctor", "doctor is not on the clinic roster")
	}
	if !s.slots[req.TimeSlot] {
		return apperrors.Validation("time_slot", "time slot is not bookable")
	}
	return nil
}

func transitionAllowed(from, to model.AppointmentStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func slotKey(slot string) string {
	slot = strings.NewReplacer("AM", "", "PM", "").Replace(slot)
	return strings.TrimSpace(slot)
}
