package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmhcare/frontdesk-api/internal/model"
	"github.com/mmhcare/frontdesk-api/internal/repository"
	apperrors "github.com/mmhcare/frontdesk-api/pkg/errors"
	"github.com/mmhcare/frontdesk-api/pkg/idgen"
)

const applicationSeriesPrefix = "application"

type Service struct {
	repo   repository.PatientRepository
	ids    *idgen.Allocator
	prefix string
	now    func() time.Time
}

func NewService(repo repository.PatientRepository, ids *idgen.Allocator, applicationPrefix string) *Service {
	return &Service{
		repo:   repo,
		ids:    ids,
		prefix: applicationPrefix,
		now:    time.Now,
	}
}

// WithClock overrides the service clock. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Register constructs the patient record from the registration form: a
// generated id, an application number in the documented
// <PREFIX>-<VisitType>-<Year>-<6-digit> format, and the age derived from
// the date of birth at creation time. Age is not re-derived later.
func (s *Service) Register(ctx context.Context, req *model.RegisterPatientRequest) (*model.Patient, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	now := s.now()
	age, err := ageAt(req.DOB, now)
	if err != nil {
		return nil, apperrors.Validation("dob", "date of birth must be a valid YYYY-MM-DD date")
	}
	if age < 0 {
		return nil, apperrors.Validation("dob", "date of birth cannot be in the future")
	}

	patient := &model.Patient{
		ID:                uuid.New(),
		ApplicationNumber: s.applicationNumber(model.VisitType(req.VisitType), now),
		VisitType:         model.VisitType(req.VisitType),
		Name:              req.Name,
		Sex:               req.Sex,
		DOB:               req.DOB,
		Age:               age,
		BloodGroup:        req.BloodGroup,
		MaritalStatus:     req.MaritalStatus,
		GuardianName:      req.GuardianName,
		GuardianPhone:     req.GuardianPhone,
		Phone:             req.Phone,
		Aadhaar:           req.Aadhaar,
		UHID:              req.UHID,
		Address:           req.Address,
		Complaints:        req.Complaints,
		Remarks:           req.Remarks,
		Doctor:            req.Doctor,
		Visits:            []model.Visit{},
		CreatedAt:         now,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}

// AddVisit appends a clinical encounter to the identified patient. Visits
// are append-only; nothing is ever mutated or removed.
func (s *Service) AddVisit(ctx context.Context, patientID uuid.UUID, req *model.AddVisitRequest) (*model.Patient, error) {
	if strings.TrimSpace(req.Complaints) == "" {
		return nil, apperrors.Validation("complaints", "complaints are required")
	}
	if strings.TrimSpace(req.Doctor) == "" {
		return nil, apperrors.Validation("doctor", "a doctor must be selected")
	}

	visit := &model.Visit{
		ID:         uuid.New(),
		Date:       s.now(),
		Complaints: req.Complaints,
		Diagnosis:  req.Diagnosis,
		Doctor:     req.Doctor,
		Notes:      req.Notes,
	}
	return s.repo.AddVisit(ctx, patientID, visit)
}

// Search applies a conjunction of the present criteria over the registry.
// Absent criteria are skipped; result order matches registration order.
func (s *Service) Search(ctx context.Context, criteria model.SearchCriteria) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	if criteria.Empty() {
		return patients, nil
	}

	matched := make([]*model.Patient, 0, len(patients))
	for _, p := range patients {
		if matches(p, criteria) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func matches(p *model.Patient, c model.SearchCriteria) bool {
	if c.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(c.Name)) {
		return false
	}
	if c.Phone != "" && !strings.Contains(p.Phone, c.Phone) {
		return false
	}
	if c.DOB != "" && p.DOB != c.DOB {
		return false
	}
	if c.Aadhaar != "" && !strings.Contains(p.Aadhaar, c.Aadhaar) {
		return false
	}
	if c.UHID != "" && !strings.Contains(strings.ToLower(p.UHID), strings.ToLower(c.UHID)) {
		return false
	}
	if c.BloodGroup != "" && p.BloodGroup != c.BloodGroup {
		return false
	}
	return true
}

func (s *Service) validateRegistration(req *model.RegisterPatientRequest) error {
	switch model.VisitType(req.VisitType) {
	case model.VisitTypeOutPatient, model.VisitTypeInPatient, model.VisitTypeEmergency:
	default:
		return apperrors.Validation("visit_type", "visit type must be OP, IP or EM")
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.Validation("name", "patient name is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return apperrors.Validation("phone", "phone number is required")
	}
	if strings.TrimSpace(req.Doctor) == "" {
		return apperrors.Validation("doctor", "a doctor must be selected")
	}
	if strings.TrimSpace(req.DOB) == "" {
		return apperrors.Validation("dob", "date of birth is required")
	}
	return nil
}

// applicationNumber formats the registration reference printed on forms
// and receipts. The sequence is monotonic per visit-type and year, so the
// format of the reference output is preserved while collisions within a
// process lifetime are impossible.
func (s *Service) applicationNumber(visitType model.VisitType, now time.Time) string {
	year := now.Year()
	series := fmt.Sprintf("%s:%s:%d", applicationSeriesPrefix, visitType, year)
	return fmt.Sprintf("%s-%s-%d-%06d", s.prefix, visitType, year, s.ids.Next(series))
}

// ageAt returns whole years between dob and now, decremented by one when
// now's month and day precede the birth month and day.
func ageAt(dob string, now time.Time) (int, error) {
	birth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0, err
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age, nil
}
