package billing

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/mmhcare/frontdesk-api/internal/model"
	"github.com/mmhcare/frontdesk-api/internal/repository"
	apperrors "github.com/mmhcare/frontdesk-api/pkg/errors"
	"github.com/mmhcare/frontdesk-api/pkg/idgen"
)

const receiptSeries = "receipt"

// Service manages in-progress bills. Sessions are transient: they live in
// a TTL-bound cache and are discarded once a receipt is generated. The
// receipt itself is returned to the caller, never stored.
type Service struct {
	mu       sync.Mutex
	sessions *cache.Cache
	patients repository.PatientRepository
	ids      *idgen.Allocator
	now      func() time.Time
}

func NewService(patients repository.PatientRepository, ids *idgen.Allocator, sessionTTL, cleanupInterval time.Duration) *Service {
	return &Service{
		sessions: cache.New(sessionTTL, cleanupInterval),
		patients: patients,
		ids:      ids,
		now:      time.Now,
	}
}

// WithClock overrides the service clock. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Open starts a billing session for a registered patient.
func (s *Service) Open(ctx context.Context, patientID uuid.UUID) (*model.BillingSession, error) {
	if _, err := s.patients.Get(ctx, patientID); err != nil {
		return nil, err
	}

	session := &model.BillingSession{
		ID:        uuid.New(),
		PatientID: patientID,
		Charges:   []model.Charge{},
		CreatedAt: s.now(),
	}
	// Snapshot before publishing to the cache.
	snapshot := cloneSession(session)
	s.sessions.Set(session.ID.String(), session, cache.DefaultExpiration)
	return snapshot, nil
}

func (s *Service) Get(ctx context.Context, sessionID uuid.UUID) (*model.BillingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return cloneSession(session), nil
}

// AddCharge appends a line item. An empty description or a non-positive
// amount is a validation error, not a silent no-op.
func (s *Service) AddCharge(ctx context.Context, sessionID uuid.UUID, req *model.AddChargeRequest) (*model.BillingSession, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.Validation("description", "charge description is required")
	}
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, apperrors.Validation("amount", "charge amount must be a positive number")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	session.Charges = append(session.Charges, model.Charge{
		ID:          uuid.New(),
		Description: req.Description,
		Amount:      req.Amount,
	})
	return cloneSession(session), nil
}

// RemoveCharge removes a line item by id. Removing an absent id leaves
// the session unchanged.
func (s *Service) RemoveCharge(ctx context.Context, sessionID, chargeID uuid.UUID) (*model.BillingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	charges := session.Charges[:0]
	for _, c := range session.Charges {
		if c.ID != chargeID {
			charges = append(charges, c)
		}
	}
	session.Charges = charges
	return cloneSession(session), nil
}

// Total recomputes the sum of all charge amounts; 0 for an empty session.
func (s *Service) Total(ctx context.Context, sessionID uuid.UUID) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(sessionID)
	if err != nil {
		return 0, err
	}
	return session.Total(), nil
}

// Finalize turns the session into a numbered receipt and discards the
// session. Receipt numbers follow the RCP-<8 digits> format with a
// monotonic sequence.
func (s *Service) Finalize(ctx context.Context, sessionID uuid.UUID, paymentMode model.PaymentMode) (*model.Receipt, error) {
	switch paymentMode {
	case model.PaymentModeCash, model.PaymentModeUPI, model.PaymentModeCard:
	default:
		return nil, apperrors.Validation("payment_mode", "payment mode must be Cash, UPI or Card")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.Get(ctx, session.PatientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient for receipt: %w", err)
	}

	receipt := &model.Receipt{
		Number:      fmt.Sprintf("RCP-%08d", s.ids.Next(receiptSeries)),
		PatientName: patient.Name,
		UHID:        patient.UHID,
		Age:         patient.Age,
		Sex:         patient.Sex,
		Phone:       patient.Phone,
		Date:        s.now(),
		Charges:     session.Charges,
		Total:       session.Total(),
		PaymentMode: paymentMode,
	}

	s.sessions.Delete(sessionID.String())
	return receipt, nil
}

// session looks up the live session. Callers must hold s.mu; the
// returned pointer is the stored session, not a copy.
func (s *Service) session(id uuid.UUID) (*model.BillingSession, error) {
	v, ok := s.sessions.Get(id.String())
	if !ok {
		return nil, apperrors.NotFound("billing session", nil)
	}
	return v.(*model.BillingSession), nil
}

// cloneSession snapshots a session so callers never share the charge
// slice with concurrent mutations.
func cloneSession(s *model.BillingSession) *model.BillingSession {
	copied := *s
	copied.Charges = make([]model.Charge, len(s.Charges))
	copy(copied.Charges, s.Charges)
	return &copied
}
