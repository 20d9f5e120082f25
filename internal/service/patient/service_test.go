package patient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmhcare/frontdesk-api/internal/model"
	"github.com/mmhcare/frontdesk-api/internal/repository/memory"
	apperrors "github.com/mmhcare/frontdesk-api/pkg/errors"
	"github.com/mmhcare/frontdesk-api/pkg/idgen"
)

func newTestService(now time.Time) *Service {
	return NewService(memory.NewPatientRepository(), idgen.New(), "MMH").
		WithClock(func() time.Time { return now })
}

func registration() *model.RegisterPatientRequest {
	return &model.RegisterPatientRequest{
		VisitType:     "OP",
		Name:          "Smt. Anjali Ramesh",
		Sex:           "Female",
		DOB:           "1999-03-15",
		BloodGroup:    "O+",
		MaritalStatus: "Married",
		GuardianName:  "Sri Ramesh Kumar",
		GuardianPhone: "9876543210",
		Phone:         "9876543210",
		Aadhaar:       "xxxx-xxxx-1234",
		UHID:          "UHID-IND-9087",
		Address:       "Malleshwaram, Bengaluru",
		Complaints:    "Lower abdominal pain",
		Remarks:       "Second trimester",
		Doctor:        "Dr. Sushma Rao",
	}
}

func TestRegisterGeneratesApplicationNumber(t *testing.T) {
	svc := newTestService(time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC))

	p, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	assert.Regexp(t, `^MMH-OP-2025-\d{6}$`, p.ApplicationNumber)
	assert.Equal(t, "MMH-OP-2025-000001", p.ApplicationNumber)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Empty(t, p.Visits)
}

func TestRegisterApplicationNumbersAreSequential(t *testing.T) {
	svc := newTestService(time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC))

	first, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	second := registration()
	second.UHID = "UHID-IND-9088"
	p2, err := svc.Register(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, "MMH-OP-2025-000001", first.ApplicationNumber)
	assert.Equal(t, "MMH-OP-2025-000002", p2.ApplicationNumber)

	// Each visit type carries its own sequence.
	emergency := registration()
	emergency.VisitType = "EM"
	p3, err := svc.Register(context.Background(), emergency)
	require.NoError(t, err)
	assert.Equal(t, "MMH-EM-2025-000001", p3.ApplicationNumber)
}

func TestRegisterDerivesAgeAtCreation(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		now  time.Time
		age  int
	}{
		{"birthday passed this year", "1999-03-15", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), 26},
		{"birthday not yet reached", "1999-09-20", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), 25},
		{"birthday today", "1999-06-15", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), 26},
		{"day before birthday", "1999-06-16", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.now)
			req := registration()
			req.DOB = tt.dob

			p, err := svc.Register(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.age, p.Age)
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC))

	req := registration()
	req.Name = "  "
	_, err := svc.Register(context.Background(), req)
	assert.True(t, apperrors.IsValidation(err))

	req = registration()
	req.VisitType = "XX"
	_, err = svc.Register(context.Background(), req)
	assert.True(t, apperrors.IsValidation(err))

	req = registration()
	req.DOB = "15-03-1999"
	_, err = svc.Register(context.Background(), req)
	assert.True(t, apperrors.IsValidation(err))

	// A date of birth after the registration date is rejected, not
	// stored as a negative age.
	req = registration()
	req.DOB = "2026-01-01"
	_, err = svc.Register(context.Background(), req)
	assert.True(t, apperrors.IsValidation(err))

	req = registration()
	req.DOB = "2025-07-01"
	_, err = svc.Register(context.Background(), req)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSearchByUHIDAfterRegister(t *testing.T) {
	svc := newTestService(time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC))

	p, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	results, err := svc.Search(context.Background(), model.SearchCriteria{UHID: "UHID-IND-9087"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, p.ID, results[0].ID)
}

func TestSearchConjunctionAndOrder(t *testing.T) {
	svc := newTestService(time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first := registration()
	_, err := svc.Register(ctx, first)
	require.NoError(t, err)

	second := registration()
	second.Name = "Smt. Kavya Shetty"
	second.Phone = "9123456780"
	second.UHID = "UHID-IND-9088"
	second.BloodGroup = "B+"
	_, err = svc.Register(ctx, second)
	require.NoError(t, err)

	// Empty criteria returns everyone in registration order.
	all, err := svc.Search(ctx, model.SearchCriteria{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Smt. Anjali Ramesh", all[0].Name)
	assert.Equal(t, "Smt. Kavya Shetty", all[1].Name)

	// Name matching is a case-insensitive substring.
	results, err := svc.Search(ctx, model.SearchCriteria{Name: "kavya"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Smt. Kavya Shetty", results[0].Name)

	// Predicates are ANDed.
	results, err = svc.Search(ctx, model.SearchCriteria{Name: "Smt.", BloodGroup: "B+"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Smt. Kavya Shetty", results[0].Name)

	results, err = svc.Search(ctx, model.SearchCriteria{Name: "kavya", BloodGroup: "O+"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAddVisit(t *testing.T) {
	svc := newTestService(time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	p, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	updated, err := svc.AddVisit(ctx, p.ID, &model.AddVisitRequest{
		Complaints: "Follow-up",
		Diagnosis:  "Normal progression",
		Doctor:     "Dr. Sushma Rao",
		Notes:      "Review in two weeks",
	})
	require.NoError(t, err)
	require.Len(t, updated.Visits, 1)
	assert.Equal(t, "Follow-up", updated.Visits[0].Complaints)
}

func TestAddVisitUnknownPatient(t *testing.T) {
	svc := newTestService(time.Now())

	_, err := svc.AddVisit(context.Background(), uuid.New(), &model.AddVisitRequest{
		Complaints: "Follow-up",
		Doctor:     "Dr. Sushma Rao",
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAddVisitValidation(t *testing.T) {
	svc := newTestService(time.Now())

	_, err := svc.AddVisit(context.Background(), uuid.New(), &model.AddVisitRequest{
		Doctor: "Dr. Sushma Rao",
	})
	assert.True(t, apperrors.IsValidation(err))
}
