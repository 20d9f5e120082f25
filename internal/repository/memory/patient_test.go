package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmhcare/frontdesk-api/internal/model"
)

func seedPatient(t *testing.T, repo *PatientRepository) *model.Patient {
	t.Helper()

	p := &model.Patient{
		ID:        uuid.New(),
		Name:      "Smt. Anjali Ramesh",
		Phone:     "9876543210",
		Visits:    []model.Visit{},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	repo := NewPatientRepository()
	ctx := context.Background()
	p := seedPatient(t, repo)

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)

	// Mutating the returned record must not reach the store.
	got.Name = "changed"
	got.Visits = append(got.Visits, model.Visit{ID: uuid.New(), Complaints: "stray"})

	stored, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Smt. Anjali Ramesh", stored.Name)
	assert.Empty(t, stored.Visits)
}

func TestCreateCopiesTheRecord(t *testing.T) {
	repo := NewPatientRepository()
	ctx := context.Background()
	p := seedPatient(t, repo)

	p.Name = "changed after create"

	stored, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Smt. Anjali Ramesh", stored.Name)
}

func TestConcurrentVisitAppendsAndReads(t *testing.T) {
	repo := NewPatientRepository()
	ctx := context.Background()
	p := seedPatient(t, repo)

	const appends = 50

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < appends; i++ {
			_, err := repo.AddVisit(ctx, p.ID, &model.Visit{
				ID:         uuid.New(),
				Date:       time.Now(),
				Complaints: "Follow-up",
				Doctor:     "Dr. Sushma Rao",
			})
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < appends; i++ {
			got, err := repo.Get(ctx, p.ID)
			assert.NoError(t, err)
			// The snapshot is internally consistent even mid-append.
			for _, v := range got.Visits {
				assert.Equal(t, "Follow-up", v.Complaints)
			}
			_, err = repo.List(ctx)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	final, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, final.Visits, appends)
}
