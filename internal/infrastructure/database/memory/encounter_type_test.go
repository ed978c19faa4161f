package memory

import (
	"context"
	"github.com/mufasadev/encounter-types/internal/domain/models"
	apperrors "github.com/mufasadev/encounter-types/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"time"
)

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEncounterTypeRepositoryImpl()

	et := &models.EncounterType{UUID: "u1", Name: "Admission", Description: "ward"}
	require.NoError(t, repo.Create(ctx, et))
	assert.NotZero(t, et.ID)
	assert.False(t, et.DateCreated.IsZero())

	byName, err := repo.GetByName(ctx, "Admission")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, "u1", byName.UUID)

	byUUID, err := repo.GetByUUID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ward", byUUID.Description)

	missing, err := repo.GetByName(ctx, "admission")
	require.NoError(t, err)
	assert.Nil(t, missing, "lookup is case-sensitive")

	missing, err = repo.GetByUUID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewEncounterTypeRepositoryImpl()
	require.NoError(t, repo.Create(ctx, &models.EncounterType{UUID: "u1", Name: "Admission"}))

	got, err := repo.GetByUUID(ctx, "u1")
	require.NoError(t, err)
	got.Name = "Changed"

	again, err := repo.GetByUUID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Admission", again.Name)
}

func TestGetByNamePrefersActiveRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewEncounterTypeRepositoryImpl()
	at := time.Now()
	retired := &models.EncounterType{UUID: "old", Name: "Admission"}
	retired.Retire("replaced", at)
	repo.Put(retired)
	repo.Put(&models.EncounterType{UUID: "new", Name: "Admission"})

	got, err := repo.GetByName(ctx, "Admission")
	require.NoError(t, err)
	assert.Equal(t, "new", got.UUID)
}

func TestGetByNameFallsBackToRetiredRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewEncounterTypeRepositoryImpl()
	retired := &models.EncounterType{UUID: "old", Name: "Admission"}
	retired.Retire("replaced", time.Now())
	repo.Put(retired)

	got, err := repo.GetByName(ctx, "Admission")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Retired)
}

func TestCreateRejectsActiveDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := NewEncounterTypeRepositoryImpl()
	require.NoError(t, repo.Create(ctx, &models.EncounterType{UUID: "u1", Name: "Admission"}))

	err := repo.Create(ctx, &models.EncounterType{UUID: "u2", Name: " Admission "})

	var dup *apperrors.DuplicateNameError
	require.True(t, apperrors.As(err, &dup))
	assert.Equal(t, "Admission", dup.Name)
}

func TestCreateAllowsNameOfRetiredRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewEncounterTypeRepositoryImpl()
	old := &models.EncounterType{UUID: "u1", Name: "Admission"}
	require.NoError(t, repo.Create(ctx, old))
	old.Retire("obsolete", time.Now())
	require.NoError(t, repo.Update(ctx, old))

	assert.NoError(t, repo.Create(ctx, &models.EncounterType{UUID: "u2", Name: "Admission"}))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewEncounterTypeRepositoryImpl()
	et := &models.EncounterType{UUID: "u1", Name: "Admission"}
	require.NoError(t, repo.Create(ctx, et))

	et.Name = "Admission"
	et.Description = "edited"
	require.NoError(t, repo.Update(ctx, et), "keeping its own name is not a conflict")
	require.NotNil(t, et.DateChanged)

	err := repo.Update(ctx, &models.EncounterType{UUID: "missing", Name: "X"})
	var notFound *apperrors.NotFoundError
	assert.True(t, apperrors.As(err, &notFound))
}

func TestListFiltersRetired(t *testing.T) {
	ctx := context.Background()
	repo := NewEncounterTypeRepositoryImpl()
	require.NoError(t, repo.Create(ctx, &models.EncounterType{UUID: "u1", Name: "Discharge"}))
	retired := &models.EncounterType{UUID: "u2", Name: "Admission"}
	require.NoError(t, repo.Create(ctx, retired))
	retired.Retire("obsolete", time.Now())
	require.NoError(t, repo.Update(ctx, retired))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Discharge", active[0].Name)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Admission", all[0].Name)
}

func TestListActiveNameConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewEncounterTypeRepositoryImpl()
	repo.Put(&models.EncounterType{UUID: "u1", Name: "Admission"})
	repo.Put(&models.EncounterType{UUID: "u2", Name: "Admission "})
	repo.Put(&models.EncounterType{UUID: "u3", Name: "Discharge"})
	retired := &models.EncounterType{UUID: "u4", Name: "Discharge"}
	retired.Retire("obsolete", time.Now())
	repo.Put(retired)

	rows, err := repo.ListActiveNameConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Admission", rows[0].Name)
	assert.ElementsMatch(t, []string{"u1", "u2"}, rows[0].UUIDs)
}

func TestConcurrentCreatesKeepOneActiveName(t *testing.T) {
	ctx := context.Background()
	repo := NewEncounterTypeRepositoryImpl()

	const writers = 20
	var wg sync.WaitGroup
	results := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results <- repo.Create(ctx, &models.EncounterType{UUID: string(rune('a' + i)), Name: "Admission"})
		}(i)
	}
	wg.Wait()
	close(results)

	created := 0
	for err := range results {
		if err == nil {
			created++
		}
	}
	assert.Equal(t, 1, created)
}
