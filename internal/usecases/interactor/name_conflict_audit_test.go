package interactor

import (
	"context"
	"github.com/mufasadev/encounter-types/internal/domain/models"
	"github.com/mufasadev/encounter-types/internal/infrastructure/database/memory"
	"github.com/mufasadev/encounter-types/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNameConflictAudit(t *testing.T) {
	repo := memory.NewEncounterTypeRepositoryImpl()
	collector := metrics.NewCollector("test", prometheus.NewRegistry())
	audit := NewNameConflictAuditInteractor(repo, collector)

	rows, err := audit.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)

	repo.Put(&models.EncounterType{UUID: "u1", Name: "Admission"})
	repo.Put(&models.EncounterType{UUID: "u2", Name: " Admission"})

	rows, err = audit.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Admission", rows[0].Name)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.NameConflictsFound))
}
