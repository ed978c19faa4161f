package interactor

import (
	"context"
	"github.com/mufasadev/encounter-types/internal/domain/repositories"
	"github.com/mufasadev/encounter-types/internal/errors"
	"github.com/mufasadev/encounter-types/pkg/log"
	"github.com/mufasadev/encounter-types/pkg/metrics"
	"github.com/rs/zerolog"
	"time"
)

// NameConflictAuditInteractor reports active encounter types that share a name.
// Validation and storage each check names on their own, so rows written around them
// (imports, manual SQL) can still collide.
type NameConflictAuditInteractor struct {
	repository repositories.EncounterTypeRepository
	metrics    *metrics.Collector
	logger     *zerolog.Logger
}

func NewNameConflictAuditInteractor(repository repositories.EncounterTypeRepository, collector *metrics.Collector) *NameConflictAuditInteractor {
	l := log.GetLogger()
	return &NameConflictAuditInteractor{
		repository: repository,
		metrics:    collector,
		logger:     &l,
	}
}

// Execute logs every conflict group and returns them.
func (a *NameConflictAuditInteractor) Execute(ctx context.Context) ([]repositories.NameConflictRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := a.repository.ListActiveNameConflicts(ctx)
	if err != nil {
		a.logger.Error().Err(err).Msg(errors.ErrFailedAuditNameConflicts)
		return nil, err
	}

	for _, row := range rows {
		a.logger.Warn().Str("name", row.Name).Strs("uuids", row.UUIDs).Msg("active encounter types share a name")
	}
	a.metrics.NameConflictsFound.Set(float64(len(rows)))

	return rows, nil
}
