package repositories

import (
	"context"
	"github.com/mufasadev/encounter-types/internal/domain/models"
)

const UniqueViolationError = "23505"

type EncounterTypeRepository interface {
	// GetByName returns the record with exactly this name, preferring a non-retired one,
	// or nil, nil when there is none.
	GetByName(ctx context.Context, name string) (*models.EncounterType, error)
	// GetByUUID returns nil, nil when no record has this uuid.
	GetByUUID(ctx context.Context, uuid string) (*models.EncounterType, error)
	List(ctx context.Context, includeRetired bool) ([]*models.EncounterType, error)
	// Create and Update return errors.DuplicateNameError when another active record owns the name.
	Create(ctx context.Context, encounterType *models.EncounterType) error
	Update(ctx context.Context, encounterType *models.EncounterType) error
	ListActiveNameConflicts(ctx context.Context) ([]NameConflictRow, error)
}

// NameConflictRow is one group of active encounter types sharing a trimmed name.
type NameConflictRow struct {
	Name  string
	UUIDs []string
}
