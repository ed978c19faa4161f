package repositories

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mufasadev/encounter-types/internal/domain/models"
	"github.com/mufasadev/encounter-types/internal/domain/repositories"
	apperrors "github.com/mufasadev/encounter-types/internal/errors"
	"github.com/mufasadev/encounter-types/pkg/log"
	"github.com/mufasadev/encounter-types/pkg/postgresql"
	"github.com/rs/zerolog"
)

type EncounterTypeRepositoryImpl struct {
	db     postgresql.Client
	logger *zerolog.Logger
}

// NewEncounterTypeRepositoryImpl creates new instance of EncounterTypeRepositoryImpl.
func NewEncounterTypeRepositoryImpl(db postgresql.Client) repositories.EncounterTypeRepository {
	l := log.GetLogger()
	return &EncounterTypeRepositoryImpl{
		db:     db,
		logger: &l,
	}
}

const encounterTypeColumns = `encounter_type_id, uuid::text, name, description, retired, retire_reason, date_created, date_changed, date_retired`

// Active rows sort first so a retired copy never hides an active owner of the name.
const getByName = `
SELECT ` + encounterTypeColumns + `
FROM encounter_type
WHERE name = $1
ORDER BY retired ASC, encounter_type_id ASC
LIMIT 1`

// GetByName returns the encounter type with exactly this name, or nil when there is none.
func (r *EncounterTypeRepositoryImpl) GetByName(ctx context.Context, name string) (*models.EncounterType, error) {
	return r.getOne(ctx, getByName, name)
}

// GetByUUID returns the encounter type with this uuid, or nil when there is none.
func (r *EncounterTypeRepositoryImpl) GetByUUID(ctx context.Context, uuid string) (*models.EncounterType, error) {
	return r.getOne(ctx, "SELECT "+encounterTypeColumns+" FROM encounter_type WHERE uuid = $1", uuid)
}

func (r *EncounterTypeRepositoryImpl) List(ctx context.Context, includeRetired bool) ([]*models.EncounterType, error) {
	rows, err := r.db.Query(
		ctx,
		"SELECT "+encounterTypeColumns+" FROM encounter_type WHERE ($1 OR NOT retired) ORDER BY name, encounter_type_id",
		includeRetired,
	)
	if err != nil {
		return nil, fmt.Errorf("list encounter types: %w", err)
	}
	defer rows.Close()

	out := make([]*models.EncounterType, 0)
	for rows.Next() {
		et, err := scanEncounterType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan encounter type: %w", err)
		}
		out = append(out, et)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list encounter types: %w", err)
	}

	return out, nil
}

const insertEncounterType = `
INSERT INTO encounter_type (uuid, name, description, retired, retire_reason, date_retired)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING encounter_type_id, date_created`

// Create inserts the encounter type and fills in its generated id and creation date.
func (r *EncounterTypeRepositoryImpl) Create(ctx context.Context, encounterType *models.EncounterType) error {
	err := r.db.QueryRow(
		ctx,
		insertEncounterType,
		encounterType.UUID,
		encounterType.Name,
		encounterType.Description,
		encounterType.Retired,
		encounterType.RetireReason,
		encounterType.DateRetired,
	).Scan(&encounterType.ID, &encounterType.DateCreated)
	if err != nil {
		return r.mapWriteError(err, encounterType)
	}
	return nil
}

const updateEncounterType = `
UPDATE encounter_type
SET name = $2, description = $3, retired = $4, retire_reason = $5, date_retired = $6, date_changed = NOW()
WHERE uuid = $1
RETURNING encounter_type_id, date_created, date_changed`

func (r *EncounterTypeRepositoryImpl) Update(ctx context.Context, encounterType *models.EncounterType) error {
	err := r.db.QueryRow(
		ctx,
		updateEncounterType,
		encounterType.UUID,
		encounterType.Name,
		encounterType.Description,
		encounterType.Retired,
		encounterType.RetireReason,
		encounterType.DateRetired,
	).Scan(&encounterType.ID, &encounterType.DateCreated, &encounterType.DateChanged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError(apperrors.ErrEncounterTypeNotFound)
		}
		return r.mapWriteError(err, encounterType)
	}
	return nil
}

const activeNameConflicts = `
SELECT btrim(name) AS trimmed, array_agg(uuid::text ORDER BY encounter_type_id)
FROM encounter_type
WHERE NOT retired
GROUP BY btrim(name)
HAVING COUNT(*) > 1
ORDER BY trimmed`

// ListActiveNameConflicts returns groups of active encounter types sharing a trimmed name.
func (r *EncounterTypeRepositoryImpl) ListActiveNameConflicts(ctx context.Context) ([]repositories.NameConflictRow, error) {
	rows, err := r.db.Query(ctx, activeNameConflicts)
	if err != nil {
		return nil, fmt.Errorf("list name conflicts: %w", err)
	}
	defer rows.Close()

	out := make([]repositories.NameConflictRow, 0)
	for rows.Next() {
		var row repositories.NameConflictRow
		if err = rows.Scan(&row.Name, &row.UUIDs); err != nil {
			return nil, fmt.Errorf("scan name conflict: %w", err)
		}
		out = append(out, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list name conflicts: %w", err)
	}

	return out, nil
}

func (r *EncounterTypeRepositoryImpl) getOne(ctx context.Context, query string, arg string) (*models.EncounterType, error) {
	et, err := scanEncounterType(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get encounter type: %w", err)
	}
	return et, nil
}

const (
	activeNameIndex = "encounter_type_active_name_uidx"
	uuidConstraint  = "encounter_type_uuid_key"
)

// mapWriteError turns unique violations into the errors the memory store returns for the same writes.
func (r *EncounterTypeRepositoryImpl) mapWriteError(err error, encounterType *models.EncounterType) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.SQLState() == repositories.UniqueViolationError {
		switch pgErr.ConstraintName {
		case activeNameIndex:
			r.logger.Warn().Str("name", encounterType.TrimmedName()).Str("uuid", encounterType.UUID).Msg("active name index rejected write")
			return apperrors.NewDuplicateNameError(encounterType.TrimmedName())
		case uuidConstraint:
			return apperrors.NewBadRequestError(apperrors.ErrEncounterTypeUUIDExists)
		}
	}
	return fmt.Errorf("write encounter type: %w", err)
}

func scanEncounterType(row pgx.Row) (*models.EncounterType, error) {
	et := &models.EncounterType{}
	err := row.Scan(
		&et.ID,
		&et.UUID,
		&et.Name,
		&et.Description,
		&et.Retired,
		&et.RetireReason,
		&et.DateCreated,
		&et.DateChanged,
		&et.DateRetired,
	)
	if err != nil {
		return nil, err
	}
	return et, nil
}
