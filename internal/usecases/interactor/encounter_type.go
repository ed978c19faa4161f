package interactor

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/mufasadev/encounter-types/internal/domain/models"
	"github.com/mufasadev/encounter-types/internal/domain/repositories"
	apperrors "github.com/mufasadev/encounter-types/internal/errors"
	"github.com/mufasadev/encounter-types/internal/usecases/dtos"
	"github.com/mufasadev/encounter-types/internal/validation"
	"github.com/mufasadev/encounter-types/pkg/log"
	"github.com/mufasadev/encounter-types/pkg/metrics"
	"github.com/rs/zerolog"
	"strings"
	"time"
)

type EncounterTypeInteractor struct {
	repository repositories.EncounterTypeRepository
	validators *validation.Registry
	metrics    *metrics.Collector
	logger     *zerolog.Logger
	now        func() time.Time
}

func NewEncounterTypeInteractor(repository repositories.EncounterTypeRepository, validators *validation.Registry, collector *metrics.Collector) *EncounterTypeInteractor {
	l := log.GetLogger()
	return &EncounterTypeInteractor{
		repository: repository,
		validators: validators,
		metrics:    collector,
		logger:     &l,
		now:        time.Now,
	}
}

// Validate runs validation without persisting anything.
func (i *EncounterTypeInteractor) Validate(ctx context.Context, dto *dtos.EncounterTypeDTO) (*validation.Errors, error) {
	var candidate *models.EncounterType
	if dto != nil {
		candidate = dto.ToModel()
	}
	return i.validate(ctx, candidate)
}

// Create validates and stores a new encounter type, assigning a uuid when none was given.
func (i *EncounterTypeInteractor) Create(ctx context.Context, dto *dtos.EncounterTypeDTO) (*models.EncounterType, error) {
	if dto == nil {
		return nil, i.reject(ctx, nil)
	}

	candidate := dto.ToModel()
	if candidate.UUID == "" {
		candidate.UUID = uuid.New().String()
	} else if _, err := uuid.Parse(candidate.UUID); err != nil {
		return nil, apperrors.NewBadRequestError(apperrors.ErrInvalidEncounterTypeUUID)
	}
	if candidate.Retired {
		candidate.Retire("", i.now())
	}

	if err := i.reject(ctx, candidate); err != nil {
		return nil, err
	}

	candidate.Name = candidate.TrimmedName()
	if err := i.repository.Create(ctx, candidate); err != nil {
		i.logger.Error().Err(err).Str("uuid", candidate.UUID).Msg(apperrors.ErrFailedSaveEncounterType)
		return nil, err
	}

	i.logger.Info().Str("uuid", candidate.UUID).Str("name", candidate.Name).Msg("encounter type created")
	return candidate, nil
}

// Update replaces name and description of an existing encounter type.
func (i *EncounterTypeInteractor) Update(ctx context.Context, encounterTypeUUID string, dto *dtos.EncounterTypeDTO) (*models.EncounterType, error) {
	existing, err := i.Get(ctx, encounterTypeUUID)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, i.reject(ctx, nil)
	}

	updated := existing.Clone()
	updated.Name = dto.NameValue()
	updated.Description = dto.Description

	if err = i.reject(ctx, updated); err != nil {
		return nil, err
	}

	updated.Name = updated.TrimmedName()
	if err = i.repository.Update(ctx, updated); err != nil {
		i.logger.Error().Err(err).Str("uuid", updated.UUID).Msg(apperrors.ErrFailedSaveEncounterType)
		return nil, err
	}

	i.logger.Info().Str("uuid", updated.UUID).Str("name", updated.Name).Msg("encounter type updated")
	return updated, nil
}

// Retire soft-deletes an encounter type. Retiring an already retired one only updates the reason.
func (i *EncounterTypeInteractor) Retire(ctx context.Context, encounterTypeUUID string, reason string) (*models.EncounterType, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewBadRequestError(apperrors.ErrRetireReasonRequired)
	}

	et, err := i.Get(ctx, encounterTypeUUID)
	if err != nil {
		return nil, err
	}

	et.Retire(reason, i.now())
	if err = i.repository.Update(ctx, et); err != nil {
		i.logger.Error().Err(err).Str("uuid", et.UUID).Msg(apperrors.ErrFailedSaveEncounterType)
		return nil, err
	}

	i.logger.Info().Str("uuid", et.UUID).Str("reason", reason).Msg("encounter type retired")
	return et, nil
}

// Unretire reactivates an encounter type, provided no other active encounter type took its name meanwhile.
func (i *EncounterTypeInteractor) Unretire(ctx context.Context, encounterTypeUUID string) (*models.EncounterType, error) {
	et, err := i.Get(ctx, encounterTypeUUID)
	if err != nil {
		return nil, err
	}
	if !et.Retired {
		return et, nil
	}

	et.Unretire()
	if err = i.reject(ctx, et); err != nil {
		return nil, err
	}

	if err = i.repository.Update(ctx, et); err != nil {
		i.logger.Error().Err(err).Str("uuid", et.UUID).Msg(apperrors.ErrFailedSaveEncounterType)
		return nil, err
	}

	i.logger.Info().Str("uuid", et.UUID).Msg("encounter type unretired")
	return et, nil
}

func (i *EncounterTypeInteractor) Get(ctx context.Context, encounterTypeUUID string) (*models.EncounterType, error) {
	et, err := i.repository.GetByUUID(ctx, encounterTypeUUID)
	if err != nil {
		i.logger.Error().Err(err).Str("uuid", encounterTypeUUID).Msg(apperrors.ErrFailedLoadEncounterType)
		return nil, err
	}
	if et == nil {
		return nil, apperrors.NewNotFoundError(apperrors.ErrEncounterTypeNotFound)
	}
	return et, nil
}

func (i *EncounterTypeInteractor) ExistsByUUID(ctx context.Context, encounterTypeUUID string) (bool, error) {
	et, err := i.repository.GetByUUID(ctx, encounterTypeUUID)
	if err != nil {
		return false, err
	}
	return et != nil, nil
}

func (i *EncounterTypeInteractor) List(ctx context.Context, includeRetired bool) ([]*models.EncounterType, error) {
	return i.repository.List(ctx, includeRetired)
}

// reject validates candidate and turns recorded failures into a ValidationError.
func (i *EncounterTypeInteractor) reject(ctx context.Context, candidate *models.EncounterType) error {
	errs, err := i.validate(ctx, candidate)
	if err != nil {
		return err
	}
	if errs.HasErrors() {
		return apperrors.NewValidationError(errs)
	}
	return nil
}

func (i *EncounterTypeInteractor) validate(ctx context.Context, candidate *models.EncounterType) (*validation.Errors, error) {
	kind := models.KindEncounterType
	errs, err := i.validators.Validate(ctx, kind, candidate)
	if err != nil {
		i.metrics.ValidationsTotal.WithLabelValues(string(kind), metrics.ResultError).Inc()
		i.logger.Error().Err(err).Msg(apperrors.ErrFailedValidateEncounterType)
		return nil, fmt.Errorf("validate %s: %w", kind, err)
	}

	result := metrics.ResultValid
	if errs.HasErrors() {
		result = metrics.ResultInvalid
		for _, code := range errs.Codes() {
			i.metrics.ValidationErrorsTotal.WithLabelValues(code).Inc()
		}
	}
	i.metrics.ValidationsTotal.WithLabelValues(string(kind), result).Inc()
	return errs, nil
}
