package validators

import (
	"context"
	"fmt"
	"github.com/mufasadev/encounter-types/internal/domain/models"
	"github.com/mufasadev/encounter-types/internal/validation"
	"github.com/mufasadev/encounter-types/pkg/log"
	"github.com/rs/zerolog"
)

// EncounterTypeDirectory looks up an encounter type by exact name, returning nil, nil when absent.
type EncounterTypeDirectory interface {
	GetByName(ctx context.Context, name string) (*models.EncounterType, error)
}

// EncounterTypeValidator rejects encounter types with a blank name or with a name already used
// by another active encounter type.
type EncounterTypeValidator struct {
	directory EncounterTypeDirectory
	logger    *zerolog.Logger
}

func NewEncounterTypeValidator(directory EncounterTypeDirectory) *EncounterTypeValidator {
	l := log.GetLogger()
	return &EncounterTypeValidator{directory: directory, logger: &l}
}

func (v *EncounterTypeValidator) Supports(kind models.Kind) bool {
	return kind == models.KindEncounterType
}

// Register binds the validator to its kind in r.
func (v *EncounterTypeValidator) Register(r *validation.Registry) {
	validation.Register(r, models.KindEncounterType, v.Validate)
}

// Validate appends failures for candidate to errs. Only a failed directory lookup is returned as an error.
func (v *EncounterTypeValidator) Validate(ctx context.Context, candidate *models.EncounterType, errs *validation.Errors) error {
	if candidate == nil {
		errs.Reject(validation.CodeGeneral, "")
		return nil
	}

	// the duplicate lookup trims the name, so it must only run once the name is known to be non-blank
	if validation.RejectIfEmptyOrWhitespace(errs, "name", candidate.Name, validation.CodeName) {
		return nil
	}
	if errs.HasErrors() {
		return nil
	}

	name := candidate.TrimmedName()
	duplicate, err := v.directory.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("look up encounter type %q: %w", name, err)
	}

	if duplicate == nil || duplicate.Retired {
		return nil
	}
	if candidate.UUID != "" && candidate.UUID == duplicate.UUID {
		return nil
	}

	v.logger.Debug().
		Str("name", name).
		Str("candidate_uuid", candidate.UUID).
		Str("existing_uuid", duplicate.UUID).
		Msg("encounter type name already in use")
	errs.RejectValue("name", validation.CodeDuplicateName, validation.Messages[validation.CodeDuplicateName])
	return nil
}
