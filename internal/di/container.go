package di

import (
	"github.com/mufasadev/encounter-types/internal/domain/repositories"
	"github.com/mufasadev/encounter-types/internal/infrastructure/api/handlers"
	"github.com/mufasadev/encounter-types/internal/usecases/interactor"
	"github.com/mufasadev/encounter-types/internal/usecases/validators"
	"github.com/mufasadev/encounter-types/internal/validation"
	"github.com/mufasadev/encounter-types/pkg/metrics"
)

type Container struct {
	EncounterTypeRepository     repositories.EncounterTypeRepository
	Validators                  *validation.Registry
	EncounterTypeInteractor     *interactor.EncounterTypeInteractor
	NameConflictAuditInteractor *interactor.NameConflictAuditInteractor
	EncounterTypeHandler        *handlers.EncounterTypeHandler
	Metrics                     *metrics.Collector
}

// NewContainer creates a new Container instance around the given encounter type storage.
func NewContainer(encounterTypeRepository repositories.EncounterTypeRepository, collector *metrics.Collector) *Container {
	registry := validation.NewRegistry()
	validators.NewEncounterTypeValidator(encounterTypeRepository).Register(registry)

	encounterTypeInteractor := interactor.NewEncounterTypeInteractor(encounterTypeRepository, registry, collector)
	encounterTypeHandler := handlers.NewEncounterTypeHandler(encounterTypeInteractor)

	nameConflictAuditInteractor := interactor.NewNameConflictAuditInteractor(encounterTypeRepository, collector)

	return &Container{
		EncounterTypeRepository:     encounterTypeRepository,
		Validators:                  registry,
		EncounterTypeInteractor:     encounterTypeInteractor,
		NameConflictAuditInteractor: nameConflictAuditInteractor,
		EncounterTypeHandler:        encounterTypeHandler,
		Metrics:                     collector,
	}
}
