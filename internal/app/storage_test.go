package app

import (
	"context"
	"github.com/mufasadev/encounter-types/internal/config"
	"github.com/mufasadev/encounter-types/internal/infrastructure/database/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestOpenEncounterTypeRepositoryInMemory(t *testing.T) {
	repo, closeFn, err := OpenEncounterTypeRepository(context.Background(), config.PostgreSQL{Driver: config.DriverMemory})

	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &memory.EncounterTypeRepositoryImpl{}, repo)
}

func TestOpenEncounterTypeRepositoryRejectsBadAttempts(t *testing.T) {
	cfg := config.PostgreSQL{
		Driver:          config.DriverPostgres,
		Host:            "localhost",
		Port:            "5432",
		Database:        "encounter_types",
		Username:        "encounter_types",
		Password:        "encounter_types",
		SSLMode:         "disable",
		MaxConnAttempts: "many",
	}

	_, _, err := OpenEncounterTypeRepository(context.Background(), cfg)

	assert.Error(t, err)
}
