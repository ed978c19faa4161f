package app

import (
	"context"
	"github.com/mufasadev/encounter-types/internal/config"
	"github.com/mufasadev/encounter-types/internal/domain/repositories"
	"github.com/mufasadev/encounter-types/internal/infrastructure/database/db_client"
	"github.com/mufasadev/encounter-types/internal/infrastructure/database/memory"
	dbrepositories "github.com/mufasadev/encounter-types/internal/infrastructure/database/repositories"
	"github.com/mufasadev/encounter-types/pkg/log"
)

// OpenEncounterTypeRepository returns the encounter type storage selected by cfg.Driver.
// The returned close func releases the connection pool, if any.
func OpenEncounterTypeRepository(ctx context.Context, cfg config.PostgreSQL) (repositories.EncounterTypeRepository, func(), error) {
	logger := log.GetLogger()

	if cfg.InMemory() {
		logger.Warn().Msg("using in-memory encounter type storage, data is lost on exit")
		return memory.NewEncounterTypeRepositoryImpl(), func() {}, nil
	}

	db, err := db_client.NewPGClient(cfg).Connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Str("host", cfg.Host).Str("database", cfg.Database).Msg("connected to PostgreSQL")

	return dbrepositories.NewEncounterTypeRepositoryImpl(db), db.Close, nil
}
