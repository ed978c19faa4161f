package middlewares

import (
	"context"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mufasadev/encounter-types/internal/errors"
	http2 "github.com/mufasadev/encounter-types/internal/infrastructure/api/http"
	"github.com/mufasadev/encounter-types/pkg/log"
	"net/http"
	"time"
)

// EncounterTypeExistence is satisfied by interactor.EncounterTypeInteractor.
type EncounterTypeExistence interface {
	ExistsByUUID(ctx context.Context, uuid string) (bool, error)
}

// EncounterTypeValidationMiddleware checks the encounter type uuid path parameter
// is well formed and refers to a stored encounter type.
func EncounterTypeValidationMiddleware(encounterTypes EncounterTypeExistence) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.GetLogger()
			encounterTypeUUID := chi.URLParam(r, http2.EncounterTypeUUIDParam)
			if encounterTypeUUID == "" {
				logger.Error().Msg(errors.ErrEncounterTypeUUIDRequired)
				errors.HandleHTTPError(w, errors.NewBadRequestError(errors.ErrEncounterTypeUUIDRequired))
				return
			}

			if _, err := uuid.Parse(encounterTypeUUID); err != nil {
				logger.Error().Str("uuid", encounterTypeUUID).Msg(errors.ErrInvalidEncounterTypeUUID)
				errors.HandleHTTPError(w, errors.NewBadRequestError(errors.ErrInvalidEncounterTypeUUID))
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()
			exists, err := encounterTypes.ExistsByUUID(ctx, encounterTypeUUID)
			if err != nil {
				logger.Error().Err(err).Msg(errors.ErrFailedLoadEncounterType)
				errors.HandleHTTPError(w, err)
				return
			}
			if !exists {
				logger.Error().Str("uuid", encounterTypeUUID).Msg(errors.ErrEncounterTypeNotFound)
				errors.HandleHTTPError(w, errors.NewNotFoundError(errors.ErrEncounterTypeNotFound))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
