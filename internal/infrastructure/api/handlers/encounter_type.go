package handlers

import (
	"context"
	"encoding/json"
	"github.com/go-chi/chi/v5"
	"github.com/mufasadev/encounter-types/internal/errors"
	http2 "github.com/mufasadev/encounter-types/internal/infrastructure/api/http"
	"github.com/mufasadev/encounter-types/internal/usecases/dtos"
	"github.com/mufasadev/encounter-types/internal/usecases/interactor"
	"github.com/mufasadev/encounter-types/internal/validation"
	"github.com/mufasadev/encounter-types/pkg/log"
	"github.com/rs/zerolog"
	"net/http"
	"strconv"
	"time"
)

const requestTimeout = 5 * time.Second

type EncounterTypeHandler struct {
	interactor *interactor.EncounterTypeInteractor
	logger     *zerolog.Logger
}

func NewEncounterTypeHandler(interactor *interactor.EncounterTypeInteractor) *EncounterTypeHandler {
	logger := log.GetLogger()
	return &EncounterTypeHandler{interactor: interactor, logger: &logger}
}

// ValidationResponse is the body of a dry-run validation.
type ValidationResponse struct {
	Valid  bool                    `json:"valid"`
	Errors []errors.HTTPFieldError `json:"errors"`
}

func (h *EncounterTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decode(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	et, err := h.interactor.Create(ctx, dto)
	if err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedSaveEncounterType)
		errors.HandleHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, et)
}

func (h *EncounterTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decode(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	et, err := h.interactor.Update(ctx, chi.URLParam(r, http2.EncounterTypeUUIDParam), dto)
	if err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedSaveEncounterType)
		errors.HandleHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, et)
}

func (h *EncounterTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	et, err := h.interactor.Get(ctx, chi.URLParam(r, http2.EncounterTypeUUIDParam))
	if err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedLoadEncounterType)
		errors.HandleHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, et)
}

func (h *EncounterTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	includeRetired := false
	if raw := r.URL.Query().Get(http2.IncludeRetiredQuery); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			errors.HandleHTTPError(w, errors.NewBadRequestError("includeRetired must be true or false"))
			return
		}
		includeRetired = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	list, err := h.interactor.List(ctx, includeRetired)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list encounter types")
		errors.HandleHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Results interface{} `json:"results"`
	}{Results: list})
}

func (h *EncounterTypeHandler) Retire(w http.ResponseWriter, r *http.Request) {
	var dto dtos.RetireDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewBadRequestError(errors.ErrInvalidRequestBody))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	et, err := h.interactor.Retire(ctx, chi.URLParam(r, http2.EncounterTypeUUIDParam), dto.Reason)
	if err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedSaveEncounterType)
		errors.HandleHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, et)
}

func (h *EncounterTypeHandler) Unretire(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	et, err := h.interactor.Unretire(ctx, chi.URLParam(r, http2.EncounterTypeUUIDParam))
	if err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedSaveEncounterType)
		errors.HandleHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, et)
}

// Validate reports validation errors for the submitted encounter type without saving it.
func (h *EncounterTypeHandler) Validate(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decode(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	errs, err := h.interactor.Validate(ctx, dto)
	if err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedValidateEncounterType)
		errors.HandleHTTPError(w, err)
		return
	}

	resp := ValidationResponse{Valid: !errs.HasErrors(), Errors: make([]errors.HTTPFieldError, 0, errs.Len())}
	for _, fe := range errs.All() {
		resp.Errors = append(resp.Errors, errors.HTTPFieldError{Field: fe.Field, Code: fe.Code, Message: validation.Message(fe)})
	}
	writeJSON(w, http.StatusOK, resp)
}

// decode binds the request body. A JSON null body binds to a nil DTO, i.e. an absent object.
func (h *EncounterTypeHandler) decode(w http.ResponseWriter, r *http.Request) (*dtos.EncounterTypeDTO, bool) {
	var dto *dtos.EncounterTypeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewBadRequestError(errors.ErrInvalidRequestBody))
		return nil, false
	}
	return dto, true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
