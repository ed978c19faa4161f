package errors

import (
	"errors"
	"fmt"
	"github.com/mufasadev/encounter-types/internal/validation"
)

const (
	ErrFailedAuditNameConflicts       = "Failed to audit encounter type name conflicts"
	ErrorFailedToConnectToTheDatabase = "Failed to connect to the database"
	ErrorFailedToRunTheServer         = "Failed to run the server"
	ErrorFailedToShutdownTheServer    = "Failed to shutdown the server"
	ErrFailedDecodeRequestBody        = "Failed to decode request body"
	ErrInvalidRequestBody             = "Invalid request body"
	ErrFailedSaveEncounterType        = "Failed to save encounter type"
	ErrFailedLoadEncounterType        = "Failed to load encounter type"
	ErrFailedValidateEncounterType    = "Failed to validate encounter type"
	ErrEncounterTypeUUIDRequired      = "Encounter type UUID is required"
	ErrInvalidEncounterTypeUUID       = "Invalid encounter type UUID"
	ErrEncounterTypeNotFound          = "Encounter type not found"
	ErrEncounterTypeUUIDExists        = "Encounter type uuid already exists"
	ErrRetireReasonRequired           = "A reason is required when retiring an encounter type"
)

type BadRequestError struct {
	Message string
}

func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("Bad request: %s", e.Message)
}

type NotFoundError struct {
	Message string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ValidationError carries the sink of a failed validation run.
type ValidationError struct {
	Errors *validation.Errors
}

func NewValidationError(errs *validation.Errors) *ValidationError {
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Errors.ObjectName(), e.Errors.String())
}

// DuplicateNameError is returned by storage when another active encounter type already owns the name.
type DuplicateNameError struct {
	Name string
}

func NewDuplicateNameError(name string) *DuplicateNameError {
	return &DuplicateNameError{Name: name}
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("encounter type name %q already exists", e.Name)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
