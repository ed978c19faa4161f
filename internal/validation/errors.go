// Package validation collects field and object level validation failures and dispatches
// entities to the validator registered for their kind.
package validation

import (
	"strings"
)

// Stable error codes, translated for display by Message.
const (
	CodeGeneral       = "error.general"
	CodeName          = "error.name"
	CodeDuplicateName = "encounterType.duplicate.name"
)

// FieldError is one recorded failure. An empty Field marks an object level (global) error.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func (e FieldError) Global() bool {
	return e.Field == ""
}

func (e FieldError) String() string {
	if e.Global() {
		return e.Code
	}
	return e.Field + ": " + e.Code
}

// Errors is the sink a validator appends to. It is not safe for concurrent use;
// each validation run gets its own.
type Errors struct {
	object string
	errs   []FieldError
}

func NewErrors(object string) *Errors {
	return &Errors{object: object}
}

// ObjectName is the name of the validated object, e.g. "EncounterType".
func (e *Errors) ObjectName() string {
	return e.object
}

// Reject records an error against the object as a whole.
func (e *Errors) Reject(code, message string) {
	e.errs = append(e.errs, FieldError{Code: code, Message: message})
}

// RejectValue records an error against a single field.
func (e *Errors) RejectValue(field, code, message string) {
	e.errs = append(e.errs, FieldError{Field: field, Code: code, Message: message})
}

func (e *Errors) HasErrors() bool {
	return len(e.errs) > 0
}

func (e *Errors) Len() int {
	return len(e.errs)
}

func (e *Errors) HasFieldErrors(field string) bool {
	for _, fe := range e.errs {
		if fe.Field == field && !fe.Global() {
			return true
		}
	}
	return false
}

func (e *Errors) FieldErrors(field string) []FieldError {
	var out []FieldError
	for _, fe := range e.errs {
		if fe.Field == field && !fe.Global() {
			out = append(out, fe)
		}
	}
	return out
}

func (e *Errors) GlobalErrors() []FieldError {
	var out []FieldError
	for _, fe := range e.errs {
		if fe.Global() {
			out = append(out, fe)
		}
	}
	return out
}

// All returns every recorded error in insertion order.
func (e *Errors) All() []FieldError {
	out := make([]FieldError, len(e.errs))
	copy(out, e.errs)
	return out
}

// Codes returns the recorded error codes in insertion order.
func (e *Errors) Codes() []string {
	codes := make([]string, 0, len(e.errs))
	for _, fe := range e.errs {
		codes = append(codes, fe.Code)
	}
	return codes
}

func (e *Errors) String() string {
	parts := make([]string, 0, len(e.errs))
	for _, fe := range e.errs {
		parts = append(parts, fe.String())
	}
	return strings.Join(parts, "; ")
}

// RejectIfEmptyOrWhitespace records code against field when value is empty or only whitespace.
// It reports whether an error was recorded.
func RejectIfEmptyOrWhitespace(errs *Errors, field, value, code string) bool {
	if strings.TrimSpace(value) != "" {
		return false
	}
	errs.RejectValue(field, code, "")
	return true
}
