package errors

import (
	"encoding/json"
	"github.com/mufasadev/encounter-types/internal/validation"
	"net/http"
)

type HTTPError struct {
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Errors  []HTTPFieldError `json:"errors,omitempty"`
}

// HTTPFieldError is one validation failure; Field is empty for object level errors.
type HTTPFieldError struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HandleHTTPError handles http errors
func HandleHTTPError(w http.ResponseWriter, err error) {
	var (
		badRequest *BadRequestError
		notFound   *NotFoundError
		invalid    *ValidationError
		duplicate  *DuplicateNameError
		httpErr    *HTTPError
	)

	switch {
	case As(err, &invalid):
		httpErr = &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Errors:  fieldErrors(invalid.Errors),
		}
	case As(err, &duplicate):
		httpErr = &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Errors: []HTTPFieldError{{
				Field:   "name",
				Code:    validation.CodeDuplicateName,
				Message: validation.Messages[validation.CodeDuplicateName],
			}},
		}
	case As(err, &badRequest):
		httpErr = &HTTPError{
			Code:    http.StatusBadRequest,
			Message: badRequest.Error(),
		}
	case As(err, &notFound):
		httpErr = &HTTPError{
			Code:    http.StatusNotFound,
			Message: notFound.Error(),
		}
	default:
		httpErr = &HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Code)
	json.NewEncoder(w).Encode(httpErr)
}

func fieldErrors(errs *validation.Errors) []HTTPFieldError {
	out := make([]HTTPFieldError, 0, errs.Len())
	for _, fe := range errs.All() {
		out = append(out, HTTPFieldError{
			Field:   fe.Field,
			Code:    fe.Code,
			Message: validation.Message(fe),
		})
	}
	return out
}
