package validation

import (
	"context"
	"errors"
	"fmt"
	"github.com/mufasadev/encounter-types/internal/domain/models"
)

var (
	ErrUnsupportedKind = errors.New("validation: no validator registered for kind")
	ErrTargetType      = errors.New("validation: target type does not match kind")
)

// Func validates target, appending failures to errs. A nil target means the object is absent.
// The returned error is reserved for failures of collaborators, never for invalid input.
type Func[T any] func(ctx context.Context, target *T, errs *Errors) error

type untypedFunc func(ctx context.Context, target any, errs *Errors) error

// Registry maps entity kinds to their validators. Register everything before the first Validate.
type Registry struct {
	validators map[models.Kind]untypedFunc
}

func NewRegistry() *Registry {
	return &Registry{validators: make(map[models.Kind]untypedFunc)}
}

// Register binds fn to kind, replacing any previous validator for that kind.
func Register[T any](r *Registry, kind models.Kind, fn Func[T]) {
	r.validators[kind] = func(ctx context.Context, target any, errs *Errors) error {
		if target == nil {
			return fn(ctx, nil, errs)
		}
		typed, ok := target.(*T)
		if !ok {
			return fmt.Errorf("%w: %s expects %T, got %T", ErrTargetType, kind, (*T)(nil), target)
		}
		return fn(ctx, typed, errs)
	}
}

func (r *Registry) Supports(kind models.Kind) bool {
	_, ok := r.validators[kind]
	return ok
}

// Validate runs the validator registered for kind against target and returns the filled sink.
func (r *Registry) Validate(ctx context.Context, kind models.Kind, target any) (*Errors, error) {
	fn, ok := r.validators[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	errs := NewErrors(string(kind))
	if err := fn(ctx, target, errs); err != nil {
		return errs, err
	}
	return errs, nil
}
