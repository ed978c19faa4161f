package cli

import (
	"context"
	"errors"
	"fmt"
	"github.com/mufasadev/encounter-types/internal/di"
	"github.com/mufasadev/encounter-types/internal/usecases/dtos"
	"github.com/mufasadev/encounter-types/internal/validation"
	"github.com/spf13/cobra"
)

// ErrInvalid makes etctl exit non-zero after the validation errors were printed.
var ErrInvalid = errors.New("encounter type is invalid")

func newCheckCommand(rt *runtime) *cobra.Command {
	var candidateUUID string
	var description string

	cmd := &cobra.Command{
		Use:   "check <name>",
		Short: "Check an encounter type name without saving it",
		Long: `Run the encounter type validation rules against a candidate.

Pass --uuid to check an edit of an existing encounter type: a name held
by the same UUID is not reported as a duplicate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]
			dto := &dtos.EncounterTypeDTO{UUID: candidateUUID, Name: &name, Description: description}

			return rt.withContainer(ctx, func(c *di.Container) error {
				errs, err := check(ctx, c, dto)
				if err != nil {
					return err
				}
				if !errs.HasErrors() {
					rt.verbosef("%q is valid", name)
					return rt.render(ctx, "Check", []map[string]any{{"Name": name, "Result": "valid"}}, "Name", "Result")
				}
				if err := rt.render(ctx, "Validation Errors", errorRows(errs), "Field", "Code", "Message"); err != nil {
					return err
				}
				return ErrInvalid
			})
		},
	}

	cmd.Flags().StringVar(&candidateUUID, "uuid", "", "UUID of the encounter type being edited")
	cmd.Flags().StringVar(&description, "description", "", "description of the candidate")
	return cmd
}

func check(ctx context.Context, c *di.Container, dto *dtos.EncounterTypeDTO) (*validation.Errors, error) {
	errs, err := c.EncounterTypeInteractor.Validate(ctx, dto)
	if err != nil {
		return nil, fmt.Errorf("check encounter type: %w", err)
	}
	return errs, nil
}

func errorRows(errs *validation.Errors) []map[string]any {
	rows := make([]map[string]any, 0, errs.Len())
	for _, fe := range errs.All() {
		field := fe.Field
		if fe.Global() {
			field = "(object)"
		}
		rows = append(rows, map[string]any{
			"Field":   field,
			"Code":    fe.Code,
			"Message": validation.Message(fe),
		})
	}
	return rows
}
