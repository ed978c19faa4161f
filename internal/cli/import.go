package cli

import (
	"context"
	"fmt"
	"github.com/mufasadev/encounter-types/internal/di"
	"github.com/mufasadev/encounter-types/internal/errors"
	"github.com/mufasadev/encounter-types/internal/seed"
	"github.com/mufasadev/encounter-types/internal/usecases/dtos"
	"github.com/mufasadev/encounter-types/internal/validation"
	"github.com/spf13/cobra"
)

const (
	importCreated  = "created"
	importRejected = "rejected"
	importFailed   = "failed"
)

type importResult struct {
	Name    string
	UUID    string
	Status  string
	Message string
}

func newImportCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <seed.yaml>",
		Short: "Create encounter types from a YAML seed file",
		Long: `Create every encounter type listed under encounterTypes in the seed file.

Each entry is validated like an API create. Rejected entries are reported
and the import continues; the command fails if any entry was not created.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := seed.ParseFile(args[0])
			if err != nil {
				return err
			}
			rt.verbosef("Importing %d encounter types from %s", len(file.EncounterTypes), args[0])

			return rt.withContainer(ctx, func(c *di.Container) error {
				results := importEntries(ctx, c, file.EncounterTypes)

				rows := make([]map[string]any, 0, len(results))
				failed := 0
				for _, r := range results {
					if r.Status != importCreated {
						failed++
					}
					rows = append(rows, map[string]any{
						"Name":    r.Name,
						"UUID":    r.UUID,
						"Status":  r.Status,
						"Message": r.Message,
					})
				}

				if err := rt.render(ctx, "Import", rows, "Name", "UUID", "Status", "Message"); err != nil {
					return err
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d encounter types were not imported", failed, len(results))
				}
				return nil
			})
		},
	}

	return cmd
}

// importEntries creates entries in file order. Earlier entries count as existing for later ones.
func importEntries(ctx context.Context, c *di.Container, entries []dtos.EncounterTypeDTO) []importResult {
	results := make([]importResult, 0, len(entries))
	for i := range entries {
		entry := entries[i]
		result := importResult{Name: entry.NameValue(), UUID: entry.UUID}

		et, err := c.EncounterTypeInteractor.Create(ctx, &entry)
		var validationErr *errors.ValidationError
		var duplicateErr *errors.DuplicateNameError
		switch {
		case err == nil:
			result.Status = importCreated
			result.UUID = et.UUID
		case errors.As(err, &validationErr):
			result.Status = importRejected
			result.Message = validationErr.Errors.String()
		case errors.As(err, &duplicateErr):
			// another writer took the name between validation and insert
			result.Status = importRejected
			result.Message = validation.FieldError{Field: "name", Code: validation.CodeDuplicateName}.String()
		default:
			result.Status = importFailed
			result.Message = err.Error()
		}
		results = append(results, result)
	}
	return results
}
