package cli

import (
	"fmt"
	"github.com/mufasadev/encounter-types/internal/di"
	"github.com/mufasadev/encounter-types/internal/domain/repositories"
	"github.com/spf13/cobra"
	"strings"
)

func newAuditCommand(rt *runtime) *cobra.Command {
	var failOnConflict bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report active encounter types that share a name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return rt.withContainer(ctx, func(c *di.Container) error {
				conflicts, err := c.NameConflictAuditInteractor.Execute(ctx)
				if err != nil {
					return fmt.Errorf("audit encounter types: %w", err)
				}
				if err := rt.render(ctx, "Name Conflicts", conflictRows(conflicts), "Name", "Count", "UUIDs"); err != nil {
					return err
				}
				if failOnConflict && len(conflicts) > 0 {
					return fmt.Errorf("%d encounter type names are held by more than one active record", len(conflicts))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&failOnConflict, "fail", false, "exit non-zero when conflicts are found")
	return cmd
}

func conflictRows(conflicts []repositories.NameConflictRow) []map[string]any {
	rows := make([]map[string]any, 0, len(conflicts))
	for _, c := range conflicts {
		rows = append(rows, map[string]any{
			"Name":  c.Name,
			"Count": len(c.UUIDs),
			"UUIDs": strings.Join(c.UUIDs, ", "),
		})
	}
	return rows
}
