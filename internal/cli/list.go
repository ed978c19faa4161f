package cli

import (
	"fmt"
	"github.com/mufasadev/encounter-types/internal/di"
	"github.com/mufasadev/encounter-types/internal/domain/models"
	"github.com/spf13/cobra"
	"time"
)

func newListCommand(rt *runtime) *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List encounter types",
		Long: `List active encounter types sorted by name.

With --all, retired encounter types are included together with their
retire reason.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return rt.withContainer(ctx, func(c *di.Container) error {
				list, err := c.EncounterTypeInteractor.List(ctx, showAll)
				if err != nil {
					return fmt.Errorf("list encounter types: %w", err)
				}
				rt.verbosef("Found %d encounter types", len(list))

				keys := []string{"UUID", "Name", "Description"}
				if showAll {
					keys = append(keys, "Retired", "Retire Reason")
				}
				return rt.render(ctx, "Encounter Types", listRows(list, showAll), keys...)
			})
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "include retired encounter types")
	return cmd
}

func listRows(list []*models.EncounterType, showAll bool) []map[string]any {
	rows := make([]map[string]any, 0, len(list))
	for _, et := range list {
		row := map[string]any{
			"UUID":        et.UUID,
			"Name":        et.Name,
			"Description": et.Description,
		}
		if showAll {
			row["Retired"] = retiredLabel(et)
			row["Retire Reason"] = et.RetireReason
		}
		rows = append(rows, row)
	}
	return rows
}

func retiredLabel(et *models.EncounterType) string {
	if !et.Retired {
		return "no"
	}
	if et.DateRetired == nil {
		return "yes"
	}
	return et.DateRetired.Format(time.DateOnly)
}
