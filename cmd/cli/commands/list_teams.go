package commands

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/hadleyfc/pitchplanner/pkg/core/allocator"
	"github.com/hadleyfc/pitchplanner/pkg/core/model"
)

// ListTeamsCmd creates the listTeams command
func ListTeamsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listTeams",
		Short: "List all teams in the catalog with their pitch requirements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := app.Catalog.Teams(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list teams: %w", err)
			}

			byAge := lo.GroupBy(teams, func(t model.Team) string { return t.AgeGroup })
			ages := lo.Keys(byAge)
			sort.Strings(ages)

			fmt.Printf("\nFound %d teams:\n\n", len(teams))
			for _, age := range ages {
				for _, t := range byAge[age] {
					required := allocator.RequiredCapacity(allocator.NewTeam(t))
					fmt.Printf("- %s (requires %daside, %s)\n",
						t.Label(), required, allocator.MatchDuration(required))
				}
			}

			return nil
		},
	}
}
