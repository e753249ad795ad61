package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hadleyfc/pitchplanner/pkg/core/services"
)

// ListRunsCmd creates the listRuns command
func ListRunsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listRuns",
		Short: "List past allocation runs saved to the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			var store services.RunLister
			if app.Database != nil {
				store = app.Database
			}

			runs, err := services.ListRuns(app.Ctx, store, app.Logger, limit)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Println("No saved allocation runs.")
				return nil
			}

			fmt.Printf("\nFound %d runs:\n\n", len(runs))
			for _, run := range runs {
				fmt.Printf("- %s  %s %s-%s  seed %d  (saved %s)\n",
					run.Date, run.ID, run.WindowStart, run.WindowEnd, run.Seed,
					run.CreatedAt.Format("2006-01-02 15:04"))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("limit", services.DefaultRunLimit, "Maximum number of runs to list")

	return cmd
}
