package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hadleyfc/pitchplanner/pkg/core/services"
)

// SeasonCmd creates the season command
func SeasonCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "season <match_day_count>",
		Short: "Plan the next match days from the configured match-day rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("match_day_count must be a number: %w", err)
			}

			fromStr, _ := cmd.Flags().GetString("from")
			from := time.Now()
			if fromStr != "" {
				from, err = time.Parse("2006-01-02", fromStr)
				if err != nil {
					return fmt.Errorf("invalid --from date: %w", err)
				}
			}

			dates, err := services.PlanSeason(app.Cfg, app.Logger, from, count)
			if err != nil {
				return err
			}

			fmt.Printf("\nNext %d match days:\n\n", len(dates))
			for i, date := range dates {
				fmt.Printf("  %2d. %s\n", i+1, date.Format("2006-01-02 (Monday)"))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("from", "", "Plan from this date (YYYY-MM-DD, default today)")

	return cmd
}
