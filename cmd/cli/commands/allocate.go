package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hadleyfc/pitchplanner/pkg/catalog"
	"github.com/hadleyfc/pitchplanner/pkg/core/services"
	"github.com/hadleyfc/pitchplanner/pkg/export"
)

// AllocateCmd creates the allocate command
func AllocateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocate <request_file>",
		Short: "Allocate home teams to pitches for one match day",
		Long:  "Run the allocation algorithm over an allocation request file, assigning teams to pitches within the daily window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("seed")
			step, _ := cmd.Flags().GetInt("step")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			outPath, _ := cmd.Flags().GetString("out")
			xlsxPath, _ := cmd.Flags().GetString("xlsx")

			app.Logger.Debug("allocate command",
				zap.String("request_file", args[0]),
				zap.Int64("seed", seed),
				zap.Bool("dry_run", dryRun))

			req, err := catalog.LoadRequest(args[0])
			if err != nil {
				return fmt.Errorf("failed to load allocation request: %w", err)
			}

			var store services.RunStore
			if app.Database != nil {
				store = app.Database
			}

			result, err := services.RunAllocation(app.Ctx, app.Catalog, store, app.Cfg, app.Logger, req, services.AllocateOptions{
				Seed:        seed,
				StepMinutes: step,
				DryRun:      dryRun,
			})
			if err != nil {
				return fmt.Errorf("allocation failed: %w", err)
			}

			fmt.Printf("\nPitch allocations for %s (seed %d)\n\n", result.Date, result.Seed)
			for _, line := range result.Outcome.Lines() {
				fmt.Println(line)
			}
			if len(result.Outcome.Allocations) == 0 {
				fmt.Println("(no allocations)")
			}
			fmt.Println()

			if labels := result.Outcome.UnallocatedLabels(); len(labels) > 0 {
				fmt.Printf("Unallocated teams (%d):\n", len(labels))
				for _, label := range labels {
					fmt.Printf("  - %s\n", label)
				}
				fmt.Println()
			}

			if len(result.SkippedTeams) > 0 {
				fmt.Printf("Skipped (not in catalog): %d\n", len(result.SkippedTeams))
				for _, name := range result.SkippedTeams {
					fmt.Printf("  - %s\n", name)
				}
				fmt.Println()
			}

			if outPath != "" {
				if err := export.WriteTextSheet(outPath, result.Outcome); err != nil {
					return err
				}
				fmt.Printf("Allocation sheet written to %s\n", outPath)
			}
			if xlsxPath != "" {
				if err := export.WriteWorkbook(xlsxPath, result.Outcome); err != nil {
					return err
				}
				fmt.Printf("Workbook written to %s\n", xlsxPath)
			}

			switch {
			case dryRun:
				fmt.Println("Dry run - nothing saved.")
			case result.Saved:
				fmt.Printf("Run %s saved to the database.\n", result.RunID)
			default:
				fmt.Println("No database configured - run not saved.")
			}

			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Seed for random decisions (0 = time-based)")
	cmd.Flags().Int("step", 0, "Sweep step in minutes (overrides config)")
	cmd.Flags().Bool("dry-run", false, "Run without saving to the database")
	cmd.Flags().String("out", "", "Write the allocation sheet to a text file")
	cmd.Flags().String("xlsx", "", "Write the allocation sheet to an Excel workbook")

	return cmd
}
