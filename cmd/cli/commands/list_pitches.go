package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListPitchesCmd creates the listPitches command
func ListPitchesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listPitches",
		Short: "List all pitches in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches, err := app.Catalog.Pitches(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list pitches: %w", err)
			}

			fmt.Printf("\nFound %d pitches:\n\n", len(pitches))
			for _, p := range pitches {
				costInfo := "free"
				if p.IsPaid() {
					costInfo = fmt.Sprintf("£%.2f", p.Cost)
				}
				overlapInfo := ""
				if len(p.OverlapsWith) > 0 {
					overlapInfo = fmt.Sprintf(" [overlaps: %v]", p.OverlapsWith)
				}
				fmt.Printf("- %d: %s - %s - %s%s\n", p.ID, p.Label(), p.Location, costInfo, overlapInfo)
			}

			return nil
		},
	}
}
