package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hadleyfc/pitchplanner/pkg/catalog"
)

// ValidateCmd creates the validate command
func ValidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [request_file]",
		Short: "Check the catalogs (and optionally a request file) for problems",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches, err := app.Catalog.Pitches(app.Ctx)
			if err != nil {
				return fmt.Errorf("pitch catalog invalid: %w", err)
			}
			teams, err := app.Catalog.Teams(app.Ctx)
			if err != nil {
				return fmt.Errorf("team catalog invalid: %w", err)
			}
			fmt.Printf("Catalog OK: %d pitches, %d teams\n", len(pitches), len(teams))

			// Overlap references must point at catalogued pitches
			known := make(map[int]bool, len(pitches))
			for _, p := range pitches {
				known[p.ID] = true
			}
			for _, p := range pitches {
				for _, overlapID := range p.OverlapsWith {
					if !known[overlapID] {
						return fmt.Errorf("pitch %d overlaps unknown pitch id %d", p.ID, overlapID)
					}
				}
			}

			if len(args) == 1 {
				req, err := catalog.LoadRequest(args[0])
				if err != nil {
					return err
				}
				for _, id := range req.PitchIDs {
					if !known[id] {
						return fmt.Errorf("request references unknown pitch id %d", id)
					}
				}
				fmt.Printf("Request OK: %d pitches, %d home teams on %s\n",
					len(req.PitchIDs), len(req.HomeTeams), req.Date)
			}

			return nil
		},
	}
}
