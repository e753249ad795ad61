package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hadleyfc/pitchplanner/cmd/cli/commands"
	"github.com/hadleyfc/pitchplanner/internal/config"
	"github.com/hadleyfc/pitchplanner/pkg/catalog"
	"github.com/hadleyfc/pitchplanner/pkg/db"
	"github.com/hadleyfc/pitchplanner/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pitchplanner",
		Short: "Pitch Planner CLI - Allocate teams to pitches",
		Long:  `A CLI tool for allocating club teams to pitches on match days, honouring time preferences, pitch capacities, and overlap constraints.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.Database != nil {
					app.Database.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (test, prod, etc.)")

	app = &commands.AppContext{}
	rootCmd.AddCommand(commands.AllocateCmd(app))
	rootCmd.AddCommand(commands.ListPitchesCmd(app))
	rootCmd.AddCommand(commands.ListTeamsCmd(app))
	rootCmd.AddCommand(commands.ListRunsCmd(app))
	rootCmd.AddCommand(commands.SeasonCmd(app))
	rootCmd.AddCommand(commands.ValidateCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, catalog, and database
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	if app.Cfg.DatabaseURL != "" {
		app.Logger.Info("Connecting to database")
		app.Database, err = db.NewDB(app.Ctx, app.Cfg.DatabaseURL, app.Cfg.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.Catalog = app.Database
		app.Logger.Info("Database catalog initialized")
	} else {
		app.Catalog = catalog.NewFileCatalog(app.Cfg.PitchesFile, app.Cfg.TeamsFile)
		app.Logger.Info("File catalog initialized",
			zap.String("pitches", app.Cfg.PitchesFile),
			zap.String("teams", app.Cfg.TeamsFile))
	}

	return nil
}
