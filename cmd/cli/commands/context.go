package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/hadleyfc/pitchplanner/internal/config"
	"github.com/hadleyfc/pitchplanner/pkg/core/services"
	"github.com/hadleyfc/pitchplanner/pkg/db"
)

// AppContext holds the application dependencies shared by all commands
type AppContext struct {
	Ctx     context.Context
	Cfg     *config.Config
	Logger  *zap.Logger
	Catalog services.Catalog

	// Database is nil when no databaseURL is configured; runs are then not
	// persisted and the catalog comes from the yaml files.
	Database *db.DB
}
