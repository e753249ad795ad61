package logging

import (
	"go.uber.org/zap"
)

// InitLogger creates a logger appropriate for the given environment.
// "dev" and "test" get the human-readable development config; everything
// else gets the JSON production config.
func InitLogger(env string) (*zap.Logger, error) {
	if env == "dev" || env == "test" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
