package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	PitchesFile string `yaml:"pitchesFile" validate:"required"`
	TeamsFile   string `yaml:"teamsFile" validate:"required"`

	// DatabaseURL is the Postgres DSN for persisting runs. Empty disables
	// persistence; allocations are only printed/exported.
	DatabaseURL string `yaml:"databaseURL,omitempty"`

	// OwnerID scopes catalog queries when loading from the database
	OwnerID string `yaml:"ownerID,omitempty"`

	DefaultStartTime string `yaml:"defaultStartTime,omitempty" validate:"omitempty,datetime=15:04"`
	DefaultEndTime   string `yaml:"defaultEndTime,omitempty" validate:"omitempty,datetime=15:04"`

	// SlotStepMinutes is the sweep increment (15 or 30)
	SlotStepMinutes int `yaml:"slotStepMinutes,omitempty" validate:"omitempty,oneof=15 30"`

	// MatchDayRule is an RFC 5545 RRULE for the club's recurring match days,
	// used by the season command to plan upcoming allocation dates
	MatchDayRule string `yaml:"matchDayRule,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from pitchplanner.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for the given environment, e.g.
// pitchplanner.test.yaml for "test". An empty env loads pitchplanner.yaml.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for the match-day rule
	if cfg.MatchDayRule != "" {
		if _, err := rrule.StrToRRule(cfg.MatchDayRule); err != nil {
			return fmt.Errorf("invalid rrule in matchDayRule: %w", err)
		}
	}

	return nil
}

// findConfigFile searches for the config file in current directory and home directory
func findConfigFile(env string) (string, error) {
	configFileName := "pitchplanner.yaml"
	if env != "" {
		configFileName = fmt.Sprintf("pitchplanner.%s.yaml", env)
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
