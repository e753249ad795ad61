package catalog

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hadleyfc/pitchplanner/pkg/core/model"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// FileCatalog serves pitch and team records from yaml catalog files
type FileCatalog struct {
	pitchesPath string
	teamsPath   string
}

// NewFileCatalog creates a catalog backed by the given yaml files
func NewFileCatalog(pitchesPath, teamsPath string) *FileCatalog {
	return &FileCatalog{
		pitchesPath: pitchesPath,
		teamsPath:   teamsPath,
	}
}

type pitchesFile struct {
	Pitches []pitchEntry `yaml:"pitches" validate:"required,min=1,dive"`
}

type pitchEntry struct {
	ID           int     `yaml:"id" validate:"required"`
	Name         string  `yaml:"name" validate:"required"`
	Code         string  `yaml:"code" validate:"required"`
	Location     string  `yaml:"location"`
	Capacity     int     `yaml:"capacity" validate:"required,oneof=5 7 9 11"`
	Cost         float64 `yaml:"cost" validate:"gte=0"`
	OverlapsWith []int   `yaml:"overlaps_with"`
}

type teamsFile struct {
	// Teams maps an age group (e.g. "Under7s") to team names. A
	// " (Girls)" suffix on a name marks a girls' team.
	Teams map[string][]string `yaml:"teams" validate:"required"`
}

// Pitches loads and validates the pitch catalog
func (c *FileCatalog) Pitches(_ context.Context) ([]model.Pitch, error) {
	data, err := os.ReadFile(c.pitchesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pitches file: %w", err)
	}

	var file pitchesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pitches file: %w", err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("pitches file validation failed: %w", err)
	}

	seen := make(map[int]bool, len(file.Pitches))
	pitches := make([]model.Pitch, 0, len(file.Pitches))
	for _, entry := range file.Pitches {
		if seen[entry.ID] {
			return nil, fmt.Errorf("duplicate pitch id %d in %s", entry.ID, c.pitchesPath)
		}
		seen[entry.ID] = true

		pitches = append(pitches, model.Pitch{
			ID:           entry.ID,
			Name:         entry.Name,
			Code:         entry.Code,
			Location:     entry.Location,
			Capacity:     model.CapacityClass(entry.Capacity),
			Cost:         entry.Cost,
			OverlapsWith: entry.OverlapsWith,
		})
	}

	return pitches, nil
}

// Teams loads and validates the team catalog. Teams are assigned sequential
// ids in age-group order so the same file always yields the same ids.
func (c *FileCatalog) Teams(_ context.Context) ([]model.Team, error) {
	data, err := os.ReadFile(c.teamsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read teams file: %w", err)
	}

	var file teamsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse teams file: %w", err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("teams file validation failed: %w", err)
	}

	ageGroups := make([]string, 0, len(file.Teams))
	for age := range file.Teams {
		ageGroups = append(ageGroups, age)
	}
	sort.Strings(ageGroups)

	var teams []model.Team
	nextID := 1
	for _, age := range ageGroups {
		for _, rawName := range file.Teams[age] {
			name, isGirls := SplitGirlsSuffix(rawName)
			teams = append(teams, model.Team{
				ID:       nextID,
				Name:     name,
				AgeGroup: age,
				IsGirls:  isGirls,
			})
			nextID++
		}
	}

	return teams, nil
}
