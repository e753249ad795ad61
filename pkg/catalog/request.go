package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hadleyfc/pitchplanner/pkg/core/model"
)

type requestFile struct {
	Date      string                 `yaml:"date" validate:"required,datetime=2006-01-02"`
	StartTime string                 `yaml:"start_time" validate:"required,datetime=15:04"`
	EndTime   string                 `yaml:"end_time" validate:"required,datetime=15:04"`
	Pitches   []int                  `yaml:"pitches" validate:"required,min=1"`
	HomeTeams map[string][]teamEntry `yaml:"home_teams" validate:"required,dive,dive"`
}

type teamEntry struct {
	Name string `yaml:"name" validate:"required"`

	// PreferredTime is deliberately not format-validated here: a malformed
	// value degrades to "no preference" inside the allocator instead of
	// rejecting the whole request.
	PreferredTime string `yaml:"preferred_time"`
}

// LoadRequest decodes and validates an allocation request file. Home-team
// groups are flattened into one list with the age group carried per entry,
// in sorted age-group order so decoding is deterministic.
func LoadRequest(path string) (*model.AllocationRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read allocation request file: %w", err)
	}

	var file requestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse allocation request file: %w", err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("allocation request validation failed: %w", err)
	}

	ageGroups := make([]string, 0, len(file.HomeTeams))
	for age := range file.HomeTeams {
		ageGroups = append(ageGroups, age)
	}
	sort.Strings(ageGroups)

	var entries []model.TeamEntry
	for _, age := range ageGroups {
		for _, entry := range file.HomeTeams[age] {
			entries = append(entries, model.TeamEntry{
				Name:          entry.Name,
				AgeGroup:      age,
				PreferredTime: strings.TrimSpace(entry.PreferredTime),
			})
		}
	}

	return &model.AllocationRequest{
		Date:      file.Date,
		StartTime: file.StartTime,
		EndTime:   file.EndTime,
		PitchIDs:  file.Pitches,
		HomeTeams: entries,
	}, nil
}

// SplitGirlsSuffix strips a trailing " (Girls)" marker from a team name,
// reporting whether it was present.
func SplitGirlsSuffix(name string) (string, bool) {
	if strings.HasSuffix(name, " (Girls)") {
		return strings.TrimSuffix(name, " (Girls)"), true
	}
	return name, false
}
