package allocator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hadleyfc/pitchplanner/pkg/core/model"
)

func TestRequiredCapacity(t *testing.T) {
	tests := []struct {
		name     string
		ageGroup string
		isGirls  bool
		want     model.CapacityClass
	}{
		{"under 7s", "Under7s", false, model.FiveASide},
		{"under 8s", "Under8s", false, model.FiveASide},
		{"under 8s girls", "Under8s", true, model.FiveASide},
		{"under 9s", "Under9s", false, model.SevenASide},
		{"under 10s", "Under10s", false, model.SevenASide},
		{"under 11s boys", "Under11s", false, model.NineASide},
		{"under 11s girls step down", "Under11s", true, model.SevenASide},
		{"under 12s", "Under12s", false, model.NineASide},
		{"under 13s boys", "Under13s", false, model.ElevenASide},
		{"under 13s girls step down", "Under13s", true, model.NineASide},
		{"under 14s", "Under14s", false, model.ElevenASide},
		{"open age falls through to largest", "Open", false, model.ElevenASide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := Team{Name: "Test", AgeGroup: tt.ageGroup, IsGirls: tt.isGirls}
			assert.Equal(t, tt.want, RequiredCapacity(team))
		})
	}
}

func TestMatchDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, MatchDuration(model.FiveASide))
	assert.Equal(t, 90*time.Minute, MatchDuration(model.SevenASide))
	assert.Equal(t, 90*time.Minute, MatchDuration(model.NineASide))
	assert.Equal(t, 2*time.Hour, MatchDuration(model.ElevenASide))
}
