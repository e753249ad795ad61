package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hadleyfc/pitchplanner/internal/config"
)

func TestPlanSeason(t *testing.T) {
	cfg := &config.Config{MatchDayRule: "FREQ=WEEKLY;BYDAY=SU"}
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) // a Sunday

	dates, err := PlanSeason(cfg, zap.NewNop(), from, 4)
	require.NoError(t, err)
	require.Len(t, dates, 4)

	assert.Equal(t, from, dates[0])
	for i, date := range dates {
		assert.Equal(t, time.Sunday, date.Weekday())
		if i > 0 {
			assert.Equal(t, 7*24*time.Hour, date.Sub(dates[i-1]))
		}
	}
}

func TestPlanSeason_RuleCountLimitsDates(t *testing.T) {
	cfg := &config.Config{MatchDayRule: "FREQ=WEEKLY;BYDAY=SU;COUNT=2"}
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	dates, err := PlanSeason(cfg, zap.NewNop(), from, 10)
	require.NoError(t, err)
	assert.Len(t, dates, 2)
}

func TestPlanSeason_NoRuleConfigured(t *testing.T) {
	_, err := PlanSeason(&config.Config{}, zap.NewNop(), time.Now(), 4)
	assert.ErrorContains(t, err, "no matchDayRule configured")
}

func TestPlanSeason_InvalidRule(t *testing.T) {
	cfg := &config.Config{MatchDayRule: "FREQ=SOMETIMES"}
	_, err := PlanSeason(cfg, zap.NewNop(), time.Now(), 4)
	assert.ErrorContains(t, err, "failed to parse matchDayRule")
}

func TestPlanSeason_NonPositiveCount(t *testing.T) {
	cfg := &config.Config{MatchDayRule: "FREQ=WEEKLY;BYDAY=SU"}
	_, err := PlanSeason(cfg, zap.NewNop(), time.Now(), 0)
	assert.ErrorContains(t, err, "must be positive")
}
