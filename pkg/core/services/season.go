package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/hadleyfc/pitchplanner/internal/config"
)

// PlanSeason expands the configured match-day rule into the next count match
// dates on or after the given date
func PlanSeason(cfg *config.Config, logger *zap.Logger, from time.Time, count int) ([]time.Time, error) {
	if cfg.MatchDayRule == "" {
		return nil, fmt.Errorf("no matchDayRule configured")
	}
	if count <= 0 {
		return nil, fmt.Errorf("match day count must be positive, got %d", count)
	}

	rule, err := rrule.StrToRRule(cfg.MatchDayRule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse matchDayRule: %w", err)
	}
	rule.DTStart(from)

	logger.Debug("Planning season",
		zap.String("rule", cfg.MatchDayRule),
		zap.Time("from", from),
		zap.Int("count", count))

	dates := make([]time.Time, 0, count)
	next := rule.Iterator()
	for len(dates) < count {
		date, ok := next()
		if !ok {
			break
		}
		dates = append(dates, date)
	}

	if len(dates) == 0 {
		return nil, fmt.Errorf("matchDayRule produced no match days after %s", from.Format("2006-01-02"))
	}

	return dates, nil
}
