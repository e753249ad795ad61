package allocator

import (
	"time"

	"go.uber.org/zap"
)

// preferredEntry is a team whose request carried a valid preferred time,
// resolved to an absolute instant on the run's date.
type preferredEntry struct {
	team Team
	at   time.Time
}

// partitionRequests splits the requested teams into those with a valid
// preferred time and those without. Blank preferences go straight to the
// no-preference pool; malformed ones degrade to no preference with a warning.
func (a *Allocator) partitionRequests(requests []TeamRequest) ([]preferredEntry, []Team) {
	withPref := make([]preferredEntry, 0, len(requests))
	withoutPref := make([]Team, 0, len(requests))

	for _, req := range requests {
		if req.PreferredTime == "" {
			withoutPref = append(withoutPref, req.Team)
			continue
		}

		tod, err := time.Parse("15:04", req.PreferredTime)
		if err != nil {
			a.logger.Warn("Invalid preferred time, ignoring preference",
				zap.String("team", req.Team.Label()),
				zap.String("preferred_time", req.PreferredTime))
			withoutPref = append(withoutPref, req.Team)
			continue
		}

		at := time.Date(
			a.date.Year(), a.date.Month(), a.date.Day(),
			tod.Hour(), tod.Minute(), 0, 0, a.date.Location(),
		)
		withPref = append(withPref, preferredEntry{team: req.Team, at: at})
	}

	return withPref, withoutPref
}
