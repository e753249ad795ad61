package allocator

import (
	"sort"

	"go.uber.org/zap"
)

// runPreferredPass tries to honour each team's exact requested time, earliest
// preferences first. A preferred time past the window end makes the team
// unallocated immediately. A team whose slot cannot be found is returned for
// re-queueing into the sweep passes rather than discarded.
func (a *Allocator) runPreferredPass(entries []preferredEntry) []Team {
	// Stable sort keeps the shuffled order among equal preferred times
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.Before(entries[j].at)
	})

	var requeue []Team

	for _, entry := range entries {
		if entry.at.After(a.windowEnd) {
			a.logger.Warn("Preferred time is after the allocation window, team unallocated",
				zap.String("team", entry.team.Label()),
				zap.String("preferred_time", entry.at.Format("15:04")),
				zap.String("window_end", a.windowEnd.Format("15:04")))
			a.unallocated = append(a.unallocated, entry.team)
			continue
		}

		pitch := a.findPreferredPitch(entry)
		if pitch == nil {
			a.logger.Info("No pitch free at preferred time, team joins sweep pool",
				zap.String("team", entry.team.Label()),
				zap.String("preferred_time", entry.at.Format("15:04")))
			requeue = append(requeue, entry.team)
			continue
		}

		a.book(entry.team, pitch, entry.at, true)
	}

	return requeue
}

// findPreferredPitch returns the cheapest capacity-matching pitch that is
// free at the entry's preferred instant, or nil. Free pitches sort before
// paid ones because cost zero sorts first.
func (a *Allocator) findPreferredPitch(entry preferredEntry) *Pitch {
	required := RequiredCapacity(entry.team)
	duration := MatchDuration(required)

	candidates := make([]*Pitch, 0, len(a.pitches))
	for _, pitch := range a.pitches {
		if pitch.Capacity == required {
			candidates = append(candidates, pitch)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Cost < candidates[j].Cost
	})

	for _, pitch := range candidates {
		if a.isAvailable(pitch, entry.at, duration) {
			return pitch
		}
	}
	return nil
}
