package allocator

import (
	"time"

	"github.com/hadleyfc/pitchplanner/pkg/core/model"
)

// RequiredCapacity resolves the pitch capacity class a team must play on.
// Girls' teams step down one class at the Under11s and Under13s boundaries.
// Unmatched age groups fall through to the largest class.
func RequiredCapacity(t Team) model.CapacityClass {
	switch t.AgeGroup {
	case "Under7s", "Under8s":
		return model.FiveASide
	case "Under9s", "Under10s":
		return model.SevenASide
	case "Under11s":
		if t.IsGirls {
			return model.SevenASide
		}
		return model.NineASide
	case "Under12s":
		return model.NineASide
	case "Under13s":
		if t.IsGirls {
			return model.NineASide
		}
		return model.ElevenASide
	default:
		return model.ElevenASide
	}
}

// MatchDuration resolves the match length for a capacity class
func MatchDuration(capacity model.CapacityClass) time.Duration {
	if capacity == model.ElevenASide {
		return 2 * time.Hour
	}
	return 90 * time.Minute
}
