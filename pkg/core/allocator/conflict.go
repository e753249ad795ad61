package allocator

import "time"

// overlapsInterval reports whether the booking intersects [start, end),
// using half-open semantics on both sides.
func (b Booking) overlapsInterval(start, end time.Time) bool {
	return b.Start.Before(end) && start.Before(b.End)
}

// isAvailable reports whether a pitch can take a booking at the given start
// for the given duration. The slot must be clear on the pitch itself and on
// every pitch in its overlap set: overlapping pitches share physical space,
// so a booking on one excludes the others for the same interval.
func (a *Allocator) isAvailable(pitch *Pitch, start time.Time, duration time.Duration) bool {
	end := start.Add(duration)

	for _, booking := range pitch.Bookings {
		if booking.overlapsInterval(start, end) {
			return false
		}
	}

	for _, overlapID := range pitch.OverlapsWith {
		neighbour, ok := a.byID[overlapID]
		if !ok || neighbour == pitch {
			continue
		}
		for _, booking := range neighbour.Bookings {
			if booking.overlapsInterval(start, end) {
				return false
			}
		}
	}

	return true
}
