package allocator

import (
	"sort"

	"go.uber.org/zap"
)

// runSweepPass greedily fills the given pitches from the window start to the
// window end in fixed steps. At each step it visits each pitch in order and
// books a randomly chosen pool team whose required capacity matches, if the
// slot passes the conflict check. Only start times are checked against the
// window end; a match may run past it. The returned slice holds the teams
// that could not be placed by this pass.
func (a *Allocator) runSweepPass(pool []Team, pitches []*Pitch) []Team {
	if len(pool) == 0 || len(pitches) == 0 {
		return pool
	}

	remaining := make([]Team, len(pool))
	copy(remaining, pool)

	for slot := a.windowStart; !slot.After(a.windowEnd); slot = slot.Add(a.step) {
		if len(remaining) == 0 {
			break
		}

		allocatedThisSlot := false
		for _, pitch := range pitches {
			if len(remaining) == 0 {
				break
			}

			duration := MatchDuration(pitch.Capacity)
			if !a.isAvailable(pitch, slot, duration) {
				continue
			}

			// Indices of pool teams that must play on this capacity class
			matching := make([]int, 0, len(remaining))
			for i, team := range remaining {
				if RequiredCapacity(team) == pitch.Capacity {
					matching = append(matching, i)
				}
			}
			if len(matching) == 0 {
				continue
			}

			pick := matching[a.rng.Intn(len(matching))]
			a.book(remaining[pick], pitch, slot, false)
			remaining = append(remaining[:pick], remaining[pick+1:]...)
			allocatedThisSlot = true
		}

		if !allocatedThisSlot {
			a.logger.Debug("No allocations made in slot",
				zap.String("slot", slot.Format("15:04")))
		}
	}

	return remaining
}

// freePitches returns the zero-cost pitches ordered by capacity then cost
func (a *Allocator) freePitches() []*Pitch {
	free := make([]*Pitch, 0, len(a.pitches))
	for _, pitch := range a.pitches {
		if !pitch.IsPaid() {
			free = append(free, pitch)
		}
	}
	sort.SliceStable(free, func(i, j int) bool {
		if free[i].Capacity != free[j].Capacity {
			return free[i].Capacity < free[j].Capacity
		}
		return free[i].Cost < free[j].Cost
	})
	return free
}

// paidPitches returns the costed pitches ordered by ascending cost
func (a *Allocator) paidPitches() []*Pitch {
	paid := make([]*Pitch, 0, len(a.pitches))
	for _, pitch := range a.pitches {
		if pitch.IsPaid() {
			paid = append(paid, pitch)
		}
	}
	sort.SliceStable(paid, func(i, j int) bool {
		return paid[i].Cost < paid[j].Cost
	})
	return paid
}
