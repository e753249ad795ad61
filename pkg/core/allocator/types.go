package allocator

import (
	"fmt"
	"time"

	"github.com/hadleyfc/pitchplanner/pkg/core/model"
)

// Booking is one recorded match interval on a pitch. Intervals are half-open:
// a booking ending at 11:30 does not conflict with one starting at 11:30.
type Booking struct {
	Team  string
	Start time.Time
	End   time.Time
}

// Pitch is the allocator's working copy of a catalog pitch. It carries the
// booking state for the current run only; a fresh copy is built per run.
type Pitch struct {
	ID           int
	Name         string
	Code         string
	Capacity     model.CapacityClass
	Cost         float64
	OverlapsWith []int

	Bookings []Booking
}

// IsPaid reports whether the pitch has a hire cost
func (p *Pitch) IsPaid() bool {
	return p.Cost > 0
}

// Label formats the pitch for display, e.g. "5aside - North Field (A)"
func (p *Pitch) Label() string {
	return fmt.Sprintf("%daside - %s (%s)", p.Capacity, p.Name, p.Code)
}

func (p *Pitch) addBooking(team string, start time.Time, duration time.Duration) Booking {
	booking := Booking{
		Team:  team,
		Start: start,
		End:   start.Add(duration),
	}
	p.Bookings = append(p.Bookings, booking)
	return booking
}

// Team is the allocator's view of a club team
type Team struct {
	ID       int
	Name     string
	AgeGroup string
	IsGirls  bool
}

// Label formats the team for display, e.g. "U7 Tigers (Girls)"
func (t Team) Label() string {
	label := fmt.Sprintf("%s %s", model.FormatAgeGroup(t.AgeGroup), t.Name)
	if t.IsGirls {
		label += " (Girls)"
	}
	return label
}

// TeamRequest pairs a team with its optional preferred kick-off time
type TeamRequest struct {
	Team Team

	// PreferredTime is a "HH:MM" time-of-day string. Empty means no
	// preference; a malformed value degrades to no preference with a warning.
	PreferredTime string
}

// Allocation is one produced booking, ready for display or persistence
type Allocation struct {
	TeamLabel  string
	PitchLabel string
	Capacity   model.CapacityClass
	Start      time.Time
	End        time.Time

	// Preferred is true when the booking was made at the team's requested time
	Preferred bool

	// Paid is true when the booking landed on a paid pitch
	Paid bool
}

// NewPitch builds a working copy of a catalog pitch with an empty schedule
func NewPitch(p model.Pitch) *Pitch {
	overlaps := make([]int, len(p.OverlapsWith))
	copy(overlaps, p.OverlapsWith)
	return &Pitch{
		ID:           p.ID,
		Name:         p.Name,
		Code:         p.Code,
		Capacity:     p.Capacity,
		Cost:         p.Cost,
		OverlapsWith: overlaps,
	}
}

// NewTeam builds the allocator's view of a catalog team
func NewTeam(t model.Team) Team {
	return Team{
		ID:       t.ID,
		Name:     t.Name,
		AgeGroup: t.AgeGroup,
		IsGirls:  t.IsGirls,
	}
}
