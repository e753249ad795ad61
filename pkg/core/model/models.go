package model

import (
	"fmt"
	"strings"
)

// CapacityClass is the team-size tier a pitch supports (5/7/9/11-a-side).
type CapacityClass int

const (
	FiveASide   CapacityClass = 5
	SevenASide  CapacityClass = 7
	NineASide   CapacityClass = 9
	ElevenASide CapacityClass = 11
)

func (c CapacityClass) IsValid() bool {
	return c == FiveASide || c == SevenASide || c == NineASide || c == ElevenASide
}

// Pitch represents a bookable playing surface from the catalog
type Pitch struct {
	ID       int
	Name     string
	Code     string
	Location string
	Capacity CapacityClass
	Cost     float64

	// OverlapsWith lists ids of pitches sharing physical space with this one.
	// Booking this pitch excludes booking any of them for the same interval.
	OverlapsWith []int
}

// IsPaid reports whether the pitch has a hire cost
func (p Pitch) IsPaid() bool {
	return p.Cost > 0
}

// Label formats the pitch for display, e.g. "5aside - North Field (A)"
func (p Pitch) Label() string {
	return fmt.Sprintf("%daside - %s (%s)", p.Capacity, p.Name, p.Code)
}

// Team represents a club team from the catalog
type Team struct {
	ID       int
	Name     string
	AgeGroup string // e.g. "Under7s"
	IsGirls  bool
}

// Label formats the team for display, e.g. "U7 Tigers (Girls)"
func (t Team) Label() string {
	label := fmt.Sprintf("%s %s", FormatAgeGroup(t.AgeGroup), t.Name)
	if t.IsGirls {
		label += " (Girls)"
	}
	return label
}

// FormatAgeGroup shortens "Under7s" to "U7", "Under8s" to "U8", etc.
// Unrecognised age groups are returned unchanged.
func FormatAgeGroup(ageGroup string) string {
	if !strings.HasPrefix(ageGroup, "Under") {
		return ageGroup
	}
	digits := strings.Builder{}
	for _, r := range ageGroup {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ageGroup
	}
	return "U" + digits.String()
}

// TeamEntry is one home-team line from an allocation request: the team name
// as written in the request (may carry a " (Girls)" suffix) plus an optional
// preferred kick-off time.
type TeamEntry struct {
	Name          string
	AgeGroup      string
	PreferredTime string // "HH:MM", empty if no preference
}

// AllocationRequest is the decoded, validated input for one allocation run
type AllocationRequest struct {
	Date      string // "2006-01-02"
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	PitchIDs  []int
	HomeTeams []TeamEntry
}
