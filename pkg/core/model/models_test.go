package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAgeGroup(t *testing.T) {
	assert.Equal(t, "U7", FormatAgeGroup("Under7s"))
	assert.Equal(t, "U10", FormatAgeGroup("Under10s"))
	assert.Equal(t, "U14", FormatAgeGroup("Under14s"))

	// Unrecognised groups pass through untouched
	assert.Equal(t, "Open", FormatAgeGroup("Open"))
	assert.Equal(t, "Understudy", FormatAgeGroup("Understudy"))
}

func TestTeamLabel(t *testing.T) {
	assert.Equal(t, "U7 Tigers", Team{Name: "Tigers", AgeGroup: "Under7s"}.Label())
	assert.Equal(t, "U11 Swifts (Girls)", Team{Name: "Swifts", AgeGroup: "Under11s", IsGirls: true}.Label())
}

func TestPitchLabelAndIsPaid(t *testing.T) {
	free := Pitch{Name: "North Field", Code: "A", Capacity: FiveASide}
	assert.Equal(t, "5aside - North Field (A)", free.Label())
	assert.False(t, free.IsPaid())

	paid := Pitch{Name: "Hire Ground", Code: "H", Capacity: ElevenASide, Cost: 60}
	assert.Equal(t, "11aside - Hire Ground (H)", paid.Label())
	assert.True(t, paid.IsPaid())
}

func TestCapacityClassIsValid(t *testing.T) {
	for _, c := range []CapacityClass{FiveASide, SevenASide, NineASide, ElevenASide} {
		assert.True(t, c.IsValid())
	}
	assert.False(t, CapacityClass(6).IsValid())
	assert.False(t, CapacityClass(0).IsValid())
}
