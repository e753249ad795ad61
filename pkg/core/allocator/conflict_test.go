package allocator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hadleyfc/pitchplanner/pkg/core/model"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 1, hour, minute, 0, 0, time.UTC)
}

func newTestAllocator(t *testing.T, pitches ...*Pitch) *Allocator {
	t.Helper()
	a, err := newAllocator(Config{
		Date:        at(0, 0),
		WindowStart: at(10, 0),
		WindowEnd:   at(14, 0),
		Pitches:     pitches,
	})
	assert.NoError(t, err)
	return a
}

func TestIsAvailable_EmptySchedule(t *testing.T) {
	pitch := &Pitch{ID: 1, Capacity: model.FiveASide}
	a := newTestAllocator(t, pitch)

	assert.True(t, a.isAvailable(pitch, at(10, 0), 90*time.Minute))
}

func TestIsAvailable_OverlappingBooking(t *testing.T) {
	pitch := &Pitch{ID: 1, Capacity: model.FiveASide}
	a := newTestAllocator(t, pitch)
	pitch.addBooking("U7 Tigers", at(10, 0), 90*time.Minute)

	// Anything intersecting 10:00-11:30 is blocked
	assert.False(t, a.isAvailable(pitch, at(10, 0), 90*time.Minute))
	assert.False(t, a.isAvailable(pitch, at(11, 0), 90*time.Minute))
	assert.False(t, a.isAvailable(pitch, at(9, 0), 90*time.Minute))
}

func TestIsAvailable_HalfOpenBoundaries(t *testing.T) {
	pitch := &Pitch{ID: 1, Capacity: model.FiveASide}
	a := newTestAllocator(t, pitch)
	pitch.addBooking("U7 Tigers", at(10, 0), 90*time.Minute)

	// Back-to-back matches share an instant without conflicting
	assert.True(t, a.isAvailable(pitch, at(11, 30), 90*time.Minute))
	assert.True(t, a.isAvailable(pitch, at(8, 30), 90*time.Minute))
}

func TestIsAvailable_OverlappingPitchBlocked(t *testing.T) {
	pitchE := &Pitch{ID: 1, Code: "E", Capacity: model.FiveASide, OverlapsWith: []int{2}}
	pitchF := &Pitch{ID: 2, Code: "F", Capacity: model.FiveASide, OverlapsWith: []int{1}}
	a := newTestAllocator(t, pitchE, pitchF)

	pitchE.addBooking("U7 Tigers", at(10, 0), 90*time.Minute)

	// F shares physical space with E, so E's booking blocks F
	assert.False(t, a.isAvailable(pitchF, at(10, 0), 90*time.Minute))
	assert.False(t, a.isAvailable(pitchF, at(11, 0), 90*time.Minute))
	assert.True(t, a.isAvailable(pitchF, at(11, 30), 90*time.Minute))
}

func TestIsAvailable_UnknownOverlapIDIgnored(t *testing.T) {
	pitch := &Pitch{ID: 1, Capacity: model.FiveASide, OverlapsWith: []int{99}}
	a := newTestAllocator(t, pitch)

	// Overlap ids not admitted to this run don't block anything
	assert.True(t, a.isAvailable(pitch, at(10, 0), 90*time.Minute))
}
