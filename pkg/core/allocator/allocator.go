package allocator

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// DefaultStep is the sweep increment used when the config leaves Step unset
const DefaultStep = 30 * time.Minute

// Config contains everything one allocation run needs. The run takes
// ownership of the Pitches slice (and their booking state) for its duration;
// callers wanting to run twice must build fresh working copies.
type Config struct {
	// Date is the match day. Preferred times and window bounds are resolved
	// against this date.
	Date time.Time

	// WindowStart and WindowEnd bound the daily allocation window. A match
	// may start at WindowEnd; only start times are checked against the bound.
	WindowStart time.Time
	WindowEnd   time.Time

	// Step is the sweep increment (15 or 30 minutes). Zero means DefaultStep.
	Step time.Duration

	// Pitches are the admissible pitches, with empty schedules
	Pitches []*Pitch

	// Requests are the home teams to place, with optional preferred times
	Requests []TeamRequest

	// Rand drives shuffling and tie-breaking. Nil gets a time-seeded source;
	// tests inject a fixed seed for reproducible runs.
	Rand *rand.Rand

	Logger *zap.Logger
}

// Outcome is the result of a completed run. Every requested team appears in
// exactly one of Allocations (via its label) or Unallocated.
type Outcome struct {
	// Allocations sorted by capacity class ascending, then start time
	Allocations []Allocation

	// Unallocated teams for which no pass found a slot
	Unallocated []Team

	// Pitches is the final booking state of the run's working copies
	Pitches []*Pitch
}

// Allocator owns the working state of a single allocation run
type Allocator struct {
	date        time.Time
	windowStart time.Time
	windowEnd   time.Time
	step        time.Duration

	pitches []*Pitch
	byID    map[int]*Pitch

	rng    *rand.Rand
	logger *zap.Logger

	allocations []Allocation
	unallocated []Team
}

// Allocate runs the multi-pass assignment procedure: preferred-time pass,
// sweep over free pitches, then sweep over paid pitches for leftovers.
// It never fails merely because teams could not be placed; those teams are
// reported in the outcome's Unallocated list.
func Allocate(cfg Config) (*Outcome, error) {
	a, err := newAllocator(cfg)
	if err != nil {
		return nil, err
	}

	a.logger.Info("Starting allocation run",
		zap.Time("window_start", a.windowStart),
		zap.Time("window_end", a.windowEnd),
		zap.Duration("step", a.step),
		zap.Int("pitches", len(a.pitches)),
		zap.Int("teams", len(cfg.Requests)))

	withPref, withoutPref := a.partitionRequests(cfg.Requests)

	// Shuffle both pools before any ordering so equal preferred times and
	// sweep picks don't systematically favour request order.
	a.rng.Shuffle(len(withPref), func(i, j int) {
		withPref[i], withPref[j] = withPref[j], withPref[i]
	})
	a.rng.Shuffle(len(withoutPref), func(i, j int) {
		withoutPref[i], withoutPref[j] = withoutPref[j], withoutPref[i]
	})

	requeued := a.runPreferredPass(withPref)

	// Teams whose preference could not be honoured rejoin the general pool
	pool := append(withoutPref, requeued...)
	a.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	leftover := a.runSweepPass(pool, a.freePitches())

	if len(leftover) > 0 {
		a.logger.Info("Attempting to allocate remaining teams to paid pitches",
			zap.Int("teams", len(leftover)))
		leftover = a.runSweepPass(leftover, a.paidPitches())
	}

	a.unallocated = append(a.unallocated, leftover...)
	return a.buildOutcome(), nil
}

func newAllocator(cfg Config) (*Allocator, error) {
	if cfg.WindowStart.IsZero() || cfg.WindowEnd.IsZero() {
		return nil, fmt.Errorf("allocation window bounds are required")
	}
	if cfg.WindowEnd.Before(cfg.WindowStart) {
		return nil, fmt.Errorf("allocation window end %s is before start %s",
			cfg.WindowEnd.Format("15:04"), cfg.WindowStart.Format("15:04"))
	}

	step := cfg.Step
	if step == 0 {
		step = DefaultStep
	}
	if step < 0 {
		return nil, fmt.Errorf("sweep step must be positive, got %s", step)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	date := cfg.Date
	if date.IsZero() {
		date = cfg.WindowStart
	}

	byID := make(map[int]*Pitch, len(cfg.Pitches))
	for _, pitch := range cfg.Pitches {
		if _, exists := byID[pitch.ID]; exists {
			return nil, fmt.Errorf("duplicate pitch id %d", pitch.ID)
		}
		byID[pitch.ID] = pitch
	}

	return &Allocator{
		date:        date,
		windowStart: cfg.WindowStart,
		windowEnd:   cfg.WindowEnd,
		step:        step,
		pitches:     cfg.Pitches,
		byID:        byID,
		rng:         rng,
		logger:      logger,
	}, nil
}

// book records a booking on the pitch and the corresponding allocation record
func (a *Allocator) book(team Team, pitch *Pitch, start time.Time, preferred bool) {
	duration := MatchDuration(pitch.Capacity)
	booking := pitch.addBooking(team.Label(), start, duration)

	a.allocations = append(a.allocations, Allocation{
		TeamLabel:  team.Label(),
		PitchLabel: pitch.Label(),
		Capacity:   pitch.Capacity,
		Start:      booking.Start,
		End:        booking.End,
		Preferred:  preferred,
		Paid:       pitch.IsPaid(),
	})

	a.logger.Info("Allocated team",
		zap.String("team", team.Label()),
		zap.String("pitch", pitch.Label()),
		zap.String("start", start.Format("15:04")),
		zap.Bool("preferred", preferred),
		zap.Bool("paid", pitch.IsPaid()))
}
