package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hadleyfc/pitchplanner/internal/config"
	"github.com/hadleyfc/pitchplanner/pkg/catalog"
	"github.com/hadleyfc/pitchplanner/pkg/core/allocator"
	"github.com/hadleyfc/pitchplanner/pkg/core/model"
	"github.com/hadleyfc/pitchplanner/pkg/db"
)

// Catalog yields the entity records an allocation run operates on
type Catalog interface {
	Pitches(ctx context.Context) ([]model.Pitch, error)
	Teams(ctx context.Context) ([]model.Team, error)
}

// RunStore persists completed allocation runs
type RunStore interface {
	InsertAllocationRun(ctx context.Context, run db.AllocationRun, allocations []db.Allocation) error
}

// AllocateOptions tune one allocation run
type AllocateOptions struct {
	// Seed for the run's random source. Zero means time-seeded.
	Seed int64

	// StepMinutes overrides the configured sweep increment when non-zero
	StepMinutes int

	// DryRun skips persistence
	DryRun bool
}

// AllocateResult contains the run outcome plus persistence metadata
type AllocateResult struct {
	RunID   string
	Date    string
	Seed    int64
	Outcome *allocator.Outcome
	Saved   bool

	// SkippedTeams are request entries that matched no catalog team
	SkippedTeams []string
}

// RunAllocation loads the catalog, runs the allocation engine over the
// request, and persists the result unless this is a dry run or no store is
// configured. Teams that cannot be placed never fail the run; they are
// reported in the outcome's unallocated list.
func RunAllocation(
	ctx context.Context,
	cat Catalog,
	store RunStore,
	cfg *config.Config,
	logger *zap.Logger,
	req *model.AllocationRequest,
	opts AllocateOptions,
) (*AllocateResult, error) {
	logger.Debug("Starting allocation run",
		zap.String("date", req.Date),
		zap.Bool("dry_run", opts.DryRun))

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid request date %q: %w", req.Date, err)
	}

	windowStart, err := resolveWindowBound(date, req.StartTime, cfg.DefaultStartTime, "10:00")
	if err != nil {
		return nil, fmt.Errorf("invalid window start: %w", err)
	}
	windowEnd, err := resolveWindowBound(date, req.EndTime, cfg.DefaultEndTime, "14:00")
	if err != nil {
		return nil, fmt.Errorf("invalid window end: %w", err)
	}
	if !windowEnd.After(windowStart) {
		return nil, fmt.Errorf("window end %s is not after window start %s", req.EndTime, req.StartTime)
	}

	// Resolve the admissible pitches. An unknown pitch id is a caller
	// configuration error, not a recoverable data issue.
	allPitches, err := cat.Pitches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pitch catalog: %w", err)
	}
	logger.Debug("Loaded pitch catalog", zap.Int("count", len(allPitches)))

	pitchesByID := make(map[int]model.Pitch, len(allPitches))
	for _, p := range allPitches {
		pitchesByID[p.ID] = p
	}

	runPitches := make([]*allocator.Pitch, 0, len(req.PitchIDs))
	for _, id := range req.PitchIDs {
		p, ok := pitchesByID[id]
		if !ok {
			return nil, fmt.Errorf("pitch id %d not found in catalog", id)
		}
		runPitches = append(runPitches, allocator.NewPitch(p))
	}

	// Resolve the requested teams. Unknown teams are warned about and
	// skipped; they were never valid input for this run.
	allTeams, err := cat.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load team catalog: %w", err)
	}
	logger.Debug("Loaded team catalog", zap.Int("count", len(allTeams)))

	requests, skipped := resolveTeamEntries(req.HomeTeams, allTeams, logger)
	if len(requests) == 0 {
		return nil, fmt.Errorf("no requested teams found in catalog")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	stepMinutes := opts.StepMinutes
	if stepMinutes == 0 {
		stepMinutes = cfg.SlotStepMinutes
	}

	outcome, err := allocator.Allocate(allocator.Config{
		Date:        date,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Step:        time.Duration(stepMinutes) * time.Minute,
		Pitches:     runPitches,
		Requests:    requests,
		Rand:        rand.New(rand.NewSource(seed)),
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("allocation failed: %w", err)
	}

	logger.Info("Allocation completed",
		zap.Int("allocated", len(outcome.Allocations)),
		zap.Int("unallocated", len(outcome.Unallocated)))

	result := &AllocateResult{
		RunID:        uuid.New().String(),
		Date:         req.Date,
		Seed:         seed,
		Outcome:      outcome,
		SkippedTeams: skipped,
	}

	if opts.DryRun {
		logger.Info("Dry run mode - allocations not saved")
		return result, nil
	}
	if store == nil {
		logger.Debug("No run store configured - allocations not saved")
		return result, nil
	}

	run := db.AllocationRun{
		ID:          result.RunID,
		OwnerID:     cfg.OwnerID,
		Date:        req.Date,
		WindowStart: windowStart.Format("15:04"),
		WindowEnd:   windowEnd.Format("15:04"),
		Seed:        seed,
	}
	if err := store.InsertAllocationRun(ctx, run, toDBAllocations(result.RunID, outcome.Allocations)); err != nil {
		return nil, fmt.Errorf("failed to save allocation run: %w", err)
	}
	result.Saved = true
	logger.Info("Allocation run saved", zap.String("run_id", result.RunID))

	return result, nil
}

// resolveTeamEntries matches request entries against the catalog by name,
// age group, and girls marker, pairing each match with its preferred time
func resolveTeamEntries(
	entries []model.TeamEntry,
	teams []model.Team,
	logger *zap.Logger,
) ([]allocator.TeamRequest, []string) {
	type teamKey struct {
		name     string
		ageGroup string
		isGirls  bool
	}

	byKey := make(map[teamKey]model.Team, len(teams))
	for _, t := range teams {
		byKey[teamKey{name: t.Name, ageGroup: t.AgeGroup, isGirls: t.IsGirls}] = t
	}

	requests := make([]allocator.TeamRequest, 0, len(entries))
	var skipped []string

	for _, entry := range entries {
		name, isGirls := catalog.SplitGirlsSuffix(entry.Name)
		team, ok := byKey[teamKey{name: name, ageGroup: entry.AgeGroup, isGirls: isGirls}]
		if !ok {
			logger.Warn("Team not found in catalog, skipping",
				zap.String("name", entry.Name),
				zap.String("age_group", entry.AgeGroup))
			skipped = append(skipped, fmt.Sprintf("%s %s", entry.AgeGroup, entry.Name))
			continue
		}

		requests = append(requests, allocator.TeamRequest{
			Team:          allocator.NewTeam(team),
			PreferredTime: entry.PreferredTime,
		})
	}

	return requests, skipped
}

// toDBAllocations converts engine allocations to persistable rows
func toDBAllocations(runID string, allocations []allocator.Allocation) []db.Allocation {
	rows := make([]db.Allocation, len(allocations))
	for i, alloc := range allocations {
		rows[i] = db.Allocation{
			ID:         uuid.New().String(),
			RunID:      runID,
			TeamLabel:  alloc.TeamLabel,
			PitchLabel: alloc.PitchLabel,
			Capacity:   int(alloc.Capacity),
			StartTime:  alloc.Start,
			EndTime:    alloc.End,
			Preferred:  alloc.Preferred,
			Paid:       alloc.Paid,
		}
	}
	return rows
}

// resolveWindowBound combines the run date with the first non-empty of the
// request value, the configured default, and the built-in fallback
func resolveWindowBound(date time.Time, value, configured, fallback string) (time.Time, error) {
	timeStr := value
	if timeStr == "" {
		timeStr = configured
	}
	if timeStr == "" {
		timeStr = fallback
	}

	tod, err := time.Parse("15:04", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM: %w", timeStr, err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0, date.Location()), nil
}
