package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hadleyfc/pitchplanner/internal/config"
	"github.com/hadleyfc/pitchplanner/pkg/core/model"
	"github.com/hadleyfc/pitchplanner/pkg/db"
)

type fakeCatalog struct {
	pitches []model.Pitch
	teams   []model.Team
	err     error
}

func (c *fakeCatalog) Pitches(_ context.Context) ([]model.Pitch, error) {
	return c.pitches, c.err
}

func (c *fakeCatalog) Teams(_ context.Context) ([]model.Team, error) {
	return c.teams, c.err
}

type fakeRunStore struct {
	run         db.AllocationRun
	allocations []db.Allocation
	calls       int
	err         error
}

func (s *fakeRunStore) InsertAllocationRun(_ context.Context, run db.AllocationRun, allocations []db.Allocation) error {
	s.calls++
	s.run = run
	s.allocations = allocations
	return s.err
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		pitches: []model.Pitch{
			{ID: 1, Name: "North Field", Code: "A", Capacity: model.FiveASide},
			{ID: 2, Name: "South Field", Code: "B", Capacity: model.SevenASide, Cost: 30},
		},
		teams: []model.Team{
			{ID: 1, Name: "Tigers", AgeGroup: "Under7s"},
			{ID: 2, Name: "Lions", AgeGroup: "Under7s", IsGirls: true},
			{ID: 3, Name: "Bears", AgeGroup: "Under9s"},
		},
	}
}

func testRequest() *model.AllocationRequest {
	return &model.AllocationRequest{
		Date:      "2026-03-01",
		StartTime: "10:00",
		EndTime:   "14:00",
		PitchIDs:  []int{1, 2},
		HomeTeams: []model.TeamEntry{
			{Name: "Tigers", AgeGroup: "Under7s", PreferredTime: "10:00"},
			{Name: "Lions (Girls)", AgeGroup: "Under7s"},
			{Name: "Bears", AgeGroup: "Under9s"},
		},
	}
}

func TestRunAllocation(t *testing.T) {
	store := &fakeRunStore{}
	cfg := &config.Config{OwnerID: "club-1", SlotStepMinutes: 30}

	result, err := RunAllocation(context.Background(), testCatalog(), store, cfg,
		zap.NewNop(), testRequest(), AllocateOptions{Seed: 7})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "2026-03-01", result.Date)
	assert.Equal(t, int64(7), result.Seed)
	assert.Empty(t, result.SkippedTeams)

	// Both 5-a-side teams fit North Field; Bears lands on the paid 7-a-side
	assert.Len(t, result.Outcome.Allocations, 3)
	assert.Empty(t, result.Outcome.Unallocated)

	assert.True(t, result.Saved)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, result.RunID, store.run.ID)
	assert.Equal(t, "club-1", store.run.OwnerID)
	assert.Equal(t, "10:00", store.run.WindowStart)
	assert.Equal(t, "14:00", store.run.WindowEnd)
	assert.Equal(t, int64(7), store.run.Seed)
	require.Len(t, store.allocations, 3)
	assert.Equal(t, result.RunID, store.allocations[0].RunID)
}

func TestRunAllocation_DryRunSkipsPersistence(t *testing.T) {
	store := &fakeRunStore{}
	cfg := &config.Config{}

	result, err := RunAllocation(context.Background(), testCatalog(), store, cfg,
		zap.NewNop(), testRequest(), AllocateOptions{Seed: 7, DryRun: true})
	require.NoError(t, err)

	assert.False(t, result.Saved)
	assert.Zero(t, store.calls)
}

func TestRunAllocation_NilStoreSkipsPersistence(t *testing.T) {
	result, err := RunAllocation(context.Background(), testCatalog(), nil, &config.Config{},
		zap.NewNop(), testRequest(), AllocateOptions{Seed: 7})
	require.NoError(t, err)

	assert.False(t, result.Saved)
}

func TestRunAllocation_UnknownTeamSkipped(t *testing.T) {
	req := testRequest()
	req.HomeTeams = append(req.HomeTeams, model.TeamEntry{Name: "Ghosts", AgeGroup: "Under7s"})

	result, err := RunAllocation(context.Background(), testCatalog(), nil, &config.Config{},
		zap.NewNop(), req, AllocateOptions{Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, []string{"Under7s Ghosts"}, result.SkippedTeams)
	assert.Len(t, result.Outcome.Allocations, 3)
}

func TestRunAllocation_UnknownPitchRejected(t *testing.T) {
	req := testRequest()
	req.PitchIDs = []int{1, 99}

	_, err := RunAllocation(context.Background(), testCatalog(), nil, &config.Config{},
		zap.NewNop(), req, AllocateOptions{Seed: 7})
	assert.ErrorContains(t, err, "pitch id 99 not found")
}

func TestRunAllocation_NoKnownTeamsRejected(t *testing.T) {
	req := testRequest()
	req.HomeTeams = []model.TeamEntry{{Name: "Ghosts", AgeGroup: "Under7s"}}

	_, err := RunAllocation(context.Background(), testCatalog(), nil, &config.Config{},
		zap.NewNop(), req, AllocateOptions{Seed: 7})
	assert.ErrorContains(t, err, "no requested teams found")
}

func TestRunAllocation_WindowDefaultsFromConfig(t *testing.T) {
	req := testRequest()
	req.StartTime = ""
	req.EndTime = ""
	cfg := &config.Config{DefaultStartTime: "09:30", DefaultEndTime: "13:30"}
	store := &fakeRunStore{}

	_, err := RunAllocation(context.Background(), testCatalog(), store, cfg,
		zap.NewNop(), req, AllocateOptions{Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, "09:30", store.run.WindowStart)
	assert.Equal(t, "13:30", store.run.WindowEnd)
}

func TestRunAllocation_InvertedWindowRejected(t *testing.T) {
	req := testRequest()
	req.StartTime = "14:00"
	req.EndTime = "10:00"

	_, err := RunAllocation(context.Background(), testCatalog(), nil, &config.Config{},
		zap.NewNop(), req, AllocateOptions{Seed: 7})
	assert.ErrorContains(t, err, "not after window start")
}

func TestRunAllocation_BadDateRejected(t *testing.T) {
	req := testRequest()
	req.Date = "01/03/2026"

	_, err := RunAllocation(context.Background(), testCatalog(), nil, &config.Config{},
		zap.NewNop(), req, AllocateOptions{Seed: 7})
	assert.ErrorContains(t, err, "invalid request date")
}

func TestRunAllocation_StoreErrorSurfaces(t *testing.T) {
	store := &fakeRunStore{err: fmt.Errorf("connection reset")}

	_, err := RunAllocation(context.Background(), testCatalog(), store, &config.Config{},
		zap.NewNop(), testRequest(), AllocateOptions{Seed: 7})
	assert.ErrorContains(t, err, "failed to save allocation run")
}

func TestRunAllocation_DeterministicWithSeed(t *testing.T) {
	first, err := RunAllocation(context.Background(), testCatalog(), nil, &config.Config{},
		zap.NewNop(), testRequest(), AllocateOptions{Seed: 42})
	require.NoError(t, err)

	second, err := RunAllocation(context.Background(), testCatalog(), nil, &config.Config{},
		zap.NewNop(), testRequest(), AllocateOptions{Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, first.Outcome.Allocations, second.Outcome.Allocations)
}
