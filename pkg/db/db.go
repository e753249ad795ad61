package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hadleyfc/pitchplanner/pkg/core/model"
)

// DB provides catalog reads and run persistence over a Postgres pool.
// Catalog queries are scoped to a single owner.
type DB struct {
	pool    *pgxpool.Pool
	ownerID string
}

// NewDB connects to Postgres and verifies the connection
func NewDB(ctx context.Context, dsn, ownerID string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{pool: pool, ownerID: ownerID}, nil
}

// Close releases the connection pool
func (db *DB) Close() {
	db.pool.Close()
}

// Pitches loads the owner's pitch catalog
func (db *DB) Pitches(ctx context.Context) ([]model.Pitch, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, name, code, location, capacity, cost, COALESCE(overlaps_with, '{}')
		FROM pitch
		WHERE owner_id = $1
		ORDER BY id`,
		db.ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pitches: %w", err)
	}
	defer rows.Close()

	var pitches []model.Pitch
	for rows.Next() {
		var p model.Pitch
		var capacity int
		var overlaps []int32
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Location, &capacity, &p.Cost, &overlaps); err != nil {
			return nil, fmt.Errorf("failed to scan pitch row: %w", err)
		}
		p.Capacity = model.CapacityClass(capacity)
		p.OverlapsWith = make([]int, len(overlaps))
		for i, id := range overlaps {
			p.OverlapsWith[i] = int(id)
		}
		pitches = append(pitches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pitch rows: %w", err)
	}

	return pitches, nil
}

// Teams loads the owner's team catalog
func (db *DB) Teams(ctx context.Context) ([]model.Team, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, name, age_group, is_girls
		FROM team
		WHERE owner_id = $1
		ORDER BY id`,
		db.ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []model.Team
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.AgeGroup, &t.IsGirls); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read team rows: %w", err)
	}

	return teams, nil
}

// ListAllocationRuns returns the owner's most recent runs, newest first
func (db *DB) ListAllocationRuns(ctx context.Context, limit int) ([]AllocationRun, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, owner_id, run_date, window_start, window_end, seed, created_at
		FROM allocation_run
		WHERE owner_id = $1
		ORDER BY run_date DESC, created_at DESC
		LIMIT $2`,
		db.ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocation runs: %w", err)
	}
	defer rows.Close()

	var runs []AllocationRun
	for rows.Next() {
		var run AllocationRun
		if err := rows.Scan(&run.ID, &run.OwnerID, &run.Date, &run.WindowStart,
			&run.WindowEnd, &run.Seed, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan allocation run row: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read allocation run rows: %w", err)
	}

	return runs, nil
}

// InsertAllocationRun persists a run and its allocation rows in one
// transaction, so a run is either fully committed or not visible at all.
func (db *DB) InsertAllocationRun(ctx context.Context, run AllocationRun, allocations []Allocation) error {
	err := pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO allocation_run (id, owner_id, run_date, window_start, window_end, seed)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			run.ID, run.OwnerID, run.Date, run.WindowStart, run.WindowEnd, run.Seed)
		if err != nil {
			return fmt.Errorf("failed to insert allocation run: %w", err)
		}

		for _, alloc := range allocations {
			_, err := tx.Exec(ctx, `
				INSERT INTO allocation (id, run_id, team_label, pitch_label, capacity, start_time, end_time, preferred, paid)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				alloc.ID, alloc.RunID, alloc.TeamLabel, alloc.PitchLabel, alloc.Capacity,
				alloc.StartTime, alloc.EndTime, alloc.Preferred, alloc.Paid)
			if err != nil {
				return fmt.Errorf("failed to insert allocation: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save allocation run: %w", err)
	}

	return nil
}
