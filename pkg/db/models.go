package db

import "time"

// AllocationRun is one persisted allocation run record
type AllocationRun struct {
	ID          string
	OwnerID     string
	Date        string // "2006-01-02"
	WindowStart string // "HH:MM"
	WindowEnd   string // "HH:MM"
	Seed        int64
	CreatedAt   time.Time
}

// Allocation is one persisted booking row belonging to a run
type Allocation struct {
	ID         string
	RunID      string
	TeamLabel  string
	PitchLabel string
	Capacity   int
	StartTime  time.Time
	EndTime    time.Time
	Preferred  bool
	Paid       bool
}
