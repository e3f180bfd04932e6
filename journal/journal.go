// Package journal records benchmark measurements to CSV files or a
// SQLite database. Only timings and run summaries are recorded; price
// matrices are never persisted.
package journal

import "time"

// RoundRecord is one timed execution of a kernel strategy.
type RoundRecord struct {
	RunID    string
	Kernel   string // "mc" or "lattice"
	Strategy string
	Round    int
	Elapsed  time.Duration
	Checksum float64 // sum of the result matrix, to confirm rounds computed the same thing
	Time     time.Time
}

// RunSummary aggregates the rounds of one strategy within a run.
type RunSummary struct {
	RunID    string
	Kernel   string
	Strategy string
	Rounds   int
	Best     time.Duration
	Mean     time.Duration
	Steps    int
	Paths    int
	Seed     uint64
	Time     time.Time
}

type Journal interface {
	RecordRound(RoundRecord) error
	RecordRun(RunSummary) error
	Close() error
}
