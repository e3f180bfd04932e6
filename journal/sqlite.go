package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRound(r RoundRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO rounds
		(run_id, kernel, strategy, round, elapsed_ns, checksum, time)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Kernel, r.Strategy, r.Round,
		r.Elapsed.Nanoseconds(), r.Checksum, r.Time,
	)
	return err
}

func (j *SQLiteJournal) RecordRun(s RunSummary) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, kernel, strategy, rounds, best_ns, mean_ns, steps, paths, seed, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.RunID, s.Kernel, s.Strategy, s.Rounds,
		s.Best.Nanoseconds(), s.Mean.Nanoseconds(),
		s.Steps, s.Paths, int64(s.Seed), s.Time,
	)
	return err
}

// ListRoundsByRunID returns the recorded rounds for a run in insertion
// order.
func (j *SQLiteJournal) ListRoundsByRunID(runID string) ([]RoundRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, kernel, strategy, round, elapsed_ns, checksum, time
		FROM rounds WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var ns int64
		var ts time.Time
		if err := rows.Scan(&r.RunID, &r.Kernel, &r.Strategy, &r.Round, &ns, &r.Checksum, &ts); err != nil {
			return nil, err
		}
		r.Elapsed = time.Duration(ns)
		r.Time = ts
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
