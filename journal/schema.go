package journal

const Schema = `
CREATE TABLE IF NOT EXISTS rounds (
	run_id TEXT NOT NULL,
	kernel TEXT NOT NULL,
	strategy TEXT NOT NULL,
	round INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	checksum REAL NOT NULL,
	time DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT NOT NULL,
	kernel TEXT NOT NULL,
	strategy TEXT NOT NULL,
	rounds INTEGER NOT NULL,
	best_ns INTEGER NOT NULL,
	mean_ns INTEGER NOT NULL,
	steps INTEGER NOT NULL,
	paths INTEGER NOT NULL,
	seed INTEGER NOT NULL,
	time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rounds_run ON rounds(run_id);
CREATE INDEX IF NOT EXISTS idx_runs_run ON runs(run_id);
`
