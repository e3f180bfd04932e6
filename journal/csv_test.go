package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCSVWritesHeadersAndRecords(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	roundsPath := filepath.Join(dir, "rounds.csv")
	runsPath := filepath.Join(dir, "runs.csv")

	j, err := NewCSV(roundsPath, runsPath)
	assert.NoError(t, err)

	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	assert.NoError(t, j.RecordRound(RoundRecord{
		RunID:    "01RUN",
		Kernel:   "mc",
		Strategy: "vectorized",
		Round:    1,
		Elapsed:  1500 * time.Microsecond,
		Checksum: 382427.5,
		Time:     ts,
	}))
	assert.NoError(t, j.RecordRun(RunSummary{
		RunID:    "01RUN",
		Kernel:   "mc",
		Strategy: "vectorized",
		Rounds:   3,
		Best:     time.Millisecond,
		Mean:     2 * time.Millisecond,
		Steps:    50,
		Paths:    10000,
		Seed:     42,
		Time:     ts,
	}))
	assert.NoError(t, j.Close())

	rounds := readCSV(t, roundsPath)
	assert.Len(t, rounds, 2)
	assert.Equal(t, []string{"run_id", "kernel", "strategy", "round", "elapsed_ns", "checksum", "time"}, rounds[0])
	assert.Equal(t, "01RUN", rounds[1][0])
	assert.Equal(t, "vectorized", rounds[1][2])
	assert.Equal(t, "1500000", rounds[1][4])

	runs := readCSV(t, runsPath)
	assert.Len(t, runs, 2)
	assert.Equal(t, "3", runs[1][3])
	assert.Equal(t, "1000000", runs[1][4])
	assert.Equal(t, "10000", runs[1][7])
	assert.Equal(t, "42", runs[1][8])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := csv.NewReader(f).ReadAll()
	assert.NoError(t, err)
	return rows
}
