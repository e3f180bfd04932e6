package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	rounds *csv.Writer
	runs   *csv.Writer
	rf, sf *os.File
}

func NewCSV(roundsPath, runsPath string) (*CSVJournal, error) {
	rf, err := os.Create(roundsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(runsPath)
	if err != nil {
		rf.Close()
		return nil, err
	}

	rw := csv.NewWriter(rf)
	sw := csv.NewWriter(sf)

	if err := rw.Write([]string{"run_id", "kernel", "strategy", "round", "elapsed_ns", "checksum", "time"}); err != nil {
		return nil, err
	}
	if err := sw.Write([]string{"run_id", "kernel", "strategy", "rounds", "best_ns", "mean_ns", "steps", "paths", "seed", "time"}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, sw, rf, sf}, nil
}

func (j *CSVJournal) RecordRound(r RoundRecord) error {
	err := j.rounds.Write([]string{
		r.RunID,
		r.Kernel,
		r.Strategy,
		strconv.Itoa(r.Round),
		strconv.FormatInt(r.Elapsed.Nanoseconds(), 10),
		f(r.Checksum),
		r.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.rounds.Flush()
	return j.rounds.Error()
}

func (j *CSVJournal) RecordRun(s RunSummary) error {
	err := j.runs.Write([]string{
		s.RunID,
		s.Kernel,
		s.Strategy,
		strconv.Itoa(s.Rounds),
		strconv.FormatInt(s.Best.Nanoseconds(), 10),
		strconv.FormatInt(s.Mean.Nanoseconds(), 10),
		strconv.Itoa(s.Steps),
		strconv.Itoa(s.Paths),
		strconv.FormatUint(s.Seed, 10),
		s.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) Close() error {
	j.rounds.Flush()
	if err := j.rounds.Error(); err != nil {
		return err
	}
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	return j.sf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
