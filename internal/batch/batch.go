// Package batch evaluates many sets of readings against one recommender.
package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/recommend"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
)

// Row is one line of readings. Line is the 1-based line in the source file.
type Row struct {
	Line     int
	Readings types.Readings
}

// Outcome is the result for one row. Err is set when the row could not be
// recommended; a no-fire outcome is reported per row and does not stop the run.
type Outcome struct {
	Line           int
	Recommendation types.Recommendation
	Err            error
}

// NoRuleFired reports whether the row failed only because no rule fired.
func (o Outcome) NoRuleFired() bool {
	return errors.Is(o.Err, types.ErrNoRuleFired)
}

// Report summarises a run.
type Report struct {
	RunID    string
	Outcomes []Outcome
	Failed   int
	NoFire   int
}

// ReadCSV parses a header row and one set of readings per line. Only the
// columns named by inputs are read; other columns are ignored. Every input
// must have a column.
func ReadCSV(r io.Reader, inputs []string) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read readings: empty file")
		}
		return nil, fmt.Errorf("read readings header: %w", err)
	}

	cols := make(map[string]int, len(inputs))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, name := range inputs {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("read readings: no column for input %q", name)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read readings line %d: %w", line, err)
		}

		readings := make(types.Readings, len(inputs))
		for _, name := range inputs {
			raw := strings.TrimSpace(rec[cols[name]])
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("read readings line %d: column %q: %w", line, name, err)
			}
			readings[name] = v
		}
		rows = append(rows, Row{Line: line, Readings: readings})
	}
	return rows, nil
}

// Run recommends every row with at most workers concurrent evaluations.
// Outcomes keep input order. Only context cancellation aborts the run.
func Run(ctx context.Context, r *recommend.Recommender, rows []Row, workers int, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}

	report := &Report{
		RunID:    uuid.NewString(),
		Outcomes: make([]Outcome, len(rows)),
	}
	logger = logger.With(zap.String("run_id", report.RunID))
	logger.Info("batch started", zap.Int("rows", len(rows)), zap.Int("workers", workers))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, row := range rows {
		i, row := i, row
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rec, err := r.Recommend(row.Readings)
			report.Outcomes[i] = Outcome{Line: row.Line, Recommendation: rec, Err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s: %w", report.RunID, err)
	}

	for _, o := range report.Outcomes {
		if o.Err == nil {
			continue
		}
		report.Failed++
		if o.NoRuleFired() {
			report.NoFire++
		}
		logger.Debug("row failed", zap.Int("line", o.Line), zap.Error(o.Err))
	}
	logger.Info("batch finished", zap.Int("failed", report.Failed), zap.Int("no_fire", report.NoFire))
	return report, nil
}
