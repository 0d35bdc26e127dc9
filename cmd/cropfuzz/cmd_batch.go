package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrhapile/fuzzy-crop-advisor/internal/batch"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/variable"
)

var batchWorkers int

// batchCmd evaluates a CSV file of readings
var batchCmd = &cobra.Command{
	Use:   "batch <readings.csv>",
	Short: "Recommend a crop for every row of a CSV file",
	Long: `Reads a CSV file whose header names the profile's input variables and
recommends every row concurrently. Extra columns are ignored. Rows for which
no rule fires are reported individually and do not stop the run.

Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent evaluations (default: config batch.workers)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	r, err := loadRecommender()
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open readings: %w", err)
		}
		defer f.Close()
		in = f
	}

	inputs := variableNames(r.Inputs())
	rows, err := batch.ReadCSV(in, inputs)
	if err != nil {
		return err
	}

	workers := cfg.Batch.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := batch.Run(ctx, r, rows, workers, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		return writeJSON(out, batchJSON(report))
	}

	w := csv.NewWriter(out)
	header := append([]string{"line"}, inputs...)
	header = append(header, "score", "label", "error")
	if err := w.Write(header); err != nil {
		return err
	}
	for _, o := range report.Outcomes {
		rec := []string{strconv.Itoa(o.Line)}
		for _, name := range inputs {
			rec = append(rec, strconv.FormatFloat(o.Recommendation.Readings[name], 'g', -1, 64))
		}
		if o.Err != nil {
			rec = append(rec, "", "", o.Err.Error())
		} else {
			rec = append(rec, strconv.FormatFloat(o.Recommendation.Score, 'f', 4, 64), o.Recommendation.Label, "")
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "run %s: %d rows, %d failed (%d with no rule fired)\n",
		report.RunID, len(report.Outcomes), report.Failed, report.NoFire)
	return nil
}

type batchRowJSON struct {
	Line  int     `json:"line"`
	Score float64 `json:"score,omitempty"`
	Label string  `json:"label,omitempty"`
	Error string  `json:"error,omitempty"`
}

func batchJSON(report *batch.Report) any {
	rows := make([]batchRowJSON, len(report.Outcomes))
	for i, o := range report.Outcomes {
		rows[i] = batchRowJSON{Line: o.Line, Score: o.Recommendation.Score, Label: o.Recommendation.Label}
		if o.Err != nil {
			rows[i].Error = o.Err.Error()
		}
	}
	return struct {
		RunID  string         `json:"runId"`
		Failed int            `json:"failed"`
		NoFire int            `json:"noFire"`
		Rows   []batchRowJSON `json:"rows"`
	}{report.RunID, report.Failed, report.NoFire, rows}
}

func variableNames(vs []*variable.Variable) []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name()
	}
	return names
}
