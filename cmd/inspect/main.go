package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fwcsim/fwc/internal/recorder"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to fwc.db")
	runID := flag.String("run", "", "show tick detail for one run")
	last := flag.Int("last", 20, "show N most recent runs")
	warningsOnly := flag.Bool("warnings", false, "show only ticks that raised a warning")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/fwc.db [--last N] [--run id] [--warnings] [--json]")
		os.Exit(2)
	}

	store, err := recorder.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetailMode(store, *runID, *warningsOnly, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RunID     string `json:"run_id"`
	StartedAt string `json:"started_at"`
	ClosedAt  string `json:"closed_at,omitempty"`
	Buss      bool   `json:"buss_installed"`
}

func runListMode(store *recorder.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	rows := make([]listRow, len(runs))
	for i, run := range runs {
		lr := listRow{
			RunID:     run.RunID,
			StartedAt: run.StartedAt.Format("2006-01-02T15:04:05Z"),
			Buss:      run.Config.BussInstalled,
		}
		if !run.ClosedAt.IsZero() {
			lr.ClosedAt = run.ClosedAt.Format("2006-01-02T15:04:05Z")
		}
		rows[i] = lr
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %-20s  %-20s  %s\n", "Run", "Started", "Closed", "BUSS")
	fmt.Printf("%-10s+-%-20s+-%-20s+-%s\n",
		"----------", "--------------------", "--------------------", "-----")
	for _, r := range rows {
		closed := "open"
		if r.ClosedAt != "" {
			closed = r.ClosedAt
		}
		fmt.Printf("%-10s  %-20s  %-20s  %v\n", shortID(r.RunID), r.StartedAt, closed, r.Buss)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type tickRow struct {
	Seq      int      `json:"seq"`
	DeltaMs  int64    `json:"delta_ms"`
	Phase    int      `json:"flight_phase"`
	Volume   float64  `json:"audio_volume"`
	SoundID  *uint8   `json:"sound_id,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func runDetailMode(store *recorder.Store, runID string, warningsOnly, jsonOut bool) error {
	ticks, err := store.Ticks(runID)
	if err != nil {
		return err
	}
	if len(ticks) == 0 {
		fmt.Fprintln(os.Stderr, "no ticks recorded for run")
		return nil
	}

	var rows []tickRow
	for _, t := range ticks {
		if warningsOnly && len(t.Outputs.Warnings) == 0 {
			continue
		}
		rows = append(rows, tickRow{
			Seq:      t.Seq,
			DeltaMs:  t.Delta.Milliseconds(),
			Phase:    t.Outputs.FlightPhase,
			Volume:   t.Outputs.AudioVolume,
			SoundID:  t.Outputs.SoundID,
			Warnings: t.Outputs.Warnings,
		})
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-8s  %-8s  %-6s  %-6s  %-6s  %s\n", "Seq", "Delta", "Phase", "Vol", "Sound", "Warnings")
	fmt.Printf("%-8s+-%-8s+-%-6s+-%-6s+-%-6s+-%s\n",
		"--------", "--------", "------", "------", "------", "--------------------")
	for _, r := range rows {
		fmt.Printf("%-8d  %-8s  %-6d  %-6.2f  %-6s  %s\n",
			r.Seq, fmt.Sprintf("%dms", r.DeltaMs), r.Phase, r.Volume, soundLabel(r.SoundID),
			strings.Join(r.Warnings, " "))
	}
	fmt.Printf("\n%d ticks shown\n", len(rows))
	return nil
}

// #endregion detail-mode

// #region output

func soundLabel(id *uint8) string {
	if id == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *id)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
