package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fwcsim/fwc/internal/params"
	"github.com/fwcsim/fwc/internal/recorder"
	"github.com/fwcsim/fwc/internal/replay"
	"github.com/fwcsim/fwc/internal/runtime"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to fwc.db (DB mode, requires --run)")
	runID := flag.String("run", "", "recorded run to re-execute (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON[.zst] (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/fwc.db --run id")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json[.zst]")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		if *runID == "" {
			fmt.Fprintln(os.Stderr, "DB mode requires --run")
			os.Exit(2)
		}
		exitCode = runDBMode(*dbPath, *runID)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	result, err := replay.Run(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	title := result.Description
	if title == "" {
		title = path
	}
	fmt.Printf("%s (%d steps, %d ticks)\n", title, len(result.Steps), result.Ticks)
	fmt.Printf("%-6s| %s\n", "Step", "Result")
	fmt.Printf("%-6s+%s\n", "------", "--------")

	failed := 0
	for _, step := range result.Steps {
		if len(step.Failures) == 0 {
			fmt.Printf("%-6d| OK\n", step.Index)
			continue
		}
		failed++
		for _, failure := range step.Failures {
			fmt.Printf("%-6d| FAIL %s\n", step.Index, failure)
		}
	}

	fmt.Printf("\nSummary: %d steps, %d failed\n", len(result.Steps), failed)
	if failed > 0 {
		return 1
	}
	return 0
}

// #endregion fixture-mode

// #region db-mode

// runDBMode re-executes a recorded run tick by tick and compares every
// output snapshot against the recording.
func runDBMode(dbPath, runID string) int {
	store, err := recorder.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	rec, err := store.GetRun(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	ticks, err := store.Ticks(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load ticks: %v\n", err)
		return 2
	}
	if len(ticks) == 0 {
		fmt.Fprintln(os.Stderr, "no ticks recorded for run")
		return 2
	}
	injections, err := store.Injections(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load injections: %v\n", err)
		return 2
	}
	bySeq := make(map[int][]params.Injection)
	for _, inj := range injections {
		bySeq[inj.Seq] = append(bySeq[inj.Seq], inj.Injection)
	}

	rt, err := runtime.New(rec.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build runtime: %v\n", err)
		return 2
	}

	fmt.Printf("Run %s: %d ticks\n", runID, len(ticks))
	fmt.Printf("%-8s| %s\n", "Seq", "Match")
	fmt.Printf("%-8s+%s\n", "--------", "--------")

	diverged := 0
	for _, t := range ticks {
		for _, inj := range bySeq[t.Seq] {
			if err := rt.Store().Inject(inj); err != nil {
				fmt.Fprintf(os.Stderr, "seq %d: inject %s: %v\n", t.Seq, inj.Signal, err)
				return 2
			}
		}
		rt.Tick(t.Delta)

		diffs := diffSnapshots(t.Outputs, rt.Snapshot())
		if len(diffs) == 0 {
			fmt.Printf("%-8d| OK\n", t.Seq)
			continue
		}
		diverged++
		for _, d := range diffs {
			fmt.Printf("%-8d| DIFF %s\n", t.Seq, d)
		}
	}

	fmt.Printf("\nSummary: %d ticks, %d diverged\n", len(ticks), diverged)
	if diverged > 0 {
		return 1
	}
	return 0
}

// diffSnapshots lists output fields where the replayed snapshot disagrees
// with the recorded one.
func diffSnapshots(want, got runtime.Snapshot) []string {
	var diffs []string
	if want.FlightPhase != got.FlightPhase {
		diffs = append(diffs, fmt.Sprintf("flight phase: recorded %d, replayed %d", want.FlightPhase, got.FlightPhase))
	}
	if want.ShowToMemo != got.ShowToMemo {
		diffs = append(diffs, fmt.Sprintf("to memo: recorded %v, replayed %v", want.ShowToMemo, got.ShowToMemo))
	}
	if want.ShowLdgMemo != got.ShowLdgMemo {
		diffs = append(diffs, fmt.Sprintf("ldg memo: recorded %v, replayed %v", want.ShowLdgMemo, got.ShowLdgMemo))
	}
	if want.CChord != got.CChord {
		diffs = append(diffs, fmt.Sprintf("c-chord: recorded %v, replayed %v", want.CChord, got.CChord))
	}
	if want.CavalryCharge != got.CavalryCharge {
		diffs = append(diffs, fmt.Sprintf("cavalry charge: recorded %v, replayed %v", want.CavalryCharge, got.CavalryCharge))
	}
	if want.AudioVolume != got.AudioVolume {
		diffs = append(diffs, fmt.Sprintf("audio volume: recorded %v, replayed %v", want.AudioVolume, got.AudioVolume))
	}
	if !soundsEqual(want.SoundID, got.SoundID) {
		diffs = append(diffs, fmt.Sprintf("sound id: recorded %s, replayed %s", soundStr(want.SoundID), soundStr(got.SoundID)))
	}
	if !warningsEqual(want.Warnings, got.Warnings) {
		diffs = append(diffs, fmt.Sprintf("warnings: recorded %v, replayed %v", want.Warnings, got.Warnings))
	}
	return diffs
}

func soundsEqual(a, b *uint8) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func soundStr(id *uint8) string {
	if id == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *id)
}

func warningsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// #endregion db-mode
