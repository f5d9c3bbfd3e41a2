package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fwcsim/fwc/internal/params"
	"github.com/fwcsim/fwc/internal/recorder"
	"github.com/fwcsim/fwc/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to fwc.db")
	runID := flag.String("run", "", "run to export")
	outPath := flag.String("out", "", "output fixture path, .zst for compressed")
	flag.Parse()

	if *dbPath == "" || *runID == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/fwc.db --run id --out path/to/fixture.json[.zst]")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

func run(dbPath, runID, outPath string) error {
	store, err := recorder.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	rec, err := store.GetRun(runID)
	if err != nil {
		return err
	}

	ticks, err := store.Ticks(runID)
	if err != nil {
		return fmt.Errorf("load ticks: %w", err)
	}
	if len(ticks) == 0 {
		return fmt.Errorf("run %s has no recorded ticks", runID)
	}

	injections, err := store.Injections(runID)
	if err != nil {
		return fmt.Errorf("load injections: %w", err)
	}

	fixture := buildFixture(rec, ticks, injections)

	if err := replay.WriteFixture(outPath, fixture); err != nil {
		return err
	}
	fmt.Printf("Wrote fixture to %s (%d steps)\n", outPath, len(fixture.Steps))
	return nil
}

// #endregion extract

// #region build

// buildFixture converts a recorded run into replay steps. Consecutive
// ticks with no injections collapse into one multi-tick step; the final
// step carries the recorded outputs as expectations.
func buildFixture(rec recorder.RunRecord, ticks []recorder.TickRecord, injections []recorder.InjectionRecord) *replay.Fixture {
	bySeq := make(map[int][]params.Injection)
	for _, inj := range injections {
		bySeq[inj.Seq] = append(bySeq[inj.Seq], inj.Injection)
	}

	var steps []replay.FixtureStep
	for _, t := range ticks {
		deltaMs := int(t.Delta.Milliseconds())
		inject := bySeq[t.Seq]

		if inject == nil && len(steps) > 0 {
			prev := &steps[len(steps)-1]
			if prev.DeltaMs == deltaMs && prev.Inject == nil {
				prev.Ticks++
				continue
			}
		}

		steps = append(steps, replay.FixtureStep{
			Ticks:   1,
			DeltaMs: deltaMs,
			Inject:  inject,
		})
	}

	last := ticks[len(ticks)-1].Outputs
	steps[len(steps)-1].Expect = &replay.FixtureExpect{
		FlightPhase:   &last.FlightPhase,
		ShowToMemo:    &last.ShowToMemo,
		ShowLdgMemo:   &last.ShowLdgMemo,
		CChord:        &last.CChord,
		CavalryCharge: &last.CavalryCharge,
		AudioVolume:   &last.AudioVolume,
		Warnings:      last.Warnings,
	}

	return &replay.Fixture{
		Description: fmt.Sprintf("Recorded run %s: %d ticks", rec.RunID, len(ticks)),
		Config: replay.FixtureConfig{
			BussInstalled:        rec.Config.BussInstalled,
			GpsAltUsedAndInvalid: rec.Config.GpsAltUsedAndInvalid,
		},
		Steps: steps,
	}
}

// #endregion build
