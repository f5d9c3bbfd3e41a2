package replay

import (
	"fmt"
	"time"

	"github.com/fwcsim/fwc/internal/runtime"
)

// #region types

// StepResult records the checks of one fixture step.
type StepResult struct {
	Index    int
	Failures []string
}

// Result is the outcome of replaying one fixture.
type Result struct {
	Description string
	Steps       []StepResult
	Ticks       int
}

// Passed reports whether every expectation held.
func (r Result) Passed() bool {
	for _, s := range r.Steps {
		if len(s.Failures) > 0 {
			return false
		}
	}
	return true
}

// #endregion types

// #region replay

// Run replays a fixture against a fresh warning computer.
func Run(f *Fixture) (Result, error) {
	rt, err := runtime.New(f.Config.ToRuntimeConfig())
	if err != nil {
		return Result{}, fmt.Errorf("build runtime: %w", err)
	}

	res := Result{Description: f.Description}
	for i, step := range f.Steps {
		sr := StepResult{Index: i}

		for _, inj := range step.Inject {
			if err := rt.Store().Inject(inj); err != nil {
				return Result{}, fmt.Errorf("step %d: %w", i, err)
			}
		}

		ticks := step.Ticks
		if ticks <= 0 {
			ticks = 1
		}
		delta := time.Duration(step.DeltaMs) * time.Millisecond
		if step.DeltaMs <= 0 {
			delta = 100 * time.Millisecond
		}

		// Most warnings pulse for a single tick, so collect everything
		// raised during the step rather than sampling the last tick.
		seen := make(map[string]bool)
		var last runtime.Snapshot
		for t := 0; t < ticks; t++ {
			rt.Tick(delta)
			last = rt.Snapshot()
			for _, w := range last.Warnings {
				seen[w] = true
			}
			res.Ticks++
		}

		if step.Expect != nil {
			sr.Failures = check(*step.Expect, last, seen)
		}
		res.Steps = append(res.Steps, sr)
	}
	return res, nil
}

func check(expect FixtureExpect, last runtime.Snapshot, seen map[string]bool) []string {
	var failures []string

	if expect.FlightPhase != nil && last.FlightPhase != *expect.FlightPhase {
		failures = append(failures, fmt.Sprintf("flight phase: expected %d, got %d", *expect.FlightPhase, last.FlightPhase))
	}
	if expect.ShowToMemo != nil && last.ShowToMemo != *expect.ShowToMemo {
		failures = append(failures, fmt.Sprintf("show to memo: expected %v, got %v", *expect.ShowToMemo, last.ShowToMemo))
	}
	if expect.ShowLdgMemo != nil && last.ShowLdgMemo != *expect.ShowLdgMemo {
		failures = append(failures, fmt.Sprintf("show ldg memo: expected %v, got %v", *expect.ShowLdgMemo, last.ShowLdgMemo))
	}
	if expect.CChord != nil && last.CChord != *expect.CChord {
		failures = append(failures, fmt.Sprintf("c chord: expected %v, got %v", *expect.CChord, last.CChord))
	}
	if expect.CavalryCharge != nil && last.CavalryCharge != *expect.CavalryCharge {
		failures = append(failures, fmt.Sprintf("cavalry charge: expected %v, got %v", *expect.CavalryCharge, last.CavalryCharge))
	}
	if expect.AudioVolume != nil && last.AudioVolume != *expect.AudioVolume {
		failures = append(failures, fmt.Sprintf("audio volume: expected %v, got %v", *expect.AudioVolume, last.AudioVolume))
	}
	for _, w := range expect.Warnings {
		if !seen[w] {
			failures = append(failures, fmt.Sprintf("warning %s was not raised", w))
		}
	}
	return failures
}

// #endregion replay
