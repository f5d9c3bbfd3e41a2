package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fwcsim/fwc/internal/params"
	"github.com/fwcsim/fwc/internal/runtime"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "trace.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func boolPtr(v bool) *bool { return &v }

func TestBeginAndCloseRun(t *testing.T) {
	s := tempStore(t)

	id, err := s.BeginRun(runtime.Config{BussInstalled: true})
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty run id")
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != id {
		t.Fatalf("expected the new run back, got %v", runs)
	}
	if !runs[0].Config.BussInstalled {
		t.Fatal("expected config round trip")
	}
	if !runs[0].ClosedAt.IsZero() {
		t.Fatal("run closed before CloseRun")
	}

	if err := s.CloseRun(id); err != nil {
		t.Fatalf("CloseRun: %v", err)
	}
	runs, _ = s.ListRuns(10)
	if runs[0].ClosedAt.IsZero() {
		t.Fatal("expected a close timestamp")
	}
}

func TestGetRun(t *testing.T) {
	s := tempStore(t)

	id, err := s.BeginRun(runtime.Config{BussInstalled: true})
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	rec, err := s.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if rec.RunID != id {
		t.Fatalf("expected run %s, got %s", id, rec.RunID)
	}
	if !rec.Config.BussInstalled {
		t.Fatal("config did not round trip")
	}

	if _, err := s.GetRun("no-such-run"); err == nil {
		t.Fatal("expected an error for an unknown run")
	}
}

func TestCloseRunRejectsUnknownRun(t *testing.T) {
	s := tempStore(t)
	if err := s.CloseRun("no-such-run"); err == nil {
		t.Fatal("expected an error for an unknown run")
	}
}

func TestRecordAndReadTicks(t *testing.T) {
	s := tempStore(t)
	id, err := s.BeginRun(runtime.DefaultConfig())
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	inj := []params.Injection{
		{Signal: "radio_height_1", Family: params.FamilyNumber, Number: new(float64)},
		{Signal: "ess_lh_lg_compressed", Family: params.FamilyDiscrete, Bool: boolPtr(true)},
	}
	out := runtime.Snapshot{FlightPhase: 1, AudioVolume: 0.5, Warnings: []string{"22-00-050"}}
	if err := s.RecordTick(id, 0, 100*time.Millisecond, out, inj); err != nil {
		t.Fatalf("RecordTick: %v", err)
	}
	if err := s.RecordTick(id, 1, 100*time.Millisecond, runtime.Snapshot{FlightPhase: 1, AudioVolume: 1.0}, nil); err != nil {
		t.Fatalf("RecordTick: %v", err)
	}

	ticks, err := s.Ticks(id)
	if err != nil {
		t.Fatalf("Ticks: %v", err)
	}
	if len(ticks) != 2 {
		t.Fatalf("expected 2 ticks, got %d", len(ticks))
	}
	if ticks[0].Delta != 100*time.Millisecond {
		t.Fatalf("expected 100ms delta, got %v", ticks[0].Delta)
	}
	if len(ticks[0].Outputs.Warnings) != 1 || ticks[0].Outputs.Warnings[0] != "22-00-050" {
		t.Fatalf("warnings did not round trip: %v", ticks[0].Outputs.Warnings)
	}

	recs, err := s.Injections(id)
	if err != nil {
		t.Fatalf("Injections: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 injections, got %d", len(recs))
	}
	if recs[0].Injection.Signal != "radio_height_1" {
		t.Fatalf("unexpected first injection %q", recs[0].Injection.Signal)
	}
}

func TestNvmRoundTrip(t *testing.T) {
	s := tempStore(t)

	if err := s.SaveNvm(map[string]bool{"phase9": true}); err != nil {
		t.Fatalf("SaveNvm: %v", err)
	}
	if err := s.SaveNvm(map[string]bool{"phase9": false}); err != nil {
		t.Fatalf("SaveNvm overwrite: %v", err)
	}

	state, err := s.LoadNvm()
	if err != nil {
		t.Fatalf("LoadNvm: %v", err)
	}
	if v, ok := state["phase9"]; !ok || v {
		t.Fatalf("expected phase9=false, got %v (%v)", v, ok)
	}
}
