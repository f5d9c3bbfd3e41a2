package sheets

import (
	"testing"
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
)

const tick = 100 * time.Millisecond

func run(n int, f func()) {
	for i := 0; i < n; i++ {
		f()
	}
}

func newGroundIn(compressed bool) NewGroundIn {
	return NewGroundIn{
		LhLgCompressed1:    arinc.NewWord(compressed),
		LhLgCompressed2:    arinc.NewWord(compressed),
		EssLhLgCompressed:  arinc.NewDiscrete(compressed),
		NormLhLgCompressed: arinc.NewDiscrete(compressed),
	}
}

func TestNewGroundOnGround(t *testing.T) {
	a := NewNewGroundActivation()
	run(20, func() { a.Update(tick, newGroundIn(true)) })
	if !a.NewGround() {
		t.Fatalf("expected new ground with all gear signals compressed")
	}
	if a.Lgciu12Inv() {
		t.Fatalf("expected LGCIUs valid with agreeing signals")
	}
}

func TestNewGroundInFlight(t *testing.T) {
	a := NewNewGroundActivation()
	run(20, func() { a.Update(tick, newGroundIn(false)) })
	if a.NewGround() {
		t.Fatalf("expected no new ground with gear extended")
	}
}

func TestNewGroundSustainedMismatchLatchesInvalid(t *testing.T) {
	a := NewNewGroundActivation()
	in := newGroundIn(true)
	in.EssLhLgCompressed = arinc.NewDiscrete(false)
	run(15, func() { a.Update(tick, in) })
	if !a.Lgciu12Inv() {
		t.Fatalf("expected dual LGCIU invalid after a sustained mismatch")
	}
}

func TestNewGroundBriefMismatchTolerated(t *testing.T) {
	a := NewNewGroundActivation()
	run(20, func() { a.Update(tick, newGroundIn(true)) })
	in := newGroundIn(true)
	in.EssLhLgCompressed = arinc.NewDiscrete(false)
	run(5, func() { a.Update(tick, in) })
	run(20, func() { a.Update(tick, newGroundIn(true)) })
	if a.Lgciu12Inv() {
		t.Fatalf("expected a sub-second mismatch to be tolerated")
	}
}

func groundDetectionIn(gearDown bool, rh float64) GroundDetectionIn {
	return GroundDetectionIn{
		EssLhLgCompressed:  arinc.NewDiscrete(gearDown),
		NormLhLgCompressed: arinc.NewDiscrete(gearDown),
		RadioHeight1:       arinc.NewWord(rh),
		RadioHeight2:       arinc.NewWord(rh),
		NewGround:          gearDown,
	}
}

func TestGroundDetectionOnGround(t *testing.T) {
	a := NewGroundDetectionActivation()
	run(20, func() { a.Update(tick, groundDetectionIn(true, 0)) })
	if !a.GroundImmediate() {
		t.Fatalf("expected ground immediate with gear compressed below 5 ft")
	}
	if !a.Ground() {
		t.Fatalf("expected confirmed ground after one second")
	}
}

func TestGroundDetectionConfirmationDelay(t *testing.T) {
	a := NewGroundDetectionActivation()
	a.Update(tick, groundDetectionIn(true, 0))
	if !a.GroundImmediate() {
		t.Fatalf("expected ground immediate on the first tick")
	}
	if a.Ground() {
		t.Fatalf("expected confirmed ground to lag by one second")
	}
}

func TestGroundDetectionInFlight(t *testing.T) {
	a := NewGroundDetectionActivation()
	run(20, func() { a.Update(tick, groundDetectionIn(false, 1500)) })
	if a.GroundImmediate() || a.Ground() {
		t.Fatalf("expected no ground in flight")
	}
}

func TestGroundDetectionDualRaInvalidUsesGearVote(t *testing.T) {
	a := NewGroundDetectionActivation()
	in := GroundDetectionIn{
		EssLhLgCompressed:  arinc.NewDiscrete(true),
		NormLhLgCompressed: arinc.NewDiscrete(true),
		RadioHeight1:       arinc.NewWordInv(0.0),
		RadioHeight2:       arinc.NewWordInv(0.0),
		NewGround:          true,
	}
	run(20, func() { a.Update(tick, in) })
	if !a.Ground() {
		t.Fatalf("expected ground from the gear discretes with both altimeters failed")
	}
}

func TestGroundDetectionDualRaNcdAcceptsLgciuVote(t *testing.T) {
	a := NewGroundDetectionActivation()
	in := GroundDetectionIn{
		EssLhLgCompressed:  arinc.NewDiscrete(true),
		NormLhLgCompressed: arinc.NewDiscrete(false),
		RadioHeight1:       arinc.NewWordNcd(0.0),
		RadioHeight2:       arinc.NewWordNcd(0.0),
		NewGround:          true,
	}
	run(20, func() { a.Update(tick, in) })
	if !a.Ground() {
		t.Fatalf("expected the LGCIU vote to count with both altimeters at NCD")
	}
}
