package sheets

import (
	"testing"

	"github.com/fwcsim/fwc/internal/arinc"
)

func TestLgDownlockedVoting(t *testing.T) {
	down := arinc.NewWord(true)
	up := arinc.NewWord(false)
	upInv := arinc.NewWordInv(false)

	a := NewLgDownlockedActivation()
	a.Update(tick, LgDownlockedIn{
		LhGearDownLock1: down, LhGearDownLock2: down,
		RhGearDownLock1: down, RhGearDownLock2: down,
		NoseGearDownLock1: down, NoseGearDownLock2: down,
	})
	if !a.LgDownlocked() || !a.MainLgDownlocked() {
		t.Fatalf("expected all gear downlocked with both LGCIUs agreeing")
	}

	a.Update(tick, LgDownlockedIn{
		LhGearDownLock1: down, LhGearDownLock2: down,
		RhGearDownLock1: down, RhGearDownLock2: down,
		NoseGearDownLock1: down, NoseGearDownLock2: up,
	})
	if a.LgDownlocked() {
		t.Fatalf("expected nose gear disagreement to break the full downlock")
	}
	if !a.MainLgDownlocked() {
		t.Fatalf("expected the main gear downlock unaffected by the nose gear")
	}

	a.Update(tick, LgDownlockedIn{
		LhGearDownLock1: down, LhGearDownLock2: upInv,
		RhGearDownLock1: down, RhGearDownLock2: down,
		NoseGearDownLock1: down, NoseGearDownLock2: down,
	})
	if !a.LgDownlocked() {
		t.Fatalf("expected a single valid down report to win over an invalid one")
	}
}

func TestToMemoLatchedByConfigTest(t *testing.T) {
	a := NewToMemoActivation()
	a.Update(tick, ToMemoIn{
		ToConfigTest:   arinc.NewWord(true),
		Eng1NotRunning: true,
		Eng2NotRunning: true,
		Phase2:         true,
	})
	if !a.ToMemoComputed() {
		t.Fatalf("expected the TO memo latched by a config test in phase 2")
	}
	a.Update(tick, ToMemoIn{
		ToConfigTest:   arinc.NewWord(false),
		Eng1NotRunning: true,
		Eng2NotRunning: true,
		Phase2:         true,
	})
	if !a.ToMemoComputed() {
		t.Fatalf("expected the TO memo to stay latched after the test release")
	}
	a.Update(tick, ToMemoIn{
		ToConfigTest:   arinc.NewWord(false),
		Eng1NotRunning: true,
		Eng2NotRunning: true,
		Phase3:         true,
	})
	if a.ToMemoComputed() {
		t.Fatalf("expected the TO memo reset in phase 3")
	}
}

func TestToMemoAfterTwoMinutesBothRunning(t *testing.T) {
	a := NewToMemoActivation()
	in := ToMemoIn{ToConfigTest: arinc.NewWord(false), Phase2: true}
	run(1190, func() { a.Update(tick, in) })
	if a.ToMemoComputed() {
		t.Fatalf("expected no TO memo before two minutes of both engines running")
	}
	run(20, func() { a.Update(tick, in) })
	if !a.ToMemoComputed() {
		t.Fatalf("expected the TO memo after two minutes of both engines running")
	}
	in.Phase2 = false
	in.Phase6 = true
	a.Update(tick, in)
	if a.ToMemoComputed() {
		t.Fatalf("expected the TO memo gone outside phase 2")
	}
}

func ldgMemoIn(rh float64, phase6 bool) LdgMemoIn {
	return LdgMemoIn{
		RadioHeight1: arinc.NewWord(rh),
		RadioHeight2: arinc.NewWord(rh),
		Phase6:       phase6,
	}
}

func TestLdgMemoOnDescentThrough2000(t *testing.T) {
	a := NewLdgMemoActivation()
	run(15, func() { a.Update(tick, ldgMemoIn(2500, true)) })
	if a.LdgMemo() {
		t.Fatalf("expected no LDG memo above 2200 ft")
	}
	a.Update(tick, ldgMemoIn(1900, true))
	if !a.LdgMemo() {
		t.Fatalf("expected the LDG memo on descent through 2000 ft")
	}
	a.Update(tick, ldgMemoIn(2500, true))
	if a.LdgMemo() {
		t.Fatalf("expected the LDG memo gone after climbing back above 2200 ft")
	}
}

func TestLdgMemoWithoutPriorClimb(t *testing.T) {
	a := NewLdgMemoActivation()
	run(15, func() { a.Update(tick, ldgMemoIn(1500, true)) })
	if a.LdgMemo() {
		t.Fatalf("expected no LDG memo without having been above 2200 ft")
	}
}

func TestLdgMemoInPhase7And8(t *testing.T) {
	a := NewLdgMemoActivation()
	a.Update(tick, LdgMemoIn{
		RadioHeight1: arinc.NewWord(50.0),
		RadioHeight2: arinc.NewWord(50.0),
		Phase7:       true,
	})
	if !a.LdgMemo() {
		t.Fatalf("expected the LDG memo throughout phase 7")
	}
}

func TestLdgMemoDualRaFailedGearDown(t *testing.T) {
	a := NewLdgMemoActivation()
	in := LdgMemoIn{
		RadioHeight1: arinc.NewWordInv(0.0),
		RadioHeight2: arinc.NewWordInv(0.0),
		LgDownlocked: true,
		Phase6:       true,
	}
	run(95, func() { a.Update(tick, in) })
	if a.LdgMemo() {
		t.Fatalf("expected the failed altimeter path to need 10 seconds")
	}
	run(15, func() { a.Update(tick, in) })
	if !a.LdgMemo() {
		t.Fatalf("expected the LDG memo with both altimeters failed and gear down")
	}
	if !a.ConfigMemoComputed() {
		t.Fatalf("expected the config memo to follow the LDG memo")
	}
}
