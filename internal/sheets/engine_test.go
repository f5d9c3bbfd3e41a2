package sheets

import (
	"testing"

	"github.com/fwcsim/fwc/internal/arinc"
)

func enginesNotRunningIn(coreAboveIdle bool, ground bool) EnginesNotRunningIn {
	return EnginesNotRunningIn{
		Eng1MasterLeverSelectOn: arinc.NewWord(true),
		Eng2MasterLeverSelectOn: arinc.NewWord(true),
		Eng1CoreSpeedAboveIdleA: arinc.NewWord(coreAboveIdle),
		Eng1CoreSpeedAboveIdleB: arinc.NewWord(coreAboveIdle),
		Eng2CoreSpeedAboveIdleA: arinc.NewWord(coreAboveIdle),
		Eng2CoreSpeedAboveIdleB: arinc.NewWord(coreAboveIdle),
		Eng1FirePbOut:           arinc.NewDiscrete(false),
		Ground:                  ground,
	}
}

func TestEnginesNotRunningInitially(t *testing.T) {
	a := NewEnginesNotRunningActivation()
	a.Update(tick, enginesNotRunningIn(false, true))
	if !a.Eng1NotRunning() || !a.Eng2NotRunning() {
		t.Fatalf("expected both engines not running with cores below idle")
	}
}

func TestEnginesRunningAfter30Seconds(t *testing.T) {
	a := NewEnginesNotRunningActivation()
	run(290, func() { a.Update(tick, enginesNotRunningIn(true, true)) })
	if !a.Eng1NotRunning() {
		t.Fatalf("expected not running before the 30 second confirmation")
	}
	run(20, func() { a.Update(tick, enginesNotRunningIn(true, true)) })
	if a.Eng1NotRunning() || a.Eng2NotRunning() {
		t.Fatalf("expected both engines running after the confirmation")
	}
}

func TestEnginesRunningImmediatelyInFlight(t *testing.T) {
	a := NewEnginesNotRunningActivation()
	a.Update(tick, enginesNotRunningIn(true, false))
	if a.Eng1NotRunning() {
		t.Fatalf("expected running immediately in flight with both channels above idle")
	}
}

func TestEnginesMasterLeverOffMeansNotRunning(t *testing.T) {
	a := NewEnginesNotRunningActivation()
	in := enginesNotRunningIn(true, true)
	run(310, func() { a.Update(tick, in) })
	in.Eng2MasterLeverSelectOn = arinc.NewWord(false)
	a.Update(tick, in)
	if a.Eng1NotRunning() {
		t.Fatalf("expected engine 1 unaffected by the engine 2 master lever")
	}
	if !a.Eng2NotRunning() {
		t.Fatalf("expected engine 2 not running with its master lever off")
	}
}

func TestEngRunningConfirmation(t *testing.T) {
	a := NewEngRunningActivation()
	in := EngRunningIn{
		Eng1CoreSpeedAboveIdleA: arinc.NewWord(true),
		Eng1CoreSpeedAboveIdleB: arinc.NewWord(false),
		Eng2CoreSpeedAboveIdleA: arinc.NewWord(false),
		Eng2CoreSpeedAboveIdleB: arinc.NewWord(false),
	}
	a.Update(tick, in)
	if !a.OneEngRunning() {
		t.Fatalf("expected one engine running immediately")
	}
	if a.Eng1Or2Running() {
		t.Fatalf("expected the confirmed output to lag 30 seconds")
	}
	run(310, func() { a.Update(tick, in) })
	if !a.Eng1Or2Running() {
		t.Fatalf("expected the confirmed output after 30 seconds")
	}
}

func tlaIn(tla1, tla2 float64) TlaIn {
	return TlaIn{
		Eng1TlaA: arinc.NewWord(tla1),
		Eng1TlaB: arinc.NewWord(tla1),
		Eng2TlaA: arinc.NewWord(tla2),
		Eng2TlaB: arinc.NewWord(tla2),
	}
}

func TestTlaMctBand(t *testing.T) {
	a := NewTlaAtMctOrFlexToCfmActivation()
	a.Update(tick, tlaIn(35, 20))
	if !a.Eng1TlaMctCfm() {
		t.Fatalf("expected engine 1 in the MCT band at 35 degrees")
	}
	if a.Eng2TlaMctCfm() {
		t.Fatalf("expected engine 2 out of the MCT band at 20 degrees")
	}
	if a.Eng1SupMctCfm() {
		t.Fatalf("expected engine 1 below the MCT stop")
	}
}

func TestTlaAboveMct(t *testing.T) {
	a := NewTlaAtMctOrFlexToCfmActivation()
	a.Update(tick, tlaIn(40, 40))
	if a.Eng1TlaMctCfm() || !a.Eng1SupMctCfm() || !a.Eng2SupMctCfm() {
		t.Fatalf("expected both engines above the MCT stop at 40 degrees")
	}
}

func TestTlaReverseSelected(t *testing.T) {
	a := NewTlaPwrReverseActivation()
	in := TlaPwrReverseIn{Tla: tlaIn(-6, 0)}
	run(5, func() { a.Update(tick, in) })
	if !a.Eng1TlaReverseCfm() {
		t.Fatalf("expected engine 1 reverse below -4.3 degrees")
	}
	if a.Eng2TlaReverseCfm() {
		t.Fatalf("expected engine 2 forward at 0 degrees")
	}
	if a.Eng1TlaFullPwrCfm() {
		t.Fatalf("expected no full power while in reverse")
	}
}

func TestTlaFullPower(t *testing.T) {
	a := NewTlaPwrReverseActivation()
	in := TlaPwrReverseIn{Tla: tlaIn(44, 0)}
	a.Update(tick, in)
	if !a.Eng1TlaFullPwrCfm() {
		t.Fatalf("expected full power above 43.3 degrees")
	}
}

func TestCfmFlightPhasesFlex(t *testing.T) {
	a := NewCfmFlightPhasesDefActivation()
	in := CfmFlightPhasesDefIn{
		Eng1TlaMctCfm: true,
		Eng1TlaFtoA:   arinc.NewWord(true),
	}
	a.Update(tick, in)
	if !a.CfmFlex() {
		t.Fatalf("expected flex with both TLAs in the MCT band and FTO set")
	}
	if !a.Eng1Or2ToPwr() {
		t.Fatalf("expected takeoff power during flex")
	}
}

func TestCfmFlightPhasesToPwrDecay(t *testing.T) {
	a := NewCfmFlightPhasesDefActivation()
	in := CfmFlightPhasesDefIn{
		Eng1SupMctCfm: true,
	}
	run(5, func() { a.Update(tick, in) })
	if !a.Eng1Or2ToPwr() {
		t.Fatalf("expected takeoff power above MCT")
	}
	after := CfmFlightPhasesDefIn{Eng12MclCfm: true}
	run(5, func() { a.Update(tick, after) })
	if !a.Eng1Or2ToPwr() {
		t.Fatalf("expected takeoff power held at climb power below 1500 ft")
	}
	afterHigh := after
	afterHigh.HGt1500Ft = true
	a.Update(tick, afterHigh)
	if a.Eng1Or2ToPwr() {
		t.Fatalf("expected takeoff power dropped at climb power above 1500 ft")
	}
}

func TestEngStartSequenceTempo(t *testing.T) {
	a := NewEng1StartSequenceActivation()
	in := EngStartSequenceIn{MasterLeverSelectOn: arinc.NewWord(true)}
	run(290, func() { a.Update(tick, in) })
	if a.Eng1TempoMasterLever1On() {
		t.Fatalf("expected the master lever tempo to need 30 seconds")
	}
	run(20, func() { a.Update(tick, in) })
	if !a.Eng1TempoMasterLever1On() {
		t.Fatalf("expected the master lever tempo after 30 seconds")
	}
}

func TestEng2StartSequencePhase5Window(t *testing.T) {
	a := NewEng2StartSequenceActivation()
	in := Eng2StartSequenceIn{
		MasterLeverSelectOn: arinc.NewWord(false),
		Phase4:              true,
	}
	run(5, func() { a.Update(tick, in) })
	in.Phase4 = false
	in.Phase5 = true
	a.Update(tick, in)
	if !a.Phase5To30s() {
		t.Fatalf("expected the 30 second window on entering phase 5")
	}
	run(310, func() { a.Update(tick, in) })
	if a.Phase5To30s() {
		t.Fatalf("expected the window to expire after 30 seconds")
	}
}
