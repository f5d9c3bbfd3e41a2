package sheets

import (
	"testing"

	"github.com/fwcsim/fwc/internal/arinc"
)

func altitudeDefIn(rh float64) AltitudeDefIn {
	return AltitudeDefIn{
		RadioHeight1: arinc.NewWord(rh),
		RadioHeight2: arinc.NewWord(rh),
	}
}

func TestAltitudeDefAbove1500(t *testing.T) {
	a := NewAltitudeDefActivation()
	a.Update(tick, altitudeDefIn(1600))
	if !a.HGt1500Ft() || !a.HGt800Ft() {
		t.Fatalf("expected both altitude gates above 1500 ft")
	}
	a.Update(tick, altitudeDefIn(1000))
	if a.HGt1500Ft() {
		t.Fatalf("expected the 1500 ft gate released at 1000 ft")
	}
	if !a.HGt800Ft() {
		t.Fatalf("expected the 800 ft gate latched at 1000 ft")
	}
	a.Update(tick, altitudeDefIn(700))
	if a.HGt800Ft() {
		t.Fatalf("expected the 800 ft gate released below 800 ft")
	}
}

func TestAltitudeDefDualFailure(t *testing.T) {
	a := NewAltitudeDefActivation()
	a.Update(tick, AltitudeDefIn{
		RadioHeight1: arinc.NewWordInv(0.0),
		RadioHeight2: arinc.NewWordInv(0.0),
	})
	if !a.HFail() {
		t.Fatalf("expected the dual failure with both altimeters invalid")
	}
	if a.HGt1500Ft() {
		t.Fatalf("expected no altitude assumption with both altimeters failed")
	}
}

func TestAltitudeDefNcdAssumesHigh(t *testing.T) {
	a := NewAltitudeDefActivation()
	in := AltitudeDefIn{
		RadioHeight1: arinc.NewWordNcd(0.0),
		RadioHeight2: arinc.NewWordNcd(0.0),
	}
	run(30, func() { a.Update(tick, in) })
	if a.HGt1500Ft() {
		t.Fatalf("expected no assumption before the 4 second confirmation")
	}
	run(15, func() { a.Update(tick, in) })
	if !a.HGt1500Ft() {
		t.Fatalf("expected the aircraft assumed high with both altimeters at NCD")
	}
	if a.HFail() {
		t.Fatalf("expected no dual failure at NCD")
	}
}

func TestGroundPhasesTakeoffProgression(t *testing.T) {
	a := NewFlightPhasesGroundActivation()

	parked := FlightPhasesGroundIn{
		Eng1FirePbOut:      arinc.NewDiscrete(false),
		ToConfigTest:       arinc.NewWord(false),
		Ground:             true,
		GroundImmediate:    true,
		Eng1And2NotRunning: true,
	}
	a.Update(tick, parked)
	if !a.Phase1() {
		t.Fatalf("expected phase 1 with engines shut down on ground")
	}

	taxi := parked
	taxi.Eng1And2NotRunning = false
	taxi.Eng1Or2Running = true
	taxi.OneEngRunning = true
	run(5, func() { a.Update(tick, taxi) })
	if !a.Phase2() || a.Phase1() {
		t.Fatalf("expected phase 2 with an engine running on ground")
	}

	toPwr := taxi
	toPwr.Eng1Or2ToPwr = true
	a.Update(tick, toPwr)
	if !a.Phase3() || a.Phase2() {
		t.Fatalf("expected phase 3 at takeoff power below 80 kt")
	}

	rolling := toPwr
	rolling.AcSpeedAbove80Kt = true
	a.Update(tick, rolling)
	if !a.Phase4() || a.Phase3() {
		t.Fatalf("expected phase 4 at takeoff power above 80 kt")
	}
}

func TestGroundPhasesLandingProgression(t *testing.T) {
	a := NewFlightPhasesGroundActivation()

	touchdown := FlightPhasesGroundIn{
		Eng1FirePbOut:    arinc.NewDiscrete(false),
		ToConfigTest:     arinc.NewWord(false),
		Ground:           true,
		GroundImmediate:  true,
		AcSpeedAbove80Kt: true,
		Eng1Or2Running:   true,
		OneEngRunning:    true,
	}
	a.Update(tick, touchdown)
	if !a.Phase8() {
		t.Fatalf("expected phase 8 after touchdown above 80 kt")
	}

	rollout := touchdown
	rollout.AcSpeedAbove80Kt = false
	run(5, func() { a.Update(tick, rollout) })
	if !a.Phase9() || a.Phase8() {
		t.Fatalf("expected phase 9 during rollout below 80 kt")
	}

	shutdown := rollout
	shutdown.Eng1Or2Running = false
	shutdown.OneEngRunning = false
	shutdown.Eng1And2NotRunning = true
	a.Update(tick, shutdown)
	if !a.Phase10() || a.Phase9() {
		t.Fatalf("expected phase 10 after engine shutdown")
	}

	run(3010, func() { a.Update(tick, shutdown) })
	if !a.Phase1() || a.Phase10() {
		t.Fatalf("expected phase 1 five minutes after engine shutdown")
	}
}

func TestAirPhases(t *testing.T) {
	a := NewFlightPhasesAirActivation()

	climb := FlightPhasesAirIn{Eng1Or2ToPwr: true}
	a.Update(tick, climb)
	if !a.Phase5() {
		t.Fatalf("expected phase 5 at takeoff power below 1500 ft")
	}

	cruise := FlightPhasesAirIn{HGt800Ft: true, HGt1500Ft: true}
	a.Update(tick, cruise)
	if !a.Phase6() || a.Phase5() {
		t.Fatalf("expected phase 6 above 1500 ft without takeoff power")
	}

	approach := FlightPhasesAirIn{}
	a.Update(tick, approach)
	if !a.Phase7() || a.Phase6() {
		t.Fatalf("expected phase 7 below 800 ft without takeoff power")
	}

	run(1810, func() { a.Update(tick, approach) })
	if a.Phase7() || !a.Phase6() {
		t.Fatalf("expected phase 7 limited to 180 seconds")
	}

	landed := FlightPhasesAirIn{GroundImmediate: true}
	a.Update(tick, landed)
	if a.Phase5() || a.Phase6() || a.Phase7() {
		t.Fatalf("expected no air phase on ground")
	}
}

func TestAirPhase5LimitedTo120Seconds(t *testing.T) {
	a := NewFlightPhasesAirActivation()
	climb := FlightPhasesAirIn{Eng1Or2ToPwr: true}
	run(1210, func() { a.Update(tick, climb) })
	if a.Phase5() || !a.Phase6() {
		t.Fatalf("expected phase 5 limited to 120 seconds of takeoff power")
	}
}
