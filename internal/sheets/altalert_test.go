package sheets

import (
	"testing"

	"github.com/fwcsim/fwc/internal/arinc"
)

func TestAltitudeAlertThresholdBands(t *testing.T) {
	a := NewAltitudeAlertThresholdsActivation()
	sel := arinc.NewWord(10000.0)

	a.Update(tick, AltitudeAlertThresholdsIn{AltiSelect: sel, AltiBasic: 9950})
	if !a.Alt200() || !a.Alt750() {
		t.Fatalf("expected both bands at 50 ft deviation")
	}
	a.Update(tick, AltitudeAlertThresholdsIn{AltiSelect: sel, AltiBasic: 9500})
	if a.Alt200() || !a.Alt750() {
		t.Fatalf("expected only the outer band at 500 ft deviation")
	}
	a.Update(tick, AltitudeAlertThresholdsIn{AltiSelect: sel, AltiBasic: 9000})
	if a.Alt200() || a.Alt750() {
		t.Fatalf("expected neither band at 1000 ft deviation")
	}
}

func TestAltitudeAlertGeneralInhibit(t *testing.T) {
	a := NewAltitudeAlertGeneralInhibitActivation()
	a.Update(tick, AltitudeAlertGeneralInhibitIn{
		AltiSelect:   arinc.NewWord(10000.0),
		AltSelectChg: arinc.NewWord(false),
	})
	if a.GeneralInhibit() {
		t.Fatalf("expected no inhibit with a stable valid selection")
	}
	a.Update(tick, AltitudeAlertGeneralInhibitIn{
		AltiSelect:   arinc.NewWord(10000.0),
		AltSelectChg: arinc.NewWord(true),
	})
	if !a.GeneralInhibit() {
		t.Fatalf("expected the inhibit while the selection is changing")
	}
	a.Update(tick, AltitudeAlertGeneralInhibitIn{
		AltiSelect:   arinc.NewWordNcd(0.0),
		AltSelectChg: arinc.NewWord(false),
	})
	if !a.GeneralInhibit() {
		t.Fatalf("expected the inhibit with a bad selection word")
	}
}

func altAlertIn(alt200, alt750 bool) AltitudeAlertIn {
	return AltitudeAlertIn{
		AltSelectChg: arinc.NewWord(false),
		Alt200:       alt200,
		Alt750:       alt750,
	}
}

func TestAltitudeAlertSteadyLightInBand(t *testing.T) {
	a := NewAltitudeAlertActivation()
	a.Update(tick, altAlertIn(false, true))
	if !a.SteadyLight() || a.FlashingLight() {
		t.Fatalf("expected the steady light inside the 750 ft band")
	}
	if !a.CChord() {
		t.Fatalf("expected the C chord on band entry without an autopilot")
	}
	run(15, func() { a.Update(tick, altAlertIn(false, true)) })
	if a.CChord() {
		t.Fatalf("expected the C chord limited to 1.5 seconds")
	}
	if !a.SteadyLight() {
		t.Fatalf("expected the steady light to persist in the band")
	}
}

func TestAltitudeAlertNoChordWithApEngaged(t *testing.T) {
	a := NewAltitudeAlertActivation()
	in := altAlertIn(false, true)
	in.OneApEngd = true
	a.Update(tick, in)
	if a.CChord() {
		t.Fatalf("expected no C chord with an autopilot engaged")
	}
	if !a.SteadyLight() {
		t.Fatalf("expected the steady light regardless of the autopilot")
	}
}

func TestAltitudeAlertFlashingAfterLeavingBand(t *testing.T) {
	a := NewAltitudeAlertActivation()
	in := altAlertIn(false, true)
	in.OneApEngd = true
	run(5, func() { a.Update(tick, in) })

	// deviating away from the selection past 750 ft
	out := altAlertIn(false, false)
	out.OneApEngd = true
	a.Update(tick, out)
	if !a.FlashingLight() || a.SteadyLight() {
		t.Fatalf("expected the flashing light after leaving the 750 ft band")
	}
	if !a.CChord() {
		t.Fatalf("expected the continuous C chord with the deviation unacknowledged")
	}
}

func TestAltitudeAlertLeavingInnerBand(t *testing.T) {
	a := NewAltitudeAlertActivation()
	in := altAlertIn(true, true)
	in.OneApEngd = true
	run(5, func() { a.Update(tick, in) })

	mid := altAlertIn(false, true)
	mid.OneApEngd = true
	a.Update(tick, mid)
	if !a.FlashingLight() || a.SteadyLight() {
		t.Fatalf("expected the flashing light after leaving the 200 ft band")
	}
}

func TestAltitudeAlertResetByGearDown(t *testing.T) {
	a := NewAltitudeAlertActivation()
	in := altAlertIn(true, true)
	in.OneApEngd = true
	run(5, func() { a.Update(tick, in) })

	mid := altAlertIn(false, true)
	mid.OneApEngd = true
	mid.LgDownlocked = true
	a.Update(tick, mid)
	if a.FlashingLight() {
		t.Fatalf("expected the gear downlock to reset the deviation memory")
	}
}

func TestAltitudeAlertSuppressedOnGround(t *testing.T) {
	a := NewAltitudeAlertActivation()
	in := altAlertIn(false, true)
	in.Ground = true
	a.Update(tick, in)
	if a.SteadyLight() || a.CChord() {
		t.Fatalf("expected no altitude alert on the ground")
	}
}

func TestApTcasInhibitLatch(t *testing.T) {
	a := NewApTcasInhibitActivation()
	quiet := ApTcasInhibitIn{
		TcasEngaged:  arinc.NewWord(false),
		AltSelectChg: arinc.NewWord(false),
		Alt200:       true,
		Alt750:       true,
	}
	a.Update(tick, quiet)
	if a.AltAlertInib() {
		t.Fatalf("expected no inhibit without TCAS")
	}

	// TCAS engages and flies the aircraft out of the inner band
	engaged := quiet
	engaged.TcasEngaged = arinc.NewWord(true)
	a.Update(tick, engaged)
	leaving := engaged
	leaving.Alt200 = false
	leaving.Alt750 = false
	a.Update(tick, leaving)
	if !a.ApTcasModeEng() || !a.AltAlertInib() {
		t.Fatalf("expected the aural inhibit latched on a TCAS initiated deviation")
	}

	reset := leaving
	reset.AltSelectChg = arinc.NewWord(true)
	a.Update(tick, reset)
	if a.AltAlertInib() {
		t.Fatalf("expected a selection change to release the inhibit")
	}
}
