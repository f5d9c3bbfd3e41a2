package sheets

import (
	"testing"

	"github.com/fwcsim/fwc/internal/arinc"
)

func TestBaroAltitudeSourceSelection(t *testing.T) {
	a := NewAutoFlightBaroAltitudeActivation()
	a.Update(tick, AutoFlightBaroAltitudeIn{
		Altitude1: arinc.NewWord(10000.0),
		Altitude2: arinc.NewWord(10050.0),
		Altitude3: arinc.NewWord(10100.0),
	})
	if a.AltiBasic() != 10000.0 || a.AltiInvalid() {
		t.Fatalf("expected ADR 1 selected, got %v", a.AltiBasic())
	}

	a.Update(tick, AutoFlightBaroAltitudeIn{
		Altitude1: arinc.NewWordInv(0.0),
		Altitude2: arinc.NewWord(10050.0),
		Altitude3: arinc.NewWord(10100.0),
	})
	if a.AltiBasic() != 10050.0 {
		t.Fatalf("expected ADR 2 selected, got %v", a.AltiBasic())
	}

	a.Update(tick, AutoFlightBaroAltitudeIn{
		Altitude1: arinc.NewWordInv(0.0),
		Altitude2: arinc.NewWordNcd(0.0),
		Altitude3: arinc.NewWord(10100.0),
	})
	if a.AltiBasic() != 10100.0 || a.AltiInvalid() {
		t.Fatalf("expected ADR 3 selected, got %v", a.AltiBasic())
	}

	a.Update(tick, AutoFlightBaroAltitudeIn{
		Altitude1: arinc.NewWordInv(0.0),
		Altitude2: arinc.NewWordInv(0.0),
		Altitude3: arinc.NewWordInv(0.0),
	})
	if !a.AltiInvalid() {
		t.Fatalf("expected the altitude invalid with all three ADRs unusable")
	}
}

func apVolIn(engaged, button bool) AutopilotOffVoluntaryIn {
	return AutopilotOffVoluntaryIn{
		Ap1EngdCom:            arinc.NewDiscrete(engaged),
		Ap1EngdMon:            arinc.NewDiscrete(engaged),
		InstincDiscnct1ApEngd: arinc.NewDiscrete(button),
	}
}

func TestApOffVoluntaryWarningSequence(t *testing.T) {
	a := NewAutopilotOffVoluntaryActivation()
	run(10, func() { a.Update(tick, apVolIn(true, false)) })
	if !a.OneApEngd() || a.ApOffAudio() {
		t.Fatalf("expected a quiet engaged autopilot")
	}

	// instinctive disconnect press, the AP drops the next cycle
	a.Update(tick, apVolIn(true, true))
	a.Update(tick, apVolIn(false, true))
	if !a.ApOffAudio() || !a.ApOffMw() || !a.ApOffText() {
		t.Fatalf("expected the full AP OFF warning after an instinctive disconnect")
	}

	run(35, func() { a.Update(tick, apVolIn(false, false)) })
	if a.ApOffMw() {
		t.Fatalf("expected the master warning limited to 3 seconds")
	}
	if !a.ApOffText() || !a.ApOffAudio() {
		t.Fatalf("expected the text and cavalry charge to outlast the master warning")
	}

	run(60, func() { a.Update(tick, apVolIn(false, false)) })
	if a.ApOffText() {
		t.Fatalf("expected the text limited to 9 seconds")
	}
	if !a.ApOffAudio() {
		t.Fatalf("expected the cavalry charge latched until acknowledged")
	}

	in := apVolIn(false, false)
	in.CavalryChargeEmitted = true
	run(20, func() { a.Update(tick, in) })
	if a.ApOffAudio() {
		t.Fatalf("expected the cavalry charge to stop after being emitted")
	}
}

func TestApOffVoluntaryNoWarningWithoutButton(t *testing.T) {
	a := NewAutopilotOffVoluntaryActivation()
	run(10, func() { a.Update(tick, apVolIn(true, false)) })
	a.Update(tick, apVolIn(false, false))
	if a.ApOffAudio() || a.ApOffMw() || a.ApOffText() {
		t.Fatalf("expected no voluntary warning without an instinctive disconnect")
	}
}

func apUnvolIn(engaged, button bool) AutopilotOffUnvoluntaryIn {
	return AutopilotOffUnvoluntaryIn{
		Ap1EngdCom:            arinc.NewDiscrete(engaged),
		Ap1EngdMon:            arinc.NewDiscrete(engaged),
		InstincDiscnct1ApEngd: arinc.NewDiscrete(button),
	}
}

func TestApOffUnvoluntaryLatch(t *testing.T) {
	a := NewAutopilotOffUnvoluntaryActivation()
	run(10, func() { a.Update(tick, apUnvolIn(true, false)) })

	a.Update(tick, apUnvolIn(false, false))
	if !a.ApUnvolOff() || !a.Warning() {
		t.Fatalf("expected the involuntary warning on an unannounced AP drop")
	}
	a.Update(tick, apUnvolIn(false, false))
	if !a.Audio() {
		t.Fatalf("expected the cavalry charge after the drop")
	}

	a.Update(tick, apUnvolIn(true, false))
	if a.ApUnvolOff() || a.Audio() {
		t.Fatalf("expected re-engagement to clear the involuntary warning")
	}
}

func TestApOffUnvoluntaryAcknowledge(t *testing.T) {
	a := NewAutopilotOffUnvoluntaryActivation()
	run(10, func() { a.Update(tick, apUnvolIn(true, false)) })
	a.Update(tick, apUnvolIn(false, false))
	run(20, func() { a.Update(tick, apUnvolIn(false, false)) })

	// a later instinctive disconnect press acknowledges the audio
	a.Update(tick, apUnvolIn(false, true))
	if a.Audio() {
		t.Fatalf("expected the instinctive disconnect to silence the cavalry charge")
	}
	if !a.ApUnvolOff() {
		t.Fatalf("expected the warning condition itself to stay latched")
	}
}

func TestApOffUnvoluntarySuppressedAfterButton(t *testing.T) {
	a := NewAutopilotOffUnvoluntaryActivation()
	run(10, func() { a.Update(tick, apUnvolIn(true, false)) })
	a.Update(tick, apUnvolIn(true, true))
	a.Update(tick, apUnvolIn(false, true))
	if a.ApUnvolOff() {
		t.Fatalf("expected no involuntary warning during a voluntary disconnect")
	}
}

func TestApOffUnvoluntaryInhibitedOnGround(t *testing.T) {
	a := NewAutopilotOffUnvoluntaryActivation()
	run(10, func() { a.Update(tick, apUnvolIn(true, false)) })
	in := apUnvolIn(false, false)
	in.Phase1 = true
	in.BlueSysLoPr = arinc.NewDiscrete(true)
	in.YellowSysLoPr = arinc.NewDiscrete(true)
	in.GreenSysLoPr = arinc.NewDiscrete(true)
	a.Update(tick, in)
	if a.ApUnvolOff() {
		t.Fatalf("expected the warning inhibited on the depressurized ground")
	}
}
