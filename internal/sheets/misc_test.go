package sheets

import (
	"testing"

	"github.com/fwcsim/fwc/internal/arinc"
)

func TestGeneralCancelPulses(t *testing.T) {
	a := NewGeneralCancelActivation()
	idle := GeneralCancelIn{
		CaptMwCancelOn: arinc.NewDiscrete(false),
		FoMwCancelOn:   arinc.NewDiscrete(false),
		CaptMcCancelOn: arinc.NewDiscrete(false),
		FoMcCancelOn:   arinc.NewDiscrete(false),
	}
	a.Update(tick, idle)

	pressed := idle
	pressed.CaptMwCancelOn = arinc.NewDiscrete(true)
	a.Update(tick, pressed)
	if !a.MwCancelPulseUp() {
		t.Fatalf("expected a master warning cancel pulse on the press")
	}
	if a.McCancelPulseUp() {
		t.Fatalf("expected no master caution pulse from the warning button")
	}

	a.Update(tick, pressed)
	if a.MwCancelPulseUp() {
		t.Fatalf("expected the pulse to last a single cycle while held")
	}

	pressed.FoMcCancelOn = arinc.NewDiscrete(true)
	a.Update(tick, pressed)
	if !a.McCancelPulseUp() {
		t.Fatalf("expected a master caution cancel pulse on the press")
	}
}

func TestAudioAttenuation(t *testing.T) {
	a := NewAudioAttenuationActivation()
	a.Update(tick, AudioAttenuationIn{Ground: true, Eng1NotRunning: true, Eng2NotRunning: true})
	if !a.AudioAttenuation() {
		t.Fatalf("expected attenuation on ground with both engines shut down")
	}
	a.Update(tick, AudioAttenuationIn{Ground: true, Eng1NotRunning: false, Eng2NotRunning: true})
	if a.AudioAttenuation() {
		t.Fatalf("expected no attenuation with an engine running")
	}
	a.Update(tick, AudioAttenuationIn{Ground: false, Eng1NotRunning: true, Eng2NotRunning: true})
	if a.AudioAttenuation() {
		t.Fatalf("expected no attenuation in flight")
	}
}
