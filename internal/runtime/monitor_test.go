package runtime

import (
	"testing"
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
)

const tick = 100 * time.Millisecond

func monitorInput() MonitorInput {
	return MonitorInput{RadioHeight: arinc.NewWordInv(0.0)}
}

func TestMonitorAnnouncesCalloutOnRisingEdge(t *testing.T) {
	m := NewMonitor()
	m.Update(tick, monitorInput(), []WarningCode{CodeCallout100Ft})

	id, ok := m.SyntheticVoiceIndex()
	if !ok || id != 131 {
		t.Fatalf("expected one hundred fragment 131, got %d (%v)", id, ok)
	}
}

func TestMonitorAnnouncesOnlyOnceWhileWarningHeld(t *testing.T) {
	m := NewMonitor()
	for i := 0; i < 60; i++ {
		m.Update(tick, monitorInput(), []WarningCode{CodeCallout100Ft})
	}

	if _, ok := m.SyntheticVoiceIndex(); ok {
		t.Fatalf("callout still playing after being held for 6 seconds")
	}
}

func TestMonitorHigherPriorityInterruptsPlayingCallout(t *testing.T) {
	m := NewMonitor()
	m.Update(tick, monitorInput(), []WarningCode{CodeCallout1000Ft})
	m.Update(tick, monitorInput(), []WarningCode{CodeCallout1000Ft, CodeMinimum})

	id, ok := m.SyntheticVoiceIndex()
	if !ok || id != 80 {
		t.Fatalf("expected minimum fragment 80, got %d (%v)", id, ok)
	}
}

func TestMonitorLowerPriorityWaitsForReady(t *testing.T) {
	m := NewMonitor()
	m.Update(tick, monitorInput(), []WarningCode{CodeMinimum})
	m.Update(tick, monitorInput(), []WarningCode{CodeMinimum, CodeCallout50Ft})

	if id, _ := m.SyntheticVoiceIndex(); id != 80 {
		t.Fatalf("minimum interrupted by lower priority callout, got %d", id)
	}

	// The minimum fragment lasts 670ms and completes within the next
	// six ticks, after which the queued fifty callout starts.
	for i := 0; i < 6; i++ {
		m.Update(tick, monitorInput(), nil)
	}
	id, ok := m.SyntheticVoiceIndex()
	if !ok || id != 125 {
		t.Fatalf("expected fifty fragment 125, got %d (%v)", id, ok)
	}
}

func TestMonitorInhibitSuppressesCallouts(t *testing.T) {
	m := NewMonitor()
	in := monitorInput()
	in.AutoCallOutInhib = true
	m.Update(tick, in, []WarningCode{CodeCallout100Ft})

	if _, ok := m.SyntheticVoiceIndex(); ok {
		t.Fatalf("callout announced despite inhibition")
	}
}

func TestMonitorIntermediateHeightAnnouncement(t *testing.T) {
	m := NewMonitor()
	in := monitorInput()
	in.IntermediateCallOut = true
	in.RadioHeight = arinc.NewWord(200.0)
	m.Update(tick, in, nil)

	id, ok := m.SyntheticVoiceIndex()
	if !ok || id != 132 {
		t.Fatalf("expected two hundred fragment 132, got %d (%v)", id, ok)
	}
	if !m.InterAudio() {
		t.Fatalf("intermediate announcement not flagged")
	}
}

func TestMonitorCChordFollowsWarning(t *testing.T) {
	m := NewMonitor()
	m.Update(tick, monitorInput(), []WarningCode{CodeCChord})
	if !m.CChord() {
		t.Fatalf("c chord not sounding with warning active")
	}

	in := monitorInput()
	in.MwCancelPulseUp = true
	m.Update(tick, in, []WarningCode{CodeCChord})
	if m.CChord() {
		t.Fatalf("c chord not cancelled by master warning pulse")
	}

	// The cancellation lasts only for the current alert.
	m.Update(tick, monitorInput(), nil)
	m.Update(tick, monitorInput(), []WarningCode{CodeCChord})
	if !m.CChord() {
		t.Fatalf("c chord cancellation survived the alert ending")
	}
}

func TestMonitorGeneratedFeedbackPulses(t *testing.T) {
	m := NewMonitor()
	m.Update(tick, monitorInput(), []WarningCode{CodeMinimum})
	if !m.MinimumGenerated() {
		t.Fatalf("minimum feedback not raised on announcement")
	}

	m.Update(tick, monitorInput(), []WarningCode{CodeMinimum})
	if m.MinimumGenerated() {
		t.Fatalf("minimum feedback held beyond one tick")
	}
}

func TestWarningCodeString(t *testing.T) {
	if got := NewWarningCode(0, 0, 10).String(); got != "00-00-010" {
		t.Fatalf("expected 00-00-010, got %s", got)
	}
	if got := CodeCallout2500Ft.String(); got != "34-00-420" {
		t.Fatalf("expected 34-00-420, got %s", got)
	}
}
