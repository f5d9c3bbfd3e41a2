package sheets

import (
	"testing"

	"github.com/fwcsim/fwc/internal/arinc"
)

func speedIn(kt float64) SpeedDetectionIn {
	return SpeedDetectionIn{
		ComputedSpeed1: arinc.NewWord(kt),
		ComputedSpeed2: arinc.NewWord(kt),
		ComputedSpeed3: arinc.NewWord(kt),
	}
}

func TestSpeedDetectionLatchesAbove83Kt(t *testing.T) {
	a := NewSpeedDetectionActivation()
	run(15, func() { a.Update(tick, speedIn(60)) })
	if a.AcSpeedAbove80Kt() {
		t.Fatalf("expected below 80 kt at 60 kt")
	}
	run(5, func() { a.Update(tick, speedIn(84)) })
	if !a.AcSpeedAbove80Kt() {
		t.Fatalf("expected above 80 kt latched past 83 kt")
	}
}

func TestSpeedDetectionHoldsBetween77And83Kt(t *testing.T) {
	a := NewSpeedDetectionActivation()
	run(15, func() { a.Update(tick, speedIn(90)) })
	run(5, func() { a.Update(tick, speedIn(80)) })
	if !a.AcSpeedAbove80Kt() {
		t.Fatalf("expected the latch to hold at 80 kt")
	}
}

func TestSpeedDetectionReleasesBelow77Kt(t *testing.T) {
	a := NewSpeedDetectionActivation()
	run(15, func() { a.Update(tick, speedIn(90)) })
	a.Update(tick, speedIn(70))
	if a.AcSpeedAbove80Kt() {
		t.Fatalf("expected the latch to release below 77 kt")
	}
}

func TestSpeedDetectionNeedsOneSecondEligibility(t *testing.T) {
	a := NewSpeedDetectionActivation()
	run(5, func() { a.Update(tick, speedIn(90)) })
	if a.AcSpeedAbove80Kt() {
		t.Fatalf("expected no latch before the eligibility confirmation")
	}
}

func TestSpeedDetectionSingleAdcDisagrees(t *testing.T) {
	a := NewSpeedDetectionActivation()
	in := speedIn(90)
	in.ComputedSpeed2 = arinc.NewWord(60.0)
	in.ComputedSpeed3 = arinc.NewWord(60.0)
	run(15, func() { a.Update(tick, in) })
	if a.AcSpeedAbove80Kt() {
		t.Fatalf("expected a single ADC above 83 kt to lose the vote")
	}
}

func TestSpeedDetectionInvalidAdcSyntheticVote(t *testing.T) {
	a := NewSpeedDetectionActivation()
	in := SpeedDetectionIn{
		ComputedSpeed1: arinc.NewWord(90.0),
		ComputedSpeed2: arinc.NewWordInv(0.0),
		ComputedSpeed3: arinc.NewWord(60.0),
	}
	run(15, func() { a.Update(tick, in) })
	if !a.AcSpeedAbove80Kt() {
		t.Fatalf("expected one valid ADC above 83 kt plus an invalid ADC to carry the vote")
	}
}

func TestSpeedDetectionAdcTestInhibit(t *testing.T) {
	a := NewSpeedDetectionActivation()
	in := speedIn(60)
	in.ComputedSpeed1 = arinc.NewWordFt(0.0)
	run(3, func() { a.Update(tick, in) })
	if a.AdcTestInhib() {
		t.Fatalf("expected no inhibit while the functional test is ongoing")
	}
	a.Update(tick, speedIn(60))
	if !a.AdcTestInhib() {
		t.Fatalf("expected the inhibit window after the functional test drops")
	}
	run(20, func() { a.Update(tick, speedIn(60)) })
	if a.AdcTestInhib() {
		t.Fatalf("expected the inhibit window to expire after 1.5 seconds")
	}
}
