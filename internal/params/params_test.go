package params

import (
	"testing"

	"github.com/fwcsim/fwc/internal/arinc"
)

func TestUnwrittenSignalsReadInvalid(t *testing.T) {
	s := NewStore()
	if !s.Discrete(CaptMwCancelOn).IsInv() {
		t.Fatalf("expected an unwritten discrete to be invalid")
	}
	if !s.Flag(TcasEngaged).IsFw() {
		t.Fatalf("expected an unwritten flag to carry a failure warning")
	}
	if !s.Number(RadioHeight1).IsFw() {
		t.Fatalf("expected an unwritten number to carry a failure warning")
	}
}

func TestWritesReadBack(t *testing.T) {
	s := NewStore()
	s.SetNumber(RadioHeight1, arinc.NewWord(1234.0))
	p := s.Number(RadioHeight1)
	if !p.IsNo() || p.Value() != 1234.0 {
		t.Fatalf("expected the written radio height back, got %v valid=%v", p.Value(), p.IsNo())
	}

	s.SetFlag(Eng1MasterLeverSelectOn, arinc.NewWord(true))
	if !s.Flag(Eng1MasterLeverSelectOn).Value() {
		t.Fatalf("expected the written flag back")
	}

	s.SetDiscrete(EssLhLgCompressed, arinc.NewDiscrete(true))
	if !s.Discrete(EssLhLgCompressed).Value() {
		t.Fatalf("expected the written discrete back")
	}
}

func TestResetInvalidatesEverything(t *testing.T) {
	s := NewStore()
	s.SetNumber(Altitude1, arinc.NewWord(30000.0))
	s.Reset()
	if s.Number(Altitude1).IsVal() {
		t.Fatalf("expected reset to invalidate stored parameters")
	}
}

func TestNamesRoundTrip(t *testing.T) {
	for _, id := range All() {
		name := id.String()
		if name == "unknown" {
			t.Fatalf("signal %d has no wire name", id)
		}
		back, ok := ByName(name)
		if !ok || back != id {
			t.Fatalf("name %q did not resolve back to %d", name, id)
		}
	}
}

func TestIndexedLookups(t *testing.T) {
	if RadioHeightID(2) != RadioHeight2 {
		t.Fatalf("expected radio height 2")
	}
	if ComputedSpeedID(3) != ComputedSpeed3 {
		t.Fatalf("expected computed speed 3")
	}
	if AltitudeID(1) != Altitude1 {
		t.Fatalf("expected altitude 1")
	}
}
