package params

import "testing"

func boolPtr(v bool) *bool      { return &v }
func numPtr(v float64) *float64 { return &v }

func TestInjectNumber(t *testing.T) {
	s := NewStore()
	err := s.Inject(Injection{Signal: "radio_height_1", Family: FamilyNumber, Number: numPtr(250.0)})
	if err != nil {
		t.Fatalf("inject: %v", err)
	}
	p := s.Number(RadioHeight1)
	if !p.IsNo() || p.Value() != 250.0 {
		t.Fatalf("expected a valid 250 ft radio height, got %v", p.Value())
	}
}

func TestInjectWithStatus(t *testing.T) {
	s := NewStore()
	err := s.Inject(Injection{Signal: "radio_height_2", Family: FamilyNumber, Status: StatusNcd, Number: numPtr(10000.0)})
	if err != nil {
		t.Fatalf("inject: %v", err)
	}
	if !s.Number(RadioHeight2).IsNcd() {
		t.Fatalf("expected no computed data status")
	}
}

func TestInjectDiscreteAndFlag(t *testing.T) {
	s := NewStore()
	if err := s.Inject(Injection{Signal: "ess_lh_lg_compressed", Family: FamilyDiscrete, Bool: boolPtr(true)}); err != nil {
		t.Fatalf("inject discrete: %v", err)
	}
	if !s.Discrete(EssLhLgCompressed).Value() {
		t.Fatalf("discrete injection not stored")
	}

	if err := s.Inject(Injection{Signal: "lh_lg_compressed_1", Family: FamilyFlag, Bool: boolPtr(true)}); err != nil {
		t.Fatalf("inject flag: %v", err)
	}
	if !s.Flag(LhLgCompressed1).Value() {
		t.Fatalf("flag injection not stored")
	}
}

func TestInjectRejectsUnknownSignal(t *testing.T) {
	s := NewStore()
	if err := s.Inject(Injection{Signal: "no_such_signal", Family: FamilyFlag, Bool: boolPtr(true)}); err == nil {
		t.Fatalf("expected an error for an unknown signal")
	}
}

func TestInjectRejectsMissingValue(t *testing.T) {
	s := NewStore()
	if err := s.Inject(Injection{Signal: "radio_height_1", Family: FamilyNumber}); err == nil {
		t.Fatalf("expected an error for a number injection without value")
	}
}
