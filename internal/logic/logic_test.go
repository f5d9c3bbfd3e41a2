package logic

import (
	"testing"
	"time"
)

// #region confirmation

func TestConfirmationLeadingStartsFalse(t *testing.T) {
	n := NewConfirmationLeading(time.Second)
	if n.Output() {
		t.Fatalf("expected initial output false")
	}
}

func TestConfirmationLeadingDelaysRisingEdge(t *testing.T) {
	n := NewConfirmationLeading(time.Second)
	if n.Update(true, 500*time.Millisecond) {
		t.Fatalf("expected false before the delay has elapsed")
	}
	if !n.Update(true, 500*time.Millisecond) {
		t.Fatalf("expected true once the signal was stable for the delay")
	}
}

func TestConfirmationLeadingResetsWhenSignalReverts(t *testing.T) {
	n := NewConfirmationLeading(time.Second)
	n.Update(true, 900*time.Millisecond)
	n.Update(false, 10*time.Millisecond)
	if n.Update(true, 900*time.Millisecond) {
		t.Fatalf("expected the timer to restart after the signal reverted")
	}
	if !n.Update(true, 100*time.Millisecond) {
		t.Fatalf("expected true after a full stable delay")
	}
}

func TestConfirmationLeadingPassesFalseImmediately(t *testing.T) {
	n := NewConfirmationLeading(time.Second)
	n.Update(true, 2*time.Second)
	if n.Update(false, time.Millisecond) {
		t.Fatalf("expected false to pass through without delay")
	}
}

func TestConfirmationFallingDelaysFallingEdge(t *testing.T) {
	n := NewConfirmationFalling(time.Second)
	if !n.Update(true, time.Millisecond) {
		t.Fatalf("expected true to pass through without delay")
	}
	if !n.Update(false, 500*time.Millisecond) {
		t.Fatalf("expected true before the delay has elapsed")
	}
	if n.Update(false, 500*time.Millisecond) {
		t.Fatalf("expected false once stable for the delay")
	}
}

// #endregion confirmation

// #region monostable

func TestMonostableOpensOnRisingEdge(t *testing.T) {
	n := NewMonostableLeading(time.Second)
	if n.Update(false, 100*time.Millisecond) {
		t.Fatalf("expected closed before any edge")
	}
	if !n.Update(true, 100*time.Millisecond) {
		t.Fatalf("expected open on the rising edge")
	}
	if !n.Update(false, 500*time.Millisecond) {
		t.Fatalf("expected open while the window runs")
	}
	if n.Update(false, 600*time.Millisecond) {
		t.Fatalf("expected closed after the window elapsed")
	}
}

func TestMonostableIgnoresEdgesWhileOpen(t *testing.T) {
	n := NewMonostableLeading(time.Second)
	n.Update(true, 100*time.Millisecond)
	n.Update(false, 500*time.Millisecond)
	n.Update(true, 100*time.Millisecond)
	if n.Update(true, 500*time.Millisecond) {
		t.Fatalf("expected the window not to restart on edges while open")
	}
}

func TestMonostableRetriggerableRestartsWindow(t *testing.T) {
	n := NewMonostableRetriggerable(true, time.Second)
	n.Update(true, 100*time.Millisecond)
	n.Update(false, 500*time.Millisecond)
	n.Update(true, 100*time.Millisecond)
	if !n.Update(true, 900*time.Millisecond) {
		t.Fatalf("expected the window to restart on a new edge")
	}
	if n.Update(true, 200*time.Millisecond) {
		t.Fatalf("expected closed after the restarted window elapsed")
	}
}

func TestMonostableFallingOpensOnFallingEdge(t *testing.T) {
	n := NewMonostableFalling(time.Second)
	n.Update(true, 100*time.Millisecond)
	if !n.Update(false, 100*time.Millisecond) {
		t.Fatalf("expected open on the falling edge")
	}
}

// #endregion monostable

// #region pulse

func TestPulseLeadingFiresForOneTick(t *testing.T) {
	n := NewPulseLeading()
	if n.Update(false) {
		t.Fatalf("expected no pulse without an edge")
	}
	if !n.Update(true) {
		t.Fatalf("expected a pulse on the rising edge")
	}
	if n.Update(true) {
		t.Fatalf("expected the pulse to last a single tick")
	}
	if n.Update(false) {
		t.Fatalf("expected no pulse on the falling edge")
	}
}

func TestPulseFallingFiresForOneTick(t *testing.T) {
	n := NewPulseFalling()
	n.Update(true)
	if !n.Update(false) {
		t.Fatalf("expected a pulse on the falling edge")
	}
	if n.Update(false) {
		t.Fatalf("expected the pulse to last a single tick")
	}
}

// #endregion pulse

// #region memory

func TestMemorySetAndReset(t *testing.T) {
	n := NewMemoryNode(true)
	if n.Output() {
		t.Fatalf("expected initial output false")
	}
	if !n.Update(true, false) {
		t.Fatalf("expected true after set")
	}
	if !n.Update(false, false) {
		t.Fatalf("expected the bit to hold without inputs")
	}
	if n.Update(false, true) {
		t.Fatalf("expected false after reset")
	}
}

func TestMemorySetPrecedence(t *testing.T) {
	n := NewMemoryNode(true)
	if !n.Update(true, true) {
		t.Fatalf("expected set to win with set precedence")
	}
}

func TestMemoryResetPrecedence(t *testing.T) {
	n := NewMemoryNode(false)
	n.Update(true, false)
	if n.Update(true, true) {
		t.Fatalf("expected reset to win with reset precedence")
	}
}

func TestMemoryNvmFlagAndRestore(t *testing.T) {
	n := NewMemoryNodeNvm(false)
	if !n.Nvm() {
		t.Fatalf("expected the nvm flag to be set")
	}
	n.Restore(true)
	if !n.Output() {
		t.Fatalf("expected the restored bit")
	}
}

// #endregion memory

// #region hysteresis

func TestHysteresisSwitchesAtThresholds(t *testing.T) {
	n := NewHysteresisNode(1.0, 2.0)
	if n.Update(1.5) {
		t.Fatalf("expected lo below the up threshold")
	}
	if !n.Update(2.0) {
		t.Fatalf("expected hi at the up threshold")
	}
	if !n.Update(1.5) {
		t.Fatalf("expected hi to hold between the thresholds")
	}
	if n.Update(1.0) {
		t.Fatalf("expected lo at the down threshold")
	}
	if n.Update(1.5) {
		t.Fatalf("expected lo to hold between the thresholds")
	}
}

// #endregion hysteresis

// #region preceding-value

func TestPrecedingValueReturnsPriorTick(t *testing.T) {
	n := NewPrecedingValueNode()
	if n.Value() {
		t.Fatalf("expected initial value false")
	}
	n.Update(true)
	if !n.Value() {
		t.Fatalf("expected the stored value after update")
	}
	n.Update(false)
	if n.Value() {
		t.Fatalf("expected the newly stored value")
	}
}

// #endregion preceding-value

// #region transient

func TestTransientDetectsChanges(t *testing.T) {
	n := NewTransientDetectionNode(true)
	if n.Update(false) {
		t.Fatalf("expected no change on a steady signal")
	}
	if !n.Update(true) {
		t.Fatalf("expected a change indication on a transition")
	}
	if n.Update(true) {
		t.Fatalf("expected the indication to clear once steady")
	}
	if !n.Update(false) {
		t.Fatalf("expected a change indication on the way back")
	}
}

func TestTransientInvertedChangeSignal(t *testing.T) {
	n := NewTransientDetectionNode(false)
	if !n.Update(false) {
		t.Fatalf("expected the inverse signal while steady")
	}
	if n.Update(true) {
		t.Fatalf("expected the change signal on a transition")
	}
}

// #endregion transient

// #region delay-check

func TestConstructorsRejectNonPositiveDelays(t *testing.T) {
	mustPanic := func(name string, construct func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected a panic for a non-positive delay", name)
			}
		}()
		construct()
	}

	mustPanic("confirmation zero", func() { NewConfirmationLeading(0) })
	mustPanic("confirmation negative", func() { NewConfirmationFalling(-time.Second) })
	mustPanic("monostable zero", func() { NewMonostableLeading(0) })
	mustPanic("monostable negative", func() { NewMonostableFalling(-time.Second) })
	mustPanic("monostable retriggerable", func() { NewMonostableRetriggerable(true, -time.Millisecond) })
}

// #endregion delay-check
